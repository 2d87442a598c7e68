// Command cryptsynth encodes text with bit-string ciphers and synthesizes
// decryption programs from examples.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/cryptsynth/internal/commands"
	"github.com/idelchi/cryptsynth/internal/config"
)

// version is set by the build system.
var version = "unknown - unofficial & generated by unknown"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := &config.Config{}

	switch err := commands.NewRootCommand(cfg, version).ExecuteContext(ctx); {
	case errors.Is(err, cobraext.ErrExitGracefully):
		return 0
	case err != nil:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		return 1
	default:
		return 0
	}
}
