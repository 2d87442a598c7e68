package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/cryptsynth/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "cryptsynth [flags] command [flags]"
	root.Short = "Bit-string cipher toolkit and decryption program synthesizer"
	root.Long = `Encodes text into 7-bit bit-strings with pedagogical ciphers, evaluates
decryption programs over them, and searches for the program that explains a set
of ciphertext/plaintext examples.`

	root.PersistentFlags().BoolP("show", "s", false, "Show the configuration and exit")
	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().Bool("stats", false, "Print statistics to stderr")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewEvalCommand(cfg),
		NewVectorsCommand(cfg),
		NewSynthCommand(cfg),
		NewKeygenCommand(),
	)

	return root
}
