// Package commands provides the command-line interface for the cryptsynth tool.
//
// It implements commands for:
//   - encoding plaintexts into example ciphertexts
//   - decoding bit-strings with a known cipher and key
//   - evaluating a decryption program
//   - writing example sets
//   - synthesizing a decryption program from an example set
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding (CRYPTSYNTH_*) through cobra and viper.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/cryptsynth/internal/config"
	"github.com/idelchi/cryptsynth/internal/logic"
)

// preRun returns a PreRunE handler that records the command and its positional args,
// then unmarshals and validates the configuration.
func preRun(cfg *config.Config, command string) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Command = command
		cfg.Inputs = args

		return cobraext.Validate(cfg, cfg)
	}
}

// streams routes command output through cobra so it can be captured.
func streams(cmd *cobra.Command) logic.Streams {
	return logic.Streams{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
}

func addCipherFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("cipher", "c", "", "Cipher: rotation (caesar), one_time_pad (otp) or prf")
	cmd.Flags().Int64P("key", "k", 0, "Integer key: rotation amount, keystream seed or initial feedback state")
}

func addSealFlags(cmd *cobra.Command) {
	cmd.Flags().String("seal-key", "", "Hex-encoded key (at least 16 bytes) for sealed expected outputs")
	cmd.Flags().String("seal-key-file", "", "Path to a file with the hex-encoded seal key")
}
