package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/cryptsynth/internal/config"
	"github.com/idelchi/cryptsynth/internal/logic"
)

// NewEvalCommand creates a new cobra command for the eval subcommand.
func NewEvalCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [flags] bit-strings...",
		Short: "Evaluate a decryption program on each input",
		Example: `  cryptsynth eval -p 'bits_to_text(rotation_decode(@0, get_int("4")))' 110010111001101100111`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, config.CommandEval),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunEval(cfg, streams(cmd))
		},
	}

	cmd.Flags().StringP("program", "p", "", "Program to evaluate, with @0 bound to each input")

	return cmd
}
