package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/cryptsynth/internal/config"
	"github.com/idelchi/cryptsynth/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] bit-strings...",
		Aliases: []string{"dec"},
		Short:   "Decode bit-strings back to text",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := preRun(cfg, config.CommandDecrypt)(cmd, args); err != nil {
				return err
			}

			cfg.Decrypt = true

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunTransform(cfg, streams(cmd))
		},
	}

	addCipherFlags(cmd)

	return cmd
}
