package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/cryptsynth/internal/config"
	"github.com/idelchi/cryptsynth/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] texts...",
		Aliases: []string{"enc"},
		Short:   "Encode plaintexts into bit-strings",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, config.CommandEncrypt),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunTransform(cfg, streams(cmd))
		},
	}

	addCipherFlags(cmd)

	return cmd
}
