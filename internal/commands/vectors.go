package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/cryptsynth/internal/config"
	"github.com/idelchi/cryptsynth/internal/logic"
)

// NewVectorsCommand creates a new cobra command for the vectors subcommand.
func NewVectorsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vectors [flags] texts...",
		Aliases: []string{"vec"},
		Short:   "Write an example set of encoded plaintexts",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, config.CommandVectors),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunVectors(cfg, streams(cmd))
		},
	}

	addCipherFlags(cmd)
	addSealFlags(cmd)

	cmd.Flags().StringP("examples", "e", "", "Example set file to write (.yml, .yaml, .json or .jsonc)")

	return cmd
}
