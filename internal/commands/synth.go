package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/cryptsynth/internal/config"
	"github.com/idelchi/cryptsynth/internal/logic"
)

// NewSynthCommand creates a new cobra command for the synth subcommand.
func NewSynthCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "synth [flags]",
		Aliases: []string{"solve"},
		Short:   "Search for a decryption program consistent with an example set",
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg, config.CommandSynth),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunSynth(cmd.Context(), cfg, streams(cmd))
		},
	}

	addSealFlags(cmd)

	cmd.Flags().StringP("examples", "e", "", "Example set file (.yml, .yaml, .json or .jsonc)")
	cmd.Flags().Int("max-depth", 1, "Maximum number of chained transforms")
	cmd.Flags().Int64("key-min", 0, "Smallest key to try")
	cmd.Flags().Int64("key-max", 127, "Largest key to try")
	cmd.Flags().StringSlice("ops", nil, "Transforms to try, defaults to all")
	cmd.Flags().Int("max-candidates", 0, "Stop after this many candidates, 0 for no limit")
	cmd.Flags().Duration("timeout", 0, "Stop searching after this long, 0 for no limit")

	return cmd
}
