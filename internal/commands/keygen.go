package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/cryptsynth/internal/seal"
)

// NewKeygenCommand creates a new cobra command that prints a fresh seal key.
func NewKeygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "keygen",
		Aliases: []string{"gen"},
		Short:   "Generate a new seal key",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := seal.GenerateKey()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), key)

			return nil
		},
	}
}
