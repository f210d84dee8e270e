package cli

import (
	"fmt"
	"os"

	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

var configSetCmd = LeafCommand{
	Use:   "set <key> <value>",
	Short: "Change a display setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runConfigSet(cmd, homeDir, args[0], args[1])
	},
}.Build()

func runConfigSet(cmd *cobra.Command, homeDir, key, value string) error {
	settings, err := workout.ReadSettings(homeDir)
	if err != nil {
		return err
	}

	if err := workout.ApplySetting(&settings, key, value); err != nil {
		return err
	}
	if err := workout.WriteSettings(homeDir, settings); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", key, value)
	return nil
}
