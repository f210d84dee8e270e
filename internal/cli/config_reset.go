package cli

import (
	"fmt"
	"os"

	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

var configResetCmd = LeafCommand{
	Use:   "reset [key]",
	Short: "Restore display settings to their defaults",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		key := ""
		if len(args) > 0 {
			key = args[0]
		}
		return runConfigReset(cmd, homeDir, key)
	},
}.Build()

func runConfigReset(cmd *cobra.Command, homeDir, key string) error {
	w := cmd.OutOrStdout()

	if key == "" {
		if err := workout.WriteSettings(homeDir, workout.DefaultSettings()); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, "All settings restored to defaults.")
		return nil
	}

	settings, err := workout.ReadSettings(homeDir)
	if err != nil {
		return err
	}
	if err := workout.ResetSetting(&settings, key); err != nil {
		return err
	}
	if err := workout.WriteSettings(homeDir, settings); err != nil {
		return err
	}

	value, err := workout.SettingValue(settings, key)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Reset %s to %s\n", key, value)
	return nil
}
