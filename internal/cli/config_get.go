package cli

import (
	"fmt"
	"os"

	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

var configGetCmd = LeafCommand{
	Use:   "get [key]",
	Short: "Show display settings",
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
		return runConfigGet(cmd, homeDir, key)
	},
}.Build()

func runConfigGet(cmd *cobra.Command, homeDir, key string) error {
	w := cmd.OutOrStdout()

	settings, err := workout.ReadSettings(homeDir)
	if err != nil {
		return err
	}

	if key != "" {
		value, err := workout.SettingValue(settings, key)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, value)
		return nil
	}

	for _, k := range workout.SettingKeys() {
		value, err := workout.SettingValue(settings, k)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "%s = %s\n", k, value)
	}
	return nil
}
