package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "trainlog",
	Short:         "A personal exercise-tracking CLI",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.SetHelpFunc(colorizedHelpFunc())
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(typeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
