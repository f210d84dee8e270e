package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var completionInstallCmd = LeafCommand{
	Use:   "install [SHELL]",
	Short: "Install shell completions into your shell config",
	Args:  cobra.RangeArgs(0, 1),
	BoolFlags: []BoolFlag{
		{Name: "force", Shorthand: "f", Usage: "Skip the confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		shell, err := resolveShell(args)
		if err != nil {
			return err
		}

		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		forceFlag, _ := cmd.Flags().GetBool("force")
		confirm := NewConfirmFunc()
		if forceFlag {
			confirm = AlwaysYes()
		}

		return runCompletionInstall(cmd, shell, homeDir, confirm)
	},
}.Build()

func runCompletionInstall(cmd *cobra.Command, shell, homeDir string, confirm ConfirmFunc) error {
	w := cmd.OutOrStdout()

	configFile, ok := shellConfigs[shell]
	if !ok {
		return fmt.Errorf("unsupported shell for completion install: %s", shell)
	}

	if isCompletionInstalled(shell, homeDir) {
		_, _ = fmt.Fprintf(w, "Completions already installed for %s in %s.\n", Primary(shell), filepath.Join("~", configFile))
		return nil
	}

	ok, err := confirm(fmt.Sprintf("Install shell completions for %s into %s?", shell, filepath.Join("~", configFile)))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, "cancelled")
		return nil
	}

	if err := installCompletion(shell, homeDir); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "Completions installed for %s in %s.\n", Primary(shell), filepath.Join("~", configFile))
	return nil
}
