package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

var editCmd = LeafCommand{
	Use:   "edit",
	Short: "Open the data file in your editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runEdit(homeDir, os.Getenv("EDITOR"), time.Now)
	},
}.Build()

func runEdit(homeDir, editor string, nowFn func() time.Time) error {
	// 1. Materialize the seeded file so the editor never opens nothing.
	if _, err := os.Stat(workout.DataPath(homeDir)); os.IsNotExist(err) {
		ds, err := workout.ReadDataset(homeDir, nowFn())
		if err != nil {
			return err
		}
		if err := workout.WriteDataset(homeDir, ds); err != nil {
			return err
		}
	}

	// 2. Hand the terminal to the editor.
	args := append(editorArgs(editor), workout.DataPath(homeDir))
	c := exec.Command(args[0], args[1:]...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return err
	}

	// 3. Catch hand-edits that broke the file while the mistake is fresh.
	if _, err := workout.ReadDataset(homeDir, nowFn()); err != nil {
		return fmt.Errorf("edited file is not valid: %w", err)
	}
	return nil
}

// editorArgs splits $EDITOR into command and arguments ("code --wait" is a
// valid value), falling back to vi when unset.
func editorArgs(editor string) []string {
	if strings.TrimSpace(editor) == "" {
		return []string{"vi"}
	}
	return strings.Fields(editor)
}
