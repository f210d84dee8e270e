package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestColorizeLineSectionHeader(t *testing.T) {
	result := colorizeLine("Available Commands:")
	assert.Contains(t, result, "Available Commands:")
}

func TestColorizeLineCommandListing(t *testing.T) {
	result := colorizeLine("  add           Log an exercise")
	assert.Contains(t, result, "add")
	assert.Contains(t, result, "Log an exercise")
}

func TestColorizeLineFlagLine(t *testing.T) {
	result := colorizeLine("  -f, --force   skip the confirmation prompt")
	assert.Contains(t, result, "--force")
	assert.Contains(t, result, "skip")
}

func TestColorizeLineFooter(t *testing.T) {
	result := colorizeLine(`Use "trainlog [command] --help" for more information about a command.`)
	assert.Contains(t, result, "trainlog")
}

func TestColorizeLinePlainText(t *testing.T) {
	result := colorizeLine("A personal exercise-tracking CLI")
	assert.Contains(t, result, "A personal exercise-tracking CLI")
}

func TestColorizedHelpFuncProducesOutput(t *testing.T) {
	// Use a standalone command to avoid re-parenting shared subcommands
	cmd := &cobra.Command{
		Use:   "test-app",
		Short: "A test CLI app",
	}
	cmd.AddCommand(&cobra.Command{Use: "sub", Short: "A subcommand"})
	cmd.SetHelpFunc(colorizedHelpFunc())

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	helpFunc := colorizedHelpFunc()
	helpFunc(cmd, []string{})

	output := buf.String()
	assert.Contains(t, output, "test-app")
	assert.Contains(t, output, "Flags:")
}

func TestColorizedHelpFuncRestoresWriter(t *testing.T) {
	cmd := &cobra.Command{
		Use:   "test-app",
		Short: "A test CLI app",
	}
	cmd.SetHelpFunc(colorizedHelpFunc())

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	helpFunc := colorizedHelpFunc()
	helpFunc(cmd, []string{})

	buf.Reset()
	cmd.Print("test")
	assert.Equal(t, "test", buf.String())
}
