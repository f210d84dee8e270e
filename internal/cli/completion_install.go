package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const completionMarker = "trainlog completion"

// shellConfigs maps shell names to their config file, relative to the home
// directory.
var shellConfigs = map[string]string{
	"bash":       ".bashrc",
	"zsh":        ".zshrc",
	"fish":       ".config/fish/config.fish",
	"powershell": ".config/powershell/Microsoft.PowerShell_profile.ps1",
}

var shellEvalLines = map[string]string{
	"bash":       `eval "$(trainlog completion generate bash)"`,
	"zsh":        `eval "$(trainlog completion generate zsh)"`,
	"fish":       `trainlog completion generate fish | source`,
	"powershell": `trainlog completion generate powershell | Out-String | Invoke-Expression`,
}

// detectShell maps $SHELL to a supported shell name.
func detectShell() string {
	switch filepath.Base(os.Getenv("SHELL")) {
	case "bash":
		return "bash"
	case "zsh":
		return "zsh"
	case "fish":
		return "fish"
	default:
		return ""
	}
}

// isCompletionInstalled reports whether the eval line is already present in
// the shell config.
func isCompletionInstalled(shell, homeDir string) bool {
	configPath, ok := shellConfigs[shell]
	if !ok {
		return false
	}
	data, err := os.ReadFile(filepath.Join(homeDir, configPath))
	if err != nil {
		return false
	}
	return strings.Contains(string(data), completionMarker)
}

// installCompletion appends the completion eval line to the shell config,
// creating the file if needed. Already installed is not an error.
func installCompletion(shell, homeDir string) error {
	configRelPath, ok := shellConfigs[shell]
	if !ok {
		return fmt.Errorf("unsupported shell for completion install: %s", shell)
	}
	configPath := filepath.Join(homeDir, configRelPath)

	if data, err := os.ReadFile(configPath); err == nil && strings.Contains(string(data), completionMarker) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(configPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	_, writeErr := fmt.Fprintf(f, "\n# trainlog shell completion\n%s\n", shellEvalLines[shell])
	if closeErr := f.Close(); closeErr != nil {
		return closeErr
	}
	return writeErr
}
