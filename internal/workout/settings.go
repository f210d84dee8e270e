package workout

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Settings controls presentation only: progress bar rendering, chart
// dimensions, and default report windows. Dataset contents never depend
// on them.
type Settings struct {
	Bar   BarSettings   `json:"bar"`
	Graph GraphSettings `json:"graph"`
	Stats StatsSettings `json:"stats"`
}

// BarSettings sizes the goal progress bars.
type BarSettings struct {
	Width  int    `json:"width"`
	Filled string `json:"filled"`
	Empty  string `json:"empty"`
}

// GraphSettings sizes the trend charts.
type GraphSettings struct {
	Days  int `json:"days"`
	Width int `json:"width"`
}

// StatsSettings sizes the statistics report.
type StatsSettings struct {
	Days int `json:"days"`
}

// DefaultSettings returns the built-in display settings.
func DefaultSettings() Settings {
	return Settings{
		Bar:   BarSettings{Width: 20, Filled: "█", Empty: "░"},
		Graph: GraphSettings{Days: 7, Width: 40},
		Stats: StatsSettings{Days: 30},
	}
}

// SettingsPath returns the path to the display settings file.
func SettingsPath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "config.json")
}

// ReadSettings reads the display settings. A missing file yields the
// defaults; keys absent from the file keep their default values.
func ReadSettings(homeDir string) (Settings, error) {
	data, err := os.ReadFile(SettingsPath(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}
	return s, nil
}

// WriteSettings writes the display settings file, creating the state
// directory if needed.
func WriteSettings(homeDir string, s Settings) error {
	if err := os.MkdirAll(DataDir(homeDir), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(SettingsPath(homeDir), data, 0644)
}

// SettingKeys lists the dotted settings keys in display order.
func SettingKeys() []string {
	return []string{
		"bar.width", "bar.filled", "bar.empty",
		"graph.days", "graph.width",
		"stats.days",
	}
}

// SettingValue returns the value of a dotted settings key as a string.
func SettingValue(s Settings, key string) (string, error) {
	switch key {
	case "bar.width":
		return strconv.Itoa(s.Bar.Width), nil
	case "bar.filled":
		return s.Bar.Filled, nil
	case "bar.empty":
		return s.Bar.Empty, nil
	case "graph.days":
		return strconv.Itoa(s.Graph.Days), nil
	case "graph.width":
		return strconv.Itoa(s.Graph.Width), nil
	case "stats.days":
		return strconv.Itoa(s.Stats.Days), nil
	}
	return "", fmt.Errorf("unknown settings key %q", key)
}

// ApplySetting sets a dotted settings key from its string form, validating
// the value.
func ApplySetting(s *Settings, key, value string) error {
	switch key {
	case "bar.width":
		return applyInt(&s.Bar.Width, key, value)
	case "bar.filled":
		return applyFill(&s.Bar.Filled, key, value)
	case "bar.empty":
		return applyFill(&s.Bar.Empty, key, value)
	case "graph.days":
		return applyInt(&s.Graph.Days, key, value)
	case "graph.width":
		return applyInt(&s.Graph.Width, key, value)
	case "stats.days":
		return applyInt(&s.Stats.Days, key, value)
	}
	return fmt.Errorf("unknown settings key %q", key)
}

// ResetSetting restores a dotted settings key to its default value.
func ResetSetting(s *Settings, key string) error {
	v, err := SettingValue(DefaultSettings(), key)
	if err != nil {
		return err
	}
	return ApplySetting(s, key, v)
}

func applyInt(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fmt.Errorf("invalid value %q for %s (expected a positive integer)", value, key)
	}
	*dst = n
	return nil
}

func applyFill(dst *string, key, value string) error {
	if value == "" {
		return fmt.Errorf("invalid value %q for %s (expected a fill character)", value, key)
	}
	*dst = value
	return nil
}
