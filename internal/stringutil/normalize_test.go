package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple lowercase", "pushup", "pushup"},
		{"mixed case", "Bench Press", "bench_press"},
		{"special characters", "sit-up!", "sit_up"},
		{"consecutive specials", "pull  -  up", "pull_up"},
		{"leading trailing specials", "  squat  ", "squat"},
		{"numbers preserved", "5k run", "5k_run"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple list", "chest, back", []string{"chest", "back"}},
		{"normalized items", "Lower Back, CORE", []string{"lower_back", "core"}},
		{"empties dropped", "legs,,,", []string{"legs"}},
		{"empty input falls back", "", []string{"general"}},
		{"only separators falls back", " , , ", []string{"general"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input, "general"))
		})
	}
}
