package stringutil

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize converts an exercise or muscle group name to its canonical
// stored form. It lowercases the input, replaces runs of non-alphanumeric
// characters with underscores, and trims leading/trailing underscores.
func Normalize(name string) string {
	s := strings.ToLower(name)
	s = nonAlphanumeric.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	return s
}

// SplitList parses comma-separated user input into normalized items,
// dropping empties. fallback seeds the result when nothing remains.
func SplitList(raw, fallback string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if n := Normalize(part); n != "" {
			items = append(items, n)
		}
	}
	if len(items) == 0 && fallback != "" {
		items = []string{fallback}
	}
	return items
}
