// Package util holds small string helpers shared by the CLI and the TUI.
package util

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// NormalizeKey lowercases and trims a string for use as a consistent lookup key.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FitLines truncates every line of a rendered block to width cells,
// keeping ANSI styling intact. A width below 1 returns s unchanged.
func FitLines(s string, width int) string {
	if width < 1 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			lines[i] = ansi.Truncate(line, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}
