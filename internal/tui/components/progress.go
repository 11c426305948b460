package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a horizontal bar of width cells filled to pct
// percent. pct is clamped to [0, 100].
func ProgressBar(width int, pct float64, fill lipgloss.Color, track lipgloss.Color) string {
	if width < 1 {
		return ""
	}
	pct = math.Max(0, math.Min(100, pct))
	filled := int(math.Round(pct / 100 * float64(width)))

	return lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(track).Render(strings.Repeat("─", width-filled))
}
