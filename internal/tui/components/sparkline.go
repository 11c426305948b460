package components

import (
	"fmt"

	"caresteward/showcase/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// sparklineHeight is the fixed height for metric history plots.
const sparklineHeight = 5

// Sparkline renders a single-series history plot with a label header and
// a cur/min/max summary. Returns a muted placeholder if data has fewer
// than two points.
func Sparkline(label string, data []float64, width int, precision int, suffix string) string {
	if len(data) < 2 {
		return styles.MutedText.Render(label + ": collecting data…")
	}

	// Reserve space for Y-axis labels (number + " ┤" ≈ 9 chars).
	plotWidth := max(width-9, 10)

	chart := asciigraph.Plot(data,
		asciigraph.Height(sparklineHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(uint(precision)),
		asciigraph.SeriesColors(asciigraph.Aquamarine),
		asciigraph.LabelColor(asciigraph.Default),
	)

	current := data[len(data)-1]
	lo, hi := minMax(data)
	format := fmt.Sprintf("%%.%df%%s", precision)
	summary := styles.MutedText.Render(fmt.Sprintf("  cur: %s  min: %s  max: %s",
		fmt.Sprintf(format, current, suffix),
		fmt.Sprintf(format, lo, suffix),
		fmt.Sprintf(format, hi, suffix),
	))

	return lipgloss.JoinVertical(lipgloss.Left, styles.Label.Render(label), chart, summary)
}

// minMax returns the minimum and maximum values from a slice.
func minMax(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}
	lo, hi := data[0], data[0]
	for _, v := range data[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
