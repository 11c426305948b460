package components

import (
	"caresteward/showcase/internal/dataviz"
	"caresteward/showcase/internal/tui/styles"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// BarChart renders a vertical bar chart of points, one labelled bar per
// point, scaled to the largest value.
func BarChart(points []dataviz.Point, width, height int, color lipgloss.Color) string {
	if len(points) == 0 || width < 10 || height < 3 {
		return styles.MutedText.Render("no data")
	}

	barStyle := lipgloss.NewStyle().Foreground(color)
	data := make([]barchart.BarData, len(points))
	for i, p := range points {
		data[i] = barchart.BarData{
			Label: p.Month,
			Values: []barchart.BarValue{
				{Name: p.Month, Value: p.Value, Style: barStyle},
			},
		}
	}

	chart := barchart.New(width, height,
		barchart.WithBarGap(2),
		barchart.WithMaxValue(dataviz.Max(points)),
		barchart.WithStyles(
			lipgloss.NewStyle().Foreground(styles.DimGray),
			lipgloss.NewStyle().Foreground(styles.Gray),
		),
	)
	chart.PushAll(data)
	chart.Draw()
	return chart.View()
}
