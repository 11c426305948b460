package tui

import (
	"strings"

	"caresteward/showcase/internal/dataviz"
	"caresteward/showcase/internal/tui/components"
	"caresteward/showcase/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	chartTitle    = "Data Visualization Demo"
	chartSubtitle = "Interactive charts demonstrating data handling and visualization capabilities"

	chartHeight = 10
)

// chartDemoModel is the dataset switcher and bar chart section.
type chartDemoModel struct {
	selector dataviz.Selector
}

func newChartDemoModel() chartDemoModel {
	return chartDemoModel{}
}

// Update switches datasets. It reports whether the key was consumed.
func (m chartDemoModel) Update(msg tea.KeyMsg) (chartDemoModel, bool) {
	switch msg.String() {
	case "right", "l":
		m.selector = m.selector.Next()
	case "left", "h":
		m.selector = m.selector.Prev()
	case "r":
		m.selector = m.selector.Select(dataviz.Revenue)
	case "u":
		m.selector = m.selector.Select(dataviz.Users)
	case "g":
		m.selector = m.selector.Select(dataviz.Growth)
	default:
		return m, false
	}
	return m, true
}

// Selected returns the dataset on screen.
func (m chartDemoModel) Selected() dataviz.Kind {
	return m.selector.Selected()
}

// View renders the section at the given width.
func (m chartDemoModel) View(width int) string {
	heading := components.SectionHeading(width, chartTitle, chartSubtitle)

	kind := m.selector.Selected()
	cardWidth := min(max(width-8, 40), 90)
	inner := cardWidth - 6

	chart := components.BarChart(dataviz.Points(kind), inner, chartHeight, datasetColor(kind))
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.renderTabs(),
		"",
		chart,
		"",
		renderSummary(dataviz.Summarize(kind), inner),
	)

	box := styles.Card.Width(cardWidth).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, box),
	)
}

func (m chartDemoModel) renderTabs() string {
	selected := m.selector.Selected()
	tabs := make([]string, len(dataviz.Kinds))
	for i, k := range dataviz.Kinds {
		style := styles.Tab
		if k == selected {
			style = styles.TabSelected
		}
		tabs[i] = style.Render(k.Label())
	}
	return strings.Join(tabs, " ")
}

// renderSummary lays out the current/average/growth tiles side by side,
// or stacked when there is no room.
func renderSummary(s dataviz.Summary, width int) string {
	tiles := []string{
		summaryTile(dataviz.FormatNumber(s.Current), "Current "+s.MetricLabel, styles.BigValue),
		summaryTile(dataviz.FormatNumber(s.Average), "Average "+s.MetricLabel, styles.BigValue),
		summaryTile(dataviz.FormatGrowth(s.GrowthPct), "Total Growth", styles.SuccessText),
	}

	tileWidth := (width - 2) / 3
	if tileWidth < 22 {
		return lipgloss.JoinVertical(lipgloss.Center, tiles...)
	}
	for i := range tiles {
		tiles[i] = lipgloss.NewStyle().Width(tileWidth).Align(lipgloss.Center).Render(tiles[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func summaryTile(value, caption string, valueStyle lipgloss.Style) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		valueStyle.Render(value),
		styles.Subtitle.Render(caption),
	)
}

func datasetColor(k dataviz.Kind) lipgloss.Color {
	switch k {
	case dataviz.Users:
		return styles.Blue
	case dataviz.Growth:
		return styles.Green
	default:
		return styles.BrandLight
	}
}
