// Package components provides reusable Bubbletea UI building blocks for
// the showcase TUI. These are render-only helpers (not tea.Model) used by
// the main TUI models to compose views.
package components

import (
	"fmt"
	"strings"

	"caresteward/showcase/internal/page"
	"caresteward/showcase/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// NavBar renders the navigation bar pinned to the top of the screen.
//
//	┌────────────────────────────────────────────────────────────────┐
//	│  ⛨ Care Steward   1 Problem Solution  2 Interactive Demo  ...  │
//	└────────────────────────────────────────────────────────────────┘
//
// Once the page has scrolled, the bar gains a solid background and a
// bottom rule. Below page.CompactWidth the anchors collapse into a menu
// that is listed under the bar while nav.MenuOpen is set.
func NavBar(width int, nav page.Nav) string {
	if width < 10 {
		return ""
	}

	brand := styles.BrandText.Render("⛨ " + page.Brand)

	var right string
	if page.Compact(width) {
		glyph := "☰"
		if nav.MenuOpen {
			glyph = "✕"
		}
		right = styles.FormatKeyBinding("m", glyph+" menu")
	} else {
		items := make([]string, len(page.Anchors))
		for i, a := range page.Anchors {
			items[i] = styles.FormatKeyBinding(fmt.Sprint(i+1), a.Label)
		}
		right = strings.Join(items, "  ")
	}

	innerWidth := width - 4 // account for padding
	gap := max(innerWidth-lipgloss.Width(brand)-lipgloss.Width(right), 1)
	content := brand + strings.Repeat(" ", gap) + right

	bar := lipgloss.NewStyle().
		Width(width).
		Padding(0, 2)
	if nav.Scrolled {
		bar = bar.
			Background(styles.SurfaceDim).
			BorderStyle(lipgloss.Border{Bottom: "─"}).
			BorderBottom(true).
			BorderForeground(styles.BrandDark)
	}
	rendered := bar.Render(content)

	if page.Compact(width) && nav.MenuOpen {
		rendered = lipgloss.JoinVertical(lipgloss.Left, rendered, navMenu(width))
	}
	return rendered
}

// navMenu renders the expanded compact menu, one anchor per line.
func navMenu(width int) string {
	rows := make([]string, len(page.Anchors))
	for i, a := range page.Anchors {
		rows[i] = styles.FormatKeyBinding(fmt.Sprint(i+1), a.Label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 3).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(styles.DimGray).
		Render(strings.Join(rows, "\n"))
}

// SectionHeading renders a centred section title with a one-line subtitle.
func SectionHeading(width int, title, subtitle string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.CenterText(styles.Title.Render(title), width),
		styles.CenterText(styles.Subtitle.Render(subtitle), width),
	)
}
