package components

import (
	"caresteward/showcase/internal/page"
	"caresteward/showcase/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const (
	stepWidth  = 26
	arrowRight = "  ──▶  "
	arrowDown  = "▼"
)

// ProblemSolution renders the three-step graphic. The steps sit in a row
// joined by arrows when the width allows, and stack vertically otherwise.
//
//	╭──────────────╮       ╭──────────────╮       ╭──────────────╮
//	│      ⚠       │       │      ⛨       │       │      ✔       │
//	│Your Challenge│  ──▶  │Our Expertise │  ──▶  │Your Solution │
//	╰──────────────╯       ╰──────────────╯       ╰──────────────╯
func ProblemSolution(width int) string {
	cards := make([]string, len(page.Steps))
	for i, s := range page.Steps {
		cards[i] = stepCard(s)
	}

	if GraphicHorizontal(width) {
		parts := make([]string, 0, 2*len(cards)-1)
		for i, c := range cards {
			if i > 0 {
				arrow := styles.MutedText.Render(arrowRight)
				parts = append(parts, lipgloss.PlaceVertical(lipgloss.Height(c), lipgloss.Center, arrow))
			}
			parts = append(parts, c)
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
	}

	parts := make([]string, 0, 2*len(cards)-1)
	for i, c := range cards {
		if i > 0 {
			parts = append(parts, styles.MutedText.Width(stepWidth+2).Align(lipgloss.Center).Render(arrowDown))
		}
		parts = append(parts, c)
	}
	col := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, col)
}

// GraphicHorizontal reports whether ProblemSolution lays its steps out in
// a row at this width.
func GraphicHorizontal(width int) bool {
	n := len(page.Steps)
	need := n*(stepWidth+2) + (n-1)*lipgloss.Width(arrowRight)
	return width >= need
}

func stepCard(s page.Step) string {
	tone := styles.ToneStyle(s.Tone)
	body := lipgloss.JoinVertical(lipgloss.Center,
		tone.Render(s.Icon),
		styles.Value.Bold(true).Render(s.Title),
		styles.Subtitle.Render(s.Description),
	)
	return styles.Tile.
		BorderForeground(tone.GetForeground()).
		Width(stepWidth).
		Align(lipgloss.Center).
		Render(body)
}
