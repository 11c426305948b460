package tui

import (
	"caresteward/showcase/internal/contact"
	"caresteward/showcase/internal/monitor"
	"caresteward/showcase/internal/page"
	"caresteward/showcase/internal/tui/components"

	"github.com/charmbracelet/lipgloss"
)

// DefaultStaticWidth is used when the output is not a terminal and no
// width is known.
const DefaultStaticWidth = 100

// RenderStatic renders every section once, top to bottom, for output that
// is not a terminal. The form is shown idle and the metrics at their
// initial values.
func RenderStatic(width int) string {
	if width <= 0 {
		width = DefaultStaticWidth
	}

	flow := contact.NewFlow(contact.Options{})
	defer flow.Close()
	feed := monitor.NewFeed(monitor.Options{Paused: true})
	defer feed.Close()

	content, _ := renderPage(width,
		newFormDemoModel(flow),
		newChartDemoModel(),
		newMonitorDemoModel(feed),
	)

	nav := components.NavBar(width, page.Nav{})
	return lipgloss.JoinVertical(lipgloss.Left, nav, content) + "\n"
}
