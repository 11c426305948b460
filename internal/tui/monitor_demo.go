package tui

import (
	"strings"

	"caresteward/showcase/internal/monitor"
	"caresteward/showcase/internal/tui/components"
	"caresteward/showcase/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	monitorTitle    = "System Performance Monitor"
	monitorSubtitle = "Real-time system metrics and health monitoring dashboard"

	liveLabel   = "Live Monitoring Active"
	pausedLabel = "Monitoring Paused"
)

// systemChecks are the always-green service indicators under the grid.
var systemChecks = []string{
	"All Systems Operational",
	"Database Connected",
	"API Services Active",
	"CDN Operational",
}

// monitorDemoModel renders the live metrics panel. The feed owns the
// snapshot and the tick; this model only caches what it last read.
type monitorDemoModel struct {
	feed *monitor.Feed
	sub  <-chan struct{}

	snapshot monitor.Snapshot
	live     bool

	// focused is the metric whose history is plotted.
	focused int
}

func newMonitorDemoModel(feed *monitor.Feed) monitorDemoModel {
	return monitorDemoModel{
		feed:     feed,
		sub:      feed.Subscribe(),
		snapshot: feed.Snapshot(),
		live:     feed.Live(),
	}
}

// Init starts listening for snapshot replacements.
func (m monitorDemoModel) Init() tea.Cmd {
	return waitForChange(m.sub, feedChangedMsg{})
}

// Update refreshes the cached snapshot on feed changes and handles the
// pause/resume and history keys. The bool reports whether a key was
// consumed.
func (m monitorDemoModel) Update(msg tea.Msg) (monitorDemoModel, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case feedChangedMsg:
		m.snapshot = m.feed.Snapshot()
		m.live = m.feed.Live()
		return m, waitForChange(m.sub, feedChangedMsg{}), false

	case tea.KeyMsg:
		switch msg.String() {
		case "p", " ":
			m.live = m.feed.ToggleLive()
			return m, nil, true
		case "s":
			m.focused = (m.focused + 1) % len(m.snapshot)
			return m, nil, true
		case "S":
			m.focused = (m.focused + len(m.snapshot) - 1) % len(m.snapshot)
			return m, nil, true
		}
	}
	return m, nil, false
}

// View renders the section at the given width.
func (m monitorDemoModel) View(width int) string {
	heading := components.SectionHeading(width, monitorTitle, monitorSubtitle)

	panelWidth := min(max(width-4, 30), 120)
	inner := panelWidth - 6

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderLiveBar(inner),
		"",
		m.renderGrid(inner),
		"",
		m.renderHistory(inner),
		"",
		renderSystemStatus(inner),
	)

	box := styles.Card.
		BorderForeground(styles.BrandDark).
		Width(panelWidth).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, box),
	)
}

func (m monitorDemoModel) renderLiveBar(width int) string {
	dot := lipgloss.NewStyle().Foreground(styles.Gray).Render("●")
	label := pausedLabel
	button := "Resume"
	if m.live {
		dot = lipgloss.NewStyle().Foreground(styles.Green).Render("●")
		label = liveLabel
		button = "Pause"
	}

	left := dot + " " + styles.Subtitle.Render(label)
	right := styles.Button.Render(button) + " " + styles.MutedText.Render("(p)")
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// renderGrid lays the metric tiles out in up to three columns.
func (m monitorDemoModel) renderGrid(width int) string {
	cols := 3
	switch {
	case width < 60:
		cols = 1
	case width < 90:
		cols = 2
	}
	tileWidth := width/cols - 2

	var rows []string
	for start := 0; start < len(m.snapshot); start += cols {
		end := min(start+cols, len(m.snapshot))
		tiles := make([]string, 0, cols)
		for i := start; i < end; i++ {
			tiles = append(tiles, m.renderTile(i, tileWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m monitorDemoModel) renderTile(i, width int) string {
	metric := m.snapshot[i]
	inner := max(width-4, 10)

	name := styles.Value.Bold(true).Render(metric.Name)
	badge := styles.MetricStatusStyle(metric.Status).Render(string(metric.Status))
	gap := max(inner-lipgloss.Width(name)-lipgloss.Width(badge), 1)
	top := name + strings.Repeat(" ", gap) + badge

	value := styles.BigValue.Render(monitor.FormatValue(metric))
	if metric.Unit != "" {
		value += " " + styles.MutedText.Render(metric.Unit)
	}
	value += " " + styles.TrendStyle(metric.Trend).Render(metric.Trend.Arrow())

	bar := components.ProgressBar(inner, monitor.Progress(metric),
		styles.MetricStatusColor(metric.Status), styles.DimGray)

	tile := styles.Tile
	if i == m.focused {
		tile = tile.BorderForeground(styles.BrandLight)
	}
	return tile.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, top, value, bar))
}

func (m monitorDemoModel) renderHistory(width int) string {
	if len(m.snapshot) == 0 {
		return ""
	}
	metric := m.snapshot[m.focused]
	label := metric.Name + " history " + styles.MutedText.Render("(s to cycle)")
	return components.Sparkline(label, m.feed.History(metric.Name), width,
		monitor.Precision(metric.Name), metric.Unit)
}

func renderSystemStatus(width int) string {
	dot := lipgloss.NewStyle().Foreground(styles.Green).Render("●")
	items := make([]string, len(systemChecks))
	for i, check := range systemChecks {
		items[i] = dot + " " + styles.Subtitle.Render(check)
	}

	list := strings.Join(items, "   ")
	if lipgloss.Width(list) > width {
		list = strings.Join(items, "\n")
	}
	return lipgloss.JoinVertical(lipgloss.Left, styles.Title.Render("System Status"), list)
}
