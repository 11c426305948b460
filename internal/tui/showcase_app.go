package tui

import (
	"fmt"
	"strings"

	"caresteward/showcase/internal/contact"
	"caresteward/showcase/internal/monitor"
	"caresteward/showcase/internal/page"
	"caresteward/showcase/internal/tui/components"
	"caresteward/showcase/internal/tui/styles"
	"caresteward/showcase/internal/util"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// ShowcaseOptions configures the components owned by one showcase session.
type ShowcaseOptions struct {
	Flow contact.Options
	Feed monitor.Options

	Logger *zap.Logger
}

// --- App model ---

// showcaseModel is the top-level Bubbletea model: a pinned navigation bar,
// a scrolling page of sections and a key-binding footer. It owns no
// timers itself; the flow and the feed do, and RunShowcase tears them
// down when the program exits.
type showcaseModel struct {
	flow *contact.Flow
	feed *monitor.Feed

	nav      page.Nav
	viewport viewport.Model
	layout   page.Layout

	form    formDemoModel
	chart   chartDemoModel
	monitor monitorDemoModel

	log *zap.Logger

	width  int
	height int
}

// RunShowcase starts the full-window showcase. It blocks until the user
// quits and always stops the form flow and the metrics feed on return.
func RunShowcase(opts ShowcaseOptions) error {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Flow.Logger == nil {
		opts.Flow.Logger = opts.Logger
	}
	if opts.Feed.Logger == nil {
		opts.Feed.Logger = opts.Logger
	}

	flow := contact.NewFlow(opts.Flow)
	defer flow.Close()
	feed := monitor.NewFeed(opts.Feed)
	defer feed.Close()

	m := newShowcaseModel(flow, feed, opts.Logger)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run showcase: %w", err)
	}
	opts.Logger.Debug("showcase closed")
	return nil
}

func newShowcaseModel(flow *contact.Flow, feed *monitor.Feed, log *zap.Logger) showcaseModel {
	if log == nil {
		log = zap.NewNop()
	}

	vp := viewport.New(0, 0)
	vp.KeyMap = pageViewportKeyMap()

	return showcaseModel{
		flow:     flow,
		feed:     feed,
		viewport: vp,
		form:     newFormDemoModel(flow),
		chart:    newChartDemoModel(),
		monitor:  newMonitorDemoModel(feed),
		log:      log.Named("tui"),
	}
}

// pageViewportKeyMap scrolls the page with the vertical keys only; the
// horizontal keys belong to the chart switcher.
func pageViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "½ page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "½ page down"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithDisabled(),
		),
		Right: key.NewBinding(
			key.WithDisabled(),
		),
	}
}

func (m showcaseModel) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), m.monitor.Init())
}

func (m showcaseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.viewport, _ = m.viewport.Update(msg)

	case feedChangedMsg:
		m.monitor, cmd, _ = m.monitor.Update(msg)

	default:
		// Flow transitions and spinner ticks.
		m.form, cmd = m.form.Update(msg)
	}

	return m.refresh(), cmd
}

func (m showcaseModel) handleKey(msg tea.KeyMsg) (showcaseModel, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// While the form is being edited every key belongs to it.
	if m.form.Editing() {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1", "2", "3", "4":
		i := int(msg.Runes[0] - '1')
		var anchor page.Anchor
		var ok bool
		m.nav, anchor, ok = m.nav.Choose(i)
		if ok {
			m = m.scrollTo(anchor.ID)
		}
		return m, nil
	case "m":
		m.nav = m.nav.ToggleMenu()
		return m, nil
	case "esc":
		if m.nav.MenuOpen {
			m.nav = m.nav.ToggleMenu()
		}
		return m, nil
	case "home":
		m.viewport.GotoTop()
		return m, nil
	case "end":
		m.viewport.GotoBottom()
		return m, nil
	case "f":
		var cmd tea.Cmd
		m.form, cmd = m.form.Focus()
		m = m.scrollTo(page.SectionInteractiveDemo)
		return m, cmd
	}

	var handled bool
	if m.chart, handled = m.chart.Update(msg); handled {
		return m, nil
	}

	var cmd tea.Cmd
	if m.monitor, cmd, handled = m.monitor.Update(msg); handled {
		return m, cmd
	}

	m.viewport, _ = m.viewport.Update(msg)
	return m, nil
}

// scrollTo moves the viewport so the section starts at the top. The page
// is re-rendered first so offsets reflect the current width.
func (m showcaseModel) scrollTo(id page.SectionID) showcaseModel {
	m = m.refresh()
	if off, ok := m.layout.Offset(id); ok {
		m.viewport.SetYOffset(off)
	}
	m.log.Debug("jump to section", zap.String("section", string(id)), zap.Int("offset", m.viewport.YOffset))
	return m
}

// refresh re-renders the page into the viewport, resizes it to the space
// left between the pinned bars and syncs the scrolled flag.
func (m showcaseModel) refresh() showcaseModel {
	if m.width == 0 || m.height == 0 {
		return m
	}

	content, layout := renderPage(m.width, m.form, m.chart, m.monitor)
	m.layout = layout

	navH := lipgloss.Height(components.NavBar(m.width, m.nav))
	footerH := lipgloss.Height(components.Footer(m.width, m.footerBindings()))

	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-navH-footerH, 1)
	m.viewport.SetContent(content)

	m.nav = m.nav.OnScroll(m.viewport.YOffset)
	return m
}

func (m showcaseModel) footerBindings() []components.KeyBinding {
	if m.form.Editing() {
		return []components.KeyBinding{
			{Key: "tab", Desc: "next field"},
			{Key: "enter", Desc: "submit"},
			{Key: "ctrl+s", Desc: "submit"},
			{Key: "esc", Desc: "done"},
		}
	}
	return []components.KeyBinding{
		{Key: "1-4", Desc: "jump"},
		{Key: "j/k", Desc: "scroll"},
		{Key: "f", Desc: "form"},
		{Key: "←/→", Desc: "chart"},
		{Key: "p", Desc: "pause"},
		{Key: "s", Desc: "history"},
		{Key: "q", Desc: "quit"},
	}
}

func (m showcaseModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	nav := components.NavBar(m.width, m.nav)
	footer := components.Footer(m.width, m.footerBindings())

	view := lipgloss.JoinVertical(lipgloss.Left, nav, m.viewport.View(), footer)
	return padToHeight(view, m.height)
}

// renderPage renders every scrolling section in page order and records
// where each one starts. The navigation bar is pinned outside the page
// and takes no lines.
func renderPage(width int, form formDemoModel, chart chartDemoModel, mon monitorDemoModel) (string, page.Layout) {
	rendered := make(map[page.SectionID]string, len(page.Order))
	for _, id := range page.Order {
		switch id {
		case page.SectionHeader:
			rendered[id] = renderHeader(width)
		case page.SectionProblemSolution:
			rendered[id] = components.ProblemSolution(width)
		case page.SectionInteractiveDemo:
			rendered[id] = form.View(width)
		case page.SectionDataVisualization:
			rendered[id] = chart.View(width)
		case page.SectionPerformance:
			rendered[id] = mon.View(width)
		case page.SectionFooter:
			rendered[id] = components.PageFooter(width, page.FooterText)
		}
	}

	// Sections are separated by one blank line, counted with the section
	// above it.
	heights := make(map[page.SectionID]int, len(rendered))
	parts := make([]string, 0, len(rendered))
	for _, id := range page.Order {
		s, ok := rendered[id]
		if !ok {
			continue
		}
		parts = append(parts, s)
		heights[id] = lipgloss.Height(s) + 1
	}

	content := util.FitLines(strings.Join(parts, "\n\n"), width)
	return content, page.NewLayout(heights)
}

func renderHeader(width int) string {
	textWidth := min(max(width-8, 20), 80)
	desc := lipgloss.NewStyle().
		Width(textWidth).
		Align(lipgloss.Center).
		Foreground(styles.Gray).
		Render(page.Description)

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		styles.CenterText(styles.BrandText.Render(page.Title), width),
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, desc),
	)
}

// padToHeight ensures the view string has exactly height lines so the
// alt screen does not show stale rows below a short frame.
func padToHeight(view string, height int) string {
	if height <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
