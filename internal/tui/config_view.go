package tui

import (
	"fmt"
	"strings"

	"caresteward/showcase/internal/config"
	"caresteward/showcase/internal/tui/components"
	"caresteward/showcase/internal/tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Config messages ---

type configSavedMsg struct {
	key   string
	value string
}

type configSaveErrorMsg struct {
	err error
}

// --- Config model ---

type configViewModel struct {
	cfg  *config.Config
	keys []config.KeySpec

	// save persists cfg. It is cfg.Save outside tests.
	save func(*config.Config) error

	cursor  int
	editing bool
	editor  textinput.Model

	width  int
	height int

	status  string
	isError bool
}

// RunConfigView starts the interactive config viewer/editor TUI.
func RunConfigView() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	p := tea.NewProgram(newConfigViewModel(cfg), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newConfigViewModel(cfg *config.Config) configViewModel {
	return configViewModel{
		cfg:  cfg,
		keys: config.Keys,
		save: (*config.Config).Save,
	}
}

func (m configViewModel) Init() tea.Cmd {
	return nil
}

func (m configViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case configSavedMsg:
		m.editing = false
		if msg.value == "" {
			m.status = "Cleared " + msg.key
		} else {
			m.status = fmt.Sprintf("Saved %s = %s", msg.key, msg.value)
		}
		m.isError = false
		return m, nil

	case configSaveErrorMsg:
		m.status = "Error: " + msg.err.Error()
		m.isError = true
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m configViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.keys)-1 {
			m.cursor++
		}
	case "enter", "e":
		spec := m.keys[m.cursor]
		ti := textinput.New()
		ti.SetValue(spec.Get(m.cfg))
		ti.Focus()
		ti.Width = 40
		ti.Placeholder = "enter value (empty clears)"
		m.editor = ti
		m.editing = true
		m.status = ""
		return m, textinput.Blink
	}

	return m, nil
}

func (m configViewModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil
	case "enter":
		spec := m.keys[m.cursor]
		value, err := config.Apply(m.cfg, spec.Name, m.editor.Value())
		if err != nil {
			// Stay in the editor so the value can be corrected.
			m.status = "Error: " + err.Error()
			m.isError = true
			return m, nil
		}
		return m, m.saveConfig(spec.Name, value)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m configViewModel) saveConfig(key, value string) tea.Cmd {
	cfg, save := m.cfg, m.save
	return func() tea.Msg {
		if err := save(cfg); err != nil {
			return configSaveErrorMsg{err: err}
		}
		return configSavedMsg{key: key, value: value}
	}
}

func (m configViewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.SectionHeading(m.width, "Configuration", "Settings applied the next time the showcase starts")

	var footerBindings []components.KeyBinding
	if m.editing {
		footerBindings = []components.KeyBinding{
			{Key: "enter", Desc: "save"},
			{Key: "esc", Desc: "cancel"},
		}
	} else {
		footerBindings = []components.KeyBinding{
			{Key: "j/k", Desc: "navigate"},
			{Key: "e", Desc: "edit"},
			{Key: "q", Desc: "quit"},
		}
	}
	footer := components.Footer(m.width, footerBindings)

	statusBar := components.StatusBar(m.width, m.status, m.isError)

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := 0
	if statusBar != "" {
		statusH = lipgloss.Height(statusBar)
	}
	contentH := max(m.height-headerH-footerH-statusH, 1)

	sections := []string{header, m.renderContent(contentH)}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m configViewModel) renderContent(height int) string {
	labelWidth := 0
	for _, spec := range m.keys {
		labelWidth = max(labelWidth, len(spec.Name))
	}
	labelWidth += 4

	rows := make([]string, 0, len(m.keys)+1)
	for i, spec := range m.keys {
		selected := i == m.cursor

		prefix := "  "
		if selected {
			prefix = styles.AccentText.Render("> ")
		}

		value := spec.Get(m.cfg)
		if value == "" {
			value = "(default)"
		}

		var row string
		switch {
		case selected && m.editing:
			row = prefix + styles.Label.Width(labelWidth).Render(spec.Name) + m.editor.View()
		case selected:
			row = prefix + styles.Label.Width(labelWidth).Render(spec.Name) + styles.Value.Bold(true).Render(value)
		default:
			row = prefix + styles.MutedText.Width(labelWidth).Render(spec.Name) + styles.MutedText.Render(value)
		}
		rows = append(rows, row)

		if selected && !m.editing {
			rows = append(rows, strings.Repeat(" ", 4)+styles.MutedText.Italic(true).Render(spec.Description))
		}
	}

	card := styles.Card.Width(min(m.width-4, 76)).Render(strings.Join(rows, "\n"))

	return lipgloss.Place(
		m.width, height,
		lipgloss.Center, lipgloss.Center,
		card,
	)
}
