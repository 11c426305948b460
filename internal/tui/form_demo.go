package tui

import (
	"strings"

	"caresteward/showcase/internal/contact"
	"caresteward/showcase/internal/tui/components"
	"caresteward/showcase/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	formTitle    = "Interactive Form Demo"
	formSubtitle = "Demonstrates form handling, state management, and user feedback patterns"

	submitLabel     = "Submit Message"
	submittingLabel = "Submitting..."
	sentTitle       = "Message Sent!"
	sentBody        = "Thank you for your message! We'll get back to you soon."
	requiredHint    = "Please fill out this field."
)

// formFocus indexes the focusable controls: the three fields, then the
// submit button.
type formFocus int

const (
	focusName formFocus = iota
	focusEmail
	focusMessage
	focusSubmit
)

// formDemoModel is the contact form section. The flow owns the submission
// state; this model owns the input widgets and mirrors edits into the flow.
type formDemoModel struct {
	flow *contact.Flow
	sub  <-chan struct{}

	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	spinner spinner.Model

	focus   formFocus
	editing bool

	// invalid is the required field that blocked the last submit attempt.
	invalid *contact.Field

	// last is the most recently observed flow snapshot.
	last contact.Snapshot
}

func newFormDemoModel(flow *contact.Flow) formDemoModel {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 80

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120

	message := textarea.New()
	message.Placeholder = "How can we help?"
	message.ShowLineNumbers = false
	message.SetHeight(3)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.BrandLight)

	return formDemoModel{
		flow:    flow,
		sub:     flow.Subscribe(),
		name:    name,
		email:   email,
		message: message,
		spinner: s,
		last:    flow.Snapshot(),
	}
}

// Init starts listening for flow transitions.
func (m formDemoModel) Init() tea.Cmd {
	return waitForChange(m.sub, flowChangedMsg{})
}

// Focus enters edit mode on the first field.
func (m formDemoModel) Focus() (formDemoModel, tea.Cmd) {
	m.editing = true
	m.focus = focusName
	return m, m.applyFocus()
}

// Blur leaves edit mode.
func (m formDemoModel) Blur() formDemoModel {
	m.editing = false
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()
	return m
}

// Editing reports whether keys are routed to the form.
func (m formDemoModel) Editing() bool {
	return m.editing
}

// Update handles flow notifications, spinner ticks and, in edit mode,
// key presses.
func (m formDemoModel) Update(msg tea.Msg) (formDemoModel, tea.Cmd) {
	switch msg := msg.(type) {
	case flowChangedMsg:
		return m.handleFlowChanged()

	case spinner.TickMsg:
		if m.last.State == contact.StateSubmitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleKey(msg)
		}
		return m, nil
	}

	// Cursor blink and other widget-internal messages.
	if m.editing {
		return m.updateFocused(msg)
	}
	return m, nil
}

func (m formDemoModel) handleFlowChanged() (formDemoModel, tea.Cmd) {
	prev := m.last.State
	m.last = m.flow.Snapshot()

	// Back to idle after a confirmation: the flow cleared its fields.
	if prev != contact.StateIdle && m.last.State == contact.StateIdle {
		m.name.SetValue(m.last.Fields.Name)
		m.email.SetValue(m.last.Fields.Email)
		m.message.SetValue(m.last.Fields.Message)
		m.invalid = nil
	}

	return m, waitForChange(m.sub, flowChangedMsg{})
}

func (m formDemoModel) handleKey(msg tea.KeyMsg) (formDemoModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.Blur(), nil
	case "tab":
		m.focus = (m.focus + 1) % (focusSubmit + 1)
		return m, m.applyFocus()
	case "shift+tab":
		m.focus = (m.focus + focusSubmit) % (focusSubmit + 1)
		return m, m.applyFocus()
	case "ctrl+s":
		return m.trySubmit()
	case "enter":
		switch m.focus {
		case focusSubmit:
			return m.trySubmit()
		case focusName, focusEmail:
			m.focus++
			return m, m.applyFocus()
		}
	}

	// Controls are disabled while the flow is busy.
	if m.last.State.Busy() {
		return m, nil
	}

	m, cmd := m.updateFocused(msg)
	if m.invalid != nil && strings.TrimSpace(m.fields().Get(*m.invalid)) != "" {
		m.invalid = nil
	}
	return m, cmd
}

// updateFocused forwards msg to the focused widget and mirrors its value
// into the flow.
func (m formDemoModel) updateFocused(msg tea.Msg) (formDemoModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.name, cmd = m.name.Update(msg)
		m.flow.SetField(contact.FieldName, m.name.Value())
	case focusEmail:
		m.email, cmd = m.email.Update(msg)
		m.flow.SetField(contact.FieldEmail, m.email.Value())
	case focusMessage:
		m.message, cmd = m.message.Update(msg)
		m.flow.SetField(contact.FieldMessage, m.message.Value())
	}
	return m, cmd
}

// trySubmit applies the presentational required check, then hands the
// fields to the flow. The flow ignores the call unless it is idle.
func (m formDemoModel) trySubmit() (formDemoModel, tea.Cmd) {
	if m.last.State.Busy() {
		return m, nil
	}

	fields := m.fields()
	if missing := fields.Missing(); len(missing) > 0 {
		first := missing[0]
		m.invalid = &first
		m.focus = formFocus(first)
		return m, m.applyFocus()
	}

	m.invalid = nil
	if !m.flow.Submit(fields) {
		return m, nil
	}
	m.last = m.flow.Snapshot()
	return m, m.spinner.Tick
}

func (m formDemoModel) fields() contact.Fields {
	return contact.Fields{
		Name:    m.name.Value(),
		Email:   m.email.Value(),
		Message: m.message.Value(),
	}
}

// applyFocus focuses the widget under m.focus and blurs the others.
func (m *formDemoModel) applyFocus() tea.Cmd {
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()

	switch m.focus {
	case focusName:
		return m.name.Focus()
	case focusEmail:
		return m.email.Focus()
	case focusMessage:
		return m.message.Focus()
	}
	return nil
}

// View renders the section at the given width.
func (m formDemoModel) View(width int) string {
	heading := components.SectionHeading(width, formTitle, formSubtitle)

	cardWidth := min(max(width-8, 30), 72)
	inputWidth := cardWidth - 12
	m.name.Width = inputWidth
	m.email.Width = inputWidth
	m.message.SetWidth(inputWidth)

	var body string
	if m.last.State == contact.StateSuccess {
		body = m.renderConfirmation()
	} else {
		body = m.renderForm()
	}

	card := styles.Card
	if m.editing {
		card = styles.CardActive
	}
	box := card.Width(cardWidth).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, box),
	)
}

func (m formDemoModel) renderForm() string {
	rows := []string{
		m.renderField(contact.FieldName, m.name.View()),
		m.renderField(contact.FieldEmail, m.email.View()),
		m.renderField(contact.FieldMessage, m.message.View()),
		m.renderButton(),
	}
	if !m.editing {
		rows = append(rows, styles.MutedText.Render("Press f to fill in the form."))
	}
	return strings.Join(rows, "\n")
}

func (m formDemoModel) renderField(field contact.Field, input string) string {
	label := styles.Label.Render(field.Label()) + styles.ErrorText.Render(" *")

	box := styles.InputBlurred
	switch {
	case m.invalid != nil && *m.invalid == field:
		box = styles.InputInvalid
	case m.editing && m.focus == formFocus(field) && !m.last.State.Busy():
		box = styles.InputFocused
	}

	out := label + "\n" + box.Render(input)
	if m.invalid != nil && *m.invalid == field {
		out += "\n" + styles.ErrorText.Render(requiredHint)
	}
	return out
}

func (m formDemoModel) renderButton() string {
	if m.last.State == contact.StateSubmitting {
		return styles.ButtonDisabled.Render(m.spinner.View() + " " + submittingLabel)
	}
	if m.editing && m.focus == focusSubmit {
		return styles.ButtonFocused.Render(submitLabel)
	}
	return styles.Button.Render(submitLabel)
}

func (m formDemoModel) renderConfirmation() string {
	lines := []string{
		styles.SuccessText.Render("✔ " + sentTitle),
		"",
		styles.Value.Render(sentBody),
	}
	if r := m.last.Receipt; r != nil {
		lines = append(lines, "", styles.MutedText.Render("Reference: "+r.ID))
	}
	return strings.Join(lines, "\n")
}
