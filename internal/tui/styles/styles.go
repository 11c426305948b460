package styles

import (
	"caresteward/showcase/internal/monitor"
	"caresteward/showcase/internal/page"

	"github.com/charmbracelet/lipgloss"
)

// --- Typography ---

var (
	// Title is the main header text style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Subtitle is used for secondary headings.
	Subtitle = lipgloss.NewStyle().
			Foreground(Gray)

	// Label is used for field names and card headings.
	Label = lipgloss.NewStyle().
		Foreground(Gray).
		Bold(true)

	// Value is used for field values.
	Value = lipgloss.NewStyle().
		Foreground(White)

	// BigValue is used for headline numbers on cards.
	BigValue = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	// MutedText is for help text, hints, and less important info.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// AccentText is for highlighted interactive elements.
	AccentText = lipgloss.NewStyle().
			Foreground(BrandLight)

	// BrandText renders the product name.
	BrandText = lipgloss.NewStyle().
			Foreground(BrandLight).
			Bold(true)

	// ErrorText is for error messages.
	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// SuccessText is for success messages.
	SuccessText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// WarningText is for warning messages.
	WarningText = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true)
)

// --- Metric status and trend ---

// MetricStatusStyle returns the badge style for a metric status.
func MetricStatusStyle(status monitor.Status) lipgloss.Style {
	switch status {
	case monitor.StatusHealthy:
		return lipgloss.NewStyle().Foreground(Green).Bold(true)
	case monitor.StatusWarning:
		return lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	case monitor.StatusCritical:
		return lipgloss.NewStyle().Foreground(Red).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(Gray)
	}
}

// MetricStatusColor returns the progress-bar colour for a metric status.
func MetricStatusColor(status monitor.Status) lipgloss.Color {
	switch status {
	case monitor.StatusHealthy:
		return Green
	case monitor.StatusWarning:
		return Yellow
	default:
		return Red
	}
}

// TrendStyle colours a trend arrow: up is good, down is bad.
func TrendStyle(trend monitor.Trend) lipgloss.Style {
	switch trend {
	case monitor.TrendUp:
		return lipgloss.NewStyle().Foreground(Green)
	case monitor.TrendDown:
		return lipgloss.NewStyle().Foreground(Red)
	default:
		return lipgloss.NewStyle().Foreground(Gray)
	}
}

// StatusIndicator returns a small dot + status text with appropriate color.
func StatusIndicator(status monitor.Status) string {
	style := MetricStatusStyle(status)
	return style.Render("●") + " " + style.Render(string(status))
}

// ToneStyle colours the icon of a problem-solution step.
func ToneStyle(tone page.Tone) lipgloss.Style {
	switch tone {
	case page.ToneChallenge:
		return lipgloss.NewStyle().Foreground(Red).Bold(true)
	case page.ToneSolution:
		return lipgloss.NewStyle().Foreground(Green).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(BrandLight).Bold(true)
	}
}

// --- Layout components ---

var (
	// Border is the default subtle border style.
	Border = lipgloss.RoundedBorder()

	// Card is a rounded-border panel for content sections.
	Card = lipgloss.NewStyle().
		Border(Border).
		BorderForeground(DimGray).
		Padding(1, 2)

	// CardActive is a card with an accent border for focused elements.
	CardActive = lipgloss.NewStyle().
			Border(Border).
			BorderForeground(BrandLight).
			Padding(1, 2)

	// Tile is a compact card used inside grids.
	Tile = lipgloss.NewStyle().
		Border(Border).
		BorderForeground(DimGray).
		Padding(0, 1)
)

// --- Buttons and tabs ---

var (
	// Button is an idle, focusable button.
	Button = lipgloss.NewStyle().
		Foreground(White).
		Background(BrandDark).
		Padding(0, 2)

	// ButtonFocused is a button with keyboard focus.
	ButtonFocused = lipgloss.NewStyle().
			Foreground(SurfaceBg).
			Background(BrandLight).
			Bold(true).
			Padding(0, 2)

	// ButtonDisabled is a button that cannot be pressed.
	ButtonDisabled = lipgloss.NewStyle().
			Foreground(Gray).
			Background(Dark).
			Padding(0, 2)

	// Tab is an unselected segment of a segmented control.
	Tab = lipgloss.NewStyle().
		Foreground(Gray).
		Padding(0, 2)

	// TabSelected is the selected segment.
	TabSelected = lipgloss.NewStyle().
			Foreground(White).
			Background(DimGray).
			Bold(true).
			Padding(0, 2)
)

// --- Key binding hint styles ---

var (
	// KeyStyle is used for key labels in the footer (e.g. "q").
	KeyStyle = lipgloss.NewStyle().
			Foreground(BrandLight).
			Bold(true)

	// KeyDescStyle is used for key descriptions in the footer (e.g. "quit").
	KeyDescStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// KeySepStyle is used for separators between key bindings.
	KeySepStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// FormatKeyBinding formats a single key binding for the footer.
func FormatKeyBinding(key, desc string) string {
	return KeyStyle.Render(key) + " " + KeyDescStyle.Render(desc)
}

// --- Input field styles ---

var (
	// InputFocused is the style for focused input fields.
	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BrandLight).
			Padding(0, 1)

	// InputBlurred is the style for unfocused input fields.
	InputBlurred = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	// InputInvalid marks a required field left blank.
	InputInvalid = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Padding(0, 1)
)

// --- Layout helpers ---

// CenterText centers text horizontally within the given width.
func CenterText(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(text)
}
