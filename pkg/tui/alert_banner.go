package tui

import "github.com/charmbracelet/lipgloss"

const (
	// DefaultAlertMessage is shown when a banner is raised without a message.
	DefaultAlertMessage = "An unexpected error occurred. Please try again later."
	// DefaultAlertVariant is used when a banner is raised without a variant.
	DefaultAlertVariant = "danger"
)

// AlertBanner is a one-line notice rendered above a screen's content.
type AlertBanner struct {
	Message string
	Variant string // "danger", "warning", "info" or "success"
}

// NewAlertBanner fills empty fields with the defaults.
func NewAlertBanner(message, variant string) *AlertBanner {
	if message == "" {
		message = DefaultAlertMessage
	}
	if variant == "" {
		variant = DefaultAlertVariant
	}
	return &AlertBanner{Message: message, Variant: variant}
}

// View renders the banner. A nil banner renders nothing.
func (a *AlertBanner) View(s Styles, width int) string {
	if a == nil {
		return ""
	}
	style := s.Alert.
		Foreground(s.Palette.TextPrimary).
		Background(a.color(s.Palette))
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(a.icon() + " " + a.Message)
}

func (a *AlertBanner) color(p Palette) lipgloss.Color {
	switch a.Variant {
	case "warning":
		return p.Accent
	case "info":
		return p.Secondary
	case "success":
		return p.Success
	default:
		return p.Error
	}
}

func (a *AlertBanner) icon() string {
	switch a.Variant {
	case "warning":
		return "!"
	case "info":
		return "i"
	case "success":
		return "✓"
	default:
		return "✗"
	}
}
