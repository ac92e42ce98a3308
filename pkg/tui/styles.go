package tui

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a theme is built from.
type Palette struct {
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Success       lipgloss.Color
	Error         lipgloss.Color
	Muted         lipgloss.Color
	BgDark        lipgloss.Color
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
}

var (
	// Strawberry & Pistachio on slate
	darkPalette = Palette{
		Primary:       lipgloss.Color("#F472B6"), // Pink 400
		Secondary:     lipgloss.Color("#34D399"), // Emerald 400
		Accent:        lipgloss.Color("#F59E0B"), // Amber 500
		Success:       lipgloss.Color("#10B981"), // Emerald 500
		Error:         lipgloss.Color("#EF4444"), // Red 500
		Muted:         lipgloss.Color("#64748B"), // Slate 500
		BgDark:        lipgloss.Color("#1E293B"), // Slate 800
		TextPrimary:   lipgloss.Color("#F8FAFC"), // Slate 50
		TextSecondary: lipgloss.Color("#94A3B8"), // Slate 400
	}

	lightPalette = Palette{
		Primary:       lipgloss.Color("#DB2777"), // Pink 600
		Secondary:     lipgloss.Color("#059669"), // Emerald 600
		Accent:        lipgloss.Color("#D97706"), // Amber 600
		Success:       lipgloss.Color("#047857"), // Emerald 700
		Error:         lipgloss.Color("#DC2626"), // Red 600
		Muted:         lipgloss.Color("#94A3B8"), // Slate 400
		BgDark:        lipgloss.Color("#E2E8F0"), // Slate 200
		TextPrimary:   lipgloss.Color("#0F172A"), // Slate 900
		TextSecondary: lipgloss.Color("#475569"), // Slate 600
	}
)

// Styles holds every style the screens render with.
type Styles struct {
	Palette Palette

	Header     lipgloss.Style
	StepBadge  lipgloss.Style
	Title      lipgloss.Style
	Section    lipgloss.Style
	Item       lipgloss.Style
	Cursor     lipgloss.Style
	Invalid    lipgloss.Style
	Subtotal   lipgloss.Style
	GrandTotal lipgloss.Style
	Muted      lipgloss.Style
	Help       lipgloss.Style

	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style

	Popover lipgloss.Style

	Dialog        lipgloss.Style
	DialogTitle   lipgloss.Style
	DialogMessage lipgloss.Style
	DialogKeys    lipgloss.Style

	Alert lipgloss.Style
}

// NewStyles builds the styles for "dark" or "light"; anything else is dark.
func NewStyles(theme string) Styles {
	p := darkPalette
	if theme == "light" {
		p = lightPalette
	}

	return Styles{
		Palette: p,

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.TextPrimary).
			Padding(0, 1),

		StepBadge: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.BgDark).
			Background(p.Primary).
			Padding(0, 1).
			MarginRight(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),

		Item: lipgloss.NewStyle().
			Foreground(p.TextPrimary),

		Cursor: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		Invalid: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		Subtotal: lipgloss.NewStyle().
			Foreground(p.TextSecondary),

		GrandTotal: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),

		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.BgDark).
			Background(p.Primary).
			Padding(0, 2),

		ButtonDisabled: lipgloss.NewStyle().
			Foreground(p.TextSecondary).
			Background(p.BgDark).
			Padding(0, 2),

		Popover: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Secondary).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Background(p.BgDark).
			Padding(1, 2),

		DialogTitle: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true).
			MarginBottom(1),

		DialogMessage: lipgloss.NewStyle().
			Foreground(p.TextPrimary),

		DialogKeys: lipgloss.NewStyle().
			Foreground(p.TextSecondary).
			MarginTop(1),

		Alert: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1),
	}
}
