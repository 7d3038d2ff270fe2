package theme

import (
	"github.com/charmbracelet/lipgloss"

	"nathanbeddoewebdev/taoquotes/internal/domain"
)

// Metrics is the terminal stand-in for a font size: how wide the quote
// column is and how much air surrounds it.
type Metrics struct {
	TextWidth int
	PadY      int
	PadX      int
	Bold      bool
}

// MetricsFor returns the layout metrics for a font size. Unknown sizes use
// medium.
func MetricsFor(size domain.FontSize) Metrics {
	switch size {
	case domain.FontSmall:
		return Metrics{TextWidth: 64, PadY: 1, PadX: 2}
	case domain.FontLarge:
		return Metrics{TextWidth: 40, PadY: 2, PadX: 4, Bold: true}
	default:
		return Metrics{TextWidth: 52, PadY: 1, PadX: 3}
	}
}

// Styles are the lipgloss styles for one palette and font size.
type Styles struct {
	Palette Palette
	Metrics Metrics

	App         lipgloss.Style
	Quote       lipgloss.Style
	Attribution lipgloss.Style
	Card        lipgloss.Style
	CardFlash   lipgloss.Style
	Title       lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	Selected    lipgloss.Style
	Key         lipgloss.Style
	KeyDesc     lipgloss.Style
	Rule        lipgloss.Style
	Favorite    lipgloss.Style
}

// NewStyles builds the style set for p at the given font size.
func NewStyles(p Palette, size domain.FontSize) Styles {
	m := MetricsFor(size)
	border := lipgloss.RoundedBorder()

	return Styles{
		Palette: p,
		Metrics: m,

		App: lipgloss.NewStyle().
			Background(p.Background).
			Foreground(p.Text),

		Quote: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(m.Bold).
			Width(m.TextWidth).
			Align(lipgloss.Center),

		Attribution: lipgloss.NewStyle().
			Foreground(p.TextSecondary).
			Italic(true).
			Width(m.TextWidth).
			Align(lipgloss.Center),

		Card: lipgloss.NewStyle().
			Border(border).
			BorderForeground(p.Border).
			Background(p.Surface).
			Padding(m.PadY, m.PadX),

		CardFlash: lipgloss.NewStyle().
			Border(border).
			BorderForeground(p.Accent).
			Background(p.SurfaceHighlight).
			Padding(m.PadY, m.PadX),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),

		Muted: lipgloss.NewStyle().
			Foreground(p.TextSecondary),

		Accent: lipgloss.NewStyle().
			Foreground(p.Accent),

		Selected: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.BackgroundSecondary).
			Bold(true),

		Key: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		KeyDesc: lipgloss.NewStyle().
			Foreground(p.TextSecondary),

		Rule: lipgloss.NewStyle().
			Foreground(p.Border),

		Favorite: lipgloss.NewStyle().
			Foreground(p.AccentMuted),
	}
}

// FormatKeyBinding formats a single key binding for a footer.
func (s Styles) FormatKeyBinding(key, desc string) string {
	return s.Key.Render(key) + " " + s.KeyDesc.Render(desc)
}
