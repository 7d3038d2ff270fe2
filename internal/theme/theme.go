// Package theme maps the user's theme preference and the system appearance
// onto a concrete palette, and builds the lipgloss styles the TUI renders
// with. Everything here is a pure function of its inputs.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"nathanbeddoewebdev/taoquotes/internal/domain"
)

// ResolveTheme picks the concrete theme. An explicit light or dark setting
// is used as is. For auto, only an appearance of exactly light yields
// light; dark, unknown and anything unexpected yield dark.
func ResolveTheme(setting domain.ThemeSetting, a domain.Appearance) domain.ThemeMode {
	switch setting {
	case domain.ThemeLight:
		return domain.ModeLight
	case domain.ThemeDark:
		return domain.ModeDark
	}
	if a == domain.AppearanceLight {
		return domain.ModeLight
	}
	return domain.ModeDark
}

// Palette is the set of named colors for one theme.
type Palette struct {
	Background          lipgloss.Color
	BackgroundSecondary lipgloss.Color
	Text                lipgloss.Color
	TextSecondary       lipgloss.Color
	Accent              lipgloss.Color
	AccentMuted         lipgloss.Color
	Surface             lipgloss.Color
	SurfaceHighlight    lipgloss.Color
	Border              lipgloss.Color
	Shadow              lipgloss.Color
}

// Light and Dark are the two compiled-in palettes. Shadow is the opaque
// blend of the translucent black used on paper-like backgrounds.
var (
	Light = Palette{
		Background:          lipgloss.Color("#F5F1EB"),
		BackgroundSecondary: lipgloss.Color("#EAE4DA"),
		Text:                lipgloss.Color("#2C2C2C"),
		TextSecondary:       lipgloss.Color("#6B6B6B"),
		Accent:              lipgloss.Color("#5C7A6B"),
		AccentMuted:         lipgloss.Color("#8FA398"),
		Surface:             lipgloss.Color("#FFFFFF"),
		SurfaceHighlight:    lipgloss.Color("#FAFAF8"),
		Border:              lipgloss.Color("#D4CFC5"),
		Shadow:              lipgloss.Color("#E1DED8"),
	}

	Dark = Palette{
		Background:          lipgloss.Color("#1A1A1A"),
		BackgroundSecondary: lipgloss.Color("#242424"),
		Text:                lipgloss.Color("#E8E4DE"),
		TextSecondary:       lipgloss.Color("#9A9590"),
		Accent:              lipgloss.Color("#7A9A8B"),
		AccentMuted:         lipgloss.Color("#5C7A6B"),
		Surface:             lipgloss.Color("#2A2A2A"),
		SurfaceHighlight:    lipgloss.Color("#333333"),
		Border:              lipgloss.Color("#3A3A3A"),
		Shadow:              lipgloss.Color("#101010"),
	}
)

// PaletteFor returns the palette for mode. Any mode other than light gets
// the dark palette.
func PaletteFor(mode domain.ThemeMode) Palette {
	if mode == domain.ModeLight {
		return Light
	}
	return Dark
}
