package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ThemeSetting is the user's theme preference.
type ThemeSetting string

const (
	ThemeLight ThemeSetting = "light"
	ThemeDark  ThemeSetting = "dark"
	ThemeAuto  ThemeSetting = "auto"
)

// FontSize is the user's preferred quote text size.
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// ThemeMode is a concrete, resolved theme.
type ThemeMode string

const (
	ModeLight ThemeMode = "light"
	ModeDark  ThemeMode = "dark"
)

// Appearance is the system appearance signal.
type Appearance string

const (
	AppearanceLight   Appearance = "light"
	AppearanceDark    Appearance = "dark"
	AppearanceUnknown Appearance = "unknown"
)

// AppSettings holds the user's display preferences.
type AppSettings struct {
	Theme         ThemeSetting `json:"theme"         validate:"oneof=light dark auto"`
	FontSize      FontSize     `json:"fontSize"      validate:"oneof=small medium large"`
	SoundEnabled  bool         `json:"soundEnabled"`
	HapticEnabled bool         `json:"hapticEnabled"`
}

// DefaultSettings returns the compiled-in settings used before anything has
// been loaded and for any field missing from storage.
func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:         ThemeAuto,
		FontSize:      FontMedium,
		SoundEnabled:  false,
		HapticEnabled: true,
	}
}

// SettingsPatch is a partial AppSettings. Nil fields are left untouched by
// Merge.
type SettingsPatch struct {
	Theme         *ThemeSetting
	FontSize      *FontSize
	SoundEnabled  *bool
	HapticEnabled *bool
}

// Merge returns s with every non-nil field of p applied.
func (s AppSettings) Merge(p SettingsPatch) AppSettings {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.FontSize != nil {
		s.FontSize = *p.FontSize
	}
	if p.SoundEnabled != nil {
		s.SoundEnabled = *p.SoundEnabled
	}
	if p.HapticEnabled != nil {
		s.HapticEnabled = *p.HapticEnabled
	}
	return s
}

// ParseThemeSetting parses a theme preference, case-insensitively.
func ParseThemeSetting(s string) (ThemeSetting, error) {
	switch v := ThemeSetting(strings.ToLower(strings.TrimSpace(s))); v {
	case ThemeLight, ThemeDark, ThemeAuto:
		return v, nil
	}
	return "", fmt.Errorf("theme %q (want light, dark or auto): %w", s, ErrInvalidSetting)
}

// ParseFontSize parses a font size, case-insensitively.
func ParseFontSize(s string) (FontSize, error) {
	switch v := FontSize(strings.ToLower(strings.TrimSpace(s))); v {
	case FontSmall, FontMedium, FontLarge:
		return v, nil
	}
	return "", fmt.Errorf("font size %q (want small, medium or large): %w", s, ErrInvalidSetting)
}

// ParseAppearance maps a raw signal value onto an Appearance. Anything other
// than "light" or "dark" is AppearanceUnknown.
func ParseAppearance(s string) Appearance {
	switch v := Appearance(strings.ToLower(strings.TrimSpace(s))); v {
	case AppearanceLight, AppearanceDark:
		return v
	}
	return AppearanceUnknown
}

// parseBool accepts the usual strconv forms plus on/off and yes/no.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("boolean %q: %w", s, ErrInvalidSetting)
	}
	return b, nil
}
