package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SettingKey describes a single user-facing setting.
type SettingKey struct {
	// Name is the CLI-facing key name (e.g. "font-size").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key.
	Get func(s AppSettings) string

	// Parse converts a raw value into a patch touching only this key.
	Parse func(value string) (SettingsPatch, error)
}

// SettingKeys is the authoritative list of user settings exposed by the CLI
// and the settings screens.
var SettingKeys = []SettingKey{
	{
		Name:        "theme",
		Description: "Color theme: light, dark or auto (follow the terminal)",
		Get:         func(s AppSettings) string { return string(s.Theme) },
		Parse: func(v string) (SettingsPatch, error) {
			t, err := ParseThemeSetting(v)
			if err != nil {
				return SettingsPatch{}, err
			}
			return SettingsPatch{Theme: &t}, nil
		},
	},
	{
		Name:        "font-size",
		Description: "Quote text size: small, medium or large",
		Get:         func(s AppSettings) string { return string(s.FontSize) },
		Parse: func(v string) (SettingsPatch, error) {
			f, err := ParseFontSize(v)
			if err != nil {
				return SettingsPatch{}, err
			}
			return SettingsPatch{FontSize: &f}, nil
		},
	},
	{
		Name:        "sound",
		Description: "Ring the terminal bell when the quote changes",
		Get:         func(s AppSettings) string { return strconv.FormatBool(s.SoundEnabled) },
		Parse: func(v string) (SettingsPatch, error) {
			b, err := parseBool(v)
			if err != nil {
				return SettingsPatch{}, err
			}
			return SettingsPatch{SoundEnabled: &b}, nil
		},
	},
	{
		Name:        "haptic",
		Description: "Flash the card border on favorite changes",
		Get:         func(s AppSettings) string { return strconv.FormatBool(s.HapticEnabled) },
		Parse: func(v string) (SettingsPatch, error) {
			b, err := parseBool(v)
			if err != nil {
				return SettingsPatch{}, err
			}
			return SettingsPatch{HapticEnabled: &b}, nil
		},
	},
}

// LookupSetting returns the SettingKey for name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func LookupSetting(name string) *SettingKey {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range SettingKeys {
		if SettingKeys[i].Name == normalized {
			return &SettingKeys[i]
		}
	}
	return nil
}

// SettingNames returns the names of all settings keys.
func SettingNames() []string {
	names := make([]string, len(SettingKeys))
	for i, k := range SettingKeys {
		names[i] = k.Name
	}
	return names
}

// SettingsHelp builds a formatted block listing all settings keys, suitable
// for inclusion in Cobra Long help text.
func SettingsHelp() string {
	maxLen := 0
	for _, k := range SettingKeys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available settings:\n")
	for _, k := range SettingKeys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
