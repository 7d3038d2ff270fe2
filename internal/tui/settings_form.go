package tui

import (
	"errors"

	"github.com/charmbracelet/huh"

	"nathanbeddoewebdev/taoquotes/internal/domain"
)

// ErrAborted is returned when the user cancels a form.
var ErrAborted = errors.New("aborted")

// settingsForm holds the values bound to the form fields.
type settingsForm struct {
	theme    domain.ThemeSetting
	fontSize domain.FontSize
	sound    bool
	haptic   bool
}

func newSettingsForm(current domain.AppSettings) *settingsForm {
	return &settingsForm{
		theme:    current.Theme,
		fontSize: current.FontSize,
		sound:    current.SoundEnabled,
		haptic:   current.HapticEnabled,
	}
}

func (f *settingsForm) groups() []*huh.Group {
	return []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[domain.ThemeSetting]().
				Title("Theme").
				Description("auto follows the terminal background").
				Options(
					huh.NewOption("Auto", domain.ThemeAuto),
					huh.NewOption("Light", domain.ThemeLight),
					huh.NewOption("Dark", domain.ThemeDark),
				).
				Value(&f.theme),
			huh.NewSelect[domain.FontSize]().
				Title("Font size").
				Options(
					huh.NewOption("Small", domain.FontSmall),
					huh.NewOption("Medium", domain.FontMedium),
					huh.NewOption("Large", domain.FontLarge),
				).
				Value(&f.fontSize),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Sound").
				Description("Ring the terminal bell when the quote changes").
				Affirmative("On").
				Negative("Off").
				Value(&f.sound),
			huh.NewConfirm().
				Title("Haptic feedback").
				Description("Flash the card border when favorites change").
				Affirmative("On").
				Negative("Off").
				Value(&f.haptic),
		),
	}
}

// patch returns only the fields that differ from current.
func (f *settingsForm) patch(current domain.AppSettings) domain.SettingsPatch {
	var p domain.SettingsPatch
	if f.theme != current.Theme {
		p.Theme = &f.theme
	}
	if f.fontSize != current.FontSize {
		p.FontSize = &f.fontSize
	}
	if f.sound != current.SoundEnabled {
		p.SoundEnabled = &f.sound
	}
	if f.haptic != current.HapticEnabled {
		p.HapticEnabled = &f.haptic
	}
	return p
}

// RunSettingsForm shows an interactive form seeded with current and returns
// a patch holding the fields the user changed.
func RunSettingsForm(current domain.AppSettings, accessible bool) (domain.SettingsPatch, error) {
	f := newSettingsForm(current)
	if err := runForm(accessible, f.groups()...); err != nil {
		return domain.SettingsPatch{}, err
	}
	return f.patch(current), nil
}

// runForm creates and runs a huh.Form, translating ErrUserAborted to ErrAborted.
func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
