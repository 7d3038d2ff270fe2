package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nathanbeddoewebdev/taoquotes/internal/domain"
	"nathanbeddoewebdev/taoquotes/internal/theme"
)

// settingChoices lists, per setting key, the values the panel cycles through.
var settingChoices = map[string][]string{
	"theme":     {string(domain.ThemeAuto), string(domain.ThemeLight), string(domain.ThemeDark)},
	"font-size": {string(domain.FontSmall), string(domain.FontMedium), string(domain.FontLarge)},
	"sound":     {"false", "true"},
	"haptic":    {"false", "true"},
}

var settingLabels = map[string]string{
	"theme":     "Theme",
	"font-size": "Font size",
	"sound":     "Sound",
	"haptic":    "Haptic feedback",
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Settings):
		m.screen = screenQuote
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.setCursor > 0 {
			m.setCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.setCursor < len(domain.SettingKeys)-1 {
			m.setCursor++
		}

	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Select):
		m.cycleSetting(1)

	case key.Matches(msg, m.keys.Left):
		m.cycleSetting(-1)
	}

	return m, nil
}

// cycleSetting moves the selected setting to its next (dir > 0) or
// previous choice, wrapping around.
func (m *Model) cycleSetting(dir int) {
	spec := domain.SettingKeys[m.setCursor]
	choices := settingChoices[spec.Name]
	if len(choices) == 0 {
		return
	}

	i := slices.Index(choices, spec.Get(m.store.Settings()))
	next := ((i+dir)%len(choices) + len(choices)) % len(choices)

	patch, err := spec.Parse(choices[next])
	if err != nil {
		m.status = err.Error()
		m.isError = true
		return
	}
	m.store.UpdateSettings(patch)
	m.status = ""
}

func (m Model) settingsBindings() []key.Binding {
	return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Back}
}

func displayValue(v string) string {
	switch v {
	case "true":
		return "on"
	case "false":
		return "off"
	}
	return v
}

func (m Model) renderSettings(s theme.Styles, height int) string {
	title := s.Title.Render("Settings")
	current := m.store.Settings()

	labelWidth := 18
	rows := make([]string, 0, len(domain.SettingKeys)+1)
	for i, spec := range domain.SettingKeys {
		label := settingLabels[spec.Name]
		value := displayValue(spec.Get(current))

		if i == m.setCursor {
			rows = append(rows,
				s.Accent.Render("> ")+
					s.Title.Foreground(s.Palette.Text).Width(labelWidth).Render(label)+
					s.Accent.Render("‹ ")+s.Selected.Render(value)+s.Accent.Render(" ›"),
				strings.Repeat(" ", 4)+s.Muted.Italic(true).Render(spec.Description),
			)
			continue
		}
		rows = append(rows, "  "+s.Muted.Width(labelWidth).Render(label)+s.Muted.Render(value))
	}

	resolved := s.Muted.Render("Showing the " + string(m.store.ResolvedTheme()) + " palette")
	rows = append(rows, "", resolved)

	card := s.Card.Width(60).Render(strings.Join(rows, "\n"))
	combined := lipgloss.JoinVertical(lipgloss.Center, title, "", card)

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, combined,
		lipgloss.WithWhitespaceBackground(s.Palette.Background))
}
