package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"nathanbeddoewebdev/taoquotes/internal/theme"
)

// Footer renders the key binding help bar at the bottom of the screen.
// Disabled bindings are skipped.
func Footer(s theme.Styles, width int, bindings []key.Binding) string {
	if width < 10 || len(bindings) == 0 {
		return ""
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, s.FormatKeyBinding(h.Key, h.Desc))
	}

	content := strings.Join(parts, s.Rule.Render("  "))

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(s.Palette.Border).
		Render(content)
}
