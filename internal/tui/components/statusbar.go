package components

import (
	"github.com/charmbracelet/lipgloss"

	"nathanbeddoewebdev/taoquotes/internal/theme"
)

// StatusBar renders a status message line between the content and footer.
func StatusBar(s theme.Styles, width int, message string, isError bool) string {
	if message == "" {
		return ""
	}

	style := s.Muted
	if isError {
		style = s.Accent.Bold(true)
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(style.Render(message))
}
