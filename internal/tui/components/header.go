// Package components provides render-only building blocks for the
// taoquotes TUI. They are not tea.Models. The main model composes them
// into views using the active theme.Styles.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nathanbeddoewebdev/taoquotes/internal/theme"
)

// Header renders the application header bar.
//
//	┌──────────────────────────────────────────┐
//	│  taoquotes > favorites            dark   │
//	└──────────────────────────────────────────┘
func Header(s theme.Styles, width int, breadcrumb string, right string) string {
	if width < 10 {
		return ""
	}

	left := s.Title.Render("taoquotes")
	if breadcrumb != "" {
		left += s.Muted.Render(" > ") + s.Title.Foreground(s.Palette.Text).Render(breadcrumb)
	}

	if right != "" {
		right = s.Muted.Render(right)
	}

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	innerWidth := width - 4 // account for padding
	gap := max(innerWidth-leftLen-rightLen, 1)

	content := left + strings.Repeat(" ", gap) + right

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(s.Palette.Border).
		Render(content)
}
