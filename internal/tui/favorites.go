package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"nathanbeddoewebdev/taoquotes/internal/theme"
)

func (m Model) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	favorites := m.store.Favorites()

	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Favorites):
		m.screen = screenQuote
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.favCursor > 0 {
			m.favCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.favCursor < len(favorites)-1 {
			m.favCursor++
		}

	case key.Matches(msg, m.keys.Remove):
		if len(favorites) == 0 {
			return m, nil
		}
		m.store.RemoveFavorite(favorites[m.favCursor].ID)
		m.clampCursors()
		m.status = "Removed from favorites"
		m.isError = false
		return m, m.pulse()

	case key.Matches(msg, m.keys.Select):
		if len(favorites) == 0 {
			return m, nil
		}
		m.store.SetCurrentQuote(favorites[m.favCursor])
		m.screen = screenQuote
		m.status = ""
		return m, m.ring()
	}

	return m, nil
}

func (m Model) favoritesBindings() []key.Binding {
	return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Remove, m.keys.Back}
}

func (m Model) renderFavorites(s theme.Styles, height int) string {
	favorites := m.store.Favorites()
	title := s.Title.Render("Favorites")

	if len(favorites) == 0 {
		combined := lipgloss.JoinVertical(lipgloss.Center,
			title,
			"",
			s.Muted.Render("No favorites yet. Press f on a quote to keep it."),
		)
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, combined,
			lipgloss.WithWhitespaceBackground(s.Palette.Background))
	}

	rowWidth := min(max(m.width-12, 20), 72)

	// Keep the cursor in view when the list is taller than the screen.
	visible := max(height-6, 1)
	start := 0
	if m.favCursor >= visible {
		start = m.favCursor - visible + 1
	}
	end := min(start+visible, len(favorites))

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		q := favorites[i]
		line := ansi.Truncate(q.Text, rowWidth-4, "…")
		source := ansi.Truncate(q.Attribution(), rowWidth-6, "…")

		if i == m.favCursor {
			rows = append(rows,
				s.Accent.Render("> ")+s.Selected.Render(line),
				"    "+s.Muted.Render(source),
			)
			continue
		}
		rows = append(rows, "  "+s.Muted.Render(line))
	}

	card := s.Card.Width(rowWidth).Render(strings.Join(rows, "\n"))
	combined := lipgloss.JoinVertical(lipgloss.Center, title, "", card)

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, combined,
		lipgloss.WithWhitespaceBackground(s.Palette.Background))
}
