package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"nathanbeddoewebdev/taoquotes/internal/theme"
	"nathanbeddoewebdev/taoquotes/internal/tui/components"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	s := m.styles()

	breadcrumb := ""
	var bindings []key.Binding
	switch m.screen {
	case screenFavorites:
		breadcrumb = "favorites"
		bindings = m.favoritesBindings()
	case screenSettings:
		breadcrumb = "settings"
		bindings = m.settingsBindings()
	default:
		bindings = []key.Binding{m.keys.Next, m.keys.Favorite, m.keys.Favorites, m.keys.Settings, m.keys.Quit}
	}

	header := components.Header(s, m.width, breadcrumb, string(m.store.ResolvedTheme()))
	footer := components.Footer(s, m.width, bindings)
	status := m.status
	if status == "" && m.hint && m.screen == screenQuote {
		status = startupHint
	}
	statusBar := components.StatusBar(s, m.width, status, m.isError)

	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer)-lipgloss.Height(statusBar), 1)

	var content string
	switch m.screen {
	case screenFavorites:
		content = m.renderFavorites(s, contentH)
	case screenSettings:
		content = m.renderSettings(s, contentH)
	default:
		content = m.renderQuote(s, contentH)
	}

	sections := []string{header, content}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return s.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderQuote(s theme.Styles, height int) string {
	q, ok := m.currentQuote()
	if !ok {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			s.Muted.Render("No quote to show."),
			lipgloss.WithWhitespaceBackground(s.Palette.Background))
	}

	quote := s.Quote
	attribution := s.Attribution
	if w := m.width - 2*s.Metrics.PadX - 6; w < s.Metrics.TextWidth {
		quote = quote.Width(max(w, 10))
		attribution = attribution.Width(max(w, 10))
	}

	mark := s.Muted.Render("♡")
	if m.store.IsFavorite(q.ID) {
		mark = s.Favorite.Render("♥")
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		quote.Render("“"+q.Text+"”"),
		"",
		attribution.Render("— "+q.Attribution()),
		"",
		mark,
	)

	card := s.Card
	if m.flash {
		card = s.CardFlash
	}

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, card.Render(body),
		lipgloss.WithWhitespaceBackground(s.Palette.Background))
}
