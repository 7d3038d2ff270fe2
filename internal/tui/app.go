// Package tui is the full-screen taoquotes interface: one quote at a time,
// with a favorites list and a settings panel layered over it.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"nathanbeddoewebdev/taoquotes/internal/catalog"
	"nathanbeddoewebdev/taoquotes/internal/domain"
	"nathanbeddoewebdev/taoquotes/internal/state"
	"nathanbeddoewebdev/taoquotes/internal/theme"
)

// flashDuration is how long the card border stays highlighted after a
// keypress when haptic feedback is on.
const flashDuration = 180 * time.Millisecond

// hintDuration is how long the startup hint stays up if no key is pressed.
const hintDuration = 8 * time.Second

// startupHint is shown in the status bar until the first keypress.
const startupHint = "Press space for new wisdom · f to save favorites"

type screen int

const (
	screenQuote screen = iota
	screenFavorites
	screenSettings
)

// --- Messages ---

// stateChangedMsg reports that the store changed outside Update, e.g. after
// a system appearance change.
type stateChangedMsg struct{}

type flashDoneMsg struct{}

type hintDoneMsg struct{}

// --- Model ---

// Model is the root Bubble Tea model.
type Model struct {
	store   *state.Store
	catalog *catalog.Catalog
	keys    keyMap

	// changes is fed by a store subscription and drained by waitForChange.
	changes <-chan struct{}

	// bell receives BEL when sound is enabled.
	bell io.Writer

	screen    screen
	favCursor int
	setCursor int

	flash bool
	hint  bool

	width  int
	height int

	status  string
	isError bool
}

// Option configures a Model.
type Option func(*Model)

// WithBell sets where the terminal bell is written. Defaults to stderr.
func WithBell(w io.Writer) Option {
	return func(m *Model) { m.bell = w }
}

// WithChanges sets the channel that wakes the model when the store changes
// behind its back.
func WithChanges(ch <-chan struct{}) Option {
	return func(m *Model) { m.changes = ch }
}

// New returns the root model over an initialized store.
func New(store *state.Store, cat *catalog.Catalog, opts ...Option) Model {
	m := Model{
		store:   store,
		catalog: cat,
		keys:    defaultKeyMap(),
		bell:    os.Stderr,
		hint:    true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Run starts the TUI on the alternate screen and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, store *state.Store, cat *catalog.Catalog, opts ...Option) error {
	changes := make(chan struct{}, 1)
	unsubscribe := store.Subscribe(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	m := New(store, cat, append([]Option{WithChanges(changes)}, opts...)...)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	if _, ok := m.store.CurrentQuote(); !ok {
		m.store.SetCurrentQuote(m.catalog.PickRandom(""))
	}
	return tea.Batch(
		m.waitForChange(),
		tea.Tick(hintDuration, func(time.Time) tea.Msg { return hintDoneMsg{} }),
	)
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateChangedMsg:
		m.clampCursors()
		return m, m.waitForChange()

	case flashDoneMsg:
		m.flash = false
		return m, nil

	case hintDoneMsg:
		m.hint = false
		return m, nil

	case tea.KeyMsg:
		m.hint = false
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenFavorites:
		return m.handleFavoritesKey(msg)
	case screenSettings:
		return m.handleSettingsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m, m.nextQuote()

	case key.Matches(msg, m.keys.Favorite):
		return m.saveFavorite()

	case key.Matches(msg, m.keys.Favorites):
		m.screen = screenFavorites
		m.favCursor = 0
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		m.screen = screenSettings
		m.setCursor = 0
		m.status = ""
		return m, nil
	}

	return m, nil
}

// nextQuote shows a random quote other than the current one.
func (m *Model) nextQuote() tea.Cmd {
	current, _ := m.store.CurrentQuote()
	m.store.SetCurrentQuote(m.catalog.PickRandom(current.ID))
	m.status = ""
	return tea.Batch(m.ring(), m.pulse())
}

// saveFavorite adds the current quote to favorites. Removal lives in the
// favorites list, so pressing f twice never drops a saved quote.
func (m Model) saveFavorite() (tea.Model, tea.Cmd) {
	q, ok := m.store.CurrentQuote()
	if !ok {
		return m, nil
	}

	if m.store.IsFavorite(q.ID) {
		m.status = "Already in your collection"
	} else {
		m.store.AddFavorite(q)
		m.status = "Added to favorites"
	}
	m.isError = false

	return m, m.pulse()
}

// ring sounds the terminal bell when sound is enabled.
func (m Model) ring() tea.Cmd {
	if !m.store.Settings().SoundEnabled || m.bell == nil {
		return nil
	}
	w := m.bell
	return func() tea.Msg {
		_, _ = io.WriteString(w, "\a")
		return nil
	}
}

// pulse flashes the card border when haptic feedback is enabled.
func (m *Model) pulse() tea.Cmd {
	if !m.store.Settings().HapticEnabled {
		return nil
	}
	m.flash = true
	return tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashDoneMsg{} })
}

func (m *Model) clampCursors() {
	if n := len(m.store.Favorites()); m.favCursor >= n {
		m.favCursor = max(n-1, 0)
	}
}

// styles builds the styles for the store's current theme and font size.
func (m Model) styles() theme.Styles {
	s := m.store.Settings()
	return theme.NewStyles(theme.PaletteFor(m.store.ResolvedTheme()), s.FontSize)
}

// currentQuote returns the quote on display, if any.
func (m Model) currentQuote() (domain.Quote, bool) {
	return m.store.CurrentQuote()
}
