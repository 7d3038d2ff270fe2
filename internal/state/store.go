// Package state is the single authority for taoquotes' mutable application
// state: the current quote, favorites, display settings, the resolved theme,
// and whether the store has finished loading.
//
// Every mutation is applied to memory synchronously and is visible to
// readers as soon as the call returns. Favorites and settings are then
// written to the key-value store on a background goroutine. Persistence is
// best-effort: read and write failures are logged and otherwise ignored.
// They never reach the caller and never roll back memory. The in-memory
// state is the truth for the running process. Storage only seeds the next
// launch.
package state

import (
	"io"
	"log/slog"
	"slices"
	"sync"

	"nathanbeddoewebdev/taoquotes/internal/appearance"
	"nathanbeddoewebdev/taoquotes/internal/domain"
	"nathanbeddoewebdev/taoquotes/internal/kv"
	"nathanbeddoewebdev/taoquotes/internal/theme"
)

// Storage keys. Each holds a JSON document.
const (
	FavoritesKey = "favorites"
	SettingsKey  = "settings"
)

// Store holds application state. Create one per process with New, call
// Initialize once at startup, and pass it to every consumer.
//
// The appearance Source is consulted while the store's lock is held, so it
// must not call back into the Store.
type Store struct {
	kv         kv.Store
	appearance appearance.Source
	logger     *slog.Logger

	mu           sync.RWMutex
	currentQuote domain.Quote
	hasCurrent   bool
	favorites    []domain.Quote // replaced, never mutated in place
	settings     domain.AppSettings
	resolved     domain.ThemeMode
	initialized  bool

	persister

	listenersMu  sync.Mutex
	listeners    map[int]func()
	nextListener int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger persistence failures are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns an uninitialized store over the given key-value backend and
// appearance signal. A nil source behaves as an unknown appearance.
func New(store kv.Store, source appearance.Source, opts ...Option) *Store {
	if source == nil {
		source = appearance.Static(domain.AppearanceUnknown)
	}
	s := &Store{
		kv:         store,
		appearance: source,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		settings:   domain.DefaultSettings(),
		resolved:   domain.ModeDark,
		listeners:  make(map[int]func()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.persister.init(store, s.logger)
	return s
}

// --- Readers ---

// CurrentQuote returns the quote on display. The boolean is false until
// SetCurrentQuote has been called.
func (s *Store) CurrentQuote() (domain.Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentQuote, s.hasCurrent
}

// Favorites returns a copy of the favorites in insertion order.
func (s *Store) Favorites() []domain.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.favorites)
}

// Settings returns the current settings.
func (s *Store) Settings() domain.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// ResolvedTheme returns the theme computed at the last recomputation.
func (s *Store) ResolvedTheme() domain.ThemeMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolved
}

// IsInitialized reports whether Initialize has completed at least once.
func (s *Store) IsInitialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// IsFavorite reports whether a favorite with the given ID exists.
func (s *Store) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexOf(s.favorites, id) >= 0
}

// --- Mutations ---

// SetCurrentQuote replaces the current quote. The quote is not checked
// against the catalog and is not persisted.
func (s *Store) SetCurrentQuote(q domain.Quote) {
	s.mu.Lock()
	s.currentQuote = q
	s.hasCurrent = true
	s.mu.Unlock()

	s.notify()
}

// AddFavorite appends q unless a favorite with the same ID already exists,
// in which case it does nothing.
func (s *Store) AddFavorite(q domain.Quote) {
	s.mu.Lock()
	if indexOf(s.favorites, q.ID) >= 0 {
		s.mu.Unlock()
		return
	}
	next := make([]domain.Quote, len(s.favorites), len(s.favorites)+1)
	copy(next, s.favorites)
	s.favorites = append(next, q)
	w := s.prepare(FavoritesKey, s.favorites)
	s.mu.Unlock()

	s.notify()
	s.dispatch(w)
}

// RemoveFavorite removes the favorite with the given ID if present. The
// collection is written back either way.
func (s *Store) RemoveFavorite(id string) {
	s.mu.Lock()
	next := make([]domain.Quote, 0, len(s.favorites))
	for _, f := range s.favorites {
		if f.ID != id {
			next = append(next, f)
		}
	}
	s.favorites = next
	w := s.prepare(FavoritesKey, s.favorites)
	s.mu.Unlock()

	s.notify()
	s.dispatch(w)
}

// UpdateSettings merges p into the current settings. When p sets the theme,
// the resolved theme is recomputed before UpdateSettings returns.
func (s *Store) UpdateSettings(p domain.SettingsPatch) {
	s.mu.Lock()
	s.settings = s.settings.Merge(p)
	if p.Theme != nil {
		s.resolveLocked()
	}
	w := s.prepare(SettingsKey, s.settings)
	s.mu.Unlock()

	s.notify()
	s.dispatch(w)
}

// UpdateResolvedTheme recomputes the resolved theme from the theme setting
// and, when that setting is auto, the current system appearance.
func (s *Store) UpdateResolvedTheme() {
	s.mu.Lock()
	s.resolveLocked()
	s.mu.Unlock()

	s.notify()
}

// HandleAppearanceChange is the callback for system appearance changes. It
// only recomputes when the theme follows the system.
func (s *Store) HandleAppearanceChange(domain.Appearance) {
	if s.Settings().Theme != domain.ThemeAuto {
		return
	}
	s.UpdateResolvedTheme()
}

func (s *Store) resolveLocked() {
	a := domain.AppearanceUnknown
	if s.settings.Theme == domain.ThemeAuto {
		a = s.appearance.Appearance()
	}
	s.resolved = theme.ResolveTheme(s.settings.Theme, a)
}

// --- Change notification ---

// Subscribe registers fn to run after every in-memory change. fn runs on
// the mutating goroutine, outside the store's lock. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) notify() {
	s.listenersMu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func indexOf(quotes []domain.Quote, id string) int {
	return slices.IndexFunc(quotes, func(q domain.Quote) bool { return q.ID == id })
}
