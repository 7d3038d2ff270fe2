package state

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"nathanbeddoewebdev/taoquotes/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Initialize loads favorites and settings from storage concurrently. Once
// both loads have finished it recomputes the resolved theme and marks the
// store ready. A load that fails or finds malformed data is logged and
// leaves that part of the state at its default.
//
// Initialize may be called again. Each call re-reads storage and overwrites
// memory with what it finds.
func (s *Store) Initialize(ctx context.Context) {
	var (
		favorites   []domain.Quote
		favoritesOK bool
		settings    domain.AppSettings
		settingsOK  bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		favorites, favoritesOK = s.loadFavorites(gctx)
		return nil
	})
	g.Go(func() error {
		settings, settingsOK = s.loadSettings(gctx)
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	if favoritesOK {
		s.favorites = favorites
	}
	if settingsOK {
		s.settings = settings
	}
	s.resolveLocked()
	s.initialized = true
	s.mu.Unlock()

	s.logger.Debug("state initialized",
		"favorites", len(favorites),
		"favorites_loaded", favoritesOK,
		"settings_loaded", settingsOK,
	)
	s.notify()
}

func (s *Store) loadFavorites(ctx context.Context) ([]domain.Quote, bool) {
	raw, ok := s.read(ctx, FavoritesKey)
	if !ok {
		return nil, false
	}

	var stored []domain.Quote
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Warn("ignoring malformed favorites", "error", err)
		return nil, false
	}

	// Storage written by an older build, or by hand, may repeat an ID.
	// Keep the first so the no-duplicates invariant holds from load on.
	favorites := make([]domain.Quote, 0, len(stored))
	for _, q := range stored {
		if indexOf(favorites, q.ID) < 0 {
			favorites = append(favorites, q)
		}
	}
	return favorites, true
}

func (s *Store) loadSettings(ctx context.Context) (domain.AppSettings, bool) {
	raw, ok := s.read(ctx, SettingsKey)
	if !ok {
		return domain.AppSettings{}, false
	}

	// Start from defaults so missing fields keep them. Unknown fields are
	// ignored by encoding/json.
	settings := domain.DefaultSettings()
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.logger.Warn("ignoring malformed settings", "error", err)
		return domain.AppSettings{}, false
	}

	return s.sanitizeSettings(settings), true
}

// sanitizeSettings resets any field holding a value outside its allowed
// set to its default, leaving valid fields alone.
func (s *Store) sanitizeSettings(settings domain.AppSettings) domain.AppSettings {
	var verrs validator.ValidationErrors
	if err := validate.Struct(settings); !errors.As(err, &verrs) {
		return settings
	}

	defaults := domain.DefaultSettings()
	for _, fe := range verrs {
		switch fe.StructField() {
		case "Theme":
			settings.Theme = defaults.Theme
		case "FontSize":
			settings.FontSize = defaults.FontSize
		}
		s.logger.Warn("ignoring invalid stored setting", "field", fe.Field(), "value", fe.Value())
	}
	return settings
}

// read fetches key, treating errors and empty values as absent.
func (s *Store) read(ctx context.Context, key string) (string, bool) {
	if s.kv == nil {
		return "", false
	}
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Warn("failed to load state", "key", key, "error", err)
		return "", false
	}
	if !ok || raw == "" {
		return "", false
	}
	return raw, true
}
