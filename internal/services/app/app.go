// Package app assembles the taoquotes runtime from configuration: logger,
// storage backend, appearance signal, quote catalog and state store.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"nathanbeddoewebdev/taoquotes/internal/appearance"
	"nathanbeddoewebdev/taoquotes/internal/catalog"
	"nathanbeddoewebdev/taoquotes/internal/config"
	"nathanbeddoewebdev/taoquotes/internal/kv"
	"nathanbeddoewebdev/taoquotes/internal/logging"
	"nathanbeddoewebdev/taoquotes/internal/retry"
	"nathanbeddoewebdev/taoquotes/internal/state"
)

// Options controls how Open builds the runtime.
type Options struct {
	// Interactive sends logs to the rolling log file instead of the
	// terminal, for when the full-screen TUI owns it.
	Interactive bool

	// LogWriter receives terminal logs when not interactive. Defaults to
	// stderr.
	LogWriter io.Writer
}

// App is one assembled runtime. Close it when done so pending writes are
// attempted before the process exits.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Catalog *catalog.Catalog
	Store   *state.Store
	Watcher *appearance.Watcher

	kv          kv.Store
	logCloser   io.Closer
	unsubscribe func()
}

// Open loads configuration, builds the state store over the configured
// backend and initializes it. Neither configuration nor storage problems
// fail Open: bad configuration values are logged and replaced by their
// defaults, and an unusable backend is logged and replaced by an in-memory
// one, so the app still runs for this session. Open only fails when ctx is
// already done.
func Open(ctx context.Context, opts Options) (*App, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, cfgErr := config.LoadOrDefault()
	logger, logCloser := newLogger(cfg, opts)
	if cfgErr != nil {
		logger.Warn("ignoring invalid configuration", "error", cfgErr)
	}

	backend, err := kv.Open(kv.Backend(cfg.StorageBackend))
	if err != nil {
		logger.Warn("storage unavailable, changes will not be saved",
			"backend", cfg.StorageBackend, "error", err)
		backend = kv.NewMemoryStore()
	}
	store := kv.Retrying(backend, retry.DefaultConfig(), logger)

	watcher := appearance.NewWatcher(
		appearance.Detect(configuredAppearance, terminalSource(opts)),
		cfg.PollInterval(),
	)

	s := state.New(store, watcher, state.WithLogger(logger))
	unsubscribe := watcher.Subscribe(s.HandleAppearanceChange)
	s.Initialize(ctx)

	return &App{
		Config:      cfg,
		Logger:      logger,
		Catalog:     catalog.Default(),
		Store:       s,
		Watcher:     watcher,
		kv:          store,
		logCloser:   logCloser,
		unsubscribe: unsubscribe,
	}, nil
}

// configuredAppearance re-reads the appearance key on every poll, so
// "taoquotes config set appearance dark" in another shell reaches a running
// TUI.
func configuredAppearance() string {
	cfg, _ := config.LoadOrDefault()
	return cfg.Appearance
}

// terminalSource asks the terminal once when the TUI will own it, since a
// background query would race the program's input reader.
func terminalSource(opts Options) appearance.Source {
	if opts.Interactive {
		return appearance.Once(appearance.Terminal{})
	}
	return appearance.Terminal{}
}

func newLogger(cfg *config.Config, opts Options) (*slog.Logger, io.Closer) {
	lc := logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}

	if opts.Interactive {
		// Without a file path there is nowhere to log; NewWithWriter
		// then returns a discarding logger.
		if path, err := logging.DefaultFilePath(); err == nil {
			lc.File = &logging.FileConfig{Path: path}
		}
		return logging.NewWithWriter(lc, nil)
	}

	w := opts.LogWriter
	if w == nil {
		w = os.Stderr
	}
	return logging.NewWithWriter(lc, w)
}

// WatchAppearance polls the system appearance until ctx is done.
func (a *App) WatchAppearance(ctx context.Context) {
	a.Watcher.Run(ctx)
}

// Close waits for pending writes, then releases storage and the log file.
func (a *App) Close() error {
	a.unsubscribe()
	a.Store.Wait()

	var errs []error
	if err := a.kv.Close(); err != nil {
		errs = append(errs, fmt.Errorf("app: closing storage: %w", err))
	}
	if err := a.logCloser.Close(); err != nil {
		errs = append(errs, fmt.Errorf("app: closing log: %w", err))
	}
	return errors.Join(errs...)
}
