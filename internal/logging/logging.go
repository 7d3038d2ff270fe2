// Package logging builds the slog loggers taoquotes uses.
//
// Terminal output goes to stderr in one of three formats. While the full
// screen TUI owns the terminal, logs go to a rolling file instead so they
// do not corrupt the display.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Formats accepted by Config.Format.
const (
	FormatPretty = "pretty"
	FormatText   = "text"
	FormatJSON   = "json"
)

const (
	appDir  = "taoquotes"
	logFile = "taoquotes.log"

	defaultMaxSizeMB  = 5
	defaultMaxBackups = 2
	defaultMaxAgeDays = 14
)

// Config controls logger construction.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // pretty, text, json

	// File, when set, receives JSON logs in addition to the terminal writer.
	File *FileConfig
}

// FileConfig describes a rolling log file.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultFilePath returns <UserConfigDir>/taoquotes/taoquotes.log.
func DefaultFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("logging: unable to determine config directory: %w", err)
	}
	return filepath.Join(dir, appDir, logFile), nil
}

// New returns a logger writing to stderr.
func New(cfg Config) (*slog.Logger, io.Closer) {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter returns a logger writing to w, plus a file sink when
// cfg.File is set. The returned Closer releases the file and is always
// non-nil. Pass a nil w to log to the file only.
func NewWithWriter(cfg Config, w io.Writer) (*slog.Logger, io.Closer) {
	level := ParseLevel(cfg.Level)

	var handlers []slog.Handler
	if w != nil {
		handlers = append(handlers, newHandler(w, cfg.Format, level))
	}

	closer := io.Closer(nopCloser{})
	if cfg.File != nil && cfg.File.Path != "" {
		rotator := newRotator(*cfg.File)
		handlers = append(handlers, slog.NewJSONHandler(rotator, &slog.HandlerOptions{Level: level}))
		closer = rotator
	}

	switch len(handlers) {
	case 0:
		return Discard(), closer
	case 1:
		return slog.New(handlers[0]), closer
	default:
		return slog.New(NewMultiHandler(handlers...)), closer
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	switch strings.ToLower(format) {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case FormatText:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	default:
		return log.NewWithOptions(w, log.Options{
			Level:           slogToCharmLevel(level),
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          appDir,
		})
	}
}

func newRotator(fc FileConfig) *lumberjack.Logger {
	l := &lumberjack.Logger{
		Filename:   fc.Path,
		MaxSize:    fc.MaxSizeMB,
		MaxBackups: fc.MaxBackups,
		MaxAge:     fc.MaxAgeDays,
	}
	if l.MaxSize <= 0 {
		l.MaxSize = defaultMaxSizeMB
	}
	if l.MaxBackups <= 0 {
		l.MaxBackups = defaultMaxBackups
	}
	if l.MaxAge <= 0 {
		l.MaxAge = defaultMaxAgeDays
	}
	return l
}

// ParseLevel converts a level name to slog.Level. Unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func slogToCharmLevel(level slog.Level) log.Level {
	switch {
	case level <= slog.LevelDebug:
		return log.DebugLevel
	case level <= slog.LevelInfo:
		return log.InfoLevel
	case level <= slog.LevelWarn:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
