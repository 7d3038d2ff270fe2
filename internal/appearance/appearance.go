// Package appearance reports whether the user's environment is light or
// dark, and notifies subscribers when that changes.
package appearance

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"nathanbeddoewebdev/taoquotes/internal/domain"
)

// EnvVar overrides terminal detection when set to "light" or "dark".
const EnvVar = "TAOQUOTES_APPEARANCE"

// Source is a queryable system appearance signal.
type Source interface {
	Appearance() domain.Appearance
}

// SourceFunc adapts a function to Source.
type SourceFunc func() domain.Appearance

func (f SourceFunc) Appearance() domain.Appearance { return f() }

// Static always reports the same appearance.
type Static domain.Appearance

func (s Static) Appearance() domain.Appearance { return domain.Appearance(s) }

// Terminal asks the terminal attached to stdout for its background colour.
// Each call sends a fresh query, so a changed background is seen on the
// next poll. Without a terminal there is nothing to ask and it reports
// unknown.
//
// The query reads the reply from the terminal's input. Do not poll it while
// another reader such as a Bubble Tea program owns the terminal; wrap it in
// Once instead.
type Terminal struct{}

func (Terminal) Appearance() domain.Appearance {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return domain.AppearanceUnknown
	}
	if lipgloss.NewRenderer(os.Stdout).HasDarkBackground() {
		return domain.AppearanceDark
	}
	return domain.AppearanceLight
}

// Once asks source a single time, on first use, and repeats that answer.
func Once(source Source) Source {
	var (
		once sync.Once
		a    domain.Appearance
	)
	return SourceFunc(func() domain.Appearance {
		once.Do(func() { a = source.Appearance() })
		return a
	})
}

// Override reports the appearance named by Value when it is "light" or
// "dark" and defers to Fallback otherwise. Value is called on every query.
type Override struct {
	Value    func() string
	Fallback Source
}

func (o Override) Appearance() domain.Appearance {
	if o.Value != nil {
		if a := domain.ParseAppearance(o.Value()); a != domain.AppearanceUnknown {
			return a
		}
	}
	if o.Fallback == nil {
		return domain.AppearanceUnknown
	}
	return o.Fallback.Appearance()
}

// Fixed returns a Value func that always yields v.
func Fixed(v string) func() string {
	return func() string { return v }
}

// Env returns a Value func that reads the named environment variable.
func Env(name string) func() string {
	return func() string { return os.Getenv(name) }
}

// Detect returns the default Source: the configured value (usually "auto"),
// then the environment variable, then terminal. configured and the
// environment are re-read on every query.
func Detect(configured func() string, terminal Source) Source {
	return Override{
		Value: configured,
		Fallback: Override{
			Value:    Env(EnvVar),
			Fallback: terminal,
		},
	}
}
