package config

import (
	"fmt"
	"strings"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "storage-backend").
	Name string

	// Field is the Config struct field the key maps to.
	Field string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Validate and Save).
	Set func(cfg *Config, value string)
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config, a default, and a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "storage-backend",
		Field:       "StorageBackend",
		Description: "Where favorites and settings are kept: sqlite, file, keyring, or memory",
		Get:         func(cfg *Config) string { return cfg.StorageBackend },
		Set:         func(cfg *Config, v string) { cfg.StorageBackend = v },
	},
	{
		Name:        "log-level",
		Field:       "LogLevel",
		Description: "Minimum log level: debug, info, warn, or error",
		Get:         func(cfg *Config) string { return cfg.LogLevel },
		Set:         func(cfg *Config, v string) { cfg.LogLevel = v },
	},
	{
		Name:        "log-format",
		Field:       "LogFormat",
		Description: "Log output format: pretty, text, or json",
		Get:         func(cfg *Config) string { return cfg.LogFormat },
		Set:         func(cfg *Config, v string) { cfg.LogFormat = v },
	},
	{
		Name:        "appearance",
		Field:       "Appearance",
		Description: "System appearance: auto detects the terminal, light or dark force it",
		Get:         func(cfg *Config) string { return cfg.Appearance },
		Set:         func(cfg *Config, v string) { cfg.Appearance = v },
	},
	{
		Name:        "appearance-poll-interval",
		Field:       "AppearancePollInterval",
		Description: "How often the TUI re-checks the terminal background (e.g. 5s)",
		Get:         func(cfg *Config) string { return cfg.AppearancePollInterval },
		Set:         func(cfg *Config, v string) { cfg.AppearancePollInterval = v },
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

func keyNameFor(field string) string {
	for _, k := range Keys {
		if k.Field == field {
			return k.Name
		}
	}
	return field
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
