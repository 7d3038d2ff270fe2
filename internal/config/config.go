// Package config handles persistent user configuration for taoquotes.
//
// Configuration is stored as JSON at ~/.config/taoquotes/config.json (or the
// platform-equivalent path returned by os.UserConfigDir). The effective
// configuration layers built-in defaults, then the file, then TAOQUOTES_*
// environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appDir   = "taoquotes"
	fileName = "config.json"

	// EnvPrefix marks environment variables that override the file, e.g.
	// TAOQUOTES_LOG_LEVEL=debug.
	EnvPrefix = "TAOQUOTES_"
)

// Defaults.
const (
	DefaultStorageBackend         = "sqlite"
	DefaultLogLevel               = "info"
	DefaultLogFormat              = "pretty"
	DefaultAppearance             = "auto"
	DefaultAppearancePollInterval = "5s"
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations.
type Config struct {
	StorageBackend         string `json:"storage_backend,omitempty"          koanf:"storage_backend"          validate:"omitempty,oneof=sqlite file keyring memory"`
	LogLevel               string `json:"log_level,omitempty"                koanf:"log_level"                validate:"omitempty,oneof=debug info warn error"`
	LogFormat              string `json:"log_format,omitempty"               koanf:"log_format"               validate:"omitempty,oneof=pretty text json"`
	Appearance             string `json:"appearance,omitempty"               koanf:"appearance"               validate:"omitempty,oneof=auto light dark"`
	AppearancePollInterval string `json:"appearance_poll_interval,omitempty" koanf:"appearance_poll_interval" validate:"omitempty,interval"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// interval accepts a Go duration of at least 100ms.
	_ = v.RegisterValidation("interval", func(fl validator.FieldLevel) bool {
		d, err := time.ParseDuration(fl.Field().String())
		return err == nil && d >= 100*time.Millisecond
	})
	return v
}

// Validate reports the first field holding an unsupported value.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("config: invalid %s %q", keyNameFor(fe.StructField()), fe.Value())
	}
	return fmt.Errorf("config: %w", err)
}

// PollInterval returns the appearance poll interval, falling back to the
// default when unset or unparseable.
func (c *Config) PollInterval() time.Duration {
	if d, err := time.ParseDuration(c.AppearancePollInterval); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(DefaultAppearancePollInterval)
	return d
}

// Path returns the absolute path to the config file.
// If SetPath has been called, that value is returned instead.
// Otherwise it uses os.UserConfigDir which resolves to
// ~/Library/Application Support on macOS, ~/.config on Linux, and
// %AppData% on Windows.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

func defaults() map[string]any {
	return map[string]any{
		"storage_backend":          DefaultStorageBackend,
		"log_level":                DefaultLogLevel,
		"log_format":               DefaultLogFormat,
		"appearance":               DefaultAppearance,
		"appearance_poll_interval": DefaultAppearancePollInterval,
	}
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		StorageBackend:         DefaultStorageBackend,
		LogLevel:               DefaultLogLevel,
		LogFormat:              DefaultLogFormat,
		Appearance:             DefaultAppearance,
		AppearancePollInterval: DefaultAppearancePollInterval,
	}
}

// Load returns the effective configuration. Precedence, highest first:
//  1. TAOQUOTES_* environment variables
//  2. The config file
//  3. Built-in defaults
//
// A missing file is not an error. Any unreadable file or invalid value is.
func Load() (*Config, error) {
	return loadFrom("")
}

// loadFrom builds the layered config using the file at path. If path is
// empty, the default Path() is used.
func loadFrom(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: loading defaults: %w", err)
	}
	if err := loadFileIfExists(k, path); err != nil {
		return nil, err
	}
	if err := loadEnv(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault is Load for callers that must keep running. It always
// returns a usable configuration: an unreadable file is skipped and each
// invalid value is replaced by its default. The returned error lists what
// was ignored and is meant to be logged, not returned.
func LoadOrDefault() (*Config, error) {
	return loadOrDefaultFrom("")
}

func loadOrDefaultFrom(path string) (*Config, error) {
	var problems []error

	if path == "" {
		var err error
		if path, err = Path(); err != nil {
			problems = append(problems, err)
		}
	}

	k := koanf.New(".")
	_ = k.Load(confmap.Provider(defaults(), "."), nil)
	if path != "" {
		if err := loadFileIfExists(k, path); err != nil {
			problems = append(problems, err)
		}
	}
	if err := loadEnv(k); err != nil {
		problems = append(problems, err)
	}

	cfg := Defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		problems = append(problems, fmt.Errorf("config: failed to decode: %w", err))
		cfg = Defaults()
	}

	problems = append(problems, cfg.resetInvalid()...)
	return cfg, errors.Join(problems...)
}

// resetInvalid replaces every field that fails validation with its default
// and reports each replacement.
func (c *Config) resetInvalid() []error {
	var verrs validator.ValidationErrors
	if !errors.As(validate.Struct(c), &verrs) {
		return nil
	}

	def := Defaults()
	var problems []error
	for _, fe := range verrs {
		for _, spec := range Keys {
			if spec.Field != fe.StructField() {
				continue
			}
			fallback := spec.Get(def)
			problems = append(problems, fmt.Errorf("config: invalid %s %q, using %q", spec.Name, fe.Value(), fallback))
			spec.Set(c, fallback)
		}
	}
	return problems
}

// loadEnv layers TAOQUOTES_* variables that name a config key.
func loadEnv(k *koanf.Koanf) error {
	known := defaults()
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if _, ok := known[key]; !ok {
			return "" // not a config key
		}
		return key
	}), nil)
	if err != nil {
		return fmt.Errorf("config: loading environment: %w", err)
	}
	return nil
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return nil
}

// LoadFile reads only what is stored in the config file, without defaults
// or environment overrides. Use it before Save so that neither leaks into
// the file. A missing file yields a zero-value Config.
func LoadFile() (*Config, error) {
	return loadFileFrom("")
}

func loadFileFrom(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	k := koanf.New(".")
	if err := loadFileIfExists(k, path); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	return c.saveTo("")
}

// saveTo writes the config to the given path. If path is empty, the
// default Path() is used.
func (c *Config) saveTo(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	return nil
}

// LoadFrom returns the effective config using the file at path. Intended for testing.
func LoadFrom(path string) (*Config, error) {
	return loadFrom(path)
}

// LoadOrDefaultFrom is LoadOrDefault using the file at path. Intended for testing.
func LoadOrDefaultFrom(path string) (*Config, error) {
	return loadOrDefaultFrom(path)
}

// LoadFileFrom reads only the file at path. Intended for testing.
func LoadFileFrom(path string) (*Config, error) {
	return loadFileFrom(path)
}

// SaveTo writes the config to the given path. Intended for testing.
func (c *Config) SaveTo(path string) error {
	return c.saveTo(path)
}
