package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func defaultConfig() *Config {
	return &Config{
		StorageBackend:         DefaultStorageBackend,
		LogLevel:               DefaultLogLevel,
		LogFormat:              DefaultLogFormat,
		Appearance:             DefaultAppearance,
		AppearancePollInterval: DefaultAppearancePollInterval,
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taoquotes", "config.json")

	saved := &Config{StorageBackend: "file", LogLevel: "debug"}
	if err := saved.SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := defaultConfig()
	want.StorageBackend = "file"
	want.LogLevel = "debug"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := (&Config{LogLevel: "warn", LogFormat: "text"}).SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	t.Setenv("TAOQUOTES_LOG_LEVEL", "debug")
	t.Setenv("TAOQUOTES_UNRELATED", "ignored")

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.LogLevel != "debug" {
		t.Errorf("expected env to win, got %q", got.LogLevel)
	}
	if got.LogFormat != "text" {
		t.Errorf("expected file value to survive, got %q", got.LogFormat)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json}"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"storage_backend":"postgres"}`), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "storage-backend") {
		t.Errorf("expected error to name the key, got %v", err)
	}
}

func TestLoadOrDefault_InvalidEnvFallsBackPerField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := (&Config{LogFormat: "text"}).SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	t.Setenv("TAOQUOTES_APPEARANCE", "sepia")

	got, err := LoadOrDefaultFrom(path)
	if err == nil || !strings.Contains(err.Error(), `invalid appearance "sepia"`) {
		t.Errorf("expected the ignored value to be reported, got %v", err)
	}

	want := defaultConfig()
	want.LogFormat = "text"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOrDefault_MalformedFileIsSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json}"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	t.Setenv("TAOQUOTES_LOG_LEVEL", "debug")

	got, err := LoadOrDefaultFrom(path)
	if err == nil {
		t.Error("expected the parse failure to be reported")
	}

	want := defaultConfig()
	want.LogLevel = "debug"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOrDefault_ValidConfigHasNoError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := (&Config{Appearance: "dark"}).SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := LoadOrDefaultFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Appearance != "dark" {
		t.Errorf("expected dark, got %q", got.Appearance)
	}
}

func TestLoadFile_IgnoresDefaultsAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := (&Config{Appearance: "light"}).SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	t.Setenv("TAOQUOTES_LOG_LEVEL", "debug")

	got, err := LoadFileFrom(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if diff := cmp.Diff(&Config{Appearance: "light"}, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deep")
	path := filepath.Join(dir, "config.json")

	cfg := &Config{StorageBackend: "keyring"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}
}

func TestSave_OmitsUnsetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := (&Config{LogLevel: "error"}).SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if strings.Contains(string(data), "storage_backend") {
		t.Errorf("unset key written to file: %s", data)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"zero value", Config{}, ""},
		{"defaults", *defaultConfig(), ""},
		{"bad level", Config{LogLevel: "loud"}, "log-level"},
		{"bad format", Config{LogFormat: "xml"}, "log-format"},
		{"bad appearance", Config{Appearance: "sepia"}, "appearance"},
		{"unparseable interval", Config{AppearancePollInterval: "soon"}, "appearance-poll-interval"},
		{"interval too short", Config{AppearancePollInterval: "1ms"}, "appearance-poll-interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPollInterval(t *testing.T) {
	if got := (&Config{AppearancePollInterval: "250ms"}).PollInterval(); got != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", got)
	}
	if got := (&Config{}).PollInterval(); got != 5*time.Second {
		t.Errorf("expected default 5s, got %v", got)
	}
}

func TestPath_Override(t *testing.T) {
	SetPath("/tmp/custom.json")
	t.Cleanup(ResetPath)

	got, err := Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if got != "/tmp/custom.json" {
		t.Errorf("expected override, got %q", got)
	}
}
