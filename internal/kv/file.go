package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	appDir  = "taoquotes"
	dataDir = "data"
)

var fileDirOverride string

// SetFileDir overrides the default file store directory. Intended for testing.
func SetFileDir(dir string) { fileDirOverride = dir }

// ResetFileDir clears the directory override. Intended for testing.
func ResetFileDir() { fileDirOverride = "" }

// DefaultFileDir returns the directory used by the file backend.
func DefaultFileDir() (string, error) {
	if fileDirOverride != "" {
		return fileDirOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("kv: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, dataDir), nil
}

// FileStore keeps each key in its own file. Writes go to a temp file that
// is renamed into place, so a reader never sees a half-written value.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on
// first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(f.pathForKey(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv: read %q failed: %w", key, err)
	}
	return string(data), true, nil
}

func (f *FileStore) Set(_ context.Context, key, value string) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("kv: failed to create directory %s: %w", f.dir, err)
	}

	tmp, err := os.CreateTemp(f.dir, sanitizeKey(key)+".tmp-*")
	if err != nil {
		return fmt.Errorf("kv: write %q failed: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("kv: write %q failed: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("kv: write %q failed: %w", key, err)
	}

	if err := os.Rename(tmpName, f.pathForKey(key)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("kv: write %q failed: %w", key, err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }

func (f *FileStore) pathForKey(key string) string {
	return filepath.Join(f.dir, sanitizeKey(key)+".json")
}

func sanitizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return "value"
	}

	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		ch := key[i]
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_' {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}
