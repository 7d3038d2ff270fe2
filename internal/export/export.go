// Package export converts favorites to and from portable documents.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"nathanbeddoewebdev/taoquotes/internal/domain"
	"nathanbeddoewebdev/taoquotes/internal/util"
)

// Format names an export encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("export: unknown format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{JSON, YAML, TOML}
}

// ParseFormat maps a name (case-insensitive, "yml" allowed) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// FormatForPath infers the format from a file extension.
func FormatForPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// document is the TOML root; TOML has no top-level arrays.
type document struct {
	Favorites []domain.Quote `toml:"favorites"`
}

// Encode writes quotes to w. JSON and YAML produce a bare list. TOML
// produces a [[favorites]] array of tables.
func Encode(w io.Writer, format Format, quotes []domain.Quote) error {
	if quotes == nil {
		quotes = []domain.Quote{}
	}

	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(quotes); err != nil {
			return fmt.Errorf("export: encoding json: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(quotes); err != nil {
			return fmt.Errorf("export: encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("export: encoding yaml: %w", err)
		}
	case TOML:
		if err := toml.NewEncoder(w).Encode(document{Favorites: quotes}); err != nil {
			return fmt.Errorf("export: encoding toml: %w", err)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	return nil
}

// Decode reads quotes from r. Every entry must carry an ID and text.
func Decode(r io.Reader, format Format) ([]domain.Quote, error) {
	var quotes []domain.Quote

	switch format {
	case JSON:
		if err := json.NewDecoder(r).Decode(&quotes); err != nil {
			return nil, fmt.Errorf("export: decoding json: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&quotes); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("export: decoding yaml: %w", err)
		}
	case TOML:
		var doc document
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("export: decoding toml: %w", err)
		}
		quotes = doc.Favorites
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	for i, q := range quotes {
		if strings.TrimSpace(q.ID) == "" {
			return nil, fmt.Errorf("export: entry %d has no id", i+1)
		}
		if err := util.ValidateQuoteID(q.ID); err != nil {
			return nil, fmt.Errorf("export: entry %d: %w", i+1, err)
		}
		if strings.TrimSpace(q.Text) == "" {
			return nil, fmt.Errorf("export: entry %d (%s) has no text", i+1, q.ID)
		}
	}
	return quotes, nil
}
