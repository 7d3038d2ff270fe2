package domain

import "errors"

// Sentinel errors shared by the CLI and the export package.
//
//	return fmt.Errorf("quote %q: %w", id, domain.ErrNotFound)
var (
	// ErrNotFound indicates the requested quote is not in the catalog.
	ErrNotFound = errors.New("quote not found")

	// ErrInvalidSetting indicates a settings key or value outside its
	// allowed set.
	ErrInvalidSetting = errors.New("invalid setting")
)
