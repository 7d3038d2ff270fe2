package util

import (
	"fmt"
	"regexp"
)

const maxQuoteIDLen = 64

// validIDChars matches only alphanumeric characters, hyphens, underscores,
// and periods.
var validIDChars = regexp.MustCompile(`^[a-zA-Z0-9._\-]+$`)

// ValidateQuoteID checks that an ID read from outside the catalog is safe to
// store and to pass back on the command line:
//   - Between 1 and 64 characters
//   - Only alphanumeric characters, hyphens (-), underscores (_), and periods (.)
//   - First character must be alphanumeric
//   - Last character must not be a hyphen or period
func ValidateQuoteID(id string) error {
	if len(id) == 0 {
		return fmt.Errorf("quote id must not be empty")
	}
	if len(id) > maxQuoteIDLen {
		return fmt.Errorf("quote id must be at most %d characters, got %d", maxQuoteIDLen, len(id))
	}

	if !validIDChars.MatchString(id) {
		return fmt.Errorf("quote id %q contains invalid characters (only a-z, A-Z, 0-9, hyphens, underscores, and periods are allowed)", id)
	}

	first := id[0]
	if !isAlphanumeric(first) {
		return fmt.Errorf("quote id must start with an alphanumeric character, got %q", string(first))
	}

	last := id[len(id)-1]
	if last == '-' || last == '.' {
		return fmt.Errorf("quote id must not end with a hyphen or period, got %q", string(last))
	}

	return nil
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
