package domain

// Quote is a single catalog entry. Quotes are immutable once defined and are
// always passed by value.
type Quote struct {
	// ID is stable and unique across the catalog (e.g. "ttc-1").
	ID string `json:"id" yaml:"id" toml:"id"`

	// Text is the display string.
	Text string `json:"text" yaml:"text" toml:"text"`

	// Source is the attribution (e.g. "Lao Tzu").
	Source string `json:"source" yaml:"source" toml:"source"`

	// Chapter is an optional sub-attribution.
	Chapter string `json:"chapter,omitempty" yaml:"chapter,omitempty" toml:"chapter,omitempty"`
}

// Attribution returns the source, followed by the chapter when present.
func (q Quote) Attribution() string {
	if q.Chapter == "" {
		return q.Source
	}
	return q.Source + ", " + q.Chapter
}
