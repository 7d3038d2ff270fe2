// Package catalog holds the fixed collection of quotes shipped with
// taoquotes and the selection functions used to browse it.
//
// A Catalog is immutable after construction. The only state it carries is
// its random source, which is guarded so a Catalog is safe to share.
package catalog

import (
	"math/rand/v2"
	"sync"

	"nathanbeddoewebdev/taoquotes/internal/domain"
)

// Catalog is an ordered, read-only list of quotes.
type Catalog struct {
	quotes []domain.Quote
	index  map[string]int

	mu  sync.Mutex
	rng *rand.Rand // nil means the package-level source
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithRand makes PickRandom draw from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(c *Catalog) { c.rng = r }
}

// New returns a catalog over a private copy of quotes. Later duplicates of
// an ID are dropped so that IDs stay unique.
func New(quotes []domain.Quote, opts ...Option) *Catalog {
	c := &Catalog{
		quotes: make([]domain.Quote, 0, len(quotes)),
		index:  make(map[string]int, len(quotes)),
	}
	for _, q := range quotes {
		if _, dup := c.index[q.ID]; dup {
			continue
		}
		c.index[q.ID] = len(c.quotes)
		c.quotes = append(c.quotes, q)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Default returns a catalog over the compiled-in quotes.
func Default(opts ...Option) *Catalog {
	return New(quotes, opts...)
}

// Len returns the number of quotes.
func (c *Catalog) Len() int { return len(c.quotes) }

// All returns a copy of every quote in catalog order.
func (c *Catalog) All() []domain.Quote {
	out := make([]domain.Quote, len(c.quotes))
	copy(out, c.quotes)
	return out
}

// GetByID returns the quote with the given ID. The boolean is false when no
// such quote exists; that is not an error.
func (c *Catalog) GetByID(id string) (domain.Quote, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.Quote{}, false
	}
	return c.quotes[i], true
}

// PickRandom returns a uniformly random quote. When excludeID names a quote
// in the catalog, that quote is removed from the candidates first, so the
// result differs from it whenever the catalog has at least two entries.
//
// A single-entry catalog has no alternative to offer and returns its sole
// entry even when it is excluded. An empty catalog returns the zero Quote.
func (c *Catalog) PickRandom(excludeID string) domain.Quote {
	n := len(c.quotes)
	switch n {
	case 0:
		return domain.Quote{}
	case 1:
		return c.quotes[0]
	}

	excluded, ok := c.index[excludeID]
	if excludeID == "" || !ok {
		return c.quotes[c.intN(n)]
	}

	// Draw from the n-1 remaining slots and skip over the excluded one.
	i := c.intN(n - 1)
	if i >= excluded {
		i++
	}
	return c.quotes[i]
}

// Next returns the quote after id in catalog order, wrapping at the end.
// An unknown id yields the first quote.
func (c *Catalog) Next(id string) (domain.Quote, bool) {
	if len(c.quotes) == 0 {
		return domain.Quote{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return c.quotes[0], true
	}
	return c.quotes[(i+1)%len(c.quotes)], true
}

// Prev returns the quote before id in catalog order, wrapping at the start.
// An unknown id yields the first quote.
func (c *Catalog) Prev(id string) (domain.Quote, bool) {
	if len(c.quotes) == 0 {
		return domain.Quote{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return c.quotes[0], true
	}
	return c.quotes[(i-1+len(c.quotes))%len(c.quotes)], true
}

func (c *Catalog) intN(n int) int {
	if c.rng == nil {
		return rand.IntN(n)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.IntN(n)
}
