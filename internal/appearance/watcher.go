package appearance

import (
	"context"
	"sync"
	"time"

	"nathanbeddoewebdev/taoquotes/internal/domain"
)

// DefaultPollInterval is how often a Watcher re-reads its Source.
const DefaultPollInterval = 5 * time.Second

// Watcher polls a Source and notifies subscribers whenever the reported
// appearance changes.
type Watcher struct {
	source   Source
	interval time.Duration

	mu     sync.Mutex
	last   domain.Appearance
	nextID int
	subs   map[int]func(domain.Appearance)
}

// NewWatcher returns a watcher over source. A non-positive interval uses
// DefaultPollInterval.
func NewWatcher(source Source, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Watcher{
		source:   source,
		interval: interval,
		last:     source.Appearance(),
		subs:     make(map[int]func(domain.Appearance)),
	}
}

// Appearance returns the most recently observed value, so a Watcher can
// stand in for its Source.
func (w *Watcher) Appearance() domain.Appearance {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// Subscribe registers fn to be called with each new appearance. The
// returned func removes the subscription.
func (w *Watcher) Subscribe(fn func(domain.Appearance)) (unsubscribe func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.subs[id] = fn
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subs, id)
	}
}

// Poll reads the source once and notifies subscribers if the value moved.
// It reports whether a change was seen.
func (w *Watcher) Poll() bool {
	current := w.source.Appearance()

	w.mu.Lock()
	if current == w.last {
		w.mu.Unlock()
		return false
	}
	w.last = current
	subs := make([]func(domain.Appearance), 0, len(w.subs))
	for _, fn := range w.subs {
		subs = append(subs, fn)
	}
	w.mu.Unlock()

	for _, fn := range subs {
		fn(current)
	}
	return true
}

// Run polls until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Poll()
		}
	}
}
