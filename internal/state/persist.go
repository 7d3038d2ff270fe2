package state

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"nathanbeddoewebdev/taoquotes/internal/kv"
)

// pendingWrite is a serialized snapshot waiting to be stored.
type pendingWrite struct {
	key   string
	seq   uint64
	value string
	ok    bool
}

// persister fires one goroutine per mutation. Snapshots are numbered per
// key at mutation time. A writer holding an older number than the last one
// attempted for that key drops its snapshot, so storage ends up holding
// the state of the most recent mutation whatever order the goroutines run in.
type persister struct {
	store  kv.Store
	logger *slog.Logger

	inflight sync.WaitGroup

	seqMu     sync.Mutex
	issued    map[string]uint64
	attempted map[string]uint64
	keyLocks  map[string]*sync.Mutex
}

func (p *persister) init(store kv.Store, logger *slog.Logger) {
	p.store = store
	p.logger = logger
	p.issued = make(map[string]uint64)
	p.attempted = make(map[string]uint64)
	p.keyLocks = make(map[string]*sync.Mutex)
}

// prepare serializes v and numbers the snapshot. Call it while the state
// it reads is still locked.
func (p *persister) prepare(key string, v any) pendingWrite {
	data, err := json.Marshal(v)
	if err != nil {
		p.logger.Error("failed to encode state", "key", key, "error", err)
		return pendingWrite{}
	}

	p.seqMu.Lock()
	p.issued[key]++
	seq := p.issued[key]
	p.seqMu.Unlock()

	return pendingWrite{key: key, seq: seq, value: string(data), ok: true}
}

// dispatch writes w in the background. The caller does not wait.
func (p *persister) dispatch(w pendingWrite) {
	if !w.ok || p.store == nil {
		return
	}
	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()
		p.write(w)
	}()
}

func (p *persister) write(w pendingWrite) {
	lock := p.keyLock(w.key)
	lock.Lock()
	defer lock.Unlock()

	p.seqMu.Lock()
	stale := w.seq <= p.attempted[w.key]
	if !stale {
		p.attempted[w.key] = w.seq
	}
	p.seqMu.Unlock()

	if stale {
		p.logger.Debug("skipping superseded write", "key", w.key, "seq", w.seq)
		return
	}

	if err := p.store.Set(context.Background(), w.key, w.value); err != nil {
		p.logger.Error("failed to save state", "key", w.key, "error", err)
		return
	}
	p.logger.Debug("saved state", "key", w.key, "seq", w.seq)
}

func (p *persister) keyLock(key string) *sync.Mutex {
	p.seqMu.Lock()
	defer p.seqMu.Unlock()
	l, ok := p.keyLocks[key]
	if !ok {
		l = &sync.Mutex{}
		p.keyLocks[key] = l
	}
	return l
}

// Wait blocks until every write dispatched so far has finished, whether it
// succeeded or not. Mutations never need it. Short-lived callers such as
// CLI commands use it so the process does not exit before storage has been
// tried.
func (p *persister) Wait() {
	p.inflight.Wait()
}
