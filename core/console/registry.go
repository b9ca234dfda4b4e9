package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"admin-console/core/snapshot"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Options configures sessions hosted by a Registry.
type Options struct {
	// FetchRows is the scroller window of new sessions.
	FetchRows int

	// IdleTTL evicts sessions from memory after this much inactivity.
	// Zero disables eviction. Evicted sessions are restored from the store on
	// their next call; a registry without a store drops them for good.
	IdleTTL time.Duration
}

type entry struct {
	mu      sync.Mutex
	session *Session
	touched time.Time
	deleted bool
	evicted bool
}

// Registry hosts sessions by id.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	sf      singleflight.Group

	store snapshot.Store
	opts  Options
	log   *zap.Logger
	now   func() time.Time
}

// NewRegistry returns a registry persisting to store. A nil store keeps
// sessions in memory only.
func NewRegistry(store snapshot.Store, opts Options, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		entries: make(map[string]*entry),
		store:   store,
		opts:    opts,
		log:     log,
		now:     time.Now,
	}
}

// Create starts a new session and returns its id.
func (r *Registry) Create(ctx context.Context) (string, error) {
	id := uuid.NewString()
	s := NewSession(id, r.opts.FetchRows, r.log)
	if err := r.save(ctx, s); err != nil {
		return "", err
	}

	r.mu.Lock()
	r.entries[id] = &entry{session: s, touched: r.now()}
	r.mu.Unlock()

	r.log.Info("Session created", zap.String("session_id", id))
	return id, nil
}

// With runs fn on the session id while holding its lock. The session is
// persisted if fn succeeds.
func (r *Registry) With(ctx context.Context, id string, fn func(*Session) error) error {
	return r.run(ctx, id, true, fn)
}

// View runs fn on the session id while holding its lock, without persisting.
func (r *Registry) View(ctx context.Context, id string, fn func(*Session) error) error {
	return r.run(ctx, id, false, fn)
}

// Get returns the snapshot of session id.
func (r *Registry) Get(ctx context.Context, id string) (Snapshot, error) {
	var snap Snapshot
	err := r.View(ctx, id, func(s *Session) error {
		snap = s.Snapshot()
		return nil
	})
	return snap, err
}

func (r *Registry) run(ctx context.Context, id string, persist bool, fn func(*Session) error) error {
	e, err := r.acquire(ctx, id)
	if err != nil {
		return err
	}
	defer e.mu.Unlock()
	e.touched = r.now()

	if err := fn(e.session); err != nil {
		return err
	}
	if !persist {
		return nil
	}
	return r.save(ctx, e.session)
}

// acquire returns the entry of id with its lock held. Entries evicted while
// waiting for the lock are looked up again.
func (r *Registry) acquire(ctx context.Context, id string) (*entry, error) {
	// id may alias a request buffer that is reused once the handler returns,
	// and it ends up as a map key when the session is restored.
	id = strings.Clone(id)
	for {
		e, err := r.lookup(ctx, id)
		if err != nil {
			return nil, err
		}
		e.mu.Lock()
		switch {
		case e.evicted:
			e.mu.Unlock()
			continue
		case e.deleted:
			e.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
		}
		return e, nil
	}
}

// lookup returns the entry of id, loading it from the store if needed.
// Concurrent loads of the same id share one store read.
func (r *Registry) lookup(ctx context.Context, id string) (*entry, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()
	if ok {
		return e, nil
	}
	if r.store == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	v, err, _ := r.sf.Do(id, func() (any, error) {
		r.mu.RLock()
		e, ok := r.entries[id]
		r.mu.RUnlock()
		if ok {
			return e, nil
		}

		data, err := r.store.Load(ctx, id)
		if errors.Is(err, snapshot.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
		}
		if err != nil {
			return nil, err
		}
		s, err := Unmarshal(data, r.log)
		if err != nil {
			return nil, err
		}

		e = &entry{session: s, touched: r.now()}
		r.mu.Lock()
		r.entries[id] = e
		r.mu.Unlock()
		r.log.Debug("Session restored from store", zap.String("session_id", id))
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*entry), nil
}

// Delete removes session id from memory and from the store.
func (r *Registry) Delete(ctx context.Context, id string) error {
	e, err := r.acquire(ctx, id)
	if err != nil {
		return err
	}
	defer e.mu.Unlock()
	e.deleted = true

	r.mu.Lock()
	delete(r.entries, id)
	r.mu.Unlock()

	if r.store != nil {
		if err := r.store.Delete(ctx, id); err != nil {
			return err
		}
	}
	r.log.Info("Session deleted", zap.String("session_id", id))
	return nil
}

// Sweep evicts sessions idle for longer than the configured TTL and returns
// how many were evicted. Without a store, evicted sessions are gone.
func (r *Registry) Sweep() int {
	if r.opts.IdleTTL <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.opts.IdleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, e := range r.entries {
		if !e.mu.TryLock() {
			continue
		}
		if e.touched.Before(cutoff) {
			e.evicted = true
			delete(r.entries, id)
			evicted++
		}
		e.mu.Unlock()
	}
	if evicted > 0 {
		r.log.Debug("Evicted idle sessions", zap.Int("count", evicted))
	}
	return evicted
}

// RunSweeper calls Sweep every interval until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || r.opts.IdleTTL <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Len returns the number of sessions held in memory.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Registry) save(ctx context.Context, s *Session) error {
	if r.store == nil {
		return nil
	}
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	return r.store.Save(ctx, s.ID(), data)
}
