// Package cache implements the client-side query/mutation cache: the latest
// successful result of each remote read, keyed by operation, with
// write-triggered invalidation and per-key coalescing of concurrent reads.
//
// Mutations never write the cache directly. They complete their remote call,
// then invalidate the read keys they affect; consumers re-render from the
// refetched value. Cross-key consistency is eventual, not transactional.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"storefront/internal/errors"

	"golang.org/x/sync/singleflight"
)

// Fetch loads the value for a key from the remote service.
type Fetch func(ctx context.Context) (any, error)

type entry struct {
	value    any
	valid    bool
	fetch    Fetch
	watchers int
	// gen increments on every invalidation. A flight result is only stored
	// if no invalidation happened while it was in the air.
	gen uint64
}

// Store is the shared cache. It is safe for concurrent use; it is the only
// shared mutable resource in the workflow layer.
type Store struct {
	logger *slog.Logger

	mu      sync.Mutex
	entries map[string]*entry
	group   singleflight.Group
}

// New creates an empty cache store.
func New(logger *slog.Logger) *Store {
	return &Store{
		logger:  logger,
		entries: make(map[string]*entry),
	}
}

// locked; creates the entry on first use.
func (s *Store) entryLocked(key string) *entry {
	e, ok := s.entries[key]
	if !ok {
		e = &entry{}
		s.entries[key] = e
	}

	return e
}

// Query returns the cached value for key, or runs fetch through the
// per-key flight. Concurrent callers for the same key share one remote
// call. A caller whose ctx ends before the flight resolves gets ctx.Err();
// the underlying request continues and its result is written only by
// callers still waiting on it.
func (s *Store) Query(ctx context.Context, key string, fetch Fetch) (any, error) {
	s.mu.Lock()
	e := s.entryLocked(key)
	e.fetch = fetch
	if e.valid {
		value := e.value
		s.mu.Unlock()

		return value, nil
	}
	gen := e.gen
	s.mu.Unlock()

	ch := s.group.DoChan(key, func() (any, error) {
		// The shared flight must outlive any single caller.
		return fetch(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			// Failed fetches cache nothing.
			return nil, res.Err
		}
		s.storeResult(key, gen, res.Val)

		return res.Val, nil
	}
}

// storeResult writes a flight result unless the key was invalidated while
// the flight was in progress.
func (s *Store) storeResult(key string, gen uint64, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entryLocked(key)
	if e.gen != gen {
		return
	}
	e.value = value
	e.valid = true
}

// Invalidate marks the given keys stale. Keys with at least one watcher are
// refetched in the background so mounted consumers observe fresh data.
func (s *Store) Invalidate(keys ...string) {
	for _, key := range keys {
		s.invalidateOne(key)
	}
}

// InvalidatePrefix invalidates every known key under the given prefix,
// e.g. "products" covers both the list and every single-product entry.
func (s *Store) InvalidatePrefix(prefix string) {
	s.mu.Lock()
	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		if key == prefix || strings.HasPrefix(key, prefix+"/") {
			keys = append(keys, key)
		}
	}
	s.mu.Unlock()

	s.Invalidate(keys...)
}

func (s *Store) invalidateOne(key string) {
	s.mu.Lock()
	e := s.entryLocked(key)
	e.valid = false
	e.gen++
	gen := e.gen
	fetch := e.fetch
	watched := e.watchers > 0
	s.mu.Unlock()

	// Readers arriving after this point must not join a pre-invalidation
	// flight.
	s.group.Forget(key)

	if watched && fetch != nil {
		go s.refetch(key, gen, fetch)
	}
}

func (s *Store) refetch(key string, gen uint64, fetch Fetch) {
	value, err, _ := s.group.Do(key, func() (any, error) {
		return fetch(context.Background())
	})
	if err != nil {
		s.logger.Debug("background refetch failed", "key", key, "error", err)

		return
	}

	s.storeResult(key, gen, value)
}

// Watch registers a consumer interest in key; invalidations of watched keys
// trigger a background refetch. The returned func unregisters.
func (s *Store) Watch(key string) (cancel func()) {
	s.mu.Lock()
	e := s.entryLocked(key)
	e.watchers++
	s.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if e.watchers > 0 {
				e.watchers--
			}
		})
	}
}

// Query is the typed read-through entry point used by the workflows.
func Query[T any](ctx context.Context, s *Store, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	value, err := s.Query(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, errors.Errorf("cache: unexpected value type for key %q", key)
	}

	return typed, nil
}
