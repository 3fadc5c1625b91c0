package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/pool-league/internal/platform/resilience"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is an in-process TTL cache. A zero ttl keeps entries until they are deleted;
// a nil *Store is a valid pass-through that never caches.
type Store struct {
	mu       sync.RWMutex
	entries  map[string]entry
	ttl      time.Duration
	flight   resilience.Group[any]
	onLookup func(hit bool)
	now      func() time.Time

	// gen advances on every invalidation; invalidated maps a prefix to the gen of its
	// latest invalidation so loads started earlier do not write back.
	gen         uint64
	invalidated map[string]uint64
}

type Option func(*Store)

// WithLookupObserver registers a callback fired on every keyed lookup.
func WithLookupObserver(fn func(hit bool)) Option {
	return func(s *Store) {
		s.onLookup = fn
	}
}

func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		entries:     make(map[string]entry),
		invalidated: make(map[string]uint64),
		ttl:         ttl,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if s == nil || key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if ok && s.ttl > 0 && !e.expiresAt.After(s.now()) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		ok = false
	}

	if s.onLookup != nil {
		s.onLookup(ok)
	}
	if !ok {
		return nil, false
	}
	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if s == nil || key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = s.newEntry(value)
	s.mu.Unlock()
}

func (s *Store) newEntry(value any) entry {
	e := entry{value: value}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	return e
}

// setIfCurrent stores value unless key was invalidated after gen.
func (s *Store) setIfCurrent(key string, value any, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for prefix, at := range s.invalidated {
		if at > gen && strings.HasPrefix(key, prefix) {
			return false
		}
	}
	s.entries[key] = s.newEntry(value)
	return true
}

// invalidate must be called with mu held.
func (s *Store) invalidate(prefix string) {
	s.gen++
	s.invalidated[prefix] = s.gen
}

func (s *Store) Delete(_ context.Context, key string) {
	if s == nil || key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.invalidate(key)
	s.mu.Unlock()
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if s == nil || prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.invalidate(prefix)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetOrLoad returns the cached value for key or runs loader once for all concurrent callers.
// A load overlapping an invalidation of key is returned to its callers but not cached, and
// callers arriving after the invalidation start a fresh load.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if s == nil || key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	s.mu.RLock()
	gen := s.gen
	s.mu.RUnlock()

	flightKey := key + "#" + strconv.FormatUint(gen, 10)
	value, _, err := s.flight.DoContext(ctx, flightKey, func() (any, error) {
		s.mu.RLock()
		cached, ok := s.entries[key]
		s.mu.RUnlock()
		if ok && (s.ttl <= 0 || cached.expiresAt.After(s.now())) {
			return cached.value, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.setIfCurrent(key, loaded, gen)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}
