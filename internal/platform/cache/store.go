// Package cache is a process-local TTL store with per-key load deduplication.
package cache

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync"
	"github.com/riskibarqy/royale-stats/internal/platform/resilience"
)

type entry struct {
	value     any
	expiresAt time.Time // zero means no expiry
}

func (e entry) live(now time.Time) bool {
	return e.expiresAt.IsZero() || now.Before(e.expiresAt)
}

type Store struct {
	entries *xsync.MapOf[string, entry]
	ttl     time.Duration
	flight  resilience.SingleFlight[any]
	now     func() time.Time

	// generation moves on every Delete; loads that straddle one are not stored.
	generation atomic.Uint64
}

// NewStore returns a store whose entries live for ttl. A ttl <= 0 keeps
// entries until they are deleted.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: xsync.NewMapOf[entry](),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	e, ok := s.entries.Load(key)
	if !ok {
		return nil, false
	}
	if !e.live(s.now()) {
		s.entries.Delete(key)
		return nil, false
	}
	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}
	e := entry{value: value}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.entries.Store(key, e)
}

func (s *Store) Delete(_ context.Context, key string) {
	s.generation.Add(1)
	s.entries.Delete(key)
}

// GetOrLoad returns the cached value for key or runs loader once across
// concurrent callers. Loader errors are not cached, and neither is a value
// whose load overlapped a Delete.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}
	if v, ok := s.Get(ctx, key); ok {
		return v, nil
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		if v, ok := s.Get(ctx, key); ok {
			return v, nil
		}
		gen := s.generation.Load()
		v, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		if s.generation.Load() == gen {
			s.Set(ctx, key, v)
		}
		return v, nil
	})
	return v, err
}
