package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var errLoad = errors.New("load failed")

func countingLoader(calls *atomic.Int32, value any) func(context.Context) (any, error) {
	return func(context.Context) (any, error) {
		calls.Add(1)
		return value, nil
	}
}

func TestStore_GetOrLoad_DeduplicatesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "cards", nil
	}

	const readers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []any
	)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := store.GetOrLoad(context.Background(), "card:list", loader)
			if err != nil {
				t.Errorf("GetOrLoad: %v", err)
				return
			}
			mu.Lock()
			results = append(results, v)
			mu.Unlock()
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if len(results) != readers {
		t.Fatalf("got %d results, want %d", len(results), readers)
	}
	// Late arrivals may hit the stored value instead of joining the flight.
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_CachesUntilDeleted(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()
	var calls atomic.Int32
	loader := countingLoader(&calls, "clan")

	for i := 0; i < 3; i++ {
		if _, err := store.GetOrLoad(ctx, "clan:tag:#Q8RY9L", loader); err != nil {
			t.Fatalf("GetOrLoad: %v", err)
		}
	}
	store.Delete(ctx, "clan:tag:#Q8RY9L")
	if _, err := store.GetOrLoad(ctx, "clan:tag:#Q8RY9L", loader); err != nil {
		t.Fatalf("GetOrLoad: %v", err)
	}

	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

func TestStore_ExpiresEntriesAfterTTL(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	store.Set(ctx, "card:list", 1)
	if _, ok := store.Get(ctx, "card:list"); !ok {
		t.Fatalf("expected fresh entry")
	}
	now = now.Add(time.Minute)
	if _, ok := store.Get(ctx, "card:list"); ok {
		t.Fatalf("expected entry to expire at its TTL")
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, errLoad
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, errLoad) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if v, err := store.GetOrLoad(context.Background(), "k", loader); err != nil || v != "ok" {
		t.Fatalf("second GetOrLoad = %v, %v", v, err)
	}
}

func TestStore_GetOrLoad_DropsLoadThatOverlapsDelete(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()

	stale := func(context.Context) (any, error) {
		// A write lands while the read is in flight.
		store.Delete(ctx, "card:list")
		return "stale", nil
	}
	if v, err := store.GetOrLoad(ctx, "card:list", stale); err != nil || v != "stale" {
		t.Fatalf("GetOrLoad = %v, %v", v, err)
	}
	if _, ok := store.Get(ctx, "card:list"); ok {
		t.Fatalf("value loaded across a delete must not be cached")
	}
}

func TestStore_EmptyKeyBypassesCache(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loader := countingLoader(&calls, 1)

	_, _ = store.GetOrLoad(context.Background(), "", loader)
	_, _ = store.GetOrLoad(context.Background(), "", loader)
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}
