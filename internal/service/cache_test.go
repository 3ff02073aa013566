package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"calmroute/internal/domain"
)

func liveEntry() CacheEntry {
	return CacheEntry{
		Routes:   []domain.EnhancedRoute{{ID: "route-0", Name: "Route 1"}},
		CachedAt: time.Now(),
		Source:   SourceLive,
	}
}

func TestRouteCache_PutAndGet(t *testing.T) {
	t.Parallel()

	cache := NewRouteCache(5 * time.Minute)
	cache.Put("fp-1", liveEntry())

	entry, ok := cache.Get("fp-1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(entry.Routes) != 1 || entry.Routes[0].ID != "route-0" {
		t.Errorf("unexpected cached routes: %+v", entry.Routes)
	}

	if _, ok := cache.Get("fp-2"); ok {
		t.Error("expected miss for unknown fingerprint")
	}
}

func TestRouteCache_ExpiredEntryEvicted(t *testing.T) {
	t.Parallel()

	cache := NewRouteCache(10 * time.Millisecond)
	cache.Put("fp-1", liveEntry())

	time.Sleep(20 * time.Millisecond)

	if _, ok := cache.Get("fp-1"); ok {
		t.Error("expected expired entry to be evicted on lookup")
	}
}

func TestRouteCache_Fetch_RunsOnceForConcurrentCallers(t *testing.T) {
	t.Parallel()

	cache := NewRouteCache(5 * time.Minute)

	var calls int32
	release := make(chan struct{})
	fn := func() (CacheEntry, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return liveEntry(), nil
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([]bool, workers)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, fromCache, err := cache.Fetch(context.Background(), "fp-1", fn)
			if err != nil {
				t.Errorf("worker %d: unexpected error: %v", i, err)
			}
			results[i] = fromCache
		}(i)
	}

	// Give the workers time to pile onto the in-flight fetch.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected fn to run once, ran %d times", got)
	}

	// A later call is a plain cache hit.
	_, fromCache, err := cache.Fetch(context.Background(), "fp-1", fn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fromCache {
		t.Error("expected subsequent fetch to hit the cache")
	}
}

func TestRouteCache_Fetch_SharesFailureWithWaiters(t *testing.T) {
	t.Parallel()

	cache := NewRouteCache(5 * time.Minute)
	wantErr := errors.New("provider unavailable")

	release := make(chan struct{})
	fn := func() (CacheEntry, error) {
		<-release
		return CacheEntry{}, wantErr
	}

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, _, err := cache.Fetch(context.Background(), "fp-1", fn)
			errs <- err
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)

	for i := 0; i < 2; i++ {
		if err := <-errs; !errors.Is(err, wantErr) {
			t.Errorf("expected shared failure, got %v", err)
		}
	}

	// Failures are not cached; the fingerprint stays absent.
	if _, ok := cache.Get("fp-1"); ok {
		t.Error("expected failed fetch to leave no cache entry")
	}
}

func TestRouteCache_Fetch_DemoEntryNotPersisted(t *testing.T) {
	t.Parallel()

	cache := NewRouteCache(5 * time.Minute)

	entry, fromCache, err := cache.Fetch(context.Background(), "fp-1", func() (CacheEntry, error) {
		return CacheEntry{
			Routes:   DemoRoutes(),
			CachedAt: time.Now(),
			Source:   SourceDemo,
		}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fromCache {
		t.Error("expected fresh fetch")
	}
	if entry.Source != SourceDemo {
		t.Errorf("expected demo source, got %s", entry.Source)
	}

	if _, ok := cache.Get("fp-1"); ok {
		t.Error("expected demo entry not to be persisted")
	}
}

func TestRouteCache_Fetch_WaiterHonorsContext(t *testing.T) {
	t.Parallel()

	cache := NewRouteCache(5 * time.Minute)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_, _, _ = cache.Fetch(context.Background(), "fp-1", func() (CacheEntry, error) {
			close(started)
			<-release
			return liveEntry(), nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := cache.Fetch(ctx, "fp-1", func() (CacheEntry, error) {
		t.Error("fn must not run while another fetch is in flight")
		return CacheEntry{}, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	close(release)
}
