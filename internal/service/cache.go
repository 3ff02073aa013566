package service

import (
	"context"
	"sync"
	"time"

	"calmroute/internal/domain"
)

// CacheSource identifies where a batch of enhanced routes came from.
type CacheSource string

const (
	SourceLive CacheSource = "live"
	SourceDemo CacheSource = "demo"
)

// CacheEntry is a cached evaluation result for one fingerprint.
type CacheEntry struct {
	Routes   []domain.EnhancedRoute
	CachedAt time.Time
	Source   CacheSource
}

// RouteCache is an in-process TTL cache keyed by request fingerprint with
// single-flight de-duplication: at most one fetch runs per fingerprint at
// any time, and concurrent callers for the same fingerprint share the same
// resolved value, success or failure. Expired entries are evicted lazily on
// the next lookup; no background sweep.
type RouteCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	entries  map[string]CacheEntry
	inflight map[string]*flight
}

// flight is one in-progress fetch shared by all waiters for a fingerprint.
type flight struct {
	done  chan struct{}
	entry CacheEntry
	err   error
}

// NewRouteCache creates a cache with the given entry TTL.
func NewRouteCache(ttl time.Duration) *RouteCache {
	return &RouteCache{
		ttl:      ttl,
		entries:  make(map[string]CacheEntry),
		inflight: make(map[string]*flight),
	}
}

// Get returns the entry for the fingerprint if present and not expired.
func (c *RouteCache) Get(fingerprint string) (CacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(fingerprint)
}

// Put stores an entry for the fingerprint.
func (c *RouteCache) Put(fingerprint string, entry CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fingerprint] = entry
}

// Fetch returns the cached entry for the fingerprint, or runs fn exactly
// once to produce it. If another fetch for the same fingerprint is already
// in flight, the call waits for its result instead of invoking fn. The
// returned bool reports whether the entry came from the cache.
//
// Only live entries are persisted: a demo entry is a per-invocation
// recovery, so the next request retries the provider.
func (c *RouteCache) Fetch(ctx context.Context, fingerprint string, fn func() (CacheEntry, error)) (CacheEntry, bool, error) {
	c.mu.Lock()
	if entry, ok := c.getLocked(fingerprint); ok {
		c.mu.Unlock()
		return entry, true, nil
	}

	if f, ok := c.inflight[fingerprint]; ok {
		c.mu.Unlock()
		select {
		case <-f.done:
			return f.entry, false, f.err
		case <-ctx.Done():
			return CacheEntry{}, false, ctx.Err()
		}
	}

	f := &flight{done: make(chan struct{})}
	c.inflight[fingerprint] = f
	c.mu.Unlock()

	entry, err := fn()

	c.mu.Lock()
	delete(c.inflight, fingerprint)
	if err == nil && entry.Source == SourceLive {
		c.entries[fingerprint] = entry
	}
	c.mu.Unlock()

	f.entry = entry
	f.err = err
	close(f.done)

	return entry, false, err
}

// getLocked looks up an entry and evicts it if expired. Caller holds mu.
func (c *RouteCache) getLocked(fingerprint string) (CacheEntry, bool) {
	entry, ok := c.entries[fingerprint]
	if !ok {
		return CacheEntry{}, false
	}
	if time.Since(entry.CachedAt) > c.ttl {
		delete(c.entries, fingerprint)
		return CacheEntry{}, false
	}
	return entry, true
}
