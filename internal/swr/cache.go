// Package swr provides a keyed stale-while-revalidate cache: reads are served
// from the last known value, duplicate fetches for a key are collapsed into a
// single in-flight call, and optimistic writes are reconciled against fetch
// results using a per-key write generation so that a slow fetch can never
// clobber a newer write.
package swr

import (
	"context"
	"sync"
	"time"
)

type Options struct {
	// RevalidateOnMount controls whether a seeded key that has never been
	// fetched is re-fetched on read. When false the seed is served
	// synchronously with no network call until an explicit Refresh.
	RevalidateOnMount bool

	// RevalidateOnFocus is accepted for completeness; there is no window focus
	// on the server, so it has no effect.
	RevalidateOnFocus bool

	// RevalidateIfStale controls whether Fetch re-fetches a key that already
	// holds a value. When false (the session cache default) only explicit
	// Refresh and reconcile calls hit the network.
	RevalidateIfStale bool

	// DedupingInterval is the minimum time between two fetches for the same
	// key. Calls inside the window are served from the cached value.
	DedupingInterval time.Duration
}

// Fetcher loads the current value for a key.
type Fetcher func(ctx context.Context) (any, error)

// Entry is a snapshot of a cached value.
type Entry struct {
	Value     any
	UpdatedAt time.Time
}

type call struct {
	done  chan struct{}
	gen   uint64 // entry generation at dispatch
	value any
	err   error
}

type entry struct {
	value       any
	hasValue    bool
	fetched     bool // a fetch has settled for this key at least once
	updatedAt   time.Time
	gen         uint64 // bumped on every committed write
	inflight    *call
	lastSettled time.Time
}

type Cache struct {
	mu      sync.Mutex
	opts    Options
	entries map[string]*entry
}

func New(opts Options) *Cache {
	return &Cache{
		opts:    opts,
		entries: make(map[string]*entry),
	}
}

func (c *Cache) entry(key string) *entry {
	e, exists := c.entries[key]
	if !exists {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

// Get returns the last known value for key without touching the network.
func (c *Cache) Get(key string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, exists := c.entries[key]
	if !exists || !e.hasValue {
		return Entry{}, false
	}

	return Entry{Value: e.value, UpdatedAt: e.updatedAt}, true
}

// Seed installs a server-derived snapshot. The key is marked settled, so with
// RevalidateOnMount disabled the first read is served synchronously.
func (c *Cache) Seed(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entry(key)
	e.value = value
	e.hasValue = true
	e.updatedAt = time.Now()
	e.gen++
	e.lastSettled = time.Now()
}

// Mutate optimistically overwrites the cached value. The write generation is
// bumped so any fetch dispatched before this call commits nothing when it
// settles, and the dedupe window is reset so a follow-up reconcile always
// reaches the network. Callers that want reconciliation follow up with
// Refresh.
func (c *Cache) Mutate(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entry(key)
	e.value = value
	e.hasValue = true
	e.updatedAt = time.Now()
	e.gen++
	e.lastSettled = time.Time{}
}

// Fetch returns the value for key, loading it with fetcher when needed.
// Concurrent callers for the same key share one in-flight call. A key that
// already holds a value is not re-fetched unless RevalidateIfStale is set.
func (c *Cache) Fetch(ctx context.Context, key string, fetcher Fetcher) (any, error) {
	return c.fetch(ctx, key, fetcher, false)
}

// Refresh forces a re-fetch regardless of staleness. Calls landing inside
// DedupingInterval of the previous settled fetch reuse the cached value, so a
// burst of refreshes produces exactly one upstream call.
func (c *Cache) Refresh(ctx context.Context, key string, fetcher Fetcher) (any, error) {
	return c.fetch(ctx, key, fetcher, true)
}

func (c *Cache) fetch(ctx context.Context, key string, fetcher Fetcher, force bool) (any, error) {
	for {
		c.mu.Lock()
		e := c.entry(key)

		if cl := e.inflight; cl != nil {
			// Share the pending call when its result can still commit. A forced
			// refresh behind a superseded call waits it out and dispatches fresh.
			commitable := cl.gen == e.gen
			c.mu.Unlock()
			<-cl.done
			if !force || commitable {
				return cl.value, cl.err
			}
			continue
		}

		if e.hasValue {
			withinDedupe := c.opts.DedupingInterval > 0 && !e.lastSettled.IsZero() &&
				time.Since(e.lastSettled) < c.opts.DedupingInterval
			freshSeed := !e.fetched && !c.opts.RevalidateOnMount
			if withinDedupe || (!force && (freshSeed || !c.opts.RevalidateIfStale)) {
				value := e.value
				c.mu.Unlock()
				return value, nil
			}
		}

		cl := &call{done: make(chan struct{}), gen: e.gen}
		e.inflight = cl
		c.mu.Unlock()

		value, err := fetcher(ctx)

		c.mu.Lock()
		cl.value = value
		cl.err = err
		e.inflight = nil
		e.fetched = true
		// A superseded call must not re-arm the dedupe window: a write cleared
		// it so the follow-up reconcile dispatches fresh.
		if e.gen == cl.gen {
			e.lastSettled = time.Now()
			if err == nil {
				e.value = value
				e.hasValue = true
				e.updatedAt = time.Now()
				e.gen++
			}
		}
		c.mu.Unlock()
		close(cl.done)

		return value, err
	}
}
