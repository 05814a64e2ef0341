package swr

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingFetcher(calls *atomic.Int64, value any) Fetcher {
	return func(ctx context.Context) (any, error) {
		calls.Add(1)
		return value, nil
	}
}

func TestFetchLoadsOnceWhenNotRevalidating(t *testing.T) {
	cache := New(Options{RevalidateIfStale: false})

	var calls atomic.Int64
	fetcher := countingFetcher(&calls, "v1")

	value, err := cache.Fetch(context.Background(), "key", fetcher)
	require.NoError(t, err)
	assert.Equal(t, "v1", value)

	value, err = cache.Fetch(context.Background(), "key", fetcher)
	require.NoError(t, err)
	assert.Equal(t, "v1", value)

	assert.Equal(t, int64(1), calls.Load())
}

func TestFetchDedupesConcurrentCallers(t *testing.T) {
	cache := New(Options{})

	var calls atomic.Int64
	release := make(chan struct{})
	fetcher := func(ctx context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "shared", nil
	}

	const workers = 8
	results := make([]any, workers)

	var started, done sync.WaitGroup
	started.Add(workers)
	done.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			started.Done()
			value, _ := cache.Fetch(context.Background(), "key", fetcher)
			results[i] = value
			done.Done()
		}(i)
	}

	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	done.Wait()

	assert.Equal(t, int64(1), calls.Load())
	for _, value := range results {
		assert.Equal(t, "shared", value)
	}
}

func TestMutateSupersedesInflightFetch(t *testing.T) {
	cache := New(Options{})

	fetchStarted := make(chan struct{})
	release := make(chan struct{})
	fetcher := func(ctx context.Context) (any, error) {
		close(fetchStarted)
		<-release
		return "from-fetch", nil
	}

	fetchDone := make(chan struct{})
	go func() {
		_, _ = cache.Fetch(context.Background(), "key", fetcher)
		close(fetchDone)
	}()

	<-fetchStarted
	cache.Mutate("key", "from-mutate")
	close(release)
	<-fetchDone

	entry, ok := cache.Get("key")
	require.True(t, ok)
	assert.Equal(t, "from-mutate", entry.Value, "a fetch dispatched before the write must not clobber it")
}

func TestRefreshWithinDedupingIntervalServesCached(t *testing.T) {
	cache := New(Options{DedupingInterval: time.Minute})
	cache.Seed("key", "seeded")

	var calls atomic.Int64
	fetcher := countingFetcher(&calls, "fresh")

	value, err := cache.Refresh(context.Background(), "key", fetcher)
	require.NoError(t, err)
	assert.Equal(t, "seeded", value)
	assert.Equal(t, int64(0), calls.Load())
}

func TestConcurrentRefreshesShareOneCall(t *testing.T) {
	cache := New(Options{DedupingInterval: time.Minute})

	var calls atomic.Int64
	release := make(chan struct{})
	fetcher := func(ctx context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "fresh", nil
	}

	const workers = 4
	var started, done sync.WaitGroup
	started.Add(workers)
	done.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			started.Done()
			_, _ = cache.Refresh(context.Background(), "key", fetcher)
			done.Done()
		}()
	}

	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	done.Wait()

	assert.Equal(t, int64(1), calls.Load())
}

func TestRefreshBypassesStaleCheck(t *testing.T) {
	cache := New(Options{RevalidateIfStale: false})

	var calls atomic.Int64
	fetcher := countingFetcher(&calls, "value")

	_, err := cache.Fetch(context.Background(), "key", fetcher)
	require.NoError(t, err)

	_, err = cache.Refresh(context.Background(), "key", fetcher)
	require.NoError(t, err)

	assert.Equal(t, int64(2), calls.Load())
}

func TestFetchErrorDoesNotCommit(t *testing.T) {
	cache := New(Options{})

	fetchErr := errors.New("upstream down")
	fetcher := func(ctx context.Context) (any, error) {
		return nil, fetchErr
	}

	_, err := cache.Fetch(context.Background(), "key", fetcher)
	assert.ErrorIs(t, err, fetchErr)

	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestSeedServesWithoutFetch(t *testing.T) {
	cache := New(Options{RevalidateIfStale: true, DedupingInterval: time.Minute})
	cache.Seed("key", "seeded")

	var calls atomic.Int64
	fetcher := countingFetcher(&calls, "fresh")

	value, err := cache.Fetch(context.Background(), "key", fetcher)
	require.NoError(t, err)
	assert.Equal(t, "seeded", value)
	assert.Equal(t, int64(0), calls.Load())
}

func TestSeedWithoutRevalidateOnMountNeverFetches(t *testing.T) {
	cache := New(Options{RevalidateOnMount: false, RevalidateIfStale: true})
	cache.Seed("key", "seeded")

	var calls atomic.Int64
	fetcher := countingFetcher(&calls, "fresh")

	value, err := cache.Fetch(context.Background(), "key", fetcher)
	require.NoError(t, err)
	assert.Equal(t, "seeded", value)
	assert.Equal(t, int64(0), calls.Load())

	// An explicit refresh still goes through.
	value, err = cache.Refresh(context.Background(), "key", fetcher)
	require.NoError(t, err)
	assert.Equal(t, "fresh", value)
	assert.Equal(t, int64(1), calls.Load())
}

func TestMutateResetsDedupeWindow(t *testing.T) {
	cache := New(Options{DedupingInterval: time.Minute})
	cache.Seed("key", "seeded")

	var calls atomic.Int64
	fetcher := countingFetcher(&calls, "fresh")

	cache.Mutate("key", "optimistic")

	value, err := cache.Refresh(context.Background(), "key", fetcher)
	require.NoError(t, err)
	assert.Equal(t, "fresh", value, "a reconcile after a write must reach the network")
	assert.Equal(t, int64(1), calls.Load())
}

func TestRefreshAfterWriteDuringInflightFetch(t *testing.T) {
	cache := New(Options{DedupingInterval: time.Minute})

	var calls atomic.Int64
	fetchStarted := make(chan struct{})
	release := make(chan struct{})
	fetcher := func(ctx context.Context) (any, error) {
		if calls.Add(1) == 1 {
			close(fetchStarted)
			<-release
			return "stale", nil
		}
		return "fresh", nil
	}

	fetchDone := make(chan struct{})
	go func() {
		_, _ = cache.Fetch(context.Background(), "key", fetcher)
		close(fetchDone)
	}()

	<-fetchStarted
	cache.Mutate("key", "optimistic")
	close(release)
	<-fetchDone

	// The write cleared the dedupe window; the superseded fetch settling must
	// not re-arm it, or this reconcile would be served from cache.
	value, err := cache.Refresh(context.Background(), "key", fetcher)
	require.NoError(t, err)
	assert.Equal(t, "fresh", value)
	assert.Equal(t, int64(2), calls.Load())
}

func TestMutateThenGet(t *testing.T) {
	cache := New(Options{})

	cache.Mutate("key", "optimistic")

	entry, ok := cache.Get("key")
	require.True(t, ok)
	assert.Equal(t, "optimistic", entry.Value)
	assert.False(t, entry.UpdatedAt.IsZero())
}
