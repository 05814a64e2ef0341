package authstate

import (
	"context"
	"finboard/internal/models"
	"finboard/internal/swr"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testOptions() swr.Options {
	return swr.Options{
		RevalidateOnMount: true,
		RevalidateIfStale: true,
		DedupingInterval:  time.Minute,
	}
}

func staticFetch(calls *atomic.Int64, user *models.User) FetchFunc {
	return func(ctx context.Context) *models.User {
		calls.Add(1)
		return user
	}
}

func TestSeededProviderServesSynchronously(t *testing.T) {
	seeded := &models.User{ID: "u1", Email: "ana@example.com"}

	var calls atomic.Int64
	p := NewSeededProvider(seeded, staticFetch(&calls, nil), testLogger(), testOptions())

	assert.False(t, p.IsLoading())
	assert.Equal(t, seeded, p.User())

	got := p.Current(context.Background())
	assert.Equal(t, seeded, got)
	assert.Equal(t, int64(0), calls.Load(), "seeded read must not hit the network")
}

func TestCurrentLoadsOnFirstUse(t *testing.T) {
	user := &models.User{ID: "u1", Email: "ana@example.com"}

	var calls atomic.Int64
	p := NewProvider(staticFetch(&calls, user), testLogger(), testOptions())

	assert.True(t, p.IsLoading())
	assert.Nil(t, p.User())

	got := p.Current(context.Background())
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, int64(1), calls.Load())
	assert.False(t, p.IsLoading())
}

func TestOnLoginReconcilesAgainstServer(t *testing.T) {
	optimistic := &models.User{ID: "u1", Email: "ana@example.com", DisplayName: "Ana"}
	server := &models.User{ID: "u1", Email: "ana@example.com", DisplayName: "Ana Souza"}

	var calls atomic.Int64
	p := NewProvider(staticFetch(&calls, server), testLogger(), testOptions())

	p.OnLogin(context.Background(), optimistic)

	got := p.User()
	require.NotNil(t, got)
	assert.Equal(t, "Ana Souza", got.DisplayName, "server truth supersedes the optimistic value")
	assert.Equal(t, int64(1), calls.Load())
}

func TestOnLogoutClearsUser(t *testing.T) {
	var calls atomic.Int64
	p := NewProvider(staticFetch(&calls, nil), testLogger(), testOptions())
	p.Seed(&models.User{ID: "u1", Email: "ana@example.com"})

	p.OnLogout(context.Background())

	assert.Nil(t, p.User())
	assert.False(t, p.IsLoading(), "logged out is a known state, not a loading one")
	assert.Equal(t, int64(1), calls.Load())
}

func TestOnLogoutRestoresLiveSession(t *testing.T) {
	still := &models.User{ID: "u1", Email: "ana@example.com"}

	var calls atomic.Int64
	p := NewProvider(staticFetch(&calls, still), testLogger(), testOptions())
	p.Seed(still)

	p.OnLogout(context.Background())

	got := p.User()
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID, "an upstream that still reports a session wins over the optimistic clear")
}

func TestRegistrySeedAndEvict(t *testing.T) {
	fetch := func(ctx context.Context, token string) *models.User {
		return nil
	}

	r := NewRegistry(fetch, testLogger(), testOptions())

	user := &models.User{ID: "u1", Email: "ana@example.com"}
	p := r.Seed("tok-1", user)
	assert.Equal(t, user, p.User())
	assert.Equal(t, 1, r.Size())

	same := r.For("tok-1")
	assert.Same(t, p, same)

	r.Evict("tok-1")
	assert.Equal(t, 0, r.Size())

	fresh := r.For("tok-1")
	assert.NotSame(t, p, fresh)
	assert.True(t, fresh.IsLoading())
}

func TestRegistryBindsTokenToFetch(t *testing.T) {
	var gotToken atomic.Value
	fetch := func(ctx context.Context, token string) *models.User {
		gotToken.Store(token)
		return &models.User{ID: "u1", Email: "ana@example.com"}
	}

	r := NewRegistry(fetch, testLogger(), testOptions())

	p := r.For("tok-42")
	_ = p.Current(context.Background())

	assert.Equal(t, "tok-42", gotToken.Load())
}
