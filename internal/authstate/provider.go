// Package authstate holds the per-browser-context view of "who is logged in".
// Each session token gets one Provider wrapping a stale-while-revalidate cache
// under a single fixed key; consumers read the last known user while login,
// logout and refresh reconcile it against the upstream who-am-I endpoint.
package authstate

import (
	"context"
	"finboard/internal/models"
	"finboard/internal/swr"
	"log/slog"
)

// SessionKey is the one cache key a provider uses. There is exactly one
// "current session" per browser context, so the key never varies.
const SessionKey = "session/current-user"

// FetchFunc loads the current user. It never fails: any session-check failure
// has already been normalized to a nil user (see api.Client.FetchCurrentUser).
type FetchFunc func(ctx context.Context) *models.User

type Provider struct {
	cache  *swr.Cache
	fetch  FetchFunc
	logger *slog.Logger
}

func NewProvider(fetch FetchFunc, logger *slog.Logger, opts swr.Options) *Provider {
	return &Provider{
		cache:  swr.New(opts),
		fetch:  fetch,
		logger: logger,
	}
}

// NewSeededProvider installs a server-validated snapshot so the first read is
// served synchronously with no network call (the route guard already asked the
// upstream on this request).
func NewSeededProvider(initialUser *models.User, fetch FetchFunc, logger *slog.Logger, opts swr.Options) *Provider {
	p := NewProvider(fetch, logger, opts)
	p.cache.Seed(SessionKey, initialUser)
	return p
}

func (p *Provider) fetcher(ctx context.Context) (any, error) {
	return p.fetch(ctx), nil
}

func asUser(value any) *models.User {
	user, _ := value.(*models.User)
	return user
}

// User returns the best-known current user without touching the network.
func (p *Provider) User() *models.User {
	entry, ok := p.cache.Get(SessionKey)
	if !ok {
		return nil
	}
	return asUser(entry.Value)
}

// IsLoading is true only while no value, seeded or fetched, exists yet.
func (p *Provider) IsLoading() bool {
	_, ok := p.cache.Get(SessionKey)
	return !ok
}

// Current returns the current user, loading it on first use. Concurrent
// callers share a single upstream call.
func (p *Provider) Current(ctx context.Context) *models.User {
	value, err := p.cache.Fetch(ctx, SessionKey, p.fetcher)
	if err != nil {
		return nil
	}
	return asUser(value)
}

// Refresh forces a re-fetch in the background. Fire and forget; the caller is
// never blocked on the upstream.
func (p *Provider) Refresh() {
	go func() {
		_, _ = p.cache.Refresh(context.Background(), SessionKey, p.fetcher)
	}()
}

// Seed replaces the cached value with a server-validated snapshot.
func (p *Provider) Seed(user *models.User) {
	p.cache.Seed(SessionKey, user)
}

// OnLogin records a confirmed login: an optimistic write for immediate reads,
// then a reconcile fetch. Server truth supersedes the optimistic value.
func (p *Provider) OnLogin(ctx context.Context, user *models.User) {
	if user != nil {
		p.cache.Mutate(SessionKey, user)
	}
	p.reconcile(ctx)
}

// OnLogout optimistically clears the user, then re-fetches to confirm. If the
// upstream still reports a live session the user is restored; the reconcile
// fetch is the single source of truth either way.
func (p *Provider) OnLogout(ctx context.Context) {
	p.cache.Mutate(SessionKey, (*models.User)(nil))
	p.reconcile(ctx)
}

func (p *Provider) reconcile(ctx context.Context) {
	_, _ = p.cache.Refresh(ctx, SessionKey, p.fetcher)
}
