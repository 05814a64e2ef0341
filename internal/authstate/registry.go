package authstate

import (
	"context"
	"finboard/internal/models"
	"finboard/internal/swr"
	"log/slog"
	"sync"
)

// TokenFetchFunc loads the current user for a specific session token.
type TokenFetchFunc func(ctx context.Context, token string) *models.User

// Registry maps session tokens to their providers. Providers live until the
// session is logged out or evicted; there is no other teardown, mirroring a
// browser context that ends when the tab closes.
type Registry struct {
	mu        sync.Mutex
	providers map[string]*Provider
	fetchUser TokenFetchFunc
	logger    *slog.Logger
	opts      swr.Options
}

func NewRegistry(fetchUser TokenFetchFunc, logger *slog.Logger, opts swr.Options) *Registry {
	return &Registry{
		providers: make(map[string]*Provider),
		fetchUser: fetchUser,
		logger:    logger,
		opts:      opts,
	}
}

func (r *Registry) bind(token string) FetchFunc {
	return func(ctx context.Context) *models.User {
		return r.fetchUser(ctx, token)
	}
}

// For returns the provider for token, creating an unseeded one when the token
// has not been seen before.
func (r *Registry) For(token string) *Provider {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, exists := r.providers[token]; exists {
		return p
	}

	p := NewProvider(r.bind(token), r.logger, r.opts)
	r.providers[token] = p
	return p
}

// Seed returns the provider for token with user installed as a validated
// snapshot. The route guard calls this after a successful upstream check so an
// immediately following status read issues no second call.
func (r *Registry) Seed(token string, user *models.User) *Provider {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, exists := r.providers[token]; exists {
		p.Seed(user)
		return p
	}

	p := NewSeededProvider(user, r.bind(token), r.logger, r.opts)
	r.providers[token] = p
	return p
}

// Evict drops the provider for token. Used at logout and when the guard finds
// a session the upstream no longer recognizes.
func (r *Registry) Evict(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.providers, token)
}

// Size returns the number of live providers.
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.providers)
}
