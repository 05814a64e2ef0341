package marketdata

import (
	"context"
	"finboard/internal/config"
	"log/slog"
	"time"
)

//go:generate mockgen -source=cache_provider.go -destination=../mocks/cache.go -package=mocks

// CacheProvider stores serialized market payloads under namespaced keys with a
// per-entry TTL. Expired entries behave as misses.
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Size(ctx context.Context) int
}

// NewCacheProvider returns a new CacheProvider
func NewCacheProvider(cfg *config.Config, logger *slog.Logger) (CacheProvider, error) {
	switch cfg.Cache.Type {
	case "redis":
		return NewRedisCache(cfg, logger)
	case "memory":
		fallthrough
	default:
		return NewMemCache(logger), nil
	}
}
