package marketdata

import (
	"context"
	"finboard/internal/metrics"
	"log/slog"
	"sync"
	"time"
)

type cachedEntry struct {
	value     []byte
	expiresAt time.Time
}

type MemCache struct {
	cache  map[string]cachedEntry
	mutex  sync.RWMutex
	logger *slog.Logger
}

func NewMemCache(logger *slog.Logger) *MemCache {
	return &MemCache{
		cache:  make(map[string]cachedEntry),
		logger: logger,
	}
}

func (m *MemCache) Get(_ context.Context, key string) ([]byte, bool) {
	m.mutex.RLock()
	entry, exists := m.cache[key]
	m.mutex.RUnlock()

	if !exists || time.Now().After(entry.expiresAt) {
		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeMemory).Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(metrics.CacheTypeMemory).Inc()
	return entry.value, true
}

func (m *MemCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cache[key] = cachedEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (m *MemCache) Delete(_ context.Context, key string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.cache, key)
}

// Size returns the current number of elements in the cache, expired entries
// included until their next Get.
func (m *MemCache) Size(_ context.Context) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.cache)
}
