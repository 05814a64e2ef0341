package marketdata

import (
	"context"
	"encoding/json"
	"finboard/internal/config"
	"finboard/internal/metrics"
	"finboard/internal/models"
	"log/slog"
	"time"
)

const (
	fetchKindQuote   = "quote"
	fetchKindHistory = "history"
	fetchKindNews    = "news"
)

// Service is the cache-aside layer over the vendor client. Quotes and news
// expire on their configured TTLs; history is keyed by range and kept on the
// quote TTL since intraday updates shift the last candle.
type Service struct {
	client *Client
	cache  CacheProvider
	cfg    *config.MarketConfig
	logger *slog.Logger
}

func NewService(client *Client, cache CacheProvider, cfg *config.MarketConfig, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *Service) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	key := "quote:" + symbol

	if data, ok := s.cache.Get(ctx, key); ok {
		var quote models.Quote
		if err := json.Unmarshal(data, &quote); err == nil {
			return &quote, nil
		}
		s.cache.Delete(ctx, key)
	}

	start := time.Now()
	quote, err := s.client.Quote(ctx, symbol)
	metrics.QuoteFetchDuration.WithLabelValues(fetchKindQuote).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.QuoteFetchErrors.WithLabelValues(fetchKindQuote).Inc()
		return nil, err
	}

	s.store(ctx, key, quote, s.cfg.QuoteTTL)
	return quote, nil
}

func (s *Service) History(ctx context.Context, symbol, from, to string) ([]models.Candle, error) {
	key := "history:" + symbol + ":" + from + ":" + to

	if data, ok := s.cache.Get(ctx, key); ok {
		var candles []models.Candle
		if err := json.Unmarshal(data, &candles); err == nil {
			return candles, nil
		}
		s.cache.Delete(ctx, key)
	}

	start := time.Now()
	candles, err := s.client.History(ctx, symbol, from, to)
	metrics.QuoteFetchDuration.WithLabelValues(fetchKindHistory).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.QuoteFetchErrors.WithLabelValues(fetchKindHistory).Inc()
		return nil, err
	}

	s.store(ctx, key, candles, s.cfg.QuoteTTL)
	return candles, nil
}

func (s *Service) News(ctx context.Context, symbol string) ([]models.NewsItem, error) {
	key := "news:" + symbol

	if data, ok := s.cache.Get(ctx, key); ok {
		var items []models.NewsItem
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
		s.cache.Delete(ctx, key)
	}

	start := time.Now()
	items, err := s.client.News(ctx, symbol)
	metrics.QuoteFetchDuration.WithLabelValues(fetchKindNews).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.QuoteFetchErrors.WithLabelValues(fetchKindNews).Inc()
		return nil, err
	}

	s.store(ctx, key, items, s.cfg.NewsTTL)
	return items, nil
}

// Prefetch warms the quote cache for the configured symbols. Used by the
// background refresh job so dashboard loads rarely pay vendor latency.
func (s *Service) Prefetch(ctx context.Context) {
	for _, symbol := range s.cfg.Symbols {
		if _, err := s.Quote(ctx, symbol); err != nil {
			s.logger.Warn("failed to prefetch quote", "symbol", symbol, "error", err)
		}
	}
}

func (s *Service) store(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("failed to marshal market payload for cache", "key", key, "error", err)
		return
	}

	s.cache.Set(ctx, key, data, ttl)
}
