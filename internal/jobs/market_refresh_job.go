package jobs

import (
	"context"
	"finboard/internal/marketdata"
	"log/slog"
	"time"
)

// MarketRefreshJob keeps the quote cache warm for the configured watchlist.
// Leader-only: with a shared redis cache one replica refreshing is enough.
type MarketRefreshJob struct {
	market   *marketdata.Service
	interval time.Duration
	logger   *slog.Logger
}

func NewMarketRefreshJob(market *marketdata.Service, interval time.Duration, logger *slog.Logger) *MarketRefreshJob {
	return &MarketRefreshJob{
		market:   market,
		interval: interval,
		logger:   logger,
	}
}

func (j *MarketRefreshJob) Name() string {
	return "market_refresh"
}

func (j *MarketRefreshJob) RequiresLeadership() bool {
	return true
}

func (j *MarketRefreshJob) Interval() time.Duration {
	return j.interval
}

// Run performs one prefetch pass over the configured symbols.
func (j *MarketRefreshJob) Run(ctx context.Context) error {
	j.market.Prefetch(ctx)
	return nil
}
