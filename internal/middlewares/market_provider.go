package middlewares

import (
	"context"
	"finboard/internal/models"
)

//go:generate mockgen -source=market_provider.go -destination=../mocks/market.go -package=mocks

// MarketProvider serves quotes, candles and news for the symbol pages.
type MarketProvider interface {
	Quote(ctx context.Context, symbol string) (*models.Quote, error)
	History(ctx context.Context, symbol, from, to string) ([]models.Candle, error)
	News(ctx context.Context, symbol string) ([]models.NewsItem, error)
}
