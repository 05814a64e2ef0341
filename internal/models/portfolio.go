package models

import (
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Holding is a single position as reported by the upstream API.
type Holding struct {
	Symbol      string          `json:"symbol"`
	Name        string          `json:"name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	CostBasis   *money.Money    `json:"cost_basis"`
	MarketValue *money.Money    `json:"market_value"`
	GainLoss    *money.Money    `json:"gain_loss,omitempty"`
}

type PortfolioSummary struct {
	TotalValue       *money.Money    `json:"total_value"`
	DayChange        *money.Money    `json:"day_change"`
	DayChangePercent decimal.Decimal `json:"day_change_percent"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Analysis is the AI-generated portfolio commentary produced upstream. The
// body is markdown; rendering is the front-end's job.
type Analysis struct {
	Markdown    string    `json:"markdown"`
	Model       string    `json:"model,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

type Quote struct {
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"change_percent"`
	AsOf          time.Time       `json:"as_of"`
}

type Candle struct {
	Date   string          `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}

type NewsItem struct {
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

// LinkedAccount is a brokerage connection established through the
// account-linking provider.
type LinkedAccount struct {
	ID          string    `json:"id"`
	Institution string    `json:"institution"`
	Mask        string    `json:"mask,omitempty"`
	LinkedAt    time.Time `json:"linked_at"`
}
