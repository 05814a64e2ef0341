package marketdata

import (
	"context"
	"encoding/json"
	"finboard/internal/config"
	"finboard/internal/models"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Client talks to the market data vendor's REST API. Endpoints follow the
// EOD-style shape: real-time quote, end-of-day candles, and a news feed, all
// keyed by ticker with the API token as a query parameter.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg *config.MarketConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if c.baseURL == "" {
		return fmt.Errorf("no market data base url configured")
	}

	query.Set("fmt", "json")
	query.Set("api_token", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot GET %s: %s", path, resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

type quotePayload struct {
	Code          string          `json:"code"`
	Close         decimal.Decimal `json:"close"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"change_p"`
	Timestamp     int64           `json:"timestamp"`
}

func (c *Client) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	var payload quotePayload
	if err := c.get(ctx, "/real-time/"+url.PathEscape(symbol), url.Values{}, &payload); err != nil {
		return nil, err
	}

	return &models.Quote{
		Symbol:        symbol,
		Price:         payload.Close,
		Change:        payload.Change,
		ChangePercent: payload.ChangePercent,
		AsOf:          time.Unix(payload.Timestamp, 0).UTC(),
	}, nil
}

type candlePayload struct {
	Date   string          `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}

// History returns end-of-day candles for the symbol. from and to are
// YYYY-MM-DD and optional; the vendor applies its own defaults when absent.
func (c *Client) History(ctx context.Context, symbol, from, to string) ([]models.Candle, error) {
	query := url.Values{}
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}

	payload := make([]candlePayload, 0)
	if err := c.get(ctx, "/eod/"+url.PathEscape(symbol), query, &payload); err != nil {
		return nil, err
	}

	candles := make([]models.Candle, 0, len(payload))
	for _, p := range payload {
		candles = append(candles, models.Candle{
			Date:   p.Date,
			Open:   p.Open,
			High:   p.High,
			Low:    p.Low,
			Close:  p.Close,
			Volume: p.Volume,
		})
	}

	return candles, nil
}

type newsPayload struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	Link   string `json:"link"`
	Date   string `json:"date"`
}

func (c *Client) News(ctx context.Context, symbol string) ([]models.NewsItem, error) {
	query := url.Values{}
	query.Set("s", symbol)

	payload := make([]newsPayload, 0)
	if err := c.get(ctx, "/news", query, &payload); err != nil {
		return nil, err
	}

	items := make([]models.NewsItem, 0, len(payload))
	for _, p := range payload {
		publishedAt, err := time.Parse(time.RFC3339, p.Date)
		if err != nil {
			publishedAt = time.Time{}
		}

		items = append(items, models.NewsItem{
			Title:       p.Title,
			Source:      p.Source,
			URL:         p.Link,
			PublishedAt: publishedAt,
		})
	}

	return items, nil
}
