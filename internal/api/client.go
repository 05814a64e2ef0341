package api

import (
	"bytes"
	"context"
	"encoding/json"
	"finboard/internal/config"
	"finboard/internal/models"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Client talks to the upstream portfolio/auth REST API. It is the only place
// in the application that knows the upstream's wire shapes; everything it
// returns is parsed into typed models at this boundary.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.API.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.API.Timeout},
		logger:  logger,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body any) (*http.Request, error) {
	if c.baseURL == "" {
		return nil, ErrNoBaseURL
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// do executes the request and decodes a 2xx JSON body into out. Non-2xx
// responses become errors carrying the status code.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}

	return nil
}

func (c *Client) Holdings(ctx context.Context, token string) ([]models.Holding, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/portfolio/holdings", token, nil)
	if err != nil {
		return nil, err
	}

	var holdings []models.Holding
	if err := c.do(req, &holdings); err != nil {
		return nil, fmt.Errorf("failed to fetch holdings: %w", err)
	}

	return holdings, nil
}

func (c *Client) Summary(ctx context.Context, token string) (*models.PortfolioSummary, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/portfolio/summary", token, nil)
	if err != nil {
		return nil, err
	}

	var summary models.PortfolioSummary
	if err := c.do(req, &summary); err != nil {
		return nil, fmt.Errorf("failed to fetch portfolio summary: %w", err)
	}

	return &summary, nil
}

func (c *Client) Analysis(ctx context.Context, token string) (*models.Analysis, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/portfolio/analysis", token, nil)
	if err != nil {
		return nil, err
	}

	var analysis models.Analysis
	if err := c.do(req, &analysis); err != nil {
		return nil, fmt.Errorf("failed to fetch analysis: %w", err)
	}

	return &analysis, nil
}

func (c *Client) LinkedAccounts(ctx context.Context, token string) ([]models.LinkedAccount, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/link/accounts", token, nil)
	if err != nil {
		return nil, err
	}

	var accounts []models.LinkedAccount
	if err := c.do(req, &accounts); err != nil {
		return nil, fmt.Errorf("failed to fetch linked accounts: %w", err)
	}

	return accounts, nil
}

// ExchangePublicToken trades the public token obtained from the account-linking
// provider's callback for a durable brokerage connection upstream.
func (c *Client) ExchangePublicToken(ctx context.Context, token, publicToken string) (*models.LinkedAccount, error) {
	body := map[string]string{"public_token": publicToken}
	req, err := c.newRequest(ctx, http.MethodPost, "/link/exchange", token, body)
	if err != nil {
		return nil, err
	}

	var account models.LinkedAccount
	if err := c.do(req, &account); err != nil {
		return nil, fmt.Errorf("failed to exchange public token: %w", err)
	}

	return &account, nil
}
