package api

import (
	"context"
	"encoding/json"
	"errors"
	"finboard/internal/models"
	"fmt"
	"net/http"
)

var errNoSession = errors.New("no active session")

// LoginResult carries the upstream session token plus the user the upstream
// reported at login time. The token is what every subsequent call presents.
type LoginResult struct {
	Token string
	User  *models.User
}

type loginResponse struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

// Login submits credentials to the upstream authentication endpoint. A 401 or
// 403 maps to ErrInvalidCredentials; everything else is an unexpected failure.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", "", body)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidCredentials
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("login failed with status %d", resp.StatusCode)
	}

	var payload loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}

	if payload.Token == "" {
		return nil, fmt.Errorf("login response carried no session token")
	}

	result := &LoginResult{Token: payload.Token}

	// The inline user is only an optimistic seed; the reconcile fetch is the
	// source of truth, so a malformed one is dropped rather than fatal.
	if len(payload.User) > 0 {
		if user, err := models.ParseUser(payload.User); err == nil {
			result.User = user
		} else {
			c.logger.Debug("ignoring malformed user in login response", "error", err)
		}
	}

	return result, nil
}

// Logout invalidates the upstream session. Callers treat it as best-effort:
// local state is cleared regardless of the outcome.
func (c *Client) Logout(ctx context.Context, token string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/logout", token, nil)
	if err != nil {
		return err
	}

	return c.do(req, nil)
}

// RequestPasswordReset asks the upstream to start a reset flow. The handler
// layer answers success-shaped no matter what, so account existence cannot be
// probed through this endpoint.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/reset/request", "", body)
	if err != nil {
		return err
	}

	return c.do(req, nil)
}

func (c *Client) ConfirmPasswordReset(ctx context.Context, resetToken, newPassword string) error {
	body := map[string]string{"token": resetToken, "password": newPassword}
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/reset/confirm", "", body)
	if err != nil {
		return err
	}

	return c.do(req, nil)
}
