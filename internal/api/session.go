package api

import (
	"context"
	"finboard/internal/metrics"
	"finboard/internal/models"
	"io"
	"net/http"
)

// CurrentUser calls the upstream who-am-I endpoint with the given session
// token. Any failure is reported as a *SessionError; a user is only returned
// when the upstream produced a well-formed 200.
func (c *Client) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/me", token, nil)
	if err != nil {
		return nil, &SessionError{Kind: SessionErrorNetwork, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &SessionError{Kind: SessionErrorNetwork, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &SessionError{Kind: SessionErrorNetwork, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &SessionError{Kind: SessionErrorStatus, Status: resp.StatusCode, Err: errNoSession}
	}

	user, err := models.ParseUser(body)
	if err != nil {
		return nil, &SessionError{Kind: SessionErrorMalformed, Err: err}
	}

	return user, nil
}

// FetchCurrentUser is the normalizing session fetcher: it never fails. Session
// absence and session-check failure both mean "logged out"; the cause is kept
// out of the UI and recorded at debug level only.
func (c *Client) FetchCurrentUser(ctx context.Context, token string) *models.User {
	user, err := c.CurrentUser(ctx, token)
	if err != nil {
		metrics.SessionFetchesTotal.WithLabelValues(metrics.SessionFetchOutcomeAnonymous).Inc()
		c.logger.Debug("session check resolved to logged out", "error", err)
		return nil
	}

	metrics.SessionFetchesTotal.WithLabelValues(metrics.SessionFetchOutcomeUser).Inc()
	return user
}
