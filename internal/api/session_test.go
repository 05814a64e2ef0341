package api

import (
	"context"
	"finboard/internal/config"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{
		API: config.APIConfig{
			BaseURL: baseURL,
			Timeout: 5 * time.Second,
		},
	}

	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCurrentUser(t *testing.T) {
	t.Run("ShouldReturnUserOnValidSession", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/me", r.URL.Path)
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"u1","email":"ana@example.com"}`))
		}))
		defer server.Close()

		user, err := newTestClient(server.URL).CurrentUser(context.Background(), "tok-1")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "ana@example.com", user.Email)
	})

	t.Run("ShouldClassifyUnauthorizedAsStatusError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		user, err := newTestClient(server.URL).CurrentUser(context.Background(), "tok-1")
		assert.Nil(t, user)

		var sessionErr *SessionError
		require.ErrorAs(t, err, &sessionErr)
		assert.Equal(t, SessionErrorStatus, sessionErr.Kind)
		assert.Equal(t, http.StatusUnauthorized, sessionErr.Status)
	})

	t.Run("ShouldClassifyServerErrorAsStatusError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).CurrentUser(context.Background(), "tok-1")

		var sessionErr *SessionError
		require.ErrorAs(t, err, &sessionErr)
		assert.Equal(t, SessionErrorStatus, sessionErr.Kind)
		assert.Equal(t, http.StatusInternalServerError, sessionErr.Status)
	})

	t.Run("ShouldClassifyBadPayloadAsMalformed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"u1"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).CurrentUser(context.Background(), "tok-1")

		var sessionErr *SessionError
		require.ErrorAs(t, err, &sessionErr)
		assert.Equal(t, SessionErrorMalformed, sessionErr.Kind)
	})

	t.Run("ShouldClassifyUnreachableUpstreamAsNetwork", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := newTestClient(server.URL).CurrentUser(context.Background(), "tok-1")

		var sessionErr *SessionError
		require.ErrorAs(t, err, &sessionErr)
		assert.Equal(t, SessionErrorNetwork, sessionErr.Kind)
	})

	t.Run("ShouldFailClosedWithoutBaseURL", func(t *testing.T) {
		_, err := newTestClient("").CurrentUser(context.Background(), "tok-1")

		var sessionErr *SessionError
		require.ErrorAs(t, err, &sessionErr)
		assert.ErrorIs(t, err, ErrNoBaseURL)
	})
}

func TestFetchCurrentUser(t *testing.T) {
	t.Run("ShouldReturnUserOnSuccess", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"u1","email":"ana@example.com"}`))
		}))
		defer server.Close()

		user := newTestClient(server.URL).FetchCurrentUser(context.Background(), "tok-1")
		require.NotNil(t, user)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("ShouldNormalizeFailureToNil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		user := newTestClient(server.URL).FetchCurrentUser(context.Background(), "tok-1")
		assert.Nil(t, user)
	})
}
