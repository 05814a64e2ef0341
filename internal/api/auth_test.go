package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Run("ShouldReturnTokenAndUser", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/login", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ana@example.com", body["email"])
			assert.Equal(t, "hunter2", body["password"])

			w.Write([]byte(`{"token":"tok-1","user":{"id":"u1","email":"ana@example.com"}}`))
		}))
		defer server.Close()

		result, err := newTestClient(server.URL).Login(context.Background(), "ana@example.com", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "tok-1", result.Token)
		require.NotNil(t, result.User)
		assert.Equal(t, "u1", result.User.ID)
	})

	t.Run("ShouldMapUnauthorizedToInvalidCredentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Login(context.Background(), "ana@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("ShouldMapForbiddenToInvalidCredentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Login(context.Background(), "ana@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("ShouldNotMapServerErrorToInvalidCredentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Login(context.Background(), "ana@example.com", "hunter2")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("ShouldDropMalformedInlineUserButKeepToken", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"token":"tok-1","user":{"email":"ana@example.com"}}`))
		}))
		defer server.Close()

		result, err := newTestClient(server.URL).Login(context.Background(), "ana@example.com", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "tok-1", result.Token)
		assert.Nil(t, result.User)
	})

	t.Run("ShouldRejectResponseWithoutToken", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"user":{"id":"u1","email":"ana@example.com"}}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Login(context.Background(), "ana@example.com", "hunter2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no session token")
	})
}

func TestLogout(t *testing.T) {
	t.Run("ShouldPresentSessionToken", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/logout", r.URL.Path)
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		assert.NoError(t, newTestClient(server.URL).Logout(context.Background(), "tok-1"))
	})

	t.Run("ShouldSurfaceUpstreamFailure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		assert.Error(t, newTestClient(server.URL).Logout(context.Background(), "tok-1"))
	})
}

func TestPasswordReset(t *testing.T) {
	t.Run("ShouldRequestResetWithoutToken", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/reset/request", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ana@example.com", body["email"])

			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		assert.NoError(t, newTestClient(server.URL).RequestPasswordReset(context.Background(), "ana@example.com"))
	})

	t.Run("ShouldConfirmResetWithTokenAndPassword", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/reset/confirm", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "reset-tok", body["token"])
			assert.Equal(t, "new-password", body["password"])

			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		assert.NoError(t, newTestClient(server.URL).ConfirmPasswordReset(context.Background(), "reset-tok", "new-password"))
	})
}
