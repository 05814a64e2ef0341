package middlewares

import (
	"finboard/internal/models"
	"net/http"
)

//go:generate mockgen -source=session_provider.go -destination=../mocks/session.go -package=mocks

// SessionProvider is the cookie-session surface the handlers and guards use.
// The token is the upstream API credential bound to this browser session; the
// stored user is the last value the guard validated.
type SessionProvider interface {
	SetUser(ctx *AppContext, user *models.User)
	GetUser(ctx *AppContext) (user *models.User, ok bool)
	SetToken(ctx *AppContext, token string)
	GetToken(ctx *AppContext) (token string, ok bool)
	SetAuthenticated(ctx *AppContext, authenticated bool)
	IsUserAuthenticated(ctx *AppContext) bool
	SetLinkFlow(ctx *AppContext, state, nonce, verifier string)
	GetLinkFlow(ctx *AppContext) (state, nonce, verifier string)
	ClearLinkFlow(ctx *AppContext)
	RenewToken(ctx *AppContext) error
	Logout(ctx *AppContext) error

	LoadAndSave(next http.Handler) http.Handler
}
