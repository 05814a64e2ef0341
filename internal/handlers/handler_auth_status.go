package handlers

import (
	"finboard/internal/middlewares"
	"finboard/internal/models"
	"net/http"
)

type AuthStatusResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

// AuthStatusHandler reports the session's current user from the per-session
// cache. The guard validated and seeded on the way in, so this read is served
// without a second upstream call.
func AuthStatusHandler(ctx *middlewares.AppContext) {
	response := AuthStatusResponse{
		Authenticated: false,
	}

	token, ok := ctx.SessionManager.GetToken(ctx)
	if !ok {
		ctx.WriteJSON(http.StatusUnauthorized, response)
		return
	}

	provider := ctx.AuthState.For(token)
	if user := provider.Current(ctx.Request.Context()); user != nil {
		response.Authenticated = true
		response.User = user
		ctx.WriteJSON(http.StatusOK, response)
		return
	}

	ctx.WriteJSON(http.StatusUnauthorized, response)
}
