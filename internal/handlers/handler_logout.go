package handlers

import (
	"finboard/internal/middlewares"
	"net/http"
)

// LogoutHandler ends the session. The upstream call is best-effort: local
// state is always cleared, even if the upstream is unreachable.
func LogoutHandler(ctx *middlewares.AppContext) {
	logger := ctx.Logger

	token, ok := ctx.SessionManager.GetToken(ctx)
	if ok {
		if err := ctx.API.Logout(ctx.Request.Context(), token); err != nil {
			logger.Warn("upstream logout failed, clearing local session anyway", "error", err)
		}

		provider := ctx.AuthState.For(token)
		provider.OnLogout(ctx.Request.Context())
		ctx.AuthState.Evict(token)
	}

	if user, ok := ctx.SessionManager.GetUser(ctx); ok && user != nil {
		logger.Info("user logged out", "user_id", user.ID)
	}

	if err := ctx.SessionManager.Logout(ctx); err != nil {
		logger.Error("failed to destroy session", "error", err)
	}

	ctx.Redirect("/", http.StatusSeeOther)
}
