package middlewares

import (
	"finboard/internal/utils"
	"net/http"
	"net/url"
)

const LoginPath = "/login"

// RequirePageAuth gates server-rendered pages. The check runs in full on every
// request: token presence, then validation against the upstream who-am-I
// endpoint. No client-held cache is consulted here; the cache exists to serve
// reads after the render, never to decide whether the render happens.
func RequirePageAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		token, ok := appCtx.SessionManager.GetToken(appCtx)
		if !ok || token == "" {
			redirectToLogin(appCtx)
			return
		}

		user, err := appCtx.API.CurrentUser(r.Context(), token)
		if err != nil {
			appCtx.Logger.Debug("session rejected by upstream", "error", err)
			appCtx.AuthState.Evict(token)
			if err := appCtx.SessionManager.Logout(appCtx); err != nil {
				appCtx.Logger.Error("failed to destroy rejected session", "error", err)
			}
			redirectToLogin(appCtx)
			return
		}

		appCtx.SetPrincipal(user)
		appCtx.AuthState.Seed(token, user)

		next.ServeHTTP(w, r)
	})
}

// RequireAPIAuth is the JSON-surface variant of the guard: same checks, 401
// instead of a redirect. A bearer token in the Authorization header takes
// precedence over the cookie session, for non-browser clients.
func RequireAPIAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		token, err := utils.ExtractAuthorizationHeader(r)
		if err != nil {
			var ok bool
			token, ok = appCtx.SessionManager.GetToken(appCtx)
			if !ok || token == "" {
				appCtx.SetJSONError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
				return
			}
		}

		user, err := appCtx.API.CurrentUser(r.Context(), token)
		if err != nil {
			appCtx.Logger.Debug("api session rejected by upstream", "error", err)
			appCtx.SetJSONError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
			return
		}

		appCtx.SetPrincipal(user)
		appCtx.AuthState.Seed(token, user)

		next.ServeHTTP(w, r)
	})
}

// redirectToLogin sends the browser to the login page with the original path
// carried in next, percent-encoded. The login handler re-validates next before
// using it; this side only ever encodes what the router saw.
func redirectToLogin(ctx *AppContext) {
	next := ctx.Request.URL.Path
	if query := ctx.Request.URL.RawQuery; query != "" {
		next += "?" + query
	}

	ctx.Redirect(LoginPath+"?next="+url.QueryEscape(next), http.StatusFound)
}
