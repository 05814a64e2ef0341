package handlers

import (
	"errors"
	"finboard/internal/api"
	"finboard/internal/middlewares"
	"finboard/internal/utils"
	"net/http"
)

// loginFailedMessage is deliberately identical for bad credentials and
// internal failures so the form cannot be used to probe which accounts exist.
const loginFailedMessage = "Sign in failed. Check your email and password and try again."

type loginPageData struct {
	Error string
	Next  string
}

// LoginPageHandler renders the sign-in form. An already-authenticated session
// skips straight to its destination.
func LoginPageHandler(ctx *middlewares.AppContext) {
	next := safeNext(ctx.Request.URL.Query().Get("next"))

	if ctx.SessionManager.IsUserAuthenticated(ctx) {
		ctx.Redirect(utils.SafeRedirect(next, "/dashboard"), http.StatusSeeOther)
		return
	}

	RenderPage(ctx, http.StatusOK, "login.html", loginPageData{Next: next})
}

// LoginHandler submits credentials upstream, confirms the new session is live,
// then navigates. The optimistic user from the login response is visible
// immediately; the reconcile fetch inside OnLogin is what actually confirms.
func LoginHandler(ctx *middlewares.AppContext) {
	if err := ctx.Request.ParseForm(); err != nil {
		RenderPage(ctx, http.StatusBadRequest, "login.html", loginPageData{Error: loginFailedMessage})
		return
	}

	email := ctx.Request.PostFormValue("email")
	password := ctx.Request.PostFormValue("password")
	next := safeNext(ctx.Request.PostFormValue("next"))

	if email == "" || password == "" {
		RenderPage(ctx, http.StatusUnauthorized, "login.html", loginPageData{Error: loginFailedMessage, Next: next})
		return
	}

	result, err := ctx.API.Login(ctx.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, api.ErrInvalidCredentials) {
			ctx.Logger.Debug("login rejected", "email", utils.RedactEmail(email))
		} else {
			ctx.Logger.Error("login failed unexpectedly", "error", err)
		}

		RenderPage(ctx, http.StatusUnauthorized, "login.html", loginPageData{Error: loginFailedMessage, Next: next})
		return
	}

	provider := ctx.AuthState.For(result.Token)
	provider.OnLogin(ctx.Request.Context(), result.User)

	confirmed := provider.User()
	if confirmed == nil {
		ctx.Logger.Error("login token rejected on confirmation", "email", utils.RedactEmail(email))
		ctx.AuthState.Evict(result.Token)
		RenderPage(ctx, http.StatusUnauthorized, "login.html", loginPageData{Error: loginFailedMessage, Next: next})
		return
	}

	if err := ctx.SessionManager.RenewToken(ctx); err != nil {
		ctx.Logger.Error("failed to renew session token", "error", err)
		RenderPage(ctx, http.StatusUnauthorized, "login.html", loginPageData{Error: loginFailedMessage, Next: next})
		return
	}

	ctx.SessionManager.SetToken(ctx, result.Token)
	ctx.SessionManager.SetUser(ctx, confirmed)
	ctx.SessionManager.SetAuthenticated(ctx, true)

	ctx.Logger.Info("user logged in", "user_id", confirmed.ID)

	ctx.Redirect(utils.SafeRedirect(next, "/dashboard"), http.StatusSeeOther)
}

// safeNext keeps only same-site relative targets; anything else becomes empty
// and falls through to the default destination.
func safeNext(next string) string {
	if utils.IsSafeRedirect(next) {
		return next
	}
	return ""
}
