package handlers

import (
	"errors"
	"finboard/internal/linking"
	"finboard/internal/middlewares"
	"net/http"
	"net/url"
)

// LinkStartHandler kicks off the brokerage linking flow and redirects the
// browser to the provider's authorize URL.
func LinkStartHandler(ctx *middlewares.AppContext) {
	if ctx.Link == nil {
		ctx.Redirect("/error?error=linking_disabled", http.StatusSeeOther)
		return
	}

	authURL, err := ctx.Link.StartLink(ctx)
	if err != nil {
		ctx.Logger.Error("failed to start link flow", "error", err)
		ctx.Redirect("/error?error=server_error&error_description="+url.QueryEscape("Could not start account linking"), http.StatusSeeOther)
		return
	}

	ctx.Redirect(authURL, http.StatusFound)
}

// LinkCallbackHandler finishes the flow: the provider's public token is
// exchanged upstream, which persists the connection against the user.
func LinkCallbackHandler(ctx *middlewares.AppContext) {
	if ctx.Link == nil {
		ctx.Redirect("/error?error=linking_disabled", http.StatusSeeOther)
		return
	}

	publicToken, err := ctx.Link.HandleCallback(ctx)
	if err != nil {
		var linkErr *linking.LinkError
		if errors.As(err, &linkErr) {
			ctx.Logger.Warn("link callback failed", "error", linkErr.Message)
			ctx.Redirect(linkErr.RedirectURL, http.StatusSeeOther)
			return
		}

		ctx.Logger.Error("link callback failed", "error", err)
		ctx.Redirect("/error?error=server_error", http.StatusSeeOther)
		return
	}

	token, ok := sessionToken(ctx)
	if !ok {
		ctx.Redirect("/login", http.StatusSeeOther)
		return
	}

	account, err := ctx.API.ExchangePublicToken(ctx.Request.Context(), token, publicToken)
	if err != nil {
		ctx.Logger.Error("failed to exchange public token", "error", err)
		ctx.Redirect("/error?error=server_error&error_description="+url.QueryEscape("Could not complete account linking"), http.StatusSeeOther)
		return
	}

	ctx.Logger.Info("brokerage account linked", "institution", account.Institution)
	ctx.Redirect("/accounts", http.StatusSeeOther)
}
