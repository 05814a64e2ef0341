package handlers

import (
	"finboard/internal/middlewares"
	"finboard/internal/utils"
	"net/http"
)

type resetPageData struct {
	Token     string
	Requested bool
	Confirmed bool
}

func ResetPasswordPageHandler(ctx *middlewares.AppContext) {
	RenderPage(ctx, http.StatusOK, "reset_password.html", resetPageData{
		Token: ctx.Request.URL.Query().Get("token"),
	})
}

// RequestPasswordResetHandler always answers success-shaped. Whether the
// address has an account is not observable from this endpoint.
func RequestPasswordResetHandler(ctx *middlewares.AppContext) {
	if err := ctx.Request.ParseForm(); err != nil {
		RenderPage(ctx, http.StatusOK, "reset_password.html", resetPageData{Requested: true})
		return
	}

	email := ctx.Request.PostFormValue("email")
	if email != "" {
		if err := ctx.API.RequestPasswordReset(ctx.Request.Context(), email); err != nil {
			ctx.Logger.Warn("password reset request failed upstream",
				"email", utils.RedactEmail(email), "error", err)
		}
	}

	RenderPage(ctx, http.StatusOK, "reset_password.html", resetPageData{Requested: true})
}

// ConfirmPasswordResetHandler finishes the flow. The confirmation copy hedges
// on link validity, so the outcome page is the same either way.
func ConfirmPasswordResetHandler(ctx *middlewares.AppContext) {
	if err := ctx.Request.ParseForm(); err != nil {
		RenderPage(ctx, http.StatusOK, "reset_password.html", resetPageData{Confirmed: true})
		return
	}

	token := ctx.Request.PostFormValue("token")
	password := ctx.Request.PostFormValue("password")

	if token != "" && password != "" {
		if err := ctx.API.ConfirmPasswordReset(ctx.Request.Context(), token, password); err != nil {
			ctx.Logger.Warn("password reset confirmation failed upstream", "error", err)
		}
	}

	RenderPage(ctx, http.StatusOK, "reset_password.html", resetPageData{Confirmed: true})
}
