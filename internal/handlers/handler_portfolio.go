package handlers

import (
	"finboard/internal/middlewares"
	"net/http"
)

// HoldingsHandler is the JSON surface behind the portfolio page.
func HoldingsHandler(ctx *middlewares.AppContext) {
	token, ok := sessionToken(ctx)
	if !ok {
		ctx.SetJSONError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	holdings, err := ctx.API.Holdings(ctx.Request.Context(), token)
	if err != nil {
		ctx.Logger.Error("failed to fetch holdings", "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "Failed to fetch holdings")
		return
	}

	ctx.WriteJSON(http.StatusOK, holdings)
}

func SummaryHandler(ctx *middlewares.AppContext) {
	token, ok := sessionToken(ctx)
	if !ok {
		ctx.SetJSONError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	summary, err := ctx.API.Summary(ctx.Request.Context(), token)
	if err != nil {
		ctx.Logger.Error("failed to fetch summary", "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "Failed to fetch summary")
		return
	}

	ctx.WriteJSON(http.StatusOK, summary)
}

func AnalysisHandler(ctx *middlewares.AppContext) {
	token, ok := sessionToken(ctx)
	if !ok {
		ctx.SetJSONError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	analysis, err := ctx.API.Analysis(ctx.Request.Context(), token)
	if err != nil {
		ctx.Logger.Error("failed to fetch analysis", "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "Failed to fetch analysis")
		return
	}

	ctx.WriteJSON(http.StatusOK, analysis)
}

func LinkedAccountsHandler(ctx *middlewares.AppContext) {
	token, ok := sessionToken(ctx)
	if !ok {
		ctx.SetJSONError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	accounts, err := ctx.API.LinkedAccounts(ctx.Request.Context(), token)
	if err != nil {
		ctx.Logger.Error("failed to fetch linked accounts", "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "Failed to fetch linked accounts")
		return
	}

	ctx.WriteJSON(http.StatusOK, accounts)
}
