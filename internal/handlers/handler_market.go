package handlers

import (
	"finboard/internal/middlewares"
	"net/http"
)

func QuoteHandler(ctx *middlewares.AppContext) {
	symbol := ctx.Request.URL.Query().Get("symbol")
	if symbol == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Missing symbol parameter")
		return
	}

	quote, err := ctx.Market.Quote(ctx.Request.Context(), symbol)
	if err != nil {
		ctx.Logger.Error("failed to fetch quote", "symbol", symbol, "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "Failed to fetch quote")
		return
	}

	ctx.WriteJSON(http.StatusOK, quote)
}

func HistoryHandler(ctx *middlewares.AppContext) {
	query := ctx.Request.URL.Query()

	symbol := query.Get("symbol")
	if symbol == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Missing symbol parameter")
		return
	}

	candles, err := ctx.Market.History(ctx.Request.Context(), symbol, query.Get("from"), query.Get("to"))
	if err != nil {
		ctx.Logger.Error("failed to fetch history", "symbol", symbol, "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "Failed to fetch history")
		return
	}

	ctx.WriteJSON(http.StatusOK, candles)
}

func NewsHandler(ctx *middlewares.AppContext) {
	symbol := ctx.Request.URL.Query().Get("symbol")
	if symbol == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Missing symbol parameter")
		return
	}

	news, err := ctx.Market.News(ctx.Request.Context(), symbol)
	if err != nil {
		ctx.Logger.Error("failed to fetch news", "symbol", symbol, "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "Failed to fetch news")
		return
	}

	ctx.WriteJSON(http.StatusOK, news)
}
