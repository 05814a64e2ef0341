package handlers

import (
	"errors"
	"finboard/internal/models"
	"finboard/internal/testutil"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler(t *testing.T) {
	t.Run("ShouldReturnQuote", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/market/quote")
		defer tc.Finish()

		tc.WithQueryParam("symbol", "AAPL.US")
		tc.MockMarket.EXPECT().Quote(gomock.Any(), "AAPL.US").
			Return(&models.Quote{Symbol: "AAPL.US", Price: decimal.NewFromFloat(231.40)}, nil)

		tc.CallHandler(QuoteHandler)

		tc.AssertStatus(t, http.StatusOK)
		tc.AssertJSONString(t, "symbol", "AAPL.US")
	})

	t.Run("ShouldRejectMissingSymbol", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/market/quote")
		defer tc.Finish()

		tc.CallHandler(QuoteHandler)

		tc.AssertStatus(t, http.StatusBadRequest)
		tc.AssertJSONString(t, "error", "Missing symbol parameter")
	})

	t.Run("ShouldReturn502OnVendorFailure", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/market/quote")
		defer tc.Finish()

		tc.WithQueryParam("symbol", "AAPL.US")
		tc.MockMarket.EXPECT().Quote(gomock.Any(), "AAPL.US").
			Return(nil, errors.New("vendor down"))

		tc.CallHandler(QuoteHandler)

		tc.AssertStatus(t, http.StatusBadGateway)
	})
}

func TestHistoryHandler(t *testing.T) {
	t.Run("ShouldPassRangeThrough", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/market/history")
		defer tc.Finish()

		tc.WithQueryParam("symbol", "VOO.US")
		tc.WithQueryParam("from", "2026-01-01")
		tc.WithQueryParam("to", "2026-02-01")
		tc.MockMarket.EXPECT().History(gomock.Any(), "VOO.US", "2026-01-01", "2026-02-01").
			Return([]models.Candle{{Date: "2026-01-02"}}, nil)

		tc.CallHandler(HistoryHandler)

		tc.AssertStatus(t, http.StatusOK)
	})

	t.Run("ShouldRejectMissingSymbol", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/market/history")
		defer tc.Finish()

		tc.CallHandler(HistoryHandler)

		tc.AssertStatus(t, http.StatusBadRequest)
	})
}

func TestNewsHandler(t *testing.T) {
	t.Run("ShouldReturnNews", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/market/news")
		defer tc.Finish()

		tc.WithQueryParam("symbol", "AAPL.US")
		tc.MockMarket.EXPECT().News(gomock.Any(), "AAPL.US").
			Return([]models.NewsItem{{Title: "Earnings beat"}}, nil)

		tc.CallHandler(NewsHandler)

		tc.AssertStatus(t, http.StatusOK)
	})

	t.Run("ShouldRejectMissingSymbol", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/market/news")
		defer tc.Finish()

		tc.CallHandler(NewsHandler)

		tc.AssertStatus(t, http.StatusBadRequest)
	})
}
