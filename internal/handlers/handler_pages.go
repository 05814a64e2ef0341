package handlers

import (
	"bytes"
	"finboard/internal/middlewares"
	"finboard/internal/models"
	"html/template"
	"net/http"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

func IndexHandler(ctx *middlewares.AppContext) {
	if ctx.SessionManager.IsUserAuthenticated(ctx) {
		ctx.Redirect("/dashboard", http.StatusSeeOther)
		return
	}

	RenderPage(ctx, http.StatusOK, "index.html", nil)
}

type dashboardPageData struct {
	User    *models.User
	Summary *models.PortfolioSummary
	Quotes  []*models.Quote
}

// DashboardHandler renders the landing view: summary plus the configured
// watchlist. Both sections degrade to empty rather than failing the page.
func DashboardHandler(ctx *middlewares.AppContext) {
	data := dashboardPageData{User: ctx.GetPrincipal()}

	token, ok := sessionToken(ctx)
	if ok {
		summary, err := ctx.API.Summary(ctx.Request.Context(), token)
		if err != nil {
			ctx.Logger.Warn("failed to load portfolio summary", "error", err)
		} else {
			data.Summary = summary
		}
	}

	for _, symbol := range ctx.Config.Market.Symbols {
		quote, err := ctx.Market.Quote(ctx.Request.Context(), symbol)
		if err != nil {
			ctx.Logger.Warn("failed to load quote", "symbol", symbol, "error", err)
			continue
		}
		data.Quotes = append(data.Quotes, quote)
	}

	RenderPage(ctx, http.StatusOK, "dashboard.html", data)
}

type portfolioPageData struct {
	User     *models.User
	Holdings []models.Holding
}

func PortfolioPageHandler(ctx *middlewares.AppContext) {
	data := portfolioPageData{User: ctx.GetPrincipal()}

	token, ok := sessionToken(ctx)
	if ok {
		holdings, err := ctx.API.Holdings(ctx.Request.Context(), token)
		if err != nil {
			ctx.Logger.Warn("failed to load holdings", "error", err)
		} else {
			data.Holdings = holdings
		}
	}

	RenderPage(ctx, http.StatusOK, "portfolio.html", data)
}

var analysisMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

type analysisPageData struct {
	User        *models.User
	Body        template.HTML
	GeneratedAt string
}

// AnalysisPageHandler renders the upstream's markdown commentary to HTML.
// The markdown is produced by our own upstream, never by users.
func AnalysisPageHandler(ctx *middlewares.AppContext) {
	data := analysisPageData{User: ctx.GetPrincipal()}

	token, ok := sessionToken(ctx)
	if ok {
		analysis, err := ctx.API.Analysis(ctx.Request.Context(), token)
		if err != nil {
			ctx.Logger.Warn("failed to load analysis", "error", err)
		} else if analysis != nil && analysis.Markdown != "" {
			var buf bytes.Buffer
			if err := analysisMarkdown.Convert([]byte(analysis.Markdown), &buf); err != nil {
				ctx.Logger.Error("failed to render analysis markdown", "error", err)
			} else {
				data.Body = template.HTML(buf.String())
			}

			if !analysis.GeneratedAt.IsZero() {
				data.GeneratedAt = analysis.GeneratedAt.Format(time.RFC1123)
			}
		}
	}

	RenderPage(ctx, http.StatusOK, "analysis.html", data)
}

type accountsPageData struct {
	User           *models.User
	Accounts       []models.LinkedAccount
	LinkingEnabled bool
}

func AccountsPageHandler(ctx *middlewares.AppContext) {
	data := accountsPageData{
		User:           ctx.GetPrincipal(),
		LinkingEnabled: ctx.Config.Linking != nil && ctx.Config.Linking.Enabled,
	}

	token, ok := sessionToken(ctx)
	if ok {
		accounts, err := ctx.API.LinkedAccounts(ctx.Request.Context(), token)
		if err != nil {
			ctx.Logger.Warn("failed to load linked accounts", "error", err)
		} else {
			data.Accounts = accounts
		}
	}

	RenderPage(ctx, http.StatusOK, "accounts.html", data)
}

type errorPageData struct {
	Description string
}

func ErrorPageHandler(ctx *middlewares.AppContext) {
	RenderPage(ctx, http.StatusOK, "error.html", errorPageData{
		Description: ctx.Request.URL.Query().Get("error_description"),
	})
}
