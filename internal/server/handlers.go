package server

import (
	"finboard/internal/handlers"
	"finboard/internal/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware(ctx.Config.Server.TrustProxyHeaders))
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(ctx.SessionManager.LoadAndSave)

	r.Use(middlewares.AppContextMiddleware(ctx))
	r.Use(middlewares.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Use(middleware.Compress(5))

	r.Get("/", ctx.HandlerFunc(handlers.IndexHandler))
	r.Get("/login", ctx.HandlerFunc(handlers.LoginPageHandler))
	r.Post("/login", ctx.HandlerFunc(handlers.LoginHandler))
	r.Post("/logout", ctx.HandlerFunc(handlers.LogoutHandler))
	r.Get("/reset-password", ctx.HandlerFunc(handlers.ResetPasswordPageHandler))
	r.Post("/reset-password", ctx.HandlerFunc(handlers.RequestPasswordResetHandler))
	r.Post("/reset-password/confirm", ctx.HandlerFunc(handlers.ConfirmPasswordResetHandler))
	r.Get("/error", ctx.HandlerFunc(handlers.ErrorPageHandler))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequirePageAuth)
		r.Get("/dashboard", ctx.HandlerFunc(handlers.DashboardHandler))
		r.Get("/portfolio", ctx.HandlerFunc(handlers.PortfolioPageHandler))
		r.Get("/analysis", ctx.HandlerFunc(handlers.AnalysisPageHandler))
		r.Get("/accounts", ctx.HandlerFunc(handlers.AccountsPageHandler))
		r.Post("/accounts/link", ctx.HandlerFunc(handlers.LinkStartHandler))
		r.Get("/accounts/link/callback", ctx.HandlerFunc(handlers.LinkCallbackHandler))
	})

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAPIAuth)
			r.Route("/auth", func(r chi.Router) {
				r.Get("/status", ctx.HandlerFunc(handlers.AuthStatusHandler))
			})

			r.Route("/portfolio", func(r chi.Router) {
				r.Get("/holdings", ctx.HandlerFunc(handlers.HoldingsHandler))
				r.Get("/summary", ctx.HandlerFunc(handlers.SummaryHandler))
				r.Get("/analysis", ctx.HandlerFunc(handlers.AnalysisHandler))
				r.Get("/accounts", ctx.HandlerFunc(handlers.LinkedAccountsHandler))
			})

			r.Route("/market", func(r chi.Router) {
				r.Get("/quote", ctx.HandlerFunc(handlers.QuoteHandler))
				r.Get("/history", ctx.HandlerFunc(handlers.HistoryHandler))
				r.Get("/news", ctx.HandlerFunc(handlers.NewsHandler))
			})
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
