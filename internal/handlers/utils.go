package handlers

import (
	"embed"
	"finboard/internal/middlewares"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// RenderPage writes a server-rendered page. Render failures after the header
// has gone out can only be logged.
func RenderPage(ctx *middlewares.AppContext, status int, name string, data any) {
	ctx.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	ctx.Response.WriteHeader(status)

	if err := pageTemplates.ExecuteTemplate(ctx.Response, name, data); err != nil {
		ctx.Logger.Error("failed to render page", "template", name, "error", err)
	}
}

// sessionToken returns the upstream token bound to this request, preferring
// the guard-validated session.
func sessionToken(ctx *middlewares.AppContext) (string, bool) {
	return ctx.SessionManager.GetToken(ctx)
}
