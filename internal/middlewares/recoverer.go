package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
)

const errorPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Something went wrong</title>
</head>
<body>
    <main>
        <h1>Something went wrong</h1>
        <p>An unexpected error occurred while rendering this page.</p>
        <p>
            <a href="javascript:location.reload()">Reload</a>
            &middot;
            <a href="/dashboard">Back to dashboard</a>
        </p>
    </main>
</body>
</html>`

// Recoverer is the render error boundary. A panic below this point becomes a
// 500 instead of a dropped connection: JSON for the API surface, a minimal
// error page with reload and back-to-dashboard links for everything else.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				if appCtx := GetAppContext(r); appCtx != nil {
					appCtx.Logger.Error("panic while serving request",
						"error", fmt.Sprintf("%v", rec),
						"method", r.Method,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)
				}

				if strings.HasPrefix(r.URL.Path, "/api/") {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error":"Internal Server Error"}`))
					return
				}

				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(errorPage))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
