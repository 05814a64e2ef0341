package middlewares

import (
	"net"
	"net/http"
	"strings"
)

// forwardingHeaders in precedence order. Only consulted when the deployment
// declares a trusted proxy in front of the server.
var forwardingHeaders = []string{"True-Client-IP", "X-Real-IP"}

// ClientIPMiddleware rewrites RemoteAddr to "clientIP:port" so every log line
// and guard decision sees the same address. Forwarded headers are honored only
// when trustProxyHeaders is set; an instance exposed directly must not let
// clients pick their own address.
func ClientIPMiddleware(trustProxyHeaders bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if clientIP := resolveClientIP(r, trustProxyHeaders); clientIP != "" {
				_, port, err := net.SplitHostPort(r.RemoteAddr)
				if err != nil || port == "" {
					port = "0"
				}
				r.RemoteAddr = net.JoinHostPort(clientIP, port)
			}

			next.ServeHTTP(w, r)
		})
	}
}

func resolveClientIP(r *http.Request, trustProxyHeaders bool) string {
	if trustProxyHeaders {
		if ip := forwardedClientIP(r.Header); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if parsed := net.ParseIP(host); parsed != nil {
		return parsed.String()
	}

	return ""
}

func forwardedClientIP(header http.Header) string {
	for _, name := range forwardingHeaders {
		if parsed := net.ParseIP(strings.TrimSpace(header.Get(name))); parsed != nil {
			return parsed.String()
		}
	}

	// First X-Forwarded-For hop is the client; later hops are the proxies.
	if xff := header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if parsed := net.ParseIP(strings.TrimSpace(first)); parsed != nil {
			return parsed.String()
		}
	}

	return ""
}
