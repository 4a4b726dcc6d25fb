package middleware

import (
	"net/http"
	"os"

	"github.com/railscout/railscout/internal/api/models"
)

// securityHeaders is the fixed header set applied to every response. The API
// serves JSON only, so the CSP forbids loading anything and the browser
// feature policy is locked down.
var securityHeaders = map[string]string{
	"X-Content-Type-Options":    "nosniff",
	"X-Frame-Options":           "DENY",
	"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
	"Content-Security-Policy":   "default-src 'none'; frame-ancestors 'none'",
	"Referrer-Policy":           "strict-origin-when-cross-origin",
	"Permissions-Policy":        "geolocation=(), camera=(), microphone=()",
}

// SecurityHeaders stamps the standard security header set on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for name, value := range securityHeaders {
			w.Header().Set(name, value)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireTLS rejects plain-HTTP requests when REQUIRE_TLS=true is set. It
// inspects X-Forwarded-Proto because TLS terminates at the load balancer;
// requests without the header (direct connections, local dev) pass through.
func RequireTLS(next http.Handler) http.Handler {
	enforced := os.Getenv("REQUIRE_TLS") == "true"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !enforced {
			next.ServeHTTP(w, r)
			return
		}

		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" && proto != "https" {
			problem := models.NewProblem(
				"https://api.railscout.io/problems/tls-required",
				"TLS required",
				http.StatusForbidden,
				GetRequestID(r.Context()),
			)
			problem.Detail = "This endpoint requires HTTPS"
			problem.Instance = r.URL.Path
			problem.Write(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}
