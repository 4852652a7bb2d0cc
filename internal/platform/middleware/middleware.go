// Package middleware holds the HTTP middleware shared across handlers.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"tessera/pkg/requestcontext"
)

// RequestContext stamps each request with a request ID and a request-scoped
// time so services observe one consistent clock per request.
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		ctx = requestcontext.WithTime(ctx, time.Now())
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdminToken guards mutating endpoints with a shared-secret header.
func RequireAdminToken(token string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Admin-Token") != token {
				if logger != nil {
					logger.WarnContext(r.Context(), "admin token missing or invalid",
						"path", r.URL.Path)
				}
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
