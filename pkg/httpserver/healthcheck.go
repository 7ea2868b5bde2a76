package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/registro/pkg/logger"
)

// CheckFunc reports whether a dependency is ready.
type CheckFunc func(context.Context) error

// LivenessHandler always answers 200 "ALIVE".
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	}
}

// ReadinessHandler runs every check with the request context. It answers
// 200 "READY" when all pass and 503 "NOT_READY" otherwise.
func ReadinessHandler(log *slog.Logger, checks ...CheckFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		for _, check := range checks {
			if check == nil {
				continue
			}
			if err := check(r.Context()); err != nil {
				if log != nil {
					log.WarnContext(r.Context(), "readiness check failed", logger.Error(err))
				}
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
