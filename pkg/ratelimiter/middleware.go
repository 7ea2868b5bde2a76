package ratelimiter

import (
	"math"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/registro/pkg/clientip"
)

// KeyFunc extracts the rate limit key from a request.
type KeyFunc func(r *http.Request) string

// ByClientIP keys requests by client address, preferring the value stored
// by clientip.Middleware.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}

// Option configures Middleware.
type Option func(*middlewareConfig)

type middlewareConfig struct {
	key       KeyFunc
	onLimited func(w http.ResponseWriter, r *http.Request, res Result)
	onError   func(w http.ResponseWriter, r *http.Request, err error)
}

// WithKeyFunc replaces ByClientIP.
func WithKeyFunc(fn KeyFunc) Option {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.key = fn
		}
	}
}

// WithLimitedHandler renders denied requests. Rate limit headers are
// already set when it runs.
func WithLimitedHandler(fn func(w http.ResponseWriter, r *http.Request, res Result)) Option {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onLimited = fn
		}
	}
}

// WithErrorHandler handles limiter failures. The default lets the request
// through.
func WithErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) Option {
	return func(c *middlewareConfig) { c.onError = fn }
}

// Middleware enforces l per key. Requests without a key pass unchecked.
func Middleware(l Limiter, opts ...Option) func(http.Handler) http.Handler {
	cfg := middlewareConfig{
		key: ByClientIP,
		onLimited: func(w http.ResponseWriter, _ *http.Request, _ Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := cfg.key(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := l.Allow(r.Context(), key)
			if err != nil {
				if cfg.onError != nil {
					cfg.onError(w, r, err)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				if d := res.RetryAfter(); d > 0 {
					h.Set("Retry-After", strconv.Itoa(int(math.Ceil(d.Seconds()))))
				}
				cfg.onLimited(w, r, res)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
