package requestid

import (
	"net/http"

	"github.com/google/uuid"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

// Option configures the middleware.
type Option func(*settings)

type settings struct {
	header   string
	generate func() string
}

// WithHeader changes the header used to read and echo the id.
func WithHeader(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.header = name
		}
	}
}

// WithGenerator replaces the default UUIDv7 generator.
func WithGenerator(fn func() string) Option {
	return func(s *settings) {
		if fn != nil {
			s.generate = fn
		}
	}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// New builds the request id middleware. A client supplied id is kept when it
// is short and made only of letters, digits, '-' and '_'; otherwise a fresh
// one is generated. The id is stored in the context and echoed in the response.
func New(opts ...Option) func(http.Handler) http.Handler {
	s := settings{header: Header, generate: newID}
	for _, opt := range opts {
		opt(&s)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(s.header)
			if !valid(id) {
				id = s.generate()
			}
			w.Header().Set(s.header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// Middleware is New with default settings.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

func valid(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
