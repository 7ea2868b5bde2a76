package registration

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/registro/pkg/logger"
)

// SuccessHandler receives a registration that passed validation.
type SuccessHandler func(ctx context.Context, reg Registration) error

// Noop accepts every registration and does nothing.
func Noop(context.Context, Registration) error { return nil }

// Chain runs handlers in order and stops at the first error.
func Chain(handlers ...SuccessHandler) SuccessHandler {
	return func(ctx context.Context, reg Registration) error {
		for _, h := range handlers {
			if h == nil {
				continue
			}
			if err := h(ctx, reg); err != nil {
				return err
			}
		}
		return nil
	}
}

// LogSuccess prints each registration as a structured log record.
func LogSuccess(log *slog.Logger) SuccessHandler {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, reg Registration) error {
		log.InfoContext(ctx, "registration received",
			logger.Component("registration"),
			logger.Event("registration_received"),
			logger.Group("registration",
				slog.String("first_name", reg.FirstName),
				slog.String("last_name", reg.LastName),
				slog.String("company", reg.Company),
				slog.String("email", reg.Email),
				slog.String("birth_month", reg.BirthDate.Month),
				slog.String("birth_day", reg.BirthDate.Day),
				slog.String("birth_year", reg.BirthDate.Year),
			),
		)
		return nil
	}
}

// Recorder keeps every registration it receives for later inspection.
// It is safe for concurrent use.
type Recorder struct {
	mu      sync.RWMutex
	records []Registration
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Handle is a SuccessHandler.
func (r *Recorder) Handle(_ context.Context, reg Registration) error {
	r.mu.Lock()
	r.records = append(r.records, reg)
	r.mu.Unlock()
	return nil
}

// Last returns the most recent registration.
func (r *Recorder) Last() (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.records) == 0 {
		return Registration{}, false
	}
	return r.records[len(r.records)-1], true
}

// All returns a copy of every recorded registration, oldest first.
func (r *Recorder) All() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.records)
}

func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
