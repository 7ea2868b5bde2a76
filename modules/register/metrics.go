package register

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/registro/pkg/validator"
)

// Submission outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
	OutcomeLimited  = "limited"
)

// Metrics tracks form submissions.
type Metrics struct {
	Submissions        *prometheus.CounterVec
	FieldErrors        *prometheus.CounterVec
	SubmissionDuration prometheus.Histogram
}

// NewMetrics registers the module metrics with reg. A nil reg uses the
// default Prometheus registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "registro_submissions_total",
			Help: "Registration submissions by outcome",
		}, []string{"outcome"}),
		FieldErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "registro_field_errors_total",
			Help: "Validation errors by field and kind",
		}, []string{"field", "kind"}),
		SubmissionDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "registro_submission_duration_seconds",
			Help:    "Duration of submission handling including the success handler",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// ObserveSubmission records one submission. Call with time.Now() taken
// before Submit. Nil receivers are ignored.
func (m *Metrics) ObserveSubmission(start time.Time, outcome string, verrs validator.ValidationErrors) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(outcome).Inc()
	for _, e := range verrs {
		m.FieldErrors.WithLabelValues(e.Field, errorKind(e.TranslationKey)).Inc()
	}
	m.SubmissionDuration.Observe(time.Since(start).Seconds())
}

// ObserveLimited records a submission refused by the rate limiter.
func (m *Metrics) ObserveLimited() {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(OutcomeLimited).Inc()
}

func errorKind(key string) string {
	switch key {
	case validator.KeyRequired:
		return "required"
	case validator.KeyEmail:
		return "email"
	default:
		return "other"
	}
}
