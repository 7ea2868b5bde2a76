package register

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/registro/handler"
	"github.com/dmitrymomot/registro/pkg/binder"
	"github.com/dmitrymomot/registro/pkg/logger"
	"github.com/dmitrymomot/registro/pkg/ratelimiter"
	"github.com/dmitrymomot/registro/pkg/validator"
	"github.com/dmitrymomot/registro/registration"
)

// Option configures a Service.
type Option func(*Service)

// WithErrorHandler sets the handler for HTML route errors.
func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithMetrics records submissions in m.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRateLimiter throttles both POST routes with l, keyed by client
// address. Refused requests answer 429 through the route's error handler;
// when l itself fails the request is let through.
func WithRateLimiter(l ratelimiter.Limiter) Option {
	return func(s *Service) { s.limiter = l }
}

// WithFormOptions passes options to every Form the service creates.
func WithFormOptions(opts ...registration.FormOption) Option {
	return func(s *Service) { s.formOpts = append(s.formOpts, opts...) }
}

// Service serves the registration form over HTTP.
type Service struct {
	cfg          Config
	views        *Views
	onSuccess    registration.SuccessHandler
	errorHandler handler.ErrorHandler
	metrics      *Metrics
	log          *slog.Logger
	formOpts     []registration.FormOption
	limiter      ratelimiter.Limiter
}

// NewService wires the module. onSuccess receives every accepted
// registration; nil accepts silently.
func NewService(cfg Config, views *Views, onSuccess registration.SuccessHandler, opts ...Option) *Service {
	s := &Service{
		cfg:       cfg,
		views:     views,
		onSuccess: onSuccess,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{})
	}
	return s
}

// Handle returns the module router:
//
//	GET  /                   form page, prefilled from the query string
//	POST /                   submit the form
//	POST /api/registrations  submit a JSON registration
//	GET  /schema             field rules and options
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap[registration.Draft](s.page,
		handler.WithBinders[registration.Draft](binder.Query()),
		handler.WithErrorHandler[registration.Draft](s.errorHandler),
	))
	r.With(s.limit(s.errorHandler)).Post("/", handler.Wrap[registration.Draft](s.submit,
		handler.WithBinders[registration.Draft](binder.Form()),
		handler.WithErrorHandler[registration.Draft](s.errorHandler),
	))
	r.With(s.limit(s.jsonError)).Post("/api/registrations", handler.Wrap[registration.Draft](s.apiSubmit,
		handler.WithBinders[registration.Draft](binder.JSON()),
		handler.WithErrorHandler[registration.Draft](s.jsonError),
	))
	r.Get("/schema", handler.Wrap[struct{}](s.schema))

	return r
}

func (s *Service) page(ctx handler.Context, draft registration.Draft) handler.Response {
	return s.renderForm(ctx, FormParams{Draft: draft}, http.StatusOK)
}

func (s *Service) submit(ctx handler.Context, draft registration.Draft) handler.Response {
	reg, verrs, err := s.process(ctx, draft)
	switch {
	case err != nil:
		return handler.Error(err)
	case verrs != nil:
		return s.renderForm(ctx, FormParams{Draft: draft, Errors: verrs, Submitted: true}, http.StatusUnprocessableEntity)
	}

	success := s.views.Success(SuccessParams{Registration: reg, ResetURL: ctx.Request().URL.Path})
	return handler.TemplPartial(success, s.wrapPage(success), handler.WithTarget("#"+FormTarget))
}

func (s *Service) apiSubmit(ctx handler.Context, draft registration.Draft) handler.Response {
	reg, verrs, err := s.process(ctx, draft)
	switch {
	case err != nil:
		s.log.ErrorContext(ctx, "registration handler failed", logger.Component("register"), logger.Error(err))
		return handler.JSONError(err)
	case verrs != nil:
		return handler.JSONError(verrs)
	}
	return handler.JSON(reg, handler.WithJSONStatus(http.StatusCreated))
}

func (s *Service) schema(handler.Context, struct{}) handler.Response {
	return handler.JSON(registration.Schema())
}

// process runs one submission through a fresh Form. Validation failures come
// back as verrs; err is reserved for success handler failures.
func (s *Service) process(ctx context.Context, draft registration.Draft) (registration.Registration, validator.ValidationErrors, error) {
	start := time.Now()
	opts := append([]registration.FormOption{registration.WithDraft(draft)}, s.formOpts...)
	form := registration.NewForm(s.onSuccess, opts...)

	reg, err := form.Submit(ctx)
	switch {
	case err == nil:
		s.metrics.ObserveSubmission(start, OutcomeAccepted, nil)
		s.log.InfoContext(ctx, "registration accepted",
			logger.Component("register"),
			logger.Event("registration_accepted"),
		)
		return reg, nil, nil
	case !errors.Is(err, registration.ErrSuccessHandler) && validator.IsValidationError(err):
		verrs := form.Errors()
		s.metrics.ObserveSubmission(start, OutcomeRejected, verrs)
		s.log.InfoContext(ctx, "registration rejected",
			logger.Component("register"),
			logger.Event("registration_rejected"),
			logger.FieldErrors(verrs.Map()),
		)
		return registration.Registration{}, verrs, nil
	default:
		s.metrics.ObserveSubmission(start, OutcomeFailed, nil)
		return registration.Registration{}, nil, err
	}
}

func (s *Service) renderForm(ctx handler.Context, params FormParams, status int) handler.Response {
	params.Action = ctx.Request().URL.Path
	params.Schema = registration.Schema()
	form := s.views.Form(params)
	return handler.TemplPartial(form, s.wrapPage(form),
		handler.WithTarget("#"+FormTarget),
		handler.WithStatus(status),
	)
}

func (s *Service) wrapPage(content templ.Component) templ.Component {
	return s.views.Page(PageParams{
		AppName:           s.cfg.AppName,
		DatastarScriptURL: s.cfg.DatastarScriptURL,
		Content:           content,
	})
}

func (s *Service) limit(onLimited handler.ErrorHandler) func(http.Handler) http.Handler {
	if s.limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	// Limiter failures are logged and the request goes through.
	return ratelimiter.Middleware(loggingLimiter{Limiter: s.limiter, log: s.log},
		ratelimiter.WithLimitedHandler(func(w http.ResponseWriter, r *http.Request, _ ratelimiter.Result) {
			s.metrics.ObserveLimited()
			onLimited(handler.NewContext(w, r), handler.ErrTooManyRequests)
		}),
	)
}

type loggingLimiter struct {
	ratelimiter.Limiter
	log *slog.Logger
}

func (l loggingLimiter) Allow(ctx context.Context, key string) (ratelimiter.Result, error) {
	res, err := l.Limiter.Allow(ctx, key)
	if err != nil {
		l.log.ErrorContext(ctx, "rate limiter failed, request allowed",
			logger.Component("register"),
			logger.Error(err),
		)
	}
	return res, err
}

func (s *Service) jsonError(ctx handler.Context, err error) {
	s.log.WarnContext(ctx, "api request rejected",
		logger.Component("register"),
		logger.Error(err),
	)
	if rerr := handler.JSONError(err).Render(ctx.ResponseWriter(), ctx.Request()); rerr != nil {
		s.log.ErrorContext(ctx, "failed to render api error", logger.Error(rerr))
	}
}
