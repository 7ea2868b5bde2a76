package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/registro/handler"
	"github.com/dmitrymomot/registro/modules/register"
	"github.com/dmitrymomot/registro/modules/register/views"
	"github.com/dmitrymomot/registro/pkg/clientip"
	"github.com/dmitrymomot/registro/pkg/config"
	"github.com/dmitrymomot/registro/pkg/environment"
	"github.com/dmitrymomot/registro/pkg/httpserver"
	"github.com/dmitrymomot/registro/pkg/i18n"
	"github.com/dmitrymomot/registro/pkg/logger"
	"github.com/dmitrymomot/registro/pkg/ratelimiter"
	"github.com/dmitrymomot/registro/pkg/requestid"
	"github.com/dmitrymomot/registro/registration"
)

// ServeCmd runs the HTTP server until interrupted.
type ServeCmd struct {
	Addr     string   `help:"Listen address. Overrides HTTP_ADDR."`
	EnvFiles []string `name:"env-file" help:"Dotenv files loaded before the environment is read." type:"existingfile"`
}

// Run loads configuration, wires the application and serves it.
func (c *ServeCmd) Run(s *streams) error {
	if err := config.LoadEnvFiles(c.EnvFiles...); err != nil {
		return err
	}

	var appCfg register.Config
	if err := config.Load(&appCfg); err != nil {
		return fmt.Errorf("app config: %w", err)
	}
	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return fmt.Errorf("http config: %w", err)
	}
	if c.Addr != "" {
		srvCfg.Addr = c.Addr
	}

	log := newLogger(appCfg, s.Err)
	logger.SetAsDefault(log)

	ctx := context.Background()
	a, err := newApp(ctx, appCfg, log, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	return httpserver.NewFromConfig(srvCfg,
		httpserver.WithLogger(log),
		httpserver.WithStopHook(a.Close),
	).Run(ctx, a)
}

func newLogger(cfg register.Config, w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(w),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			environment.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
}

// app is the root handler plus the resources released on shutdown.
type app struct {
	http.Handler
	closers []func()
}

// Close releases background resources.
func (a *app) Close() {
	for _, fn := range a.closers {
		fn()
	}
}

// newApp builds the root router: the registration module at /, metrics and
// health probes.
func newApp(ctx context.Context, cfg register.Config, log *slog.Logger, reg *prometheus.Registry) (*app, error) {
	tr, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(views.Locales(), views.LocalesDir),
		i18n.WithDefaultLanguage(cfg.DefaultLang),
		i18n.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	renderer, err := views.New(tr)
	if err != nil {
		return nil, err
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	a := &app{}
	opts := []register.Option{
		register.WithLogger(log),
		register.WithMetrics(register.NewMetrics(reg)),
		register.WithErrorHandler(handler.NewErrorHandler(log, renderer.ErrorHandlerConfig())),
	}
	if cfg.SubmitLimit.Capacity > 0 {
		store := ratelimiter.NewMemoryStore()
		a.closers = append(a.closers, store.Close)
		bucket, err := ratelimiter.NewBucket(store, cfg.SubmitLimit)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("submit rate limit: %w", err)
		}
		opts = append(opts, register.WithRateLimiter(bucket))
	}
	svc := register.NewService(cfg, renderer.Views(), registration.LogSuccess(log), opts...)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(environment.Parse(cfg.Env)),
	)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, func(context.Context) error {
		if len(tr.SupportedLanguages()) == 0 {
			return i18n.ErrNoTranslations
		}
		return nil
	}))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Group(func(r chi.Router) {
		r.Use(i18n.Middleware(i18n.DefaultLangExtractor(tr)))
		r.Mount("/", svc.Handle())
	})

	a.Handler = r
	return a, nil
}
