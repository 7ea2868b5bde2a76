package httpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/registro/pkg/logger"
)

type options struct {
	addr              string
	listener          net.Listener
	readHeaderTimeout time.Duration
	readTimeout       time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	logger            *slog.Logger
	startHooks        []func(addr string)
	stopHooks         []func()
}

// Server wraps http.Server with signal handling and graceful shutdown.
type Server struct {
	opts options

	mu           sync.Mutex
	srv          *http.Server
	shutdownOnce sync.Once
	shutdownErr  error
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	o := options{
		addr:              ":8080",
		readHeaderTimeout: 5 * time.Second,
		shutdownTimeout:   5 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{opts: o}
}

// Run serves handler until ctx is cancelled, SIGINT/SIGTERM arrives or
// Shutdown is called. Listen errors are wrapped with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	srv := &http.Server{
		Addr:              s.opts.addr,
		Handler:           handler,
		ReadHeaderTimeout: s.opts.readHeaderTimeout,
		ReadTimeout:       s.opts.readTimeout,
		WriteTimeout:      s.opts.writeTimeout,
		IdleTimeout:       s.opts.idleTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.srv = srv
	s.mu.Unlock()

	ln := s.opts.listener
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", srv.Addr); err != nil {
			return errors.Join(ErrStart, err)
		}
	}

	addr := ln.Addr().String()
	s.opts.logger.InfoContext(ctx, "http server started", slog.String("addr", addr))
	for _, h := range s.opts.startHooks {
		h(addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.Shutdown(context.WithoutCancel(ctx))
		<-errCh
	case <-sig:
		runErr = s.Shutdown(context.WithoutCancel(ctx))
		<-errCh
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		if errors.Is(runErr, ErrShutdown) {
			return runErr
		}
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

// Shutdown stops the server gracefully. Repeated calls return the first result.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.opts.logger.ErrorContext(ctx, "http server shutdown failed", logger.Error(err))
			s.shutdownErr = errors.Join(ErrShutdown, err)
		}
		for _, h := range s.opts.stopHooks {
			h()
		}
		s.opts.logger.InfoContext(ctx, "http server stopped")
	})
	return s.shutdownErr
}
