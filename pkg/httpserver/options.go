package httpserver

import (
	"log/slog"
	"net"
	"time"
)

// Option configures the HTTP server.
type Option func(*options)

// WithAddr sets the listen address. Panics on an empty address.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty addr")
	}
	return func(o *options) { o.addr = addr }
}

// WithListener serves on an existing listener instead of opening addr.
func WithListener(ln net.Listener) Option {
	if ln == nil {
		panic("httpserver: nil listener")
	}
	return func(o *options) { o.listener = ln }
}

func positive(name string, d time.Duration) {
	if d <= 0 {
		panic("httpserver: " + name + " must be > 0")
	}
}

func WithReadHeaderTimeout(d time.Duration) Option {
	positive("read header timeout", d)
	return func(o *options) { o.readHeaderTimeout = d }
}

func WithReadTimeout(d time.Duration) Option {
	positive("read timeout", d)
	return func(o *options) { o.readTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	positive("write timeout", d)
	return func(o *options) { o.writeTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	positive("idle timeout", d)
	return func(o *options) { o.idleTimeout = d }
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	positive("shutdown timeout", d)
	return func(o *options) { o.shutdownTimeout = d }
}

// WithLogger sets the logger for lifecycle events. Nil discards logs.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithStartHook runs h once the listener is ready.
func WithStartHook(h func(addr string)) Option {
	if h == nil {
		panic("httpserver: nil start hook")
	}
	return func(o *options) { o.startHooks = append(o.startHooks, h) }
}

// WithStopHook runs h after shutdown completes.
func WithStopHook(h func()) Option {
	if h == nil {
		panic("httpserver: nil stop hook")
	}
	return func(o *options) { o.stopHooks = append(o.stopHooks, h) }
}
