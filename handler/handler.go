package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/registro/pkg/binder"
)

// HandlerFunc handles a typed request value bound from the HTTP request.
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response renders itself to the writer.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind fills v from r. See package binder.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles binding and rendering errors.
type ErrorHandler func(ctx Context, err error)

// Decorator wraps a HandlerFunc. The first decorator given to
// WithDecorators is the outermost.
type Decorator[R any] func(HandlerFunc[R]) HandlerFunc[R]

// WrapOption configures Wrap.
type WrapOption[R any] func(*wrapConfig[R])

type wrapConfig[R any] struct {
	binders      []Bind
	errorHandler ErrorHandler
	decorators   []Decorator[R]
}

// WithBinders appends binders applied in order. A binder returning
// binder.ErrBinderNotApplicable is skipped.
//
//	handler.WithBinders[Request](binder.Query(), binder.Form())
func WithBinders[R any](binders ...Bind) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		for _, b := range binders {
			if b != nil {
				c.binders = append(c.binders, b)
			}
		}
	}
}

// WithErrorHandler replaces the default plain-text error handler.
func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithDecorators adds decorators around the handler.
func WithDecorators[R any](decorators ...Decorator[R]) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

func defaultErrorHandler(ctx Context, err error) {
	code, key := http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		code, key = httpErr.Code, httpErr.Key
	}
	http.Error(ctx.ResponseWriter(), key, code)
}

// Wrap converts a typed handler to an http.HandlerFunc.
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	cfg := &wrapConfig[R]{errorHandler: defaultErrorHandler}
	for _, opt := range opts {
		opt(cfg)
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				if errors.Is(err, binder.ErrBinderNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, err)
				return
			}
		}

		resp := final(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

// Error returns a Response that hands err to the configured ErrorHandler.
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
