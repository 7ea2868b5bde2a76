package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/registro/pkg/binder"
	"github.com/dmitrymomot/registro/pkg/logger"
	"github.com/dmitrymomot/registro/pkg/requestid"
	"github.com/dmitrymomot/registro/pkg/validator"
)

// ErrorPageParams is passed to the error page component.
type ErrorPageParams struct {
	StatusCode int
	Key        string
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is passed to the toast component for DataStar requests.
type ErrorToastParams struct {
	Key       string
	Type      string // "warning" for 4xx, "error" for 5xx
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	ErrorPage   func(ErrorPageParams) templ.Component
	ErrorToast  func(ErrorToastParams) templ.Component
	ToastTarget string // default "#toast-container"
}

// classify maps err to a status code and translation key.
func classify(err error) (int, string) {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, httpErr.Key
	case validator.IsValidationError(err):
		return ErrUnprocessableEntity.Code, ErrUnprocessableEntity.Key
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return ErrUnsupportedMediaType.Code, ErrUnsupportedMediaType.Key
	case errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseQuery):
		return ErrBadRequest.Code, ErrBadRequest.Key
	default:
		return ErrInternalServerError.Code, "internal_error"
	}
}

// NewErrorHandler returns an ErrorHandler that logs every error (warn for
// 4xx, error for 5xx) and renders the error page, or a toast patch for
// DataStar requests. Without components it falls back to http.Error.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		status, key := classify(err)
		reqID := requestid.FromContext(ctx)
		datastar := IsDataStar(r)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(ctx, level, "request error",
			logger.Component("error_handler"),
			logger.RequestID(reqID),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", datastar),
		)

		if datastar && cfg.ErrorToast != nil {
			toastType := "error"
			if level == slog.LevelWarn {
				toastType = "warning"
			}
			resp := Templ(cfg.ErrorToast(ErrorToastParams{Key: key, Type: toastType, RequestID: reqID}),
				WithTarget(cfg.ToastTarget),
				WithPatchMode(PatchPrepend),
			)
			if rerr := resp.Render(w, r); rerr != nil {
				log.ErrorContext(ctx, "failed to render error toast", logger.Error(rerr), logger.Event("render_error_toast"))
			}
			return
		}

		if cfg.ErrorPage == nil {
			http.Error(w, key, status)
			return
		}
		page := cfg.ErrorPage(ErrorPageParams{StatusCode: status, Key: key, RequestID: reqID, RetryURL: r.URL.Path})
		if rerr := (templResponse{full: page, partial: page, status: status}).renderHTML(w, r); rerr != nil {
			log.ErrorContext(ctx, "failed to render error page", logger.Error(rerr), logger.Event("render_error_page"))
			http.Error(w, key, status)
		}
	}
}
