package binder

import "errors"

var (
	// ErrBinderNotApplicable is returned when a binder does not handle the
	// request (for example Form on a GET). Callers skip to the next binder.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrInvalidTarget        = errors.New("binding target must be a non-nil pointer to struct")
)
