package registration

import "errors"

var (
	// ErrUnknownField is returned when a field path is not part of the form.
	ErrUnknownField = errors.New("registration: unknown field")

	// ErrSuccessHandler wraps an error returned by the success handler.
	ErrSuccessHandler = errors.New("registration: success handler failed")
)
