package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")
)

// Translation keys produced by the rules in this package.
const (
	KeyRequired = "validation.required"
	KeyEmail    = "validation.email"
	KeyInList   = "validation.in_list"
)
