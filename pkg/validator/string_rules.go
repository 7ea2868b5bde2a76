package validator

import "strings"

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        ErrFieldRequired.Error(),
			TranslationKey: KeyRequired,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NonEmpty validates that a string has at least one character. Unlike
// RequiredString, whitespace counts as a value.
func NonEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        ErrFieldRequired.Error(),
			TranslationKey: KeyRequired,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Required is an alias for RequiredString.
func Required(field, value string) Rule {
	return RequiredString(field, value)
}
