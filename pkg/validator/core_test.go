package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/registro/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "firstName", Message: "field is required"})
		errs.Add(validator.ValidationError{Field: "email", Message: "must be a valid email address"})

		assert.Equal(t, "validation failed: firstName: field is required; email: must be a valid email address", errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "email", Message: "is required", TranslationKey: validator.KeyRequired})
	errs.Add(validator.ValidationError{Field: "email", Message: "invalid format", TranslationKey: validator.KeyEmail})
	errs.Add(validator.ValidationError{Field: "company", Message: "is required", TranslationKey: validator.KeyRequired})

	t.Run("has", func(t *testing.T) {
		assert.True(t, errs.Has("email"))
		assert.False(t, errs.Has("lastName"))
	})

	t.Run("get returns every message for field", func(t *testing.T) {
		assert.Equal(t, []string{"is required", "invalid format"}, errs.Get("email"))
		assert.Empty(t, errs.Get("nonexistent"))
	})

	t.Run("first returns earliest error", func(t *testing.T) {
		first, ok := errs.First("email")
		require.True(t, ok)
		assert.Equal(t, validator.KeyRequired, first.TranslationKey)

		_, ok = errs.First("lastName")
		assert.False(t, ok)
	})

	t.Run("get errors", func(t *testing.T) {
		assert.Len(t, errs.GetErrors("email"), 2)
		assert.Empty(t, errs.GetErrors("nonexistent"))
	})

	t.Run("fields are unique and ordered", func(t *testing.T) {
		assert.Equal(t, []string{"email", "company"}, errs.Fields())
	})

	t.Run("map keeps first message per field", func(t *testing.T) {
		assert.Equal(t, map[string]string{
			"email":   "is required",
			"company": "is required",
		}, errs.Map())
	})

	t.Run("values keeps every message", func(t *testing.T) {
		assert.Equal(t, map[string][]string{
			"email":   {"is required", "invalid format"},
			"company": {"is required"},
		}, errs.Values())
	})

	t.Run("without drops one field", func(t *testing.T) {
		rest := errs.Without("email")
		assert.Equal(t, []string{"company"}, rest.Fields())
		assert.Len(t, errs, 3, "original must not be modified")
	})
}

func TestValidationErrors_IsEmpty(t *testing.T) {
	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Field: "email"}},
			validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Field: "company"}},
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure instead of stopping at the first", func(t *testing.T) {
		calls := 0
		failing := func(field string) validator.Rule {
			return validator.Rule{
				Check: func() bool { calls++; return false },
				Error: validator.ValidationError{Field: field, Message: "bad"},
			}
		}

		err := validator.Apply(failing("firstName"), failing("lastName"), failing("company"))
		require.Error(t, err)
		assert.Equal(t, 3, calls)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"firstName", "lastName", "company"}, verrs.Fields())
	})

	t.Run("skips rules without a check", func(t *testing.T) {
		err := validator.Apply(validator.Rule{Error: validator.ValidationError{Field: "x"}})
		assert.NoError(t, err)
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts from wrapped error", func(t *testing.T) {
		var original validator.ValidationErrors
		original.Add(validator.ValidationError{Field: "email", Message: "is required"})

		wrapped := fmt.Errorf("submit: %w", original)

		extracted := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, extracted)
		assert.True(t, extracted.Has("email"))
	})

	t.Run("returns nil for regular error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("regular error")))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})
}

func TestIsValidationError(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})

	assert.True(t, validator.IsValidationError(errs))
	assert.True(t, errors.Is(errs, validator.ErrValidationFailed))
	assert.False(t, validator.IsValidationError(errors.New("regular error")))
	assert.False(t, validator.IsValidationError(nil))
}
