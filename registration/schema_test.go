package registration_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/registro/pkg/validator"
	"github.com/dmitrymomot/registro/registration"
)

func validDraft() registration.Draft {
	return registration.Draft{
		FirstName: "Ana",
		LastName:  "Silva",
		Company:   "Acme",
		Email:     "ana@acme.com",
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid draft is returned verbatim", func(t *testing.T) {
		t.Parallel()
		d := validDraft()
		d.FirstName = "  Ana "
		d.BirthDate = registration.BirthDate{Month: "02", Day: "31"}

		reg, err := registration.Validate(d)
		require.NoError(t, err)

		want := registration.Registration{
			FirstName: "  Ana ",
			LastName:  "Silva",
			Company:   "Acme",
			Email:     "ana@acme.com",
			BirthDate: registration.BirthDate{Month: "02", Day: "31"},
		}
		if diff := cmp.Diff(want, reg); diff != "" {
			t.Errorf("registration mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()
		for _, field := range []registration.Field{
			registration.FieldFirstName,
			registration.FieldLastName,
			registration.FieldCompany,
			registration.FieldEmail,
		} {
			d := validDraft()
			require.NoError(t, d.Set(field, ""))

			_, err := registration.Validate(d)
			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs, field)
			require.Len(t, verrs, 1, field)
			assert.Equal(t, field.String(), verrs[0].Field)
			assert.Equal(t, validator.KeyRequired, verrs[0].TranslationKey)
		}
	})

	t.Run("whitespace is a value", func(t *testing.T) {
		t.Parallel()
		d := validDraft()
		d.FirstName = " "
		d.Company = "   "

		reg, err := registration.Validate(d)
		require.NoError(t, err)
		assert.Equal(t, " ", reg.FirstName)
		assert.Equal(t, "   ", reg.Company)
	})

	t.Run("whitespace email is malformed, not missing", func(t *testing.T) {
		t.Parallel()
		d := validDraft()
		d.Email = " "

		_, err := registration.Validate(d)
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, validator.KeyEmail, verrs[0].TranslationKey)
	})

	t.Run("malformed email", func(t *testing.T) {
		t.Parallel()
		for _, email := range []string{
			"bad-email", "ana@acme", "@acme.com", "ana@.com", "Ana <ana@acme.com>",
			"ana@acme.c", "ana@-acme.com", "ana@[1.2.3.4]", "ana@acme-.com", "ana@acme.c0m",
		} {
			d := validDraft()
			d.Email = email

			_, err := registration.Validate(d)
			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs, email)
			require.Len(t, verrs, 1, email)
			assert.Equal(t, "email", verrs[0].Field)
			assert.Equal(t, validator.KeyEmail, verrs[0].TranslationKey)
		}
	})

	t.Run("empty draft reports every required field once", func(t *testing.T) {
		t.Parallel()
		_, err := registration.Validate(registration.Draft{})
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"firstName", "lastName", "company", "email"}, verrs.Fields())
		for _, e := range verrs {
			assert.Equal(t, validator.KeyRequired, e.TranslationKey)
		}
	})

	t.Run("birth date parts are never validated", func(t *testing.T) {
		t.Parallel()
		d := validDraft()
		d.BirthDate = registration.BirthDate{Month: "13", Day: "00", Year: "abc"}

		_, err := registration.Validate(d)
		assert.NoError(t, err)
	})

	t.Run("two errors scenario", func(t *testing.T) {
		t.Parallel()
		d := registration.Draft{LastName: "Silva", Company: "Acme", Email: "bad-email"}

		_, err := registration.Validate(d)
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)

		first, ok := verrs.First("firstName")
		require.True(t, ok)
		assert.Equal(t, validator.KeyRequired, first.TranslationKey)

		email, ok := verrs.First("email")
		require.True(t, ok)
		assert.Equal(t, validator.KeyEmail, email.TranslationKey)
	})
}

func TestSchema(t *testing.T) {
	t.Parallel()
	rules := registration.Schema()
	require.Len(t, rules, len(registration.Fields()))

	for i, f := range registration.Fields() {
		assert.Equal(t, f, rules[i].Field)
	}

	assert.True(t, rules[0].Required)
	assert.Equal(t, registration.FormatEmail, rules[3].Format)
	assert.False(t, rules[4].Required)
	assert.Len(t, rules[6].Options, 200)
}
