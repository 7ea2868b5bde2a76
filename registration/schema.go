package registration

import (
	"github.com/dmitrymomot/registro/pkg/validator"
)

// Format names a value format a field must match.
type Format string

const (
	FormatNone  Format = ""
	FormatEmail Format = "email"
)

// FieldRule describes the constraints on one field.
type FieldRule struct {
	Field    Field    `json:"field"`
	Required bool     `json:"required"`
	Format   Format   `json:"format,omitempty"`
	Options  []string `json:"options,omitempty"`
}

// Schema returns the declarative rule set in form order.
func Schema() []FieldRule {
	return []FieldRule{
		{Field: FieldFirstName, Required: true},
		{Field: FieldLastName, Required: true},
		{Field: FieldCompany, Required: true},
		{Field: FieldEmail, Required: true, Format: FormatEmail},
		{Field: FieldBirthMonth, Options: MonthOptions()},
		{Field: FieldBirthDay, Options: DayOptions()},
		{Field: FieldBirthYear, Options: YearOptions()},
	}
}

// Validate checks d against the schema in a single pass. On failure the
// error is a validator.ValidationErrors with at most one entry per field.
// Birth-date parts never produce errors.
func Validate(d Draft) (Registration, error) {
	if err := validator.Apply(Rules(d)...); err != nil {
		return Registration{}, err
	}
	return Registration(d), nil
}

// Rules builds the validation rules for d.
func Rules(d Draft) []validator.Rule {
	var rules []validator.Rule
	for _, fr := range Schema() {
		value := d.Value(fr.Field)
		name := fr.Field.String()
		if fr.Required {
			rules = append(rules, validator.NonEmpty(name, value))
		}
		switch fr.Format {
		case FormatEmail:
			// An empty email is already reported as required.
			rules = append(rules, validator.When(value != "", validator.ValidEmail(name, value)))
		}
	}
	return rules
}
