package registration

import (
	"fmt"
	"slices"
)

// Field is a dotted field path such as "email" or "birthDate.month".
type Field string

const (
	FieldFirstName  Field = "firstName"
	FieldLastName   Field = "lastName"
	FieldCompany    Field = "company"
	FieldEmail      Field = "email"
	FieldBirthMonth Field = "birthDate.month"
	FieldBirthDay   Field = "birthDate.day"
	FieldBirthYear  Field = "birthDate.year"
)

var fields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldCompany,
	FieldEmail,
	FieldBirthMonth,
	FieldBirthDay,
	FieldBirthYear,
}

// Fields returns every field path in form order.
func Fields() []Field {
	return slices.Clone(fields)
}

func (f Field) String() string {
	return string(f)
}

// Valid reports whether f names a form field.
func (f Field) Valid() bool {
	return slices.Contains(fields, f)
}

// ParseField converts s into a Field.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
	return f, nil
}

// BirthDate holds optional, unvalidated date parts.
type BirthDate struct {
	Month string `json:"month,omitempty" form:"month"`
	Day   string `json:"day,omitempty" form:"day"`
	Year  string `json:"year,omitempty" form:"year"`
}

// IsZero reports whether no part is set.
func (b BirthDate) IsZero() bool {
	return b.Month == "" && b.Day == "" && b.Year == ""
}

// Registration is a validated submission.
type Registration struct {
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	BirthDate BirthDate `json:"birthDate"`
}

// Draft holds uncommitted field values. Form tags use the field paths, so
// the HTTP binders can fill it from posted forms and query strings.
type Draft struct {
	FirstName string    `json:"firstName" form:"firstName"`
	LastName  string    `json:"lastName" form:"lastName"`
	Company   string    `json:"company" form:"company"`
	Email     string    `json:"email" form:"email"`
	BirthDate BirthDate `json:"birthDate" form:"birthDate"`
}

// Value returns the draft value for f; unknown fields yield "".
func (d Draft) Value(f Field) string {
	switch f {
	case FieldFirstName:
		return d.FirstName
	case FieldLastName:
		return d.LastName
	case FieldCompany:
		return d.Company
	case FieldEmail:
		return d.Email
	case FieldBirthMonth:
		return d.BirthDate.Month
	case FieldBirthDay:
		return d.BirthDate.Day
	case FieldBirthYear:
		return d.BirthDate.Year
	}
	return ""
}

// Set stores value under f.
func (d *Draft) Set(f Field, value string) error {
	switch f {
	case FieldFirstName:
		d.FirstName = value
	case FieldLastName:
		d.LastName = value
	case FieldCompany:
		d.Company = value
	case FieldEmail:
		d.Email = value
	case FieldBirthMonth:
		d.BirthDate.Month = value
	case FieldBirthDay:
		d.BirthDate.Day = value
	case FieldBirthYear:
		d.BirthDate.Year = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, string(f))
	}
	return nil
}

// Values returns the draft as field path to value, skipping empty values.
func (d Draft) Values() map[Field]string {
	out := make(map[Field]string, len(fields))
	for _, f := range fields {
		if v := d.Value(f); v != "" {
			out[f] = v
		}
	}
	return out
}
