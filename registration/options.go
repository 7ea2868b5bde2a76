package registration

import "fmt"

const (
	FirstYear = 1901
	LastYear  = 2100
)

// MonthOptions returns "01" through "12".
func MonthOptions() []string {
	return padded(1, 12, 2)
}

// DayOptions returns "01" through "31".
func DayOptions() []string {
	return padded(1, 31, 2)
}

// YearOptions returns "1901" through "2100".
func YearOptions() []string {
	return padded(FirstYear, LastYear, 4)
}

// Options returns the select choices for a birth-date field, nil otherwise.
func Options(f Field) []string {
	switch f {
	case FieldBirthMonth:
		return MonthOptions()
	case FieldBirthDay:
		return DayOptions()
	case FieldBirthYear:
		return YearOptions()
	}
	return nil
}

func padded(from, to, width int) []string {
	out := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, fmt.Sprintf("%0*d", width, i))
	}
	return out
}
