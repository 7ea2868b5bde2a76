package validator

import (
	"fmt"
	"slices"
	"strings"
)

func InListString(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(allowedValues, ", ")),
			TranslationKey: KeyInList,
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

func OneOfString(field, value string, options []string) Rule {
	return InListString(field, value, options)
}
