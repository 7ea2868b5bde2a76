package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail validates an address of the form local@domain.tld.
// Display-name forms such as "Ana <ana@acme.com>" are rejected.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return isEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: KeyEmail,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	if addr.Name != "" || addr.Address != value {
		return false
	}

	localPart, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || localPart == "" || strings.Contains(domain, "@") {
		return false
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !isHostLabel(label) {
			return false
		}
	}
	return isTLD(labels[len(labels)-1])
}

// isHostLabel matches [A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?.
func isHostLabel(label string) bool {
	if label == "" || label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c != '-' && !isASCIILetter(c) && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// isTLD requires two or more letters.
func isTLD(label string) bool {
	if len(label) < 2 {
		return false
	}
	for i := 0; i < len(label); i++ {
		if !isASCIILetter(label[i]) {
			return false
		}
	}
	return true
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
