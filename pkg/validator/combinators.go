package validator

import "strings"

// Optional runs rule only when value is non-blank.
func Optional(value string, rule Rule) Rule {
	return When(strings.TrimSpace(value) != "", rule)
}

// When runs rule only if cond holds; otherwise the rule passes.
func When(cond bool, rule Rule) Rule {
	check := rule.Check
	return Rule{
		Check: func() bool {
			if !cond || check == nil {
				return true
			}
			return check()
		},
		Error: rule.Error,
	}
}

// Unless runs rule only if cond does not hold.
func Unless(cond bool, rule Rule) Rule {
	return When(!cond, rule)
}
