// Package validator provides small, declarative validation rules and an
// aggregating Apply helper.
//
// A Rule pairs a boolean Check with a translation-friendly ValidationError.
// Apply evaluates every rule it is given and collects the failures into a
// ValidationErrors slice, so callers can report all field problems at once
// instead of stopping at the first one.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("firstName", in.FirstName),
//	    validator.RequiredString("email", in.Email),
//	    validator.When(in.Email != "", validator.ValidEmail("email", in.Email)),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for field, msg := range verrs.Map() {
//	        // render msg next to field
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed through
// errors.Is. Each ValidationError carries a TranslationKey (KeyRequired,
// KeyEmail, KeyInList) and TranslationValues for i18n lookups.
//
// Rules hold no state beyond the captured value, so the package is safe for
// concurrent use.
package validator
