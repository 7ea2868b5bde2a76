// Package registration holds the registration form: its data model, the
// validation schema and the form controller that gates a success handler
// behind a passing validation run.
//
// The flow mirrors a single user interaction:
//
//	rec := registration.NewRecorder()
//	form := registration.NewForm(rec.Handle)
//
//	_ = form.SetField(registration.FieldFirstName, "Ana")
//	_ = form.SetField(registration.FieldEmail, "ana@acme.com")
//
//	reg, err := form.Submit(ctx)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msg := form.Error(registration.FieldLastName) // "field is required"
//	}
//
// Validation collects every field problem in one pass. Values reach the
// success handler exactly as they were entered.
package registration
