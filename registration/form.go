package registration

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrymomot/registro/pkg/validator"
)

// FormOption configures a Form.
type FormOption func(*Form)

// WithDraft seeds the form with initial values.
func WithDraft(d Draft) FormOption {
	return func(f *Form) { f.draft = d }
}

// WithKeepErrorsOnChange keeps a field's error after the field is edited,
// until the next submission.
func WithKeepErrorsOnChange() FormOption {
	return func(f *Form) { f.keepErrors = true }
}

// Form is the form controller for one user interaction. It holds the draft,
// the errors of the last submission, and the success handler.
type Form struct {
	mu         sync.Mutex
	draft      Draft
	errs       validator.ValidationErrors
	submitted  bool
	keepErrors bool
	onSuccess  SuccessHandler
}

// NewForm returns an empty form. A nil onSuccess is replaced with Noop.
func NewForm(onSuccess SuccessHandler, opts ...FormOption) *Form {
	if onSuccess == nil {
		onSuccess = Noop
	}
	f := &Form{onSuccess: onSuccess}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetField updates one draft value. It never validates.
func (f *Form) SetField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.draft.Set(field, value); err != nil {
		return err
	}
	if !f.keepErrors && f.errs.Has(field.String()) {
		f.errs = f.errs.Without(field.String())
	}
	return nil
}

// Fill replaces the whole draft.
func (f *Form) Fill(d Draft) {
	f.mu.Lock()
	f.draft = d
	f.mu.Unlock()
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Value returns the draft value for field.
func (f *Form) Value(field Field) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.Value(field)
}

// Submit validates the draft. On success the handler is called exactly once
// with the registration. On failure the errors are stored for display, the
// handler is not called, and the validator.ValidationErrors is returned.
func (f *Form) Submit(ctx context.Context) (Registration, error) {
	f.mu.Lock()
	f.submitted = true
	reg, err := Validate(f.draft)
	if err != nil {
		f.errs = validator.ExtractValidationErrors(err)
		f.mu.Unlock()
		return Registration{}, err
	}
	f.errs = nil
	handle := f.onSuccess
	f.mu.Unlock()

	// The handler runs unlocked so it may read the form.
	if err := handle(ctx, reg); err != nil {
		return reg, errors.Join(ErrSuccessHandler, err)
	}
	return reg, nil
}

// Errors returns the errors of the last submission.
func (f *Form) Errors() validator.ValidationErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append(validator.ValidationErrors(nil), f.errs...)
}

// HasErrors reports whether the last submission failed.
func (f *Form) HasErrors() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.errs.IsEmpty()
}

// Error returns the message for field, or "" if it has none.
func (f *Form) Error(field Field) string {
	verr, ok := f.FieldError(field)
	if !ok {
		return ""
	}
	return verr.Message
}

// FieldError returns the full error recorded for field.
func (f *Form) FieldError(field Field) (validator.ValidationError, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs.First(field.String())
}

// Submitted reports whether Submit has been called since the last Reset.
func (f *Form) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}

// Reset clears the draft and all errors.
func (f *Form) Reset() {
	f.mu.Lock()
	f.draft = Draft{}
	f.errs = nil
	f.submitted = false
	f.mu.Unlock()
}
