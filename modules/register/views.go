package register

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/registro/pkg/validator"
	"github.com/dmitrymomot/registro/registration"
)

// FormTarget is the element id patched by DataStar requests.
const FormTarget = "registration-form"

// Views renders the module pages. Every field is required.
type Views struct {
	// Page wraps content in the full document.
	Page func(PageParams) templ.Component
	// Form renders the form element with id FormTarget.
	Form func(FormParams) templ.Component
	// Success replaces the form after an accepted submission. Its root
	// element must also carry id FormTarget.
	Success func(SuccessParams) templ.Component
}

// PageParams is the data for Views.Page.
type PageParams struct {
	AppName           string
	DatastarScriptURL string
	Content           templ.Component
}

// FormParams is the data for Views.Form.
type FormParams struct {
	Action    string
	Draft     registration.Draft
	Errors    validator.ValidationErrors
	Schema    []registration.FieldRule
	Submitted bool
}

// SuccessParams is the data for Views.Success.
type SuccessParams struct {
	Registration registration.Registration
	ResetURL     string
}
