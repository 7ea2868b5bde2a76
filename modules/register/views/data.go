package views

import (
	"fmt"
	"html/template"
	"sort"

	"github.com/dmitrymomot/registro/modules/register"
	"github.com/dmitrymomot/registro/pkg/i18n"
	"github.com/dmitrymomot/registro/pkg/validator"
	"github.com/dmitrymomot/registro/registration"
)

// view is the root value of every template.
type view struct {
	Lang string
	Data any

	tr *i18n.Translator
}

// T translates key for the view language.
func (v view) T(key string, args ...any) string {
	pairs := make([]string, len(args))
	for i, a := range args {
		pairs[i] = fmt.Sprint(a)
	}
	return v.tr.T(v.Lang, key, pairs...)
}

type pageData struct {
	AppName           string
	DatastarScriptURL string
	Content           template.HTML
}

type formData struct {
	Action    string
	Summary   string
	Inputs    []field
	BirthDate []field
}

type field struct {
	ID          string
	Name        string
	Type        string
	Label       string
	Placeholder string
	Value       string
	Required    bool
	Options     []string
	Error       string
}

type successData struct {
	Registration registration.Registration
	BirthDate    string
	ResetURL     string
}

type errorData struct {
	StatusCode int
	Type       string
	Title      string
	RequestID  string
	RetryURL   string
}

// labelKeys maps field paths to the label key suffix under form.label.
var labelKeys = map[registration.Field]string{
	registration.FieldBirthMonth: "month",
	registration.FieldBirthDay:   "day",
	registration.FieldBirthYear:  "year",
}

func (r *Renderer) formData(lang string, p register.FormParams) formData {
	schema := p.Schema
	if schema == nil {
		schema = registration.Schema()
	}

	data := formData{Action: p.Action}
	if p.Submitted && len(p.Errors) > 0 {
		data.Summary = r.tr.T(lang, "form.summary")
	}

	for _, rule := range schema {
		name := rule.Field.String()
		suffix, isDatePart := labelKeys[rule.Field]
		if !isDatePart {
			suffix = name
		}

		f := field{
			ID:       "field-" + name,
			Name:     name,
			Label:    r.tr.T(lang, "form.label."+suffix),
			Value:    p.Draft.Value(rule.Field),
			Required: rule.Required,
			Options:  rule.Options,
			Error:    r.fieldError(lang, p.Errors, name),
		}

		switch {
		case isDatePart:
			f.Placeholder = r.tr.T(lang, "form.placeholder."+suffix)
			data.BirthDate = append(data.BirthDate, f)
		case rule.Format == registration.FormatEmail:
			f.Type = "email"
			data.Inputs = append(data.Inputs, f)
		default:
			f.Type = "text"
			data.Inputs = append(data.Inputs, f)
		}
	}
	return data
}

// fieldError translates the first error for path, falling back to its
// English message.
func (r *Renderer) fieldError(lang string, errs validator.ValidationErrors, path string) string {
	verr, ok := errs.First(path)
	if !ok {
		return ""
	}
	return r.translate(lang, verr.TranslationKey, verr.Message, translationArgs(verr.TranslationValues)...)
}

func translationArgs(values map[string]any) []string {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(values)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(values[k]))
	}
	return args
}
