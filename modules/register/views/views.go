package views

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/registro/handler"
	"github.com/dmitrymomot/registro/modules/register"
	"github.com/dmitrymomot/registro/pkg/i18n"
	"github.com/dmitrymomot/registro/registration"
)

var (
	//go:embed templates/*.html
	templateFS embed.FS

	//go:embed locales/*.yaml
	localeFS embed.FS
)

// ErrNilTranslator is returned by New without a translator.
var ErrNilTranslator = errors.New("views: nil translator")

// LocalesDir is the directory of the translation files inside Locales.
const LocalesDir = "locales"

// Locales returns the embedded translation files:
//
//	i18n.NewFSAdapter(views.Locales(), views.LocalesDir)
func Locales() fs.FS { return localeFS }

// Renderer renders the module views with translated labels. The language
// comes from the request context (i18n.Middleware).
type Renderer struct {
	tr   *i18n.Translator
	tmpl *template.Template
}

// New parses the embedded templates.
func New(tr *i18n.Translator) (*Renderer, error) {
	if tr == nil {
		return nil, ErrNilTranslator
	}
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tr: tr, tmpl: tmpl}, nil
}

// MustNew is like New but panics on error.
func MustNew(tr *i18n.Translator) *Renderer {
	r, err := New(tr)
	if err != nil {
		panic(err)
	}
	return r
}

// Views returns the component set for register.NewService.
func (r *Renderer) Views() *register.Views {
	return &register.Views{
		Page:    r.Page,
		Form:    r.Form,
		Success: r.Success,
	}
}

// ErrorHandlerConfig returns the error page and toast components for
// handler.NewErrorHandler.
func (r *Renderer) ErrorHandlerConfig() handler.ErrorHandlerConfig {
	return handler.ErrorHandlerConfig{
		ErrorPage:  r.ErrorPage,
		ErrorToast: r.ErrorToast,
	}
}

// Page renders the full document around p.Content.
func (r *Renderer) Page(p register.PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var content bytes.Buffer
		if p.Content != nil {
			if err := p.Content.Render(ctx, &content); err != nil {
				return err
			}
		}
		return r.execute(ctx, w, "page", pageData{
			AppName:           p.AppName,
			DatastarScriptURL: p.DatastarScriptURL,
			Content:           template.HTML(content.String()),
		})
	})
}

// Form renders the registration form.
func (r *Renderer) Form(p register.FormParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.execute(ctx, w, "form", r.formData(i18n.GetLocale(ctx), p))
	})
}

// Success renders the confirmation that replaces the form.
func (r *Renderer) Success(p register.SuccessParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.execute(ctx, w, "success", successData{
			Registration: p.Registration,
			BirthDate:    formatBirthDate(p.Registration.BirthDate),
			ResetURL:     p.ResetURL,
		})
	})
}

// ErrorPage renders a standalone error document.
func (r *Renderer) ErrorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.execute(ctx, w, "error", errorData{
			StatusCode: p.StatusCode,
			Title:      r.errorTitle(i18n.GetLocale(ctx), p.Key),
			RequestID:  p.RequestID,
			RetryURL:   p.RetryURL,
		})
	})
}

// ErrorToast renders the toast prepended to #toast-container.
func (r *Renderer) ErrorToast(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.execute(ctx, w, "toast", errorData{
			Type:      p.Type,
			Title:     r.errorTitle(i18n.GetLocale(ctx), p.Key),
			RequestID: p.RequestID,
		})
	})
}

func (r *Renderer) execute(ctx context.Context, w io.Writer, name string, data any) error {
	return r.tmpl.ExecuteTemplate(w, name, view{
		Lang: i18n.GetLocale(ctx),
		Data: data,
		tr:   r.tr,
	})
}

func (r *Renderer) errorTitle(lang, key string) string {
	return r.translate(lang, "errors."+key, key)
}

// translate returns fallback when neither lang nor the default language
// has key.
func (r *Renderer) translate(lang, key, fallback string, args ...string) string {
	if key == "" || (!r.tr.HasTranslation(lang, key) && !r.tr.HasTranslation(r.tr.DefaultLanguage(), key)) {
		return fallback
	}
	return r.tr.T(lang, key, args...)
}

func formatBirthDate(b registration.BirthDate) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{b.Year, b.Month, b.Day} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}
