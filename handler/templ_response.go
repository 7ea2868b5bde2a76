package handler

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures templ responses.
type TemplOption func(*templResponse)

// WithTarget sets the CSS selector patched for DataStar requests.
func WithTarget(selector string) TemplOption {
	return func(t *templResponse) {
		t.patch = append(t.patch, datastar.WithSelector(selector))
	}
}

// WithPatchMode sets how DataStar merges the fragment.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return func(t *templResponse) {
		t.patch = append(t.patch, datastar.WithMode(mode))
	}
}

// WithStatus sets the status code for regular HTML responses. SSE streams
// always answer 200.
func WithStatus(code int) TemplOption {
	return func(t *templResponse) {
		if code > 0 {
			t.status = code
		}
	}
}

type templResponse struct {
	partial templ.Component
	full    templ.Component
	status  int
	patch   []datastar.PatchElementOption
}

// Render streams the partial as an element patch for DataStar, otherwise
// renders the full component. HTML is buffered so a failing component does
// not leave a half-written page behind a success status.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.partial, t.patch...)
	}

	return t.renderHTML(w, r)
}

func (t templResponse) renderHTML(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	if err := t.full.Render(r.Context(), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := buf.WriteTo(w)
	return err
}

// Templ renders component for both request kinds.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return TemplPartial(component, component, opts...)
}

// TemplPartial renders partial for DataStar requests and full otherwise.
//
//	return handler.TemplPartial(views.Form(vm), views.Page(vm),
//		handler.WithTarget("#registration-form"),
//		handler.WithStatus(http.StatusUnprocessableEntity),
//	)
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	t := templResponse{partial: partial, full: full, status: http.StatusOK}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
