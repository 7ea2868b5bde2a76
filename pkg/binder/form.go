package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory bounds the in-memory part of multipart parsing.
const DefaultMaxMemory = 10 << 20

const (
	mimeFormURLEncoded = "application/x-www-form-urlencoded"
	mimeMultipartForm  = "multipart/form-data"
)

// Form binds the request body of urlencoded or multipart forms using `form`
// tags. Query string values are not read; use Query for those. Requests
// without a body method (GET, HEAD, DELETE, OPTIONS) yield
// ErrBinderNotApplicable so Form can be chained after Query.
//
//	type Request struct {
//		Email     string `form:"email"`
//		BirthDate struct {
//			Month string `form:"month"`
//		} `form:"birthDate"` // reads "birthDate.month"
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
			return ErrBinderNotApplicable
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected %s or %s", ErrMissingContentType, mimeFormURLEncoded, mimeMultipartForm)
		}
		mediaType, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}

		var values map[string][]string
		switch mediaType {
		case mimeFormURLEncoded:
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm
		case mimeMultipartForm:
			if params["boundary"] == "" {
				return fmt.Errorf("%w: missing boundary", ErrFailedToParseForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value
		default:
			return fmt.Errorf("%w: got %s, expected %s or %s", ErrUnsupportedMediaType, mediaType, mimeFormURLEncoded, mimeMultipartForm)
		}

		return bindToStruct(v, values, ErrFailedToParseForm, "form")
	}
}
