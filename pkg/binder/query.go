package binder

import "net/http"

// Query binds URL query parameters. The `query` tag is preferred and the
// `form` tag is used as a fallback, so one struct can serve both binders.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, r.URL.Query(), ErrFailedToParseQuery, "query", "form")
	}
}
