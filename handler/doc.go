// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value filled by binders,
// and returns a Response that knows how to render itself:
//
//	http.Handle("/", handler.Wrap(
//		func(ctx handler.Context, req Request) handler.Response {
//			return handler.TemplPartial(views.Form(req), views.Page(req),
//				handler.WithTarget("#form"))
//		},
//		handler.WithBinders[Request](binder.Query(), binder.Form()),
//		handler.WithErrorHandler[Request](errHandler),
//	))
//
// Templ and TemplPartial render templ components. Requests issued by the
// DataStar client (see IsDataStar) receive an SSE element patch instead of a
// full page. JSON and JSONError render the {data, error} envelope; validation
// errors from package validator become 422 responses with per-field details.
//
// NewErrorHandler classifies errors (HTTPError, validation and binder
// sentinels) into status codes, logs them with slog and renders an error
// page or toast.
package handler
