// Package register mounts the registration form as an HTTP module.
//
// The service binds posted fields into a registration.Draft, runs it through
// a registration.Form and answers with the form re-rendered with inline
// errors (422), or with the success view. DataStar requests receive only the
// fragment, patched into #registration-form. A JSON endpoint offers the same
// flow for API clients.
//
//	svc := register.NewService(cfg, views.New(translator),
//		registration.LogSuccess(log),
//		register.WithMetrics(register.NewMetrics(prometheus.DefaultRegisterer)),
//	)
//	r.Mount("/", svc.Handle())
package register
