// Package views renders the registration pages from embedded html/template
// files. Components implement templ.Component so the handler package can
// stream them as full pages or DataStar patches.
//
// Labels and error messages are looked up in the embedded locales (en,
// pt-BR) for the language stored in the request context by i18n.Middleware.
// Validation errors without a translation fall back to their English
// message.
package views
