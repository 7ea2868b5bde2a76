// Package i18n loads YAML or JSON translation trees and resolves dotted keys
// per language.
//
// Translation files have languages as top-level keys:
//
//	en:
//	  form:
//	    email: Email
//	    error:
//	      required: "%{field} is required"
//
// Typical wiring with an embedded directory:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales, "locales"),
//		i18n.WithDefaultLanguage("en"),
//	)
//	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(tr)))
//	...
//	label := tr.Tc(ctx, "form.email")
//
// Language negotiation uses golang.org/x/text/language, so regional variants
// and Accept-Language quality values are honoured.
package i18n
