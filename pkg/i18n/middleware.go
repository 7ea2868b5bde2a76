package i18n

import "net/http"

// Middleware stores the language chosen by extr in the request context,
// where GetLocale and Translator.Tc read it. A nil extractor or an empty
// result stores DefaultLanguage.
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := DefaultLanguage
			if extr != nil {
				if v := extr(r); v != "" {
					lang = v
				}
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
