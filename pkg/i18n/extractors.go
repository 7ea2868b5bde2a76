package i18n

import (
	"net/http"
	"strings"
)

// LangExtractor picks a language for a request.
type LangExtractor func(r *http.Request) string

// ExtractorOption configures DefaultLangExtractor.
type ExtractorOption func(*extractorConfig)

type extractorConfig struct {
	cookie string
	query  string
}

// WithCookieName changes the cookie checked first (default "lang").
func WithCookieName(name string) ExtractorOption {
	return func(c *extractorConfig) { c.cookie = name }
}

// WithQueryParamName changes the query parameter checked second (default "lang").
func WithQueryParamName(name string) ExtractorOption {
	return func(c *extractorConfig) { c.query = name }
}

// DefaultLangExtractor resolves the language from, in order, the cookie, the
// query parameter and the Accept-Language header. Every candidate is matched
// against the translator's languages, so "pt-br" or "pt-BR;q=0.9" resolve to
// "pt-BR". Nothing usable yields the translator's default.
func DefaultLangExtractor(t *Translator, opts ...ExtractorOption) LangExtractor {
	cfg := extractorConfig{cookie: "lang", query: "lang"}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(r *http.Request) string {
		var preferred []string
		if cfg.cookie != "" {
			if c, err := r.Cookie(cfg.cookie); err == nil {
				if v := strings.TrimSpace(c.Value); v != "" {
					preferred = append(preferred, v)
				}
			}
		}
		if cfg.query != "" {
			if v := strings.TrimSpace(r.URL.Query().Get(cfg.query)); v != "" {
				preferred = append(preferred, v)
			}
		}
		if v := r.Header.Get("Accept-Language"); v != "" {
			if len(v) > maxHeaderLength {
				v = v[:maxHeaderLength]
			}
			preferred = append(preferred, v)
		}

		// Explicit choices win over the header when they are supported.
		for _, p := range preferred {
			if lang, ok := t.MatchOK(p); ok {
				return lang
			}
		}
		return t.DefaultLanguage()
	}
}
