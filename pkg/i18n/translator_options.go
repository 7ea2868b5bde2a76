package i18n

import "log/slog"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested one has no
// translation for a key.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey returns the key itself for missing translations.
// Enabled by default; when disabled the result is "".
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) { t.fallbackToKey = fallback }
}

// WithLogger reports missing translations at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(t *Translator) {
		if log != nil {
			t.logger = log
		}
	}
}
