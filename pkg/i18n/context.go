package i18n

import "context"

type localeContextKey struct{}

// SetLocale stores lang in ctx.
func SetLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, lang)
}

// GetLocale returns the language from ctx or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if ctx == nil {
		return DefaultLanguage
	}
	if lang, _ := ctx.Value(localeContextKey{}).(string); lang != "" {
		return lang
	}
	return DefaultLanguage
}
