package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator resolves dotted keys like "form.email.label" per language.
// Lookups fall back from the regional tag ("pt-BR") to its base ("pt") and
// then to the default language.
type Translator struct {
	adapter       Adapter
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger

	mu           sync.RWMutex
	translations Translations
	names        []string
	matcher      language.Matcher
}

// NewTranslator loads translations from adapter.
func NewTranslator(ctx context.Context, adapter Adapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}
	t := &Translator{
		adapter:       adapter,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload fetches translations from the adapter again and swaps them in.
func (t *Translator) Reload(ctx context.Context) error {
	loaded, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}

	langs := make([]string, 0, len(loaded))
	for lang := range loaded {
		langs = append(langs, lang)
	}
	slices.Sort(langs)

	// The default language goes first so the matcher falls back to it.
	names := make([]string, 0, len(langs))
	if slices.Contains(langs, t.defaultLang) {
		names = append(names, t.defaultLang)
	}
	for _, lang := range langs {
		if lang != t.defaultLang {
			names = append(names, lang)
		}
	}
	tags := make([]language.Tag, len(names))
	for i, lang := range names {
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidStructure, lang, err)
		}
		tags[i] = tag
	}

	t.mu.Lock()
	t.translations = loaded
	t.names = names
	t.matcher = language.NewMatcher(tags)
	t.mu.Unlock()

	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", langs))
	return nil
}

// SupportedLanguages lists loaded languages in sorted order.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match returns the supported language that best fits the preferences,
// expressed as BCP 47 tags or Accept-Language values. Without a usable match
// it returns the default language.
func (t *Translator) Match(preferred ...string) string {
	if lang, ok := t.MatchOK(preferred...); ok {
		return lang
	}
	return t.defaultLang
}

// MatchOK is like Match but reports whether any preference matched.
func (t *Translator) MatchOK(preferred ...string) (string, bool) {
	t.mu.RLock()
	matcher, names := t.matcher, t.names
	t.mu.RUnlock()
	if len(names) == 0 {
		return "", false
	}

	var wanted []language.Tag
	for _, p := range preferred {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		wanted = append(wanted, parsed...)
	}
	if len(wanted) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(wanted...)
	if conf == language.No || idx < 0 || idx >= len(names) {
		return "", false
	}
	return names[idx], true
}

// HasTranslation reports whether lang defines key, without fallbacks.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := lookup(t.translations[lang], key)
	return ok
}

// T translates key for lang. Arguments are name/value pairs substituted into
// "%{name}" placeholders:
//
//	t.T("pt-BR", "form.error.required", "field", "Email")
func (t *Translator) T(lang, key string, args ...string) string {
	for _, candidate := range t.candidates(lang) {
		t.mu.RLock()
		val, ok := lookup(t.translations[candidate], key)
		t.mu.RUnlock()
		if ok {
			if s, isString := val.(string); isString {
				return substitute(s, args)
			}
		}
	}

	t.logger.Debug("missing translation", slog.String("lang", lang), slog.String("key", key))
	if t.fallbackToKey {
		return key
	}
	return ""
}

// Tc translates key using the language stored in ctx by Middleware.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Lang returns a translation function bound to lang, for templates.
func (t *Translator) Lang(lang string) func(key string, args ...string) string {
	return func(key string, args ...string) string {
		return t.T(lang, key, args...)
	}
}

func (t *Translator) candidates(lang string) []string {
	out := make([]string, 0, 3)
	if lang != "" {
		out = append(out, lang)
		if base, _, found := strings.Cut(lang, "-"); found && base != "" {
			out = append(out, base)
		}
	}
	if !slices.Contains(out, t.defaultLang) {
		out = append(out, t.defaultLang)
	}
	return out
}

func lookup(tree map[string]any, key string) (any, bool) {
	if tree == nil || key == "" {
		return nil, false
	}
	var cur any = tree
	for part := range strings.SplitSeq(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "%{"+args[i]+"}", args[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
