package i18n

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// Translations maps a language tag to its nested key tree.
type Translations map[string]map[string]any

// Parser decodes one translation document whose top-level keys are languages.
type Parser interface {
	Parse(ctx context.Context, content []byte) (Translations, error)
}

// ParserForFile picks a parser from the file extension.
func ParserForFile(name string) (Parser, error) {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(name), ".")) {
	case "json":
		return JSONParser{}, nil
	case "yaml", "yml":
		return YAMLParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, name)
	}
}

func toTranslations(data map[string]any) (Translations, error) {
	out := make(Translations, len(data))
	for lang, v := range data {
		tree, ok := v.(map[string]any)
		if !ok || lang == "" {
			return nil, fmt.Errorf("%w: language %q must map to an object, got %T", ErrInvalidStructure, lang, v)
		}
		out[lang] = tree
	}
	if len(out) == 0 {
		return nil, ErrNoTranslations
	}
	return out, nil
}
