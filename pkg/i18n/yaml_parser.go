package i18n

import (
	"context"
	"errors"

	"gopkg.in/yaml.v3"
)

// YAMLParser reads YAML translation files.
type YAMLParser struct{}

func (YAMLParser) Parse(ctx context.Context, content []byte) (Translations, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return toTranslations(data)
}
