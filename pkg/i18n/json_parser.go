package i18n

import (
	"context"
	"encoding/json"
	"errors"
)

// JSONParser reads JSON translation files.
type JSONParser struct{}

func (JSONParser) Parse(ctx context.Context, content []byte) (Translations, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return toTranslations(data)
}
