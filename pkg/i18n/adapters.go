package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// Adapter loads translations from a source.
type Adapter interface {
	Load(ctx context.Context) (Translations, error)
}

// MapAdapter serves translations held in memory.
type MapAdapter Translations

func (m MapAdapter) Load(ctx context.Context) (Translations, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	return maps.Clone(Translations(m)), nil
}

// FSAdapter loads every .yaml, .yml and .json file in Dir of FS.
// Works with embed.FS and os.DirFS alike. Files are merged per language, so
// each language may live in its own file or share one.
type FSAdapter struct {
	FS  fs.FS
	Dir string
}

// NewFSAdapter returns an adapter for dir in fsys; "" means the root.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{FS: fsys, Dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (Translations, error) {
	entries, err := fs.ReadDir(a.FS, a.Dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	out := make(Translations)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if entry.IsDir() {
			continue
		}
		parser, err := ParserForFile(entry.Name())
		if err != nil {
			continue
		}
		name := path.Join(a.Dir, entry.Name())
		content, err := fs.ReadFile(a.FS, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		parsed, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for lang, tree := range parsed {
			if out[lang] == nil {
				out[lang] = make(map[string]any)
			}
			mergeTree(out[lang], tree)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoTranslations
	}
	return out, nil
}

func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		sub, isMap := v.(map[string]any)
		existing, hasMap := dst[k].(map[string]any)
		if isMap && hasMap {
			mergeTree(existing, sub)
			continue
		}
		dst[k] = v
	}
}
