package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON translations")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML translations")
	ErrInvalidStructure     = errors.New("invalid translation structure")
	ErrUnsupportedFile      = errors.New("unsupported translation file")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToReadDir      = errors.New("failed to read translation directory")
	ErrLoadingCancelled     = errors.New("loading translations cancelled")
	ErrNoTranslations       = errors.New("no translations found")
	ErrLanguageNotSupported = errors.New("language not supported")
)
