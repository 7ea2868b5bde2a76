package i18n

// DefaultLanguage is used when nothing else is known.
const DefaultLanguage = "en"

// maxHeaderLength caps the Accept-Language value passed to the parser.
const maxHeaderLength = 4096
