package register

import "github.com/dmitrymomot/registro/pkg/ratelimiter"

// Config holds the module settings loaded with pkg/config.
type Config struct {
	AppName     string `env:"APP_NAME" envDefault:"registro"`
	Env         string `env:"APP_ENV" envDefault:"development"`
	DefaultLang string `env:"DEFAULT_LANG" envDefault:"en"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// DatastarScriptURL is loaded by the page when set, enabling in-place
	// form updates. Without it the form works as a plain HTML form.
	DatastarScriptURL string `env:"DATASTAR_SCRIPT_URL"`

	// SubmitLimit throttles POST requests per client address
	// (SUBMIT_RATE_LIMIT_BURST, _REFILL, _INTERVAL). A zero capacity
	// disables it.
	SubmitLimit ratelimiter.Config `envPrefix:"SUBMIT_"`
}
