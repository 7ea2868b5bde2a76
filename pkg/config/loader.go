package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cacheEntry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache            sync.Map // reflect.Type -> *cacheEntry
	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v using `env` struct tags.
// The default .env file is read once if present. Each config type is parsed
// once per process; later calls receive a copy of the cached value.
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// Missing .env is fine.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	actual, _ := cache.LoadOrStore(key, &cacheEntry{})
	entry := actual.(*cacheEntry)

	entry.once.Do(func() {
		var fresh T
		if err := env.Parse(&fresh); err != nil {
			entry.err = errors.Join(ErrParsingConfig, err)
			return
		}
		entry.value = fresh
	})

	if entry.err != nil {
		return entry.err
	}
	cached, ok := entry.value.(T)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cached
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Option customises Parse.
type Option func(*env.Options)

// WithPrefix prepends prefix to every variable name.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithEnvironment parses from the given map instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) { o.Environment = vars }
}

// Parse fills v without caching. Useful for tests and for command line
// tools that accept an explicit env file.
func Parse[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}
	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}
	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadEnvFiles reads the given dotenv files into the process environment.
// Variables already set are not overwritten.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrEnvFile, err)
	}
	return nil
}
