package environment

import (
	"context"
	"strings"
)

// Environment represents the deployment environment of the application.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse normalises common aliases ("dev", "stage", "prod") to the canonical
// constants. Unknown values are returned lower-cased as is.
func Parse(s string) Environment {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "dev", "development", "local":
		return Development
	case "stage", "staging":
		return Staging
	case "prod", "production":
		return Production
	default:
		return Environment(v)
	}
}

func (e Environment) String() string { return string(e) }

type contextKey struct{}

// WithContext stores the environment in ctx.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx or "" when absent.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

func IsProduction(ctx context.Context) bool  { return FromContext(ctx) == Production }
func IsDevelopment(ctx context.Context) bool { return FromContext(ctx) == Development }
func IsStaging(ctx context.Context) bool     { return FromContext(ctx) == Staging }
