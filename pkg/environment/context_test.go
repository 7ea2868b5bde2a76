package environment_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/registro/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{"dev", environment.Development},
		{"Development", environment.Development},
		{"local", environment.Development},
		{"stage", environment.Staging},
		{" PROD ", environment.Production},
		{"production", environment.Production},
		{"qa", environment.Environment("qa")},
		{"", environment.Environment("")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, environment.Parse(tt.in))
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		ctx := environment.WithContext(context.Background(), environment.Production)
		assert.Equal(t, environment.Production, environment.FromContext(ctx))
		assert.True(t, environment.IsProduction(ctx))
		assert.False(t, environment.IsDevelopment(ctx))
		assert.False(t, environment.IsStaging(ctx))
	})

	t.Run("missing value", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, environment.Environment(""), environment.FromContext(context.Background()))
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := environment.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(environment.WithContext(context.Background(), environment.Staging))
	require.True(t, ok)
	assert.Equal(t, slog.String("env", "staging"), attr)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got environment.Environment
	h := environment.Middleware(environment.Development)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = environment.FromContext(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, environment.Development, got)
}
