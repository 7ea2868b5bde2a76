package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/registro/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("registration", slog.String("first_name", "Ana"), slog.Int("n", 2))
	require.Equal(t, "registration", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "first_name", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestFieldErrors(t *testing.T) {
	attr := logger.FieldErrors(map[string]string{"email": "must be a valid email address"})
	require.Equal(t, "field_errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 1)
	assert.Equal(t, "email", g[0].Key)

	assert.True(t, logger.FieldErrors(nil).Equal(slog.Attr{}))
}

func TestSimpleAttrs(t *testing.T) {
	assert.Equal(t, "field", logger.Field("email").Key)
	assert.Equal(t, "accepted", logger.Outcome("accepted").Value.String())
	assert.Equal(t, "component", logger.Component("registration").Key)
	assert.Equal(t, "event", logger.Event("submit").Key)
	assert.Equal(t, "handler", logger.Handler("submit").Key)
	assert.Equal(t, "duration", logger.Duration(5).Key)
}
