package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/registro/modules/register"
	"github.com/dmitrymomot/registro/pkg/ratelimiter"
	"github.com/dmitrymomot/registro/registration"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(args, &streams{In: strings.NewReader(stdin), Out: &out, Err: &errOut})
	return out.String(), err
}

func TestCheck(t *testing.T) {
	t.Parallel()

	valid := `{"firstName":"Ana","lastName":"Silva","company":"Acme","email":"ana@acme.com","birthDate":{}}`
	invalid := `{"firstName":"","lastName":"Silva","company":"Acme","email":"bad-email"}`

	t.Run("valid from stdin", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, valid, "check")
		require.NoError(t, err)
		assert.Equal(t, "ok\n", out)
	})

	t.Run("invalid lists every field", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, invalid, "check")
		require.ErrorIs(t, err, errInvalid)
		assert.Equal(t, 1, exitCode(err))
		assert.Equal(t, "firstName: field is required\nemail: must be a valid email address\n", out)
	})

	t.Run("json output", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, valid, "check", "--format", "json")
		require.NoError(t, err)

		var res checkResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.True(t, res.Valid)
		require.NotNil(t, res.Registration)
		assert.Equal(t, registration.Registration{
			FirstName: "Ana", LastName: "Silva", Company: "Acme", Email: "ana@acme.com",
		}, *res.Registration)
	})

	t.Run("json errors", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, invalid, "check", "--format=json")
		require.ErrorIs(t, err, errInvalid)

		var res checkResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.False(t, res.Valid)
		assert.Nil(t, res.Registration)
		assert.Equal(t, []string{"field is required"}, res.Errors["firstName"])
		assert.Equal(t, []string{"must be a valid email address"}, res.Errors["email"])
	})

	t.Run("from file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "draft.json")
		require.NoError(t, os.WriteFile(path, []byte(valid), 0o600))

		out, err := execute(t, "", "check", path)
		require.NoError(t, err)
		assert.Equal(t, "ok\n", out)
	})

	t.Run("malformed input", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, `{"firstName":`, "check")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errInvalid)
		assert.Equal(t, 2, exitCode(err))
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, `{"nickname":"ana"}`, "check")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errInvalid)
	})
}

func TestSchemaCmd(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "schema")
	require.NoError(t, err)

	var rules []registration.FieldRule
	require.NoError(t, json.Unmarshal([]byte(out), &rules))
	assert.Equal(t, registration.Schema(), rules)
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "registro dev (unknown, unknown)\n", out)
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "frobnicate")
	require.Error(t, err)
}

func TestNewApp(t *testing.T) {
	t.Parallel()

	cfg := register.Config{
		AppName:     "registro",
		Env:         "development",
		DefaultLang: "en",
		SubmitLimit: ratelimiter.Config{Capacity: 5, RefillRate: 1, RefillInterval: time.Second},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := newApp(context.Background(), cfg, log, prometheus.NewRegistry())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	get := func(path string, header ...string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		for i := 0; i+1 < len(header); i += 2 {
			req.Header.Set(header[i], header[i+1])
		}
		rec := httptest.NewRecorder()
		a.ServeHTTP(rec, req)
		return rec
	}

	t.Run("health", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, http.StatusOK, get("/health/live").Code)
		assert.Equal(t, http.StatusOK, get("/health/ready").Code)
	})

	t.Run("form page", func(t *testing.T) {
		t.Parallel()
		rec := get("/")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="registration-form"`)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "en", rec.Header().Get("Content-Language"))
	})

	t.Run("negotiated language", func(t *testing.T) {
		t.Parallel()
		rec := get("/", "Accept-Language", "pt-BR,pt;q=0.9")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pt-BR", rec.Header().Get("Content-Language"))
		assert.Contains(t, rec.Body.String(), "Sobrenome")
	})

	t.Run("submit is rate limited", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("firstName=Ana"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.RemoteAddr = "198.51.100.20:4000"
		rec := httptest.NewRecorder()
		a.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("metrics", func(t *testing.T) {
		t.Parallel()
		rec := get("/metrics")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "go_goroutines")
	})
}
