package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/registro/handler"
	"github.com/dmitrymomot/registro/pkg/binder"
)

type request struct {
	Name string `form:"name"`
	Tag  string `query:"tag"`
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

type failingResponse struct{}

func (failingResponse) Render(http.ResponseWriter, *http.Request) error {
	return errors.New("render failed")
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("binds query and form", func(t *testing.T) {
		t.Parallel()
		var got request
		h := handler.Wrap[request](func(ctx handler.Context, req request) handler.Response {
			got = req
			return handler.Templ(text("ok"))
		}, handler.WithBinders[request](binder.Query(), binder.Form()))

		req := httptest.NewRequest(http.MethodPost, "/?tag=x", strings.NewReader(url.Values{"name": {"Ana"}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, request{Name: "Ana", Tag: "x"}, got)
	})

	t.Run("skips form binder on GET", func(t *testing.T) {
		t.Parallel()
		called := false
		h := handler.Wrap[request](func(ctx handler.Context, req request) handler.Response {
			called = true
			return handler.Templ(text("ok"))
		}, handler.WithBinders[request](binder.Query(), binder.Form()))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("binder error goes to error handler", func(t *testing.T) {
		t.Parallel()
		var captured error
		h := handler.Wrap[request](func(ctx handler.Context, req request) handler.Response {
			t.Fatal("handler must not run")
			return nil
		},
			handler.WithBinders[request](binder.Form()),
			handler.WithErrorHandler[request](func(ctx handler.Context, err error) {
				captured = err
				ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
			}),
		)

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.ErrorIs(t, captured, binder.ErrUnsupportedMediaType)
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap[request](func(ctx handler.Context, req request) handler.Response { return nil })
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("render error", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap[request](func(ctx handler.Context, req request) handler.Response { return failingResponse{} })
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("http error keeps code", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap[request](func(ctx handler.Context, req request) handler.Response {
			return handler.JSONError(handler.ErrNotFound)
		})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("decorators wrap in order", func(t *testing.T) {
		t.Parallel()
		var order []string
		mark := func(name string) handler.Decorator[request] {
			return func(next handler.HandlerFunc[request]) handler.HandlerFunc[request] {
				return func(ctx handler.Context, req request) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		h := handler.Wrap[request](func(ctx handler.Context, req request) handler.Response {
			order = append(order, "handler")
			return handler.Templ(text("ok"))
		}, handler.WithDecorators(mark("outer"), mark("inner")))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, []string{"outer", "inner", "handler"}, order)
	})

	t.Run("context exposes request", func(t *testing.T) {
		t.Parallel()
		type key struct{}
		h := handler.Wrap[request](func(ctx handler.Context, req request) handler.Response {
			require.NotNil(t, ctx.Request())
			require.NotNil(t, ctx.ResponseWriter())
			assert.Equal(t, "v", ctx.Value(key{}))
			assert.NoError(t, ctx.Err())
			return handler.Templ(text("ok"))
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), key{}, "v"))
		h.ServeHTTP(httptest.NewRecorder(), req)
	})
}

func TestErrorResponse(t *testing.T) {
	t.Parallel()

	var captured error
	h := handler.Wrap[request](func(ctx handler.Context, req request) handler.Response {
		return handler.Error(handler.ErrNotFound)
	}, handler.WithErrorHandler[request](func(ctx handler.Context, err error) {
		captured = err
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, captured, handler.ErrNotFound)
	assert.ErrorIs(t, handler.Error(nil).Render(nil, nil), handler.ErrInternalServerError)
}
