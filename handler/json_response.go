package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/registro/pkg/validator"
)

// JSONResponse is the envelope for every JSON body.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Meta  any          `json:"meta,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details maps field paths to
// messages for validation failures.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON responses.
type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

func WithJSONMeta(meta any) JSONOption {
	return func(r *jsonResponse) { r.body.Meta = meta }
}

// JSON wraps v in {"data": v}.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err as {"error": {...}} with a status derived from it:
// validation errors give 422 "validation_error", HTTPError its own code and
// key, anything else 500 "internal_error".
func JSONError(err error, opts ...JSONOption) Response {
	status, detail := errorToDetail(err)
	r := &jsonResponse{status: status, body: JSONResponse{Error: detail}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorToDetail(err error) (int, *ErrorDetail) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "validation_error",
			Message: validator.ErrValidationFailed.Error(),
			Details: verrs.Values(),
		}
	}

	status, key := classify(err)
	return status, &ErrorDetail{Code: key, Message: http.StatusText(status)}
}
