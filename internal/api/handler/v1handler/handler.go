// Package v1handler implements the v1 HTTP API of the converter.
package v1handler

import (
	"context"
	"converter/internal/converter"
	"converter/pkg/domain"
	"converter/pkg/logger"
	"converter/pkg/serrors"
	"errors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services the handlers call.
type Deps struct {
	Converter converter.Converter
}

// Handler serves the v1 endpoints.
type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

// Encode writes the error body as JSON.
func (s *ErrorStatusCode) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(s.Response.Code)
	e.FieldStart("message")
	e.Str(s.Response.Message)
	e.ObjEnd()
}

type errorMapping struct {
	status  int
	message string
}

//nolint: gochecknoglobals
var errorMappings = map[serrors.Kind]errorMapping{
	serrors.ErrBadRequest:           {status: http.StatusBadRequest, message: "bad request"},
	domain.ErrUnknownCategory:       {status: http.StatusBadRequest, message: "unknown category"},
	domain.ErrUnknownUnit:           {status: http.StatusBadRequest, message: "unknown unit"},
	serrors.ErrUnauthorized:         {status: http.StatusUnauthorized, message: "unauthorized"},
	serrors.ErrUnprocessable:        {status: http.StatusUnprocessableEntity, message: "unprocessable request"},
	domain.ErrUnsupportedConversion: {status: http.StatusUnprocessableEntity, message: "unsupported conversion"},
}

// NewError maps err to the response reported to the client. Errors without a
// known kind become 500 with a generic message so internals do not leak.
func NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	mapping, ok := errorMappings[kind]
	if !ok {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warn(ctx, "request deadline exceeded", zap.Error(err))
		} else {
			logger.Error(ctx, "request failed", zap.Error(err))
		}

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorResponse{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	logger.Info(ctx, "request rejected", zap.Error(err))

	message := serrors.MessageOf(err)
	if message == "" {
		message = mapping.message
	}

	return &ErrorStatusCode{
		StatusCode: mapping.status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

// encoder is implemented by every response body.
type encoder interface {
	Encode(e *jx.Encoder)
}

func writeJSON(w http.ResponseWriter, status int, body encoder) {
	var e jx.Encoder
	body.Encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// WriteError reports err to the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	res := NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, res)
}
