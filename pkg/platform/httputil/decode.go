package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/validation"
)

// DecodeJSON reads one JSON value from the request body into a new T. On
// failure it writes a bad_request response and returns false.
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	if err := decodeBody(w, r, &req); err != nil {
		logger.WarnContext(ctx, "failed to decode request body",
			"error", err,
			"request_id", requestID,
		)
		WriteError(w, err)
		return nil, false
	}
	return &req, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, validation.MaxBodySize))
	err := dec.Decode(dst)
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	case errors.As(err, &tooLarge):
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "request body is too large")
	case err != nil:
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request body")
	}
	if dec.More() {
		return dErrors.New(dErrors.CodeBadRequest, "request body must contain a single JSON value")
	}
	return nil
}

// Sanitizable request types strip unsafe content.
type Sanitizable interface{ Sanitize() }

// Normalizable request types canonicalize their fields, e.g. trimming.
type Normalizable interface{ Normalize() }

// Validatable request types check their own invariants.
type Validatable interface{ Validate() error }

// PrepareRequest runs whichever of Sanitize, Normalize and Validate req
// implements, in that order.
func PrepareRequest(req any) error {
	if v, ok := req.(Sanitizable); ok {
		v.Sanitize()
	}
	if v, ok := req.(Normalizable); ok {
		v.Normalize()
	}
	v, ok := req.(Validatable)
	if !ok {
		return nil
	}
	return v.Validate()
}

// DecodeAndPrepare is DecodeJSON followed by PrepareRequest. Validation errors
// without a domain code are reported as validation_error.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	req, ok := DecodeJSON[T](w, r, logger, ctx, requestID)
	if !ok {
		return nil, false
	}
	err := PrepareRequest(req)
	if err == nil {
		return req, true
	}
	logger.WarnContext(ctx, "invalid request",
		"error", err,
		"request_id", requestID,
	)
	if _, coded := dErrors.CodeOf(err); !coded {
		err = dErrors.Wrap(err, dErrors.CodeValidation, err.Error())
	}
	WriteError(w, err)
	return nil, false
}
