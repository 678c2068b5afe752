package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/validation"
)

type deviceRequest struct {
	Fingerprint string `json:"fingerprint"`
	PushToken   string `json:"pushToken"`

	sanitized  bool
	normalized bool
}

func (r *deviceRequest) Sanitize() {
	r.sanitized = true
	r.Fingerprint = strings.TrimSpace(r.Fingerprint)
}

func (r *deviceRequest) Normalize() {
	r.normalized = true
	r.Fingerprint = strings.ToLower(r.Fingerprint)
}

func (r *deviceRequest) Validate() error {
	if r.Fingerprint == "" {
		return errors.New("fingerprint is required")
	}
	return nil
}

type uploadRequest struct {
	ContentType string `json:"contentType"`
}

func (r *uploadRequest) Validate() error {
	if r.ContentType == "" {
		return dErrors.New(dErrors.CodeBadRequest, "contentType is required")
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/client-devices", bytes.NewBufferString(body))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var errResp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	return errResp
}

func TestDecodeJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes body", func(t *testing.T) {
		w := httptest.NewRecorder()
		result, ok := DecodeJSON[deviceRequest](w, post(`{"fingerprint":"abc","pushToken":"tok"}`), discardLogger(), ctx, "req-1")

		assert.True(t, ok)
		require.NotNil(t, result)
		assert.Equal(t, "abc", result.Fingerprint)
		assert.Equal(t, "tok", result.PushToken)
	})

	for name, body := range map[string]string{"malformed": `{nope}`, "empty": ``} {
		t.Run(name+" body is a bad request", func(t *testing.T) {
			w := httptest.NewRecorder()
			result, ok := DecodeJSON[deviceRequest](w, post(body), discardLogger(), ctx, "req-1")

			assert.False(t, ok)
			assert.Nil(t, result)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "bad_request", decodeError(t, w)["error"])
		})
	}

	t.Run("trailing data is a bad request", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, ok := DecodeJSON[deviceRequest](w, post(`{"fingerprint":"a"}{"fingerprint":"b"}`), discardLogger(), ctx, "req-1")

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("oversized body is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"fingerprint":"` + strings.Repeat("a", validation.MaxBodySize) + `"}`
		_, ok := DecodeJSON[deviceRequest](w, post(body), discardLogger(), ctx, "req-1")

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "request body is too large", decodeError(t, w)["error_description"])
	})
}

func TestDecodeAndPrepare(t *testing.T) {
	ctx := context.Background()

	t.Run("runs sanitize normalize validate", func(t *testing.T) {
		w := httptest.NewRecorder()
		result, ok := DecodeAndPrepare[deviceRequest](w, post(`{"fingerprint":"  ABC "}`), discardLogger(), ctx, "req-1")

		assert.True(t, ok)
		require.NotNil(t, result)
		assert.True(t, result.sanitized)
		assert.True(t, result.normalized)
		assert.Equal(t, "abc", result.Fingerprint)
	})

	t.Run("plain validation error becomes validation_error", func(t *testing.T) {
		w := httptest.NewRecorder()
		result, ok := DecodeAndPrepare[deviceRequest](w, post(`{"fingerprint":"  "}`), discardLogger(), ctx, "req-1")

		assert.False(t, ok)
		assert.Nil(t, result)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		errResp := decodeError(t, w)
		assert.Equal(t, "validation_error", errResp["error"])
		assert.Contains(t, errResp["error_description"], "fingerprint is required")
	})

	t.Run("domain error code is preserved", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, ok := DecodeAndPrepare[uploadRequest](w, post(`{}`), discardLogger(), ctx, "req-1")

		assert.False(t, ok)
		errResp := decodeError(t, w)
		assert.Equal(t, "bad_request", errResp["error"])
		assert.Equal(t, "contentType is required", errResp["error_description"])
	})
}

func TestPrepareRequestIgnoresPlainTypes(t *testing.T) {
	assert.NoError(t, PrepareRequest(&struct{ Name string }{Name: "x"}))
	assert.Error(t, PrepareRequest(&deviceRequest{}))
}
