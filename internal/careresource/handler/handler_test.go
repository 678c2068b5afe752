package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobalt/internal/careresource/models"
	"cobalt/internal/careresource/service"
	"cobalt/internal/careresource/store"
	"cobalt/internal/format"
	"cobalt/internal/l10n"
	id "cobalt/pkg/domain"
	"cobalt/pkg/requestcontext"
	"cobalt/pkg/testutil"
)

func TestGetCareResource(t *testing.T) {
	ctx := context.Background()
	s := store.NewInMemory()
	resource := testutil.CareResource()
	location := testutil.CareResourceLocation(resource.ID)
	require.NoError(t, s.SaveCareResource(ctx, resource))
	require.NoError(t, s.SaveLocation(ctx, location))
	require.NoError(t, s.TagLocation(ctx, location.ID, testutil.CareResourceTag(models.TagGroupLanguages, "SPANISH", "Spanish")))
	require.NoError(t, s.TagResource(ctx, resource.ID, testutil.CareResourceTag(models.TagGroupPayors, "AETNA", "Aetna")))

	bundle, err := l10n.NewBundle()
	require.NoError(t, err)
	h := New(service.New(s, s), format.NewFactory(bundle), slog.New(slog.NewTextHandler(io.Discard, nil)))
	router := chi.NewRouter()
	h.Register(router)

	get := func(t *testing.T, target string, role id.RoleID) (int, map[string]any) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if role != "" {
			rctx := requestcontext.WithAccountID(req.Context(), id.AccountID(uuid.New()))
			rctx = requestcontext.WithRoleID(rctx, role)
			req = req.WithContext(requestcontext.WithInstitutionID(rctx, "COBALT"))
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
		return rec.Code, body
	}
	target := "/care-resources/" + resource.ID.String()

	t.Run("patient view", func(t *testing.T) {
		code, body := get(t, target, id.RoleIDPatient)
		require.Equal(t, http.StatusOK, code)
		cr := body["careResource"].(map[string]any)
		assert.Equal(t, "Riverside Counseling", cr["name"])
		assert.Equal(t, "(215) 555-0140", cr["formattedPhoneNumber"])
		locations := cr["careResourceLocations"].([]any)
		require.Len(t, locations, 1)
		l := locations[0].(map[string]any)
		assert.NotContains(t, l, "internalNotes")
		assert.Equal(t, "Spanish", l["languages"].([]any)[0].(map[string]any)["name"])
		assert.Equal(t, "Aetna", l["payors"].([]any)[0].(map[string]any)["name"])
	})

	t.Run("mhic sees internal notes", func(t *testing.T) {
		code, body := get(t, target, id.RoleIDMHIC)
		require.Equal(t, http.StatusOK, code)
		l := body["careResource"].(map[string]any)["careResourceLocations"].([]any)[0].(map[string]any)
		assert.Equal(t, "Ask for Dana at intake", l["internalNotes"])
	})

	tests := []struct {
		name   string
		target string
		role   id.RoleID
		status int
		code   string
	}{
		{"anonymous", target, "", http.StatusUnauthorized, "unauthorized"},
		{"malformed id", "/care-resources/nope", id.RoleIDPatient, http.StatusBadRequest, "bad_request"},
		{"unknown resource", "/care-resources/" + uuid.NewString(), id.RoleIDPatient, http.StatusNotFound, "not_found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := get(t, tt.target, tt.role)
			assert.Equal(t, tt.status, code)
			assert.Equal(t, tt.code, body["error"])
		})
	}
}
