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

	accountmodels "cobalt/internal/account/models"
	accountresponses "cobalt/internal/account/responses"
	"cobalt/internal/format"
	"cobalt/internal/l10n"
	"cobalt/internal/patientorder/models"
	"cobalt/internal/patientorder/service"
	"cobalt/internal/patientorder/store"
	id "cobalt/pkg/domain"
	"cobalt/pkg/requestcontext"
	"cobalt/pkg/testutil"
)

type stubAccounts struct{}

func (stubAccounts) RenderAccountByID(_ context.Context, _ *format.Formatter, accountID id.AccountID) (*accountresponses.AccountResponse, error) {
	return &accountresponses.AccountResponse{AccountID: accountID.String()}, nil
}

func (stubAccounts) ActiveAddress(_ context.Context, accountID id.AccountID) (*accountmodels.Address, error) {
	return testutil.Address(accountID), nil
}

type fixture struct {
	router  http.Handler
	patient id.AccountID
	mhic    id.AccountID
	order   *models.PatientOrder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s := store.NewInMemory()

	fx := &fixture{
		patient: id.AccountID(uuid.New()),
		mhic:    id.AccountID(uuid.New()),
	}
	fx.order = testutil.PatientOrder(&fx.patient)
	require.NoError(t, s.SavePatientOrder(ctx, fx.order))
	require.NoError(t, s.SaveNote(ctx, testutil.PatientOrderNote(fx.order.ID, fx.mhic, "Reached patient")))
	require.NoError(t, s.SaveOutreach(ctx, testutil.PatientOrderOutreach(fx.order.ID, fx.mhic)))
	require.NoError(t, s.SaveEncounter(ctx, fx.order.ID, &models.Encounter{CSN: "1001", FirstTypeText: testutil.Ptr("Office Visit")}))

	bundle, err := l10n.NewBundle()
	require.NoError(t, err)
	h := New(service.New(s, s, stubAccounts{}), format.NewFactory(bundle), slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	h.Register(r)
	fx.router = r
	return fx
}

func (fx *fixture) get(t *testing.T, target string, viewer id.AccountID, role id.RoleID) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if !viewer.IsNil() {
		ctx := requestcontext.WithAccountID(req.Context(), viewer)
		ctx = requestcontext.WithRoleID(ctx, role)
		req = req.WithContext(requestcontext.WithInstitutionID(ctx, "COBALT"))
	}
	rec := httptest.NewRecorder()
	fx.router.ServeHTTP(rec, req)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

func TestGetPatientOrder(t *testing.T) {
	fx := newFixture(t)
	target := "/patient-orders/" + fx.order.ID.String()

	t.Run("patient format", func(t *testing.T) {
		code, body := fx.get(t, target, fx.patient, id.RoleIDPatient)
		require.Equal(t, http.StatusOK, code)
		order := body["patientOrder"].(map[string]any)
		assert.Equal(t, "Jane Doe", order["patientDisplayName"])
		assert.NotContains(t, order, "reasonForReferral")
		require.Contains(t, order, "patientOrderNotes")
		assert.Nil(t, order["patientOrderNotes"])
	})

	t.Run("care team with everything", func(t *testing.T) {
		code, body := fx.get(t, target+"?supplements=everything", fx.mhic, id.RoleIDMHIC)
		require.Equal(t, http.StatusOK, code)
		order := body["patientOrder"].(map[string]any)
		assert.Equal(t, "Anxiety", order["reasonForReferral"])
		assert.Equal(t, "1 minute", order["orderAgeInMinutesDescription"])
		notes := order["patientOrderNotes"].([]any)
		require.Len(t, notes, 1)
		assert.Equal(t, fx.mhic.String(), notes[0].(map[string]any)["account"].(map[string]any)["accountId"])
		assert.Len(t, order["patientOrderOutreaches"], 1)
		assert.Equal(t, []any{}, order["patientOrderTriages"])
		assert.Equal(t, "Philadelphia", order["patientAddress"].(map[string]any)["locality"])
	})

	tests := []struct {
		name   string
		target string
		viewer id.AccountID
		role   id.RoleID
		status int
		code   string
	}{
		{"anonymous", target, id.AccountID{}, "", http.StatusUnauthorized, "unauthorized"},
		{"other patient", target, id.AccountID(uuid.New()), id.RoleIDPatient, http.StatusForbidden, "forbidden"},
		{"malformed id", "/patient-orders/nope", fx.mhic, id.RoleIDMHIC, http.StatusBadRequest, "bad_request"},
		{"unknown supplement", target + "?supplements=kitchen_sink", fx.mhic, id.RoleIDMHIC, http.StatusBadRequest, "validation_error"},
		{"unknown order", "/patient-orders/" + uuid.NewString(), fx.mhic, id.RoleIDMHIC, http.StatusNotFound, "not_found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := fx.get(t, tt.target, tt.viewer, tt.role)
			assert.Equal(t, tt.status, code)
			assert.Equal(t, tt.code, body["error"])
		})
	}
}

func TestAutocomplete(t *testing.T) {
	fx := newFixture(t)

	code, body := fx.get(t, "/patient-orders/autocomplete?searchQuery=doe", fx.mhic, id.RoleIDMHIC)
	require.Equal(t, http.StatusOK, code)
	results := body["patientOrderAutocompleteResults"].([]any)
	require.Len(t, results, 1)
	assert.Equal(t, "MRN100200", results[0].(map[string]any)["patientMrn"])

	code, body = fx.get(t, "/patient-orders/autocomplete?searchQuery=doe", fx.patient, id.RoleIDPatient)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "forbidden", body["error"])
}

func TestListEncounters(t *testing.T) {
	fx := newFixture(t)

	code, body := fx.get(t, "/patient-orders/"+fx.order.ID.String()+"/encounters", fx.mhic, id.RoleIDMHIC)
	require.Equal(t, http.StatusOK, code)
	encounters := body["encounters"].([]any)
	require.Len(t, encounters, 1)
	assert.Equal(t, "Type: Office Visit", encounters[0].(map[string]any)["description"])
}
