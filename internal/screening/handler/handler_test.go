package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountmodels "cobalt/internal/account/models"
	"cobalt/internal/format"
	jwttoken "cobalt/internal/jwt_token"
	"cobalt/internal/l10n"
	"cobalt/internal/platform/config"
	"cobalt/internal/screening/models"
	"cobalt/internal/screening/service"
	"cobalt/internal/screening/store"
	id "cobalt/pkg/domain"
	"cobalt/pkg/requestcontext"
	"cobalt/pkg/testutil"
)

type stubSources []*accountmodels.AccountSource

func (s stubSources) ListAccountSources(_ context.Context, institutionID id.InstitutionID) ([]*accountmodels.AccountSource, error) {
	out := make([]*accountmodels.AccountSource, 0, len(s))
	for _, src := range s {
		if src.InstitutionID == institutionID {
			out = append(out, src)
		}
	}
	return out, nil
}

type fixture struct {
	router    http.Handler
	tokens    *jwttoken.JWTService
	patient   id.AccountID
	version   *models.ScreeningFlowVersion
	session   *models.ScreeningSession
	versionID id.ScreeningVersionID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s := store.NewInMemory()

	fx := &fixture{
		tokens:    jwttoken.NewJWTService("screening-test-key", "cobalt-test", time.Hour),
		patient:   id.AccountID(uuid.New()),
		version:   testutil.ScreeningFlowVersion("PROVIDER_SSO"),
		versionID: id.ScreeningVersionID(uuid.New()),
	}
	fx.session = testutil.ScreeningSession(fx.patient)

	require.NoError(t, s.SaveFlowVersion(ctx, fx.version))
	require.NoError(t, s.SaveSession(ctx, fx.session))
	require.NoError(t, s.SaveQuestion(ctx, testutil.ScreeningQuestion(fx.versionID, "How are you sleeping?")))

	sources := stubSources{{
		ID:            "PROVIDER_SSO",
		InstitutionID: "COBALT",
		Description:   "Sign in with your employer",
		LocalSsoURL:   testutil.Ptr("http://localhost:8080/sso?provider=employer"),
		Visible:       true,
	}}

	bundle, err := l10n.NewBundle()
	require.NoError(t, err)
	svc := service.New(s, s, s, sources, fx.tokens, config.EnvironmentLocal,
		service.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	h := New(svc, format.NewFactory(bundle), slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	h.Register(r)
	fx.router = r
	return fx
}

func (fx *fixture) get(t *testing.T, target string, viewer id.AccountID, role id.RoleID) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	ctx := requestcontext.WithInstitutionID(req.Context(), "COBALT")
	ctx = requestcontext.WithLocation(ctx, ny)
	if !viewer.IsNil() {
		ctx = requestcontext.WithAccountID(ctx, viewer)
		ctx = requestcontext.WithRoleID(ctx, role)
	}
	rec := httptest.NewRecorder()
	fx.router.ServeHTTP(rec, req.WithContext(ctx))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

func TestGetScreeningFlowVersion(t *testing.T) {
	fx := newFixture(t)

	code, body := fx.get(t, "/screening-flow-versions/"+fx.version.ID.String(), fx.patient, id.RoleIDPatient)
	require.Equal(t, http.StatusOK, code)
	version := body["screeningFlowVersion"].(map[string]any)
	assert.Equal(t, "Version 3", version["versionNumberDescription"])

	sources := version["requiredAccountSources"].([]any)
	require.Len(t, sources, 1)
	ssoURL, err := url.Parse(sources[0].(map[string]any)["ssoUrl"].(string))
	require.NoError(t, err)
	assert.Equal(t, "employer", ssoURL.Query().Get("provider"))

	claims, err := fx.tokens.ParseSigningToken(ssoURL.Query().Get("signingToken"))
	require.NoError(t, err)
	assert.Equal(t, fx.patient.String(), claims.Subject)
	assert.Equal(t, fx.version.ID.String(), claims.Subjects["screeningFlowVersionId"])
	assert.ElementsMatch(t, []string{"UPGRADE_ACCOUNT", "CREATE_SCREENING_SESSION"}, claims.Actions)

	t.Run("anonymous viewer gets no token", func(t *testing.T) {
		code, body := fx.get(t, "/screening-flow-versions/"+fx.version.ID.String(), id.AccountID{}, "")
		require.Equal(t, http.StatusOK, code)
		sources := body["screeningFlowVersion"].(map[string]any)["requiredAccountSources"].([]any)
		assert.Equal(t, "http://localhost:8080/sso?provider=employer", sources[0].(map[string]any)["ssoUrl"])
	})
}

func TestGetScreeningSession(t *testing.T) {
	fx := newFixture(t)
	target := "/screening-sessions/" + fx.session.ID.String()

	code, body := fx.get(t, target, fx.patient, id.RoleIDPatient)
	require.Equal(t, http.StatusOK, code)
	session := body["screeningSession"].(map[string]any)
	assert.Equal(t, true, session["completed"])
	assert.Equal(t, "March 5, 2024 at 2:30 PM", session["completedAtDescription"])

	tests := []struct {
		name   string
		target string
		viewer id.AccountID
		status int
		code   string
	}{
		{"malformed id", "/screening-sessions/nope", fx.patient, http.StatusBadRequest, "bad_request"},
		{"unknown session", "/screening-sessions/" + uuid.NewString(), fx.patient, http.StatusNotFound, "not_found"},
		{"anonymous", target, id.AccountID{}, http.StatusUnauthorized, "unauthorized"},
		{"another patient", target, id.AccountID(uuid.New()), http.StatusForbidden, "forbidden"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := fx.get(t, tt.target, tt.viewer, id.RoleIDPatient)
			assert.Equal(t, tt.status, code)
			assert.Equal(t, tt.code, body["error"])
		})
	}
}

func TestListQuestions(t *testing.T) {
	fx := newFixture(t)

	code, body := fx.get(t, "/screening-versions/"+fx.versionID.String()+"/questions", id.AccountID{}, "")
	require.Equal(t, http.StatusOK, code)
	questions := body["screeningQuestions"].([]any)
	require.Len(t, questions, 1)
	question := questions[0].(map[string]any)
	assert.Equal(t, "How are you sleeping?", question["questionText"])
	options := question["screeningAnswerOptions"].([]any)
	require.Len(t, options, 2)
	assert.Equal(t, "Never", options[0].(map[string]any)["answerOptionText"])

	code, body = fx.get(t, "/screening-versions/"+uuid.NewString()+"/questions", id.AccountID{}, "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["screeningQuestions"])
}
