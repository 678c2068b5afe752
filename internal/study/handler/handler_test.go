package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobalt/internal/format"
	"cobalt/internal/l10n"
	"cobalt/internal/platform/storage"
	"cobalt/internal/study/models"
	"cobalt/internal/study/service"
	"cobalt/internal/study/store"
	id "cobalt/pkg/domain"
	"cobalt/pkg/requestcontext"
	"cobalt/pkg/testutil"
)

type stubPresigner struct{}

func (stubPresigner) PresignPut(_ context.Context, req storage.PutRequest) (*storage.PresignedUpload, error) {
	return &storage.PresignedUpload{
		HTTPMethod:          "PUT",
		URL:                 "https://uploads.example.com/" + req.Key + "?X-Amz-Signature=abc",
		AccessURL:           "https://uploads.example.com/" + req.Key,
		ContentType:         req.ContentType,
		ExpirationTimestamp: testutil.FixedNow.Add(time.Hour),
		HTTPHeaders:         map[string]string{"Content-Type": req.ContentType},
	}, nil
}

type fixture struct {
	router   http.Handler
	store    *store.InMemory
	enrolled id.AccountID
	action   *models.AccountCheckInAction
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s := store.NewInMemory()
	fx := &fixture{store: s, enrolled: id.AccountID(uuid.New())}

	require.NoError(t, s.SaveAccountStudy(ctx, &models.AccountStudy{AccountID: fx.enrolled, StudyID: testutil.StudyID, StudyStarted: true}))
	checkIn := testutil.AccountCheckIn(fx.enrolled, 1, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), models.CheckInStatusInProgress)
	require.NoError(t, s.SaveCheckIn(ctx, checkIn))
	fx.action = testutil.AccountCheckInAction(checkIn.ID, models.CheckInActionStatusIncomplete)
	require.NoError(t, s.SaveCheckInAction(ctx, fx.action))

	bundle, err := l10n.NewBundle()
	require.NoError(t, err)
	h := New(service.New(s, s, s, stubPresigner{}), format.NewFactory(bundle), slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	h.Register(r)
	fx.router = r
	return fx
}

func (fx *fixture) do(t *testing.T, method, target, body string, viewer id.AccountID) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := requestcontext.WithTime(req.Context(), testutil.FixedNow)
	if !viewer.IsNil() {
		ctx = requestcontext.WithAccountID(ctx, viewer)
		ctx = requestcontext.WithRoleID(ctx, id.RoleIDPatient)
	}
	rec := httptest.NewRecorder()
	fx.router.ServeHTTP(rec, req.WithContext(ctx))
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestListCheckIns(t *testing.T) {
	fx := newFixture(t)
	target := "/studies/" + testutil.StudyID.String() + "/check-ins"

	code, body := fx.do(t, http.MethodGet, target, "", fx.enrolled)
	require.Equal(t, http.StatusOK, code)
	checkIns := body["accountCheckIns"].([]any)
	require.Len(t, checkIns, 1)
	checkIn := checkIns[0].(map[string]any)
	assert.Equal(t, true, checkIn["checkInActive"])
	assert.Equal(t, "Check 1", checkIn["checkInNumberDescription"])
	assert.Equal(t, "#34C759", checkIn["colorCssRepresentation"])
	assert.Len(t, checkIn["accountCheckInActions"], 1)

	tests := []struct {
		name   string
		target string
		viewer id.AccountID
		status int
		code   string
	}{
		{"anonymous", target, id.AccountID{}, http.StatusUnauthorized, "unauthorized"},
		{"not enrolled", target, id.AccountID(uuid.New()), http.StatusForbidden, "forbidden"},
		{"malformed study", "/studies/nope/check-ins", fx.enrolled, http.StatusBadRequest, "bad_request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := fx.do(t, http.MethodGet, tt.target, "", tt.viewer)
			assert.Equal(t, tt.status, code)
			assert.Equal(t, tt.code, body["error"])
		})
	}
}

func TestCreateFileUpload(t *testing.T) {
	fx := newFixture(t)
	target := "/studies/" + testutil.StudyID.String() + "/file-uploads"

	t.Run("issues a presigned upload", func(t *testing.T) {
		body := `{"accountCheckInActionId":"` + fx.action.ID.String() + `","filename":"C:\\videos\\week 1.MP4","contentType":"Video/MP4","filesizeInBytes":4096}`
		code, out := fx.do(t, http.MethodPost, target, body, fx.enrolled)
		require.Equal(t, http.StatusCreated, code)

		result := out["fileUploadResult"].(map[string]any)
		assert.Equal(t, "week 1.MP4", result["filename"])
		assert.Equal(t, "4 KiB", result["filesizeDescription"])
		presigned := result["presignedUpload"].(map[string]any)
		assert.Equal(t, "PUT", presigned["httpMethod"])
		assert.Equal(t, "video/mp4", presigned["contentType"])

		uploadID, err := id.ParseFileUploadID(result["fileUploadId"].(string))
		require.NoError(t, err)
		saved, err := fx.store.FindFileUpload(context.Background(), uploadID)
		require.NoError(t, err)
		assert.Equal(t, fx.action.ID, *saved.AccountCheckInActionID)
		assert.Equal(t, fx.enrolled, saved.AccountID)
	})

	tests := []struct {
		name   string
		body   string
		viewer id.AccountID
		status int
		code   string
	}{
		{"malformed body", `{`, fx.enrolled, http.StatusBadRequest, "bad_request"},
		{"missing filename", `{"contentType":"video/mp4"}`, fx.enrolled, http.StatusBadRequest, "validation_error"},
		{"bad content type", `{"filename":"a.mp4","contentType":"video"}`, fx.enrolled, http.StatusBadRequest, "validation_error"},
		{"negative size", `{"filename":"a.mp4","contentType":"video/mp4","filesizeInBytes":-1}`, fx.enrolled, http.StatusBadRequest, "validation_error"},
		{"unknown action", `{"accountCheckInActionId":"` + uuid.NewString() + `","filename":"a.mp4","contentType":"video/mp4"}`, fx.enrolled, http.StatusNotFound, "not_found"},
		{"not enrolled", `{"filename":"a.mp4","contentType":"video/mp4"}`, id.AccountID(uuid.New()), http.StatusForbidden, "forbidden"},
		{"anonymous", `{"filename":"a.mp4","contentType":"video/mp4"}`, id.AccountID{}, http.StatusUnauthorized, "unauthorized"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := fx.do(t, http.MethodPost, target, tt.body, tt.viewer)
			assert.Equal(t, tt.status, code)
			assert.Equal(t, tt.code, body["error"])
		})
	}
}
