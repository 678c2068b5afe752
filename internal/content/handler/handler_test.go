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

	"cobalt/internal/content/models"
	"cobalt/internal/content/service"
	"cobalt/internal/content/store"
	"cobalt/internal/format"
	"cobalt/internal/l10n"
	id "cobalt/pkg/domain"
	"cobalt/pkg/testutil"
)

type fixture struct {
	router      http.Handler
	content     *models.Content
	topicCenter *models.TopicCenter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s := store.NewInMemory()

	anxiety := testutil.Tag("ANXIETY", "Anxiety")
	content := testutil.Content(anxiety)
	topicCenter := &models.TopicCenter{ID: id.TopicCenterID(uuid.New()), InstitutionID: "COBALT", Name: "Wellbeing", URLName: "wellbeing"}

	require.NoError(t, s.SaveContent(ctx, content))
	require.NoError(t, s.SaveTag(ctx, "COBALT", anxiety))
	require.NoError(t, s.SaveTagGroup(ctx, "COBALT", &models.TagGroup{ID: "SLEEP", Name: "Sleep"}))
	require.NoError(t, s.SaveTagGroup(ctx, "COBALT", &models.TagGroup{ID: "MOOD", Name: "Mood"}))
	require.NoError(t, s.SaveTopicCenter(ctx, topicCenter,
		&models.TopicCenterRow{ID: id.TopicCenterRowID(uuid.New()), Title: "Second", DisplayOrder: 2},
		&models.TopicCenterRow{ID: id.TopicCenterRowID(uuid.New()), Title: "First", DisplayOrder: 1, Contents: []*models.Content{content}},
	))

	bundle, err := l10n.NewBundle()
	require.NoError(t, err)
	h := New(service.New(s, s, s), format.NewFactory(bundle), slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	h.Register(r)
	return &fixture{router: r, content: content, topicCenter: topicCenter}
}

func (fx *fixture) get(t *testing.T, target string) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	fx.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

func TestGetContent(t *testing.T) {
	fx := newFixture(t)

	code, body := fx.get(t, "/content/"+fx.content.ID.String())
	require.Equal(t, http.StatusOK, code)
	content := body["content"].(map[string]any)
	assert.Equal(t, "Managing stress", content["title"])
	assert.Equal(t, "March 5, 2024 at 7:30 PM", content["lastUpdatedDescription"])
	assert.Equal(t, []any{"ANXIETY"}, content["tagIds"])
	assert.NotContains(t, content, "tags")

	code, body = fx.get(t, "/content/"+fx.content.ID.String()+"?supplements=tags")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["content"].(map[string]any)["tags"], 1)
}

func TestGetContentErrors(t *testing.T) {
	fx := newFixture(t)
	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{"malformed id", "/content/abc", http.StatusBadRequest, "bad_request"},
		{"unknown supplement", "/content/" + fx.content.ID.String() + "?supplements=comments", http.StatusBadRequest, "validation_error"},
		{"missing content", "/content/" + uuid.NewString(), http.StatusNotFound, "not_found"},
		{"missing topic center", "/topic-centers/" + uuid.NewString(), http.StatusNotFound, "not_found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := fx.get(t, tt.target)
			assert.Equal(t, tt.status, code)
			assert.Equal(t, tt.code, body["error"])
		})
	}
}

func TestGetTopicCenter(t *testing.T) {
	fx := newFixture(t)

	code, body := fx.get(t, "/topic-centers/"+fx.topicCenter.ID.String())
	require.Equal(t, http.StatusOK, code)
	topicCenter := body["topicCenter"].(map[string]any)
	rows := topicCenter["topicCenterRows"].([]any)
	require.Len(t, rows, 2)
	assert.Equal(t, "First", rows[0].(map[string]any)["title"])
	assert.Len(t, rows[0].(map[string]any)["contents"], 1)
	assert.Contains(t, topicCenter["tagsByTagId"], "ANXIETY")
}

func TestListTagGroups(t *testing.T) {
	fx := newFixture(t)

	code, body := fx.get(t, "/institutions/cobalt/tag-groups")
	require.Equal(t, http.StatusOK, code)
	groups := body["tagGroups"].([]any)
	require.Len(t, groups, 2)
	assert.Equal(t, "Mood", groups[0].(map[string]any)["name"])
}
