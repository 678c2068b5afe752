package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
	"cobalt/pkg/testutil"
)

func TestInMemoryFlowVersions(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	version := testutil.ScreeningFlowVersion("PROVIDER_SSO")

	_, err := s.FindFlowVersion(ctx, version.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	require.NoError(t, s.SaveFlowVersion(ctx, version))
	version.RequiredAccountSourceIDs[0] = "MUTATED"

	found, err := s.FindFlowVersion(ctx, version.ID)
	require.NoError(t, err)
	assert.Equal(t, []id.AccountSourceID{"PROVIDER_SSO"}, found.RequiredAccountSourceIDs)
}

func TestInMemorySessions(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	session := testutil.ScreeningSession(id.AccountID(uuid.New()))

	_, err := s.FindSession(ctx, session.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	require.NoError(t, s.SaveSession(ctx, session))
	found, err := s.FindSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session, found)
}

func TestInMemoryQuestionsInDisplayOrder(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	versionID := id.ScreeningVersionID(uuid.New())

	second := testutil.ScreeningQuestion(versionID, "Second?")
	second.DisplayOrder = 2
	first := testutil.ScreeningQuestion(versionID, "First?")
	first.DisplayOrder = 1
	require.NoError(t, s.SaveQuestion(ctx, second))
	require.NoError(t, s.SaveQuestion(ctx, first))

	second.QuestionText = "Second, reworded?"
	require.NoError(t, s.SaveQuestion(ctx, second))

	questions, err := s.ListQuestions(ctx, versionID)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "First?", questions[0].QuestionText)
	assert.Equal(t, "Second, reworded?", questions[1].QuestionText)

	none, err := s.ListQuestions(ctx, id.ScreeningVersionID(uuid.New()))
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
