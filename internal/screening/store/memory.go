// Package store keeps screening flow versions, sessions and questions.
package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"cobalt/internal/screening/models"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
)

type InMemory struct {
	mu           sync.RWMutex
	flowVersions map[id.ScreeningFlowVersionID]*models.ScreeningFlowVersion
	sessions     map[id.ScreeningSessionID]*models.ScreeningSession
	questions    map[id.ScreeningVersionID][]*models.ScreeningQuestion
}

func NewInMemory() *InMemory {
	return &InMemory{
		flowVersions: make(map[id.ScreeningFlowVersionID]*models.ScreeningFlowVersion),
		sessions:     make(map[id.ScreeningSessionID]*models.ScreeningSession),
		questions:    make(map[id.ScreeningVersionID][]*models.ScreeningQuestion),
	}
}

func (s *InMemory) SaveFlowVersion(_ context.Context, version *models.ScreeningFlowVersion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *version
	cp.RequiredAccountSourceIDs = slices.Clone(version.RequiredAccountSourceIDs)
	s.flowVersions[version.ID] = &cp
	return nil
}

func (s *InMemory) FindFlowVersion(_ context.Context, versionID id.ScreeningFlowVersionID) (*models.ScreeningFlowVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.flowVersions[versionID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *v
	cp.RequiredAccountSourceIDs = slices.Clone(v.RequiredAccountSourceIDs)
	return &cp, nil
}

func (s *InMemory) SaveSession(_ context.Context, session *models.ScreeningSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *session
	s.sessions[session.ID] = &cp
	return nil
}

func (s *InMemory) FindSession(_ context.Context, sessionID id.ScreeningSessionID) (*models.ScreeningSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *session
	return &cp, nil
}

// SaveQuestion replaces any question with the same ID in its screening version.
func (s *InMemory) SaveQuestion(_ context.Context, question *models.ScreeningQuestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *question
	questions := slices.DeleteFunc(s.questions[question.ScreeningVersionID], func(q *models.ScreeningQuestion) bool {
		return q.ID == question.ID
	})
	s.questions[question.ScreeningVersionID] = append(questions, &cp)
	return nil
}

// ListQuestions returns a version's questions in display order.
func (s *InMemory) ListQuestions(_ context.Context, versionID id.ScreeningVersionID) ([]*models.ScreeningQuestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.ScreeningQuestion, 0, len(s.questions[versionID]))
	for _, q := range s.questions[versionID] {
		cp := *q
		out = append(out, &cp)
	}
	slices.SortStableFunc(out, func(a, b *models.ScreeningQuestion) int {
		return cmp.Compare(a.DisplayOrder, b.DisplayOrder)
	})
	return out, nil
}
