// Package store keeps study enrollment, check-ins and upload records.
package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"cobalt/internal/sentinel"
	"cobalt/internal/study/models"
	id "cobalt/pkg/domain"
)

type enrollment struct {
	accountID id.AccountID
	studyID   id.StudyID
}

type InMemory struct {
	mu          sync.RWMutex
	enrollments map[enrollment]*models.AccountStudy
	checkIns    map[id.AccountCheckInID]*models.AccountCheckIn
	actions     map[id.AccountCheckInActionID]*models.AccountCheckInAction
	uploads     map[id.FileUploadID]*models.StudyFileUpload
}

func NewInMemory() *InMemory {
	return &InMemory{
		enrollments: make(map[enrollment]*models.AccountStudy),
		checkIns:    make(map[id.AccountCheckInID]*models.AccountCheckIn),
		actions:     make(map[id.AccountCheckInActionID]*models.AccountCheckInAction),
		uploads:     make(map[id.FileUploadID]*models.StudyFileUpload),
	}
}

func (s *InMemory) SaveAccountStudy(_ context.Context, accountStudy *models.AccountStudy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *accountStudy
	s.enrollments[enrollment{accountStudy.AccountID, accountStudy.StudyID}] = &cp
	return nil
}

func (s *InMemory) FindAccountStudy(_ context.Context, accountID id.AccountID, studyID id.StudyID) (*models.AccountStudy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found, ok := s.enrollments[enrollment{accountID, studyID}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *found
	return &cp, nil
}

func (s *InMemory) SaveCheckIn(_ context.Context, checkIn *models.AccountCheckIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *checkIn
	s.checkIns[checkIn.ID] = &cp
	return nil
}

// ListCheckIns returns an account's check-ins for a study ordered by check-in number.
func (s *InMemory) ListCheckIns(_ context.Context, accountID id.AccountID, studyID id.StudyID) ([]*models.AccountCheckIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.AccountCheckIn, 0)
	for _, c := range s.checkIns {
		if c.AccountID == accountID && c.StudyID == studyID {
			cp := *c
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *models.AccountCheckIn) int { return cmp.Compare(a.CheckInNumber, b.CheckInNumber) })
	return out, nil
}

func (s *InMemory) FindCheckIn(_ context.Context, checkInID id.AccountCheckInID) (*models.AccountCheckIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found, ok := s.checkIns[checkInID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *found
	return &cp, nil
}

func (s *InMemory) SaveCheckInAction(_ context.Context, action *models.AccountCheckInAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *action
	s.actions[action.ID] = &cp
	return nil
}

// ListCheckInActions returns a check-in's actions in creation order.
func (s *InMemory) ListCheckInActions(_ context.Context, checkInID id.AccountCheckInID) ([]*models.AccountCheckInAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.AccountCheckInAction, 0)
	for _, a := range s.actions {
		if a.AccountCheckInID == checkInID {
			cp := *a
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *models.AccountCheckInAction) int {
		if c := a.Created.Compare(b.Created); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

func (s *InMemory) FindCheckInAction(_ context.Context, actionID id.AccountCheckInActionID) (*models.AccountCheckInAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found, ok := s.actions[actionID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *found
	return &cp, nil
}

// SaveFileUpload records an issued upload. Upload IDs are never reused.
func (s *InMemory) SaveFileUpload(_ context.Context, upload *models.StudyFileUpload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.uploads[upload.ID]; ok {
		return sentinel.ErrAlreadyUsed
	}
	cp := *upload
	s.uploads[upload.ID] = &cp
	return nil
}

func (s *InMemory) FindFileUpload(_ context.Context, uploadID id.FileUploadID) (*models.StudyFileUpload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found, ok := s.uploads[uploadID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *found
	return &cp, nil
}
