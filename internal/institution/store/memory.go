// Package store persists institutions and their alerts, blurbs and resource groups.
package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"cobalt/internal/institution/models"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
)

// InMemory keeps institution data in maps. Used when no database is configured and in
// tests.
type InMemory struct {
	mu             sync.RWMutex
	institutions   map[id.InstitutionID]*models.Institution
	alerts         map[id.InstitutionID][]*models.Alert
	dismissals     map[id.AccountID]map[id.AlertID]struct{}
	blurbs         map[id.InstitutionID][]*models.InstitutionBlurb
	teamMembers    map[id.InstitutionBlurbID][]*models.InstitutionTeamMember
	resourceGroups map[id.InstitutionID][]*models.ResourceGroup
}

func NewInMemory() *InMemory {
	return &InMemory{
		institutions:   make(map[id.InstitutionID]*models.Institution),
		alerts:         make(map[id.InstitutionID][]*models.Alert),
		dismissals:     make(map[id.AccountID]map[id.AlertID]struct{}),
		blurbs:         make(map[id.InstitutionID][]*models.InstitutionBlurb),
		teamMembers:    make(map[id.InstitutionBlurbID][]*models.InstitutionTeamMember),
		resourceGroups: make(map[id.InstitutionID][]*models.ResourceGroup),
	}
}

func (s *InMemory) Save(_ context.Context, institution *models.Institution) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *institution
	s.institutions[institution.ID] = &cp
	return nil
}

func (s *InMemory) FindByID(_ context.Context, institutionID id.InstitutionID) (*models.Institution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.institutions[institutionID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *i
	return &cp, nil
}

// IntegratedCareEnabled reports the institution's flag. Unknown institutions are not found.
func (s *InMemory) IntegratedCareEnabled(ctx context.Context, institutionID id.InstitutionID) (bool, error) {
	i, err := s.FindByID(ctx, institutionID)
	if err != nil {
		return false, err
	}
	return i.IntegratedCareEnabled, nil
}

// SaveAlert activates alert for institutionID.
func (s *InMemory) SaveAlert(_ context.Context, institutionID id.InstitutionID, alert *models.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *alert
	s.alerts[institutionID] = append(s.alerts[institutionID], &cp)
	return nil
}

// ListActiveAlerts returns the institution's alerts, most severe first.
func (s *InMemory) ListActiveAlerts(_ context.Context, institutionID id.InstitutionID) ([]*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Alert, 0, len(s.alerts[institutionID]))
	for _, a := range s.alerts[institutionID] {
		cp := *a
		out = append(out, &cp)
	}
	slices.SortStableFunc(out, compareAlerts)
	return out, nil
}

func (s *InMemory) DismissAlert(_ context.Context, accountID id.AccountID, alertID id.AlertID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dismissals[accountID] == nil {
		s.dismissals[accountID] = make(map[id.AlertID]struct{})
	}
	if _, ok := s.dismissals[accountID][alertID]; ok {
		return sentinel.ErrAlreadyUsed
	}
	s.dismissals[accountID][alertID] = struct{}{}
	return nil
}

func (s *InMemory) DismissedAlertIDs(_ context.Context, accountID id.AccountID) (map[id.AlertID]struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[id.AlertID]struct{}, len(s.dismissals[accountID]))
	for alertID := range s.dismissals[accountID] {
		out[alertID] = struct{}{}
	}
	return out, nil
}

func (s *InMemory) SaveBlurb(_ context.Context, blurb *models.InstitutionBlurb, members ...*models.InstitutionTeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *blurb
	s.blurbs[blurb.InstitutionID] = append(s.blurbs[blurb.InstitutionID], &cp)
	for _, m := range members {
		mc := *m
		mc.BlurbID = blurb.ID
		s.teamMembers[blurb.ID] = append(s.teamMembers[blurb.ID], &mc)
	}
	return nil
}

func (s *InMemory) ListBlurbs(_ context.Context, institutionID id.InstitutionID) ([]*models.InstitutionBlurb, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.blurbs[institutionID]), nil
}

func (s *InMemory) ListTeamMembers(_ context.Context, blurbID id.InstitutionBlurbID) ([]*models.InstitutionTeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.teamMembers[blurbID]), nil
}

func (s *InMemory) SaveResourceGroup(_ context.Context, group *models.ResourceGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *group
	s.resourceGroups[group.InstitutionID] = append(s.resourceGroups[group.InstitutionID], &cp)
	return nil
}

// ListResourceGroups returns the institution's resource groups in display order.
func (s *InMemory) ListResourceGroups(_ context.Context, institutionID id.InstitutionID) ([]*models.ResourceGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.resourceGroups[institutionID])
	slices.SortStableFunc(out, func(a, b *models.ResourceGroup) int {
		return cmp.Compare(a.DisplayOrder, b.DisplayOrder)
	})
	return out, nil
}

func compareAlerts(a, b *models.Alert) int {
	switch {
	case models.LessAlert(a, b):
		return -1
	case models.LessAlert(b, a):
		return 1
	}
	return 0
}
