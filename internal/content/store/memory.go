// Package store keeps library content, tags and topic centers.
package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"cobalt/internal/content/models"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
)

type InMemory struct {
	mu           sync.RWMutex
	contents     map[id.ContentID]*models.Content
	tags         map[id.InstitutionID][]*models.Tag
	tagGroups    map[id.InstitutionID][]*models.TagGroup
	topicCenters map[id.TopicCenterID]*models.TopicCenter
	rows         map[id.TopicCenterID][]*models.TopicCenterRow
}

func NewInMemory() *InMemory {
	return &InMemory{
		contents:     make(map[id.ContentID]*models.Content),
		tags:         make(map[id.InstitutionID][]*models.Tag),
		tagGroups:    make(map[id.InstitutionID][]*models.TagGroup),
		topicCenters: make(map[id.TopicCenterID]*models.TopicCenter),
		rows:         make(map[id.TopicCenterID][]*models.TopicCenterRow),
	}
}

func (s *InMemory) SaveContent(_ context.Context, content *models.Content) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *content
	s.contents[content.ID] = &cp
	return nil
}

func (s *InMemory) FindContent(_ context.Context, contentID id.ContentID) (*models.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contents[contentID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *InMemory) SaveTag(_ context.Context, institutionID id.InstitutionID, tag *models.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *tag
	s.tags[institutionID] = append(s.tags[institutionID], &cp)
	return nil
}

func (s *InMemory) ListTags(_ context.Context, institutionID id.InstitutionID) ([]*models.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tags[institutionID]), nil
}

func (s *InMemory) SaveTagGroup(_ context.Context, institutionID id.InstitutionID, group *models.TagGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *group
	s.tagGroups[institutionID] = append(s.tagGroups[institutionID], &cp)
	return nil
}

// ListTagGroups returns the institution's tag groups by name.
func (s *InMemory) ListTagGroups(_ context.Context, institutionID id.InstitutionID) ([]*models.TagGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.tagGroups[institutionID])
	slices.SortStableFunc(out, func(a, b *models.TagGroup) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (s *InMemory) SaveTopicCenter(_ context.Context, topicCenter *models.TopicCenter, rows ...*models.TopicCenterRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *topicCenter
	s.topicCenters[topicCenter.ID] = &cp
	for _, row := range rows {
		rc := *row
		rc.TopicCenterID = topicCenter.ID
		s.rows[topicCenter.ID] = append(s.rows[topicCenter.ID], &rc)
	}
	return nil
}

func (s *InMemory) FindTopicCenter(_ context.Context, topicCenterID id.TopicCenterID) (*models.TopicCenter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tc, ok := s.topicCenters[topicCenterID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *tc
	return &cp, nil
}

// ListTopicCenterRows returns rows in display order.
func (s *InMemory) ListTopicCenterRows(_ context.Context, topicCenterID id.TopicCenterID) ([]*models.TopicCenterRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.rows[topicCenterID])
	slices.SortStableFunc(out, func(a, b *models.TopicCenterRow) int {
		return cmp.Compare(a.DisplayOrder, b.DisplayOrder)
	})
	return out, nil
}
