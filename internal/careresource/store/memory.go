// Package store keeps care resources, their locations and tag assignments.
package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"cobalt/internal/careresource/models"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
)

type InMemory struct {
	mu           sync.RWMutex
	resources    map[id.CareResourceID]*models.CareResource
	locations    map[id.CareResourceLocationID]*models.CareResourceLocation
	resourceTags map[id.CareResourceID][]*models.CareResourceTag
	locationTags map[id.CareResourceLocationID][]*models.CareResourceTag
}

func NewInMemory() *InMemory {
	return &InMemory{
		resources:    make(map[id.CareResourceID]*models.CareResource),
		locations:    make(map[id.CareResourceLocationID]*models.CareResourceLocation),
		resourceTags: make(map[id.CareResourceID][]*models.CareResourceTag),
		locationTags: make(map[id.CareResourceLocationID][]*models.CareResourceTag),
	}
}

func (s *InMemory) SaveCareResource(_ context.Context, resource *models.CareResource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *resource
	s.resources[resource.ID] = &cp
	return nil
}

// FindCareResource scopes lookups to an institution. Deleted resources are not found.
func (s *InMemory) FindCareResource(_ context.Context, resourceID id.CareResourceID, institutionID id.InstitutionID) (*models.CareResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resource, ok := s.resources[resourceID]
	if !ok || resource.Deleted || resource.InstitutionID != institutionID {
		return nil, sentinel.ErrNotFound
	}
	cp := *resource
	return &cp, nil
}

func (s *InMemory) SaveLocation(_ context.Context, location *models.CareResourceLocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *location
	s.locations[location.ID] = &cp
	return nil
}

// ListLocations returns a resource's live locations by display order, then name.
func (s *InMemory) ListLocations(_ context.Context, resourceID id.CareResourceID) ([]*models.CareResourceLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.CareResourceLocation, 0)
	for _, l := range s.locations {
		if l.CareResourceID == resourceID && !l.Deleted {
			cp := *l
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *models.CareResourceLocation) int {
		if c := cmp.Compare(a.DisplayOrder, b.DisplayOrder); c != 0 {
			return c
		}
		return strings.Compare(deref(a.Name), deref(b.Name))
	})
	return out, nil
}

func (s *InMemory) TagResource(_ context.Context, resourceID id.CareResourceID, tag *models.CareResourceTag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resourceTags[resourceID] = withTag(s.resourceTags[resourceID], tag)
	return nil
}

func (s *InMemory) TagLocation(_ context.Context, locationID id.CareResourceLocationID, tag *models.CareResourceTag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locationTags[locationID] = withTag(s.locationTags[locationID], tag)
	return nil
}

func (s *InMemory) ResourceTags(_ context.Context, resourceID id.CareResourceID) (models.Tags, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return grouped(s.resourceTags[resourceID]), nil
}

func (s *InMemory) LocationTags(_ context.Context, locationID id.CareResourceLocationID) (models.Tags, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return grouped(s.locationTags[locationID]), nil
}

// withTag adds a copy of tag unless one with the same group and ID is present.
func withTag(tags []*models.CareResourceTag, tag *models.CareResourceTag) []*models.CareResourceTag {
	for _, t := range tags {
		if t.ID == tag.ID && t.GroupID == tag.GroupID {
			return tags
		}
	}
	cp := *tag
	return append(tags, &cp)
}

// grouped copies tags into their groups, each sorted by name.
func grouped(tags []*models.CareResourceTag) models.Tags {
	out := make(models.Tags)
	for _, t := range tags {
		cp := *t
		out[t.GroupID] = append(out[t.GroupID], &cp)
	}
	for _, group := range out {
		slices.SortFunc(group, func(a, b *models.CareResourceTag) int { return strings.Compare(a.Name, b.Name) })
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
