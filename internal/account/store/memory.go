// Package store persists accounts, addresses, account sources and client devices.
package store

import (
	"context"
	"sort"
	"sync"

	"cobalt/internal/account/models"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
)

// InMemory keeps accounts, addresses and account sources in maps. Used when no database
// is configured and in tests.
type InMemory struct {
	mu        sync.RWMutex
	accounts  map[id.AccountID]*models.Account
	addresses map[id.AccountID][]*models.Address
	sources   map[id.InstitutionID][]*models.AccountSource
}

func NewInMemory() *InMemory {
	return &InMemory{
		accounts:  make(map[id.AccountID]*models.Account),
		addresses: make(map[id.AccountID][]*models.Address),
		sources:   make(map[id.InstitutionID][]*models.AccountSource),
	}
}

// FindByID returns a copy of the account.
func (s *InMemory) FindByID(_ context.Context, accountID id.AccountID) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[accountID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

// Save inserts or replaces the account.
func (s *InMemory) Save(_ context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *account
	s.accounts[account.ID] = &cp
	return nil
}

// SaveAddress stores address. An active address deactivates the account's others.
func (s *InMemory) SaveAddress(_ context.Context, address *models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.addresses[address.AccountID]
	if address.Active {
		for _, existing := range list {
			existing.Active = false
		}
	}
	cp := *address
	s.addresses[address.AccountID] = append(list, &cp)
	return nil
}

// FindActiveAddress returns sentinel.ErrNotFound when the account has no active address.
func (s *InMemory) FindActiveAddress(_ context.Context, accountID id.AccountID) (*models.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.addresses[accountID] {
		if a.Active {
			cp := *a
			return &cp, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) SaveAccountSource(_ context.Context, source *models.AccountSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.sources[source.InstitutionID]
	cp := *source
	for i, existing := range list {
		if existing.ID == source.ID {
			list[i] = &cp
			return nil
		}
	}
	s.sources[source.InstitutionID] = append(list, &cp)
	return nil
}

// ListAccountSources returns the institution's account sources in display order.
func (s *InMemory) ListAccountSources(_ context.Context, institutionID id.InstitutionID) ([]*models.AccountSource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.sources[institutionID]
	out := make([]*models.AccountSource, 0, len(list))
	for _, src := range list {
		cp := *src
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}
