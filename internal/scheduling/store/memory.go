// Package store keeps providers, appointments and availability.
package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"cobalt/internal/scheduling/models"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
)

type InMemory struct {
	mu               sync.RWMutex
	providers        map[id.ProviderID]*models.Provider
	appointmentTypes map[id.AppointmentTypeID]*models.AppointmentType
	appointments     map[id.AppointmentID]*models.Appointment
	followups        map[id.FollowupID]*models.Followup
	availabilities   map[id.ProviderID][]*models.LogicalAvailability
	reservations     map[id.GroupSessionID][]*models.GroupSessionReservation
}

func NewInMemory() *InMemory {
	return &InMemory{
		providers:        make(map[id.ProviderID]*models.Provider),
		appointmentTypes: make(map[id.AppointmentTypeID]*models.AppointmentType),
		appointments:     make(map[id.AppointmentID]*models.Appointment),
		followups:        make(map[id.FollowupID]*models.Followup),
		availabilities:   make(map[id.ProviderID][]*models.LogicalAvailability),
		reservations:     make(map[id.GroupSessionID][]*models.GroupSessionReservation),
	}
}

func (s *InMemory) SaveProvider(_ context.Context, provider *models.Provider) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *provider
	s.providers[provider.ID] = &cp
	return nil
}

func (s *InMemory) FindProvider(_ context.Context, providerID id.ProviderID) (*models.Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.providers[providerID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *InMemory) SaveAppointmentType(_ context.Context, appointmentType *models.AppointmentType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *appointmentType
	s.appointmentTypes[appointmentType.ID] = &cp
	return nil
}

func (s *InMemory) FindAppointmentType(_ context.Context, appointmentTypeID id.AppointmentTypeID) (*models.AppointmentType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	at, ok := s.appointmentTypes[appointmentTypeID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *at
	return &cp, nil
}

func (s *InMemory) SaveAppointment(_ context.Context, appointment *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *appointment
	s.appointments[appointment.ID] = &cp
	return nil
}

func (s *InMemory) FindAppointment(_ context.Context, appointmentID id.AppointmentID) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.appointments[appointmentID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *InMemory) SaveFollowup(_ context.Context, followup *models.Followup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *followup
	s.followups[followup.ID] = &cp
	return nil
}

// ListFollowups returns the account's followups, soonest first.
func (s *InMemory) ListFollowups(_ context.Context, accountID id.AccountID) ([]*models.Followup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Followup
	for _, f := range s.followups {
		if f.AccountID == accountID {
			cp := *f
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *models.Followup) int {
		return a.FollowupDate.Compare(b.FollowupDate)
	})
	return out, nil
}

func (s *InMemory) SaveLogicalAvailability(_ context.Context, availability *models.LogicalAvailability) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *availability
	s.availabilities[availability.ProviderID] = append(s.availabilities[availability.ProviderID], &cp)
	return nil
}

// ListLogicalAvailabilities returns the provider's availability by start.
func (s *InMemory) ListLogicalAvailabilities(_ context.Context, providerID id.ProviderID) ([]*models.LogicalAvailability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.availabilities[providerID])
	slices.SortStableFunc(out, func(a, b *models.LogicalAvailability) int {
		return a.StartDateTime.Compare(b.StartDateTime)
	})
	return out, nil
}

func (s *InMemory) SaveReservation(_ context.Context, reservation *models.GroupSessionReservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *reservation
	s.reservations[reservation.GroupSessionID] = append(s.reservations[reservation.GroupSessionID], &cp)
	return nil
}

// ListReservations returns a session's reservations in booking order.
func (s *InMemory) ListReservations(_ context.Context, groupSessionID id.GroupSessionID) ([]*models.GroupSessionReservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.reservations[groupSessionID])
	slices.SortStableFunc(out, func(a, b *models.GroupSessionReservation) int {
		return cmp.Compare(a.Created.UnixNano(), b.Created.UnixNano())
	})
	return out, nil
}
