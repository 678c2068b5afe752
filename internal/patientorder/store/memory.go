// Package store keeps patient orders and the care team activity recorded against them.
package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"cobalt/internal/patientorder/models"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
)

// autocompleteLimit caps patient matches for a single search.
const autocompleteLimit = 10

type InMemory struct {
	mu                sync.RWMutex
	orders            map[id.PatientOrderID]*models.PatientOrder
	notes             map[id.PatientOrderID][]*models.PatientOrderNote
	outreaches        map[id.PatientOrderID][]*models.PatientOrderOutreach
	scheduledMessages map[id.PatientOrderID][]*models.PatientOrderScheduledMessage
	voicemailTasks    map[id.PatientOrderID][]*models.PatientOrderVoicemailTask
	triages           map[id.PatientOrderID][]*models.PatientOrderTriage
	encounters        map[id.PatientOrderID][]*models.Encounter
}

func NewInMemory() *InMemory {
	return &InMemory{
		orders:            make(map[id.PatientOrderID]*models.PatientOrder),
		notes:             make(map[id.PatientOrderID][]*models.PatientOrderNote),
		outreaches:        make(map[id.PatientOrderID][]*models.PatientOrderOutreach),
		scheduledMessages: make(map[id.PatientOrderID][]*models.PatientOrderScheduledMessage),
		voicemailTasks:    make(map[id.PatientOrderID][]*models.PatientOrderVoicemailTask),
		triages:           make(map[id.PatientOrderID][]*models.PatientOrderTriage),
		encounters:        make(map[id.PatientOrderID][]*models.Encounter),
	}
}

func (s *InMemory) SavePatientOrder(_ context.Context, order *models.PatientOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *order
	s.orders[order.ID] = &cp
	return nil
}

func (s *InMemory) FindPatientOrder(_ context.Context, orderID id.PatientOrderID) (*models.PatientOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[orderID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *order
	return &cp, nil
}

// Autocomplete matches an institution's orders on MRN, unique ID or patient name prefix.
// Each patient appears once, keyed by MRN.
func (s *InMemory) Autocomplete(_ context.Context, institutionID id.InstitutionID, query string) ([]*models.PatientOrderAutocompleteResult, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]*models.PatientOrderAutocompleteResult, 0)
	if query == "" {
		return out, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]*models.PatientOrder, 0, len(s.orders))
	for _, o := range s.orders {
		if o.InstitutionID == institutionID {
			orders = append(orders, o)
		}
	}
	slices.SortFunc(orders, func(a, b *models.PatientOrder) int { return strings.Compare(a.PatientMrn, b.PatientMrn) })

	seen := make(map[string]struct{})
	for _, o := range orders {
		if _, dup := seen[o.PatientMrn]; dup || !matches(o, query) {
			continue
		}
		seen[o.PatientMrn] = struct{}{}
		out = append(out, &models.PatientOrderAutocompleteResult{
			PatientMrn:          o.PatientMrn,
			PatientUniqueID:     o.PatientUniqueID,
			PatientUniqueIDType: o.PatientUniqueIDType,
			PatientAccountID:    o.PatientAccountID,
			PatientFirstName:    o.PatientFirstName,
			PatientLastName:     o.PatientLastName,
			PatientPhoneNumber:  o.PatientPhoneNumber,
			PatientEmailAddress: o.PatientEmailAddress,
		})
		if len(out) == autocompleteLimit {
			break
		}
	}
	return out, nil
}

func matches(o *models.PatientOrder, query string) bool {
	for _, candidate := range []*string{&o.PatientMrn, &o.PatientUniqueID, o.PatientFirstName, o.PatientLastName} {
		if candidate != nil && strings.HasPrefix(strings.ToLower(*candidate), query) {
			return true
		}
	}
	return false
}

func (s *InMemory) SaveNote(_ context.Context, note *models.PatientOrderNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[note.PatientOrderID] = upsert(s.notes[note.PatientOrderID], note, func(n *models.PatientOrderNote) bool { return n.ID == note.ID })
	return nil
}

// ListNotes returns an order's notes, oldest first.
func (s *InMemory) ListNotes(_ context.Context, orderID id.PatientOrderID) ([]*models.PatientOrderNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listed(s.notes[orderID], nil, func(n *models.PatientOrderNote) time.Time { return n.Created }), nil
}

func (s *InMemory) SaveOutreach(_ context.Context, outreach *models.PatientOrderOutreach) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outreaches[outreach.PatientOrderID] = upsert(s.outreaches[outreach.PatientOrderID], outreach, func(o *models.PatientOrderOutreach) bool { return o.ID == outreach.ID })
	return nil
}

// ListOutreaches returns an order's outreach attempts in the order they happened.
func (s *InMemory) ListOutreaches(_ context.Context, orderID id.PatientOrderID) ([]*models.PatientOrderOutreach, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listed(s.outreaches[orderID], nil, func(o *models.PatientOrderOutreach) time.Time { return o.OutreachDateTime }), nil
}

func (s *InMemory) SaveScheduledMessage(_ context.Context, message *models.PatientOrderScheduledMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *message
	stored.EmailToAddresses = slices.Clone(message.EmailToAddresses)
	s.scheduledMessages[message.PatientOrderID] = upsert(s.scheduledMessages[message.PatientOrderID], &stored, func(m *models.PatientOrderScheduledMessage) bool { return m.ID == message.ID })
	return nil
}

func (s *InMemory) ListScheduledMessages(_ context.Context, orderID id.PatientOrderID) ([]*models.PatientOrderScheduledMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listed(s.scheduledMessages[orderID], nil, func(m *models.PatientOrderScheduledMessage) time.Time { return m.ScheduledAt }), nil
}

func (s *InMemory) SaveVoicemailTask(_ context.Context, task *models.PatientOrderVoicemailTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voicemailTasks[task.PatientOrderID] = upsert(s.voicemailTasks[task.PatientOrderID], task, func(t *models.PatientOrderVoicemailTask) bool { return t.ID == task.ID })
	return nil
}

// ListVoicemailTasks skips deleted tasks.
func (s *InMemory) ListVoicemailTasks(_ context.Context, orderID id.PatientOrderID) ([]*models.PatientOrderVoicemailTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listed(s.voicemailTasks[orderID],
		func(t *models.PatientOrderVoicemailTask) bool { return !t.Deleted },
		func(t *models.PatientOrderVoicemailTask) time.Time { return t.Created }), nil
}

func (s *InMemory) SaveTriage(_ context.Context, triage *models.PatientOrderTriage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.triages[triage.PatientOrderID] = upsert(s.triages[triage.PatientOrderID], triage, func(t *models.PatientOrderTriage) bool { return t.ID == triage.ID })
	return nil
}

// ListTriages returns only the active triages; superseded ones stay stored for history.
func (s *InMemory) ListTriages(_ context.Context, orderID id.PatientOrderID) ([]*models.PatientOrderTriage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listed(s.triages[orderID],
		func(t *models.PatientOrderTriage) bool { return t.Active },
		func(t *models.PatientOrderTriage) time.Time { return t.Created }), nil
}

func (s *InMemory) SaveEncounter(_ context.Context, orderID id.PatientOrderID, encounter *models.Encounter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.encounters[orderID] = upsert(s.encounters[orderID], encounter, func(e *models.Encounter) bool { return e.CSN == encounter.CSN })
	return nil
}

// ListEncounters returns the EHR encounters synced for an order, most recent first.
// Encounters without a start sort last.
func (s *InMemory) ListEncounters(_ context.Context, orderID id.PatientOrderID) ([]*models.Encounter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := listed(s.encounters[orderID], nil, func(e *models.Encounter) time.Time {
		if e.PeriodStart == nil {
			return time.Time{}
		}
		return *e.PeriodStart
	})
	slices.Reverse(out)
	return out, nil
}

// upsert stores a copy of item, replacing the entry same reports as equal.
func upsert[T any](items []*T, item *T, same func(*T) bool) []*T {
	cp := *item
	return append(slices.DeleteFunc(items, same), &cp)
}

// listed copies the items keep accepts, ordered by key. A nil keep accepts everything.
func listed[T any](items []*T, keep func(*T) bool, key func(*T) time.Time) []*T {
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if keep != nil && !keep(item) {
			continue
		}
		cp := *item
		out = append(out, &cp)
	}
	slices.SortStableFunc(out, func(a, b *T) int { return key(a).Compare(key(b)) })
	return out
}
