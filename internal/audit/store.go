package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"cobalt/internal/platform/kafka/producer"
)

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// InMemoryStore keeps events per subject. Used when no sink is configured and in tests.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[string][]Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[string][]Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.SubjectID] = append(s.events[event.SubjectID], event)
	return nil
}

// ListBySubject returns the events recorded for an account, oldest first.
func (s *InMemoryStore) ListBySubject(_ context.Context, subjectID string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.events[subjectID]...), nil
}

// Producer is the subset of the Kafka producer the audit sink needs.
type Producer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// KafkaStore publishes events as JSON keyed by subject, so one account's events stay
// ordered within a partition.
type KafkaStore struct {
	producer Producer
	topic    string
}

func NewKafkaStore(p Producer, topic string) *KafkaStore {
	return &KafkaStore{producer: p, topic: topic}
}

func (s *KafkaStore) Append(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}
	err = s.producer.Produce(ctx, &producer.Message{
		Topic: s.topic,
		Key:   []byte(event.SubjectID),
		Value: value,
		Headers: map[string]string{
			"action": string(event.Action),
		},
	})
	if err != nil {
		return fmt.Errorf("publish audit event: %w", err)
	}
	return nil
}

// PostgresStore appends events to the audit_events table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	const query = `
		INSERT INTO audit_events (
			id, occurred_at, action, subject_id, viewer_id,
			institution_id, response_type, reason, request_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := s.db.ExecContext(ctx, query,
		event.ID,
		event.Timestamp,
		string(event.Action),
		event.SubjectID,
		nullable(event.ViewerID),
		nullable(event.InstitutionID),
		event.ResponseType,
		nullable(string(event.Reason)),
		nullable(event.RequestID),
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
