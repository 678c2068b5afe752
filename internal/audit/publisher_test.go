package audit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobalt/internal/platform/kafka/producer"
	id "cobalt/pkg/domain"
	"cobalt/pkg/requestcontext"
)

func requestContext() (context.Context, id.AccountID, time.Time) {
	viewer := id.AccountID(uuid.New())
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithAccountID(context.Background(), viewer)
	ctx = requestcontext.WithInstitutionID(ctx, "COBALT")
	ctx = requestcontext.WithRequestID(ctx, "req-42")
	ctx = requestcontext.WithTime(ctx, now)
	return ctx, viewer, now
}

func TestPublisherEnrichesFromContext(t *testing.T) {
	store := NewInMemoryStore()
	p := NewPublisher(store)
	ctx, viewer, now := requestContext()

	require.NoError(t, p.Emit(ctx, Event{
		Action:       ActionPHIDisclosed,
		SubjectID:    "subject-1",
		ResponseType: "account",
		Reason:       ReasonSupplement,
	}))

	events, err := store.ListBySubject(ctx, "subject-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	e := events[0]
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, now, e.Timestamp)
	assert.Equal(t, viewer.String(), e.ViewerID)
	assert.Equal(t, "COBALT", e.InstitutionID)
	assert.Equal(t, "req-42", e.RequestID)
}

func TestPublisherAnonymousViewer(t *testing.T) {
	store := NewInMemoryStore()
	p := NewPublisher(store)

	require.NoError(t, p.Emit(context.Background(), Event{Action: ActionPHIDisclosed, SubjectID: "s"}))

	events, _ := store.ListBySubject(context.Background(), "s")
	require.Len(t, events, 1)
	assert.Empty(t, events[0].ViewerID)
}

func TestAsyncPublisherDrainsOnClose(t *testing.T) {
	store := NewInMemoryStore()
	p := NewPublisher(store, WithAsyncBuffer(16))
	ctx, _, _ := requestContext()

	for range 5 {
		require.NoError(t, p.Emit(ctx, Event{Action: ActionPHIDisclosed, SubjectID: "s"}))
	}
	p.Close()

	events, _ := store.ListBySubject(ctx, "s")
	assert.Len(t, events, 5)
}

type fakeProducer struct {
	messages []*producer.Message
	err      error
}

func (f *fakeProducer) Produce(_ context.Context, msg *producer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msg)
	return nil
}

func TestKafkaStore(t *testing.T) {
	fp := &fakeProducer{}
	store := NewKafkaStore(fp, "cobalt.audit.phi")
	ctx, _, _ := requestContext()

	require.NoError(t, NewPublisher(store).Emit(ctx, Event{
		Action:       ActionPHIDisclosed,
		SubjectID:    "subject-1",
		ResponseType: "patient_order",
	}))

	require.Len(t, fp.messages, 1)
	msg := fp.messages[0]
	assert.Equal(t, "cobalt.audit.phi", msg.Topic)
	assert.Equal(t, []byte("subject-1"), msg.Key)
	assert.Equal(t, "phi_disclosed", msg.Headers["action"])

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "patient_order", decoded.ResponseType)
	assert.Equal(t, "req-42", decoded.RequestID)

	fp.err = errors.New("broker down")
	err := store.Append(ctx, Event{SubjectID: "x"})
	assert.ErrorContains(t, err, "publish audit event")
}
