package audit

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"cobalt/pkg/requestcontext"
)

// Publisher enriches events from the request context and hands them to a Store.
type Publisher struct {
	store  Store
	events chan Event
	wg     sync.WaitGroup
	logger *slog.Logger
	async  bool
}

// PublisherOption configures the Publisher.
type PublisherOption func(*Publisher)

// WithAsyncBuffer queues events and persists them on a background goroutine.
func WithAsyncBuffer(size int) PublisherOption {
	return func(p *Publisher) {
		if size > 0 {
			p.events = make(chan Event, size)
			p.async = true
		}
	}
}

// WithPublisherLogger sets the logger for persistence failures.
func WithPublisherLogger(logger *slog.Logger) PublisherOption {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(store Store, opts ...PublisherOption) *Publisher {
	p := &Publisher{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	if p.async {
		p.wg.Add(1)
		go p.processEvents()
	}
	return p
}

func (p *Publisher) processEvents() {
	defer p.wg.Done()
	for event := range p.events {
		if err := p.store.Append(context.Background(), event); err != nil {
			p.logger.Error("failed to persist audit event",
				"error", err,
				"action", event.Action,
				"request_id", event.RequestID,
			)
		}
	}
}

// Close drains queued events.
func (p *Publisher) Close() {
	if p.async && p.events != nil {
		close(p.events)
		p.wg.Wait()
	}
}

// Emit fills ID, timestamp, viewer, institution and request ID from ctx when unset and
// stores the event. A full async buffer drops the event with a warning rather than
// blocking the response.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.ViewerID == "" {
		if viewer := requestcontext.AccountID(ctx); !viewer.IsNil() {
			event.ViewerID = viewer.String()
		}
	}
	if event.InstitutionID == "" {
		event.InstitutionID = requestcontext.InstitutionID(ctx).String()
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}

	if p.async {
		select {
		case p.events <- event:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
			p.logger.WarnContext(ctx, "audit buffer full, event dropped",
				"action", event.Action,
				"request_id", event.RequestID,
			)
			return nil
		}
	}
	return p.store.Append(ctx, event)
}
