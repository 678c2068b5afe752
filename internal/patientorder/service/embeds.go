package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	accountresponses "cobalt/internal/account/responses"
	"cobalt/internal/format"
	"cobalt/internal/patientorder/models"
	"cobalt/internal/patientorder/responses"
	"cobalt/internal/platform/tracer"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/requestcontext"
)

// embedTimeout bounds the whole EVERYTHING fan-out.
const embedTimeout = 5 * time.Second

const (
	embedPatient           = "patient"
	embedNotes             = "notes"
	embedOutreaches        = "outreaches"
	embedScheduledMessages = "scheduled_messages"
	embedVoicemailTasks    = "voicemail_tasks"
	embedTriages           = "triages"
)

// loadEmbeds fetches everything the EVERYTHING supplement shows, one goroutine per
// embed. Each goroutine writes only its own fields of embeds; they are read after Wait.
// A patient account that no longer exists is left out.
func (s *Service) loadEmbeds(ctx context.Context, f *format.Formatter, order *models.PatientOrder) (responses.PatientOrderEmbeds, error) {
	ctx, cancel := context.WithTimeout(ctx, embedTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	var embeds responses.PatientOrderEmbeds

	if order.PatientAccountID != nil {
		patientID := *order.PatientAccountID
		s.launch(ctx, g, embedPatient, order.ID, func(ctx context.Context) (err error) {
			account, err := s.accounts.RenderAccountByID(ctx, f, patientID)
			if dErrors.HasCode(err, dErrors.CodeNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			embeds.PatientAccount = account
			embeds.PatientAddress, err = s.accounts.ActiveAddress(ctx, patientID)
			return err
		})
	}
	s.launch(ctx, g, embedNotes, order.ID, func(ctx context.Context) (err error) {
		if embeds.Notes, err = s.activity.ListNotes(ctx, order.ID); err != nil {
			return err
		}
		embeds.NoteAuthors, err = s.renderAuthors(ctx, f, embeds.Notes)
		return err
	})
	s.launch(ctx, g, embedOutreaches, order.ID, func(ctx context.Context) (err error) {
		embeds.Outreaches, err = s.activity.ListOutreaches(ctx, order.ID)
		return err
	})
	s.launch(ctx, g, embedScheduledMessages, order.ID, func(ctx context.Context) (err error) {
		embeds.ScheduledMessages, err = s.activity.ListScheduledMessages(ctx, order.ID)
		return err
	})
	s.launch(ctx, g, embedVoicemailTasks, order.ID, func(ctx context.Context) (err error) {
		embeds.VoicemailTasks, err = s.activity.ListVoicemailTasks(ctx, order.ID)
		return err
	})
	s.launch(ctx, g, embedTriages, order.ID, func(ctx context.Context) (err error) {
		embeds.Triages, err = s.activity.ListTriages(ctx, order.ID)
		return err
	})

	if err := g.Wait(); err != nil {
		return responses.PatientOrderEmbeds{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load patient order details")
	}
	return embeds, nil
}

// launch runs load in its own span and records how long it took.
func (s *Service) launch(ctx context.Context, g *errgroup.Group, name string, orderID id.PatientOrderID, load func(context.Context) error) {
	g.Go(func() (err error) {
		ctx, span := s.tracer.Start(ctx, tracer.SpanPatientOrderSupplement,
			tracer.String(tracer.AttrPatientOrderID, orderID.String()),
			tracer.String(tracer.AttrSupplement, name),
		)
		defer func() { span.End(err) }()

		start := time.Now()
		err = load(ctx)
		s.metrics.ObserveSupplementLatency(name, time.Since(start))
		return err
	})
}

// renderAuthors renders each distinct note author once. Authors whose accounts are gone
// are left out and their notes render without one.
func (s *Service) renderAuthors(ctx context.Context, f *format.Formatter, notes []*models.PatientOrderNote) (map[id.AccountID]*accountresponses.AccountResponse, error) {
	authors := make(map[id.AccountID]*accountresponses.AccountResponse)
	for _, note := range notes {
		if _, done := authors[note.AccountID]; done {
			continue
		}
		author, err := s.accounts.RenderAccountByID(ctx, f, note.AccountID)
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			s.logger.WarnContext(ctx, "patient order note author not found",
				"account_id", note.AccountID.String(),
				"patient_order_note_id", note.ID.String(),
				"request_id", requestcontext.RequestID(ctx),
			)
			authors[note.AccountID] = nil
			continue
		}
		if err != nil {
			return nil, err
		}
		authors[note.AccountID] = author
	}
	return authors, nil
}
