// Package service loads patient orders and renders them for care team members and patients.
package service

import (
	"context"
	"errors"
	"log/slog"

	accountmodels "cobalt/internal/account/models"
	accountresponses "cobalt/internal/account/responses"
	"cobalt/internal/audit"
	"cobalt/internal/format"
	"cobalt/internal/patientorder/models"
	"cobalt/internal/patientorder/responses"
	"cobalt/internal/platform/metrics"
	"cobalt/internal/platform/tracer"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/requestcontext"
	"cobalt/pkg/supplement"
)

type PatientOrderStore interface {
	FindPatientOrder(ctx context.Context, orderID id.PatientOrderID) (*models.PatientOrder, error)
	Autocomplete(ctx context.Context, institutionID id.InstitutionID, query string) ([]*models.PatientOrderAutocompleteResult, error)
}

// ActivityStore lists the work recorded against an order.
type ActivityStore interface {
	ListNotes(ctx context.Context, orderID id.PatientOrderID) ([]*models.PatientOrderNote, error)
	ListOutreaches(ctx context.Context, orderID id.PatientOrderID) ([]*models.PatientOrderOutreach, error)
	ListScheduledMessages(ctx context.Context, orderID id.PatientOrderID) ([]*models.PatientOrderScheduledMessage, error)
	ListVoicemailTasks(ctx context.Context, orderID id.PatientOrderID) ([]*models.PatientOrderVoicemailTask, error)
	ListTriages(ctx context.Context, orderID id.PatientOrderID) ([]*models.PatientOrderTriage, error)
	ListEncounters(ctx context.Context, orderID id.PatientOrderID) ([]*models.Encounter, error)
}

// AccountRenderer renders the patient and note authors embedded in an order.
type AccountRenderer interface {
	RenderAccountByID(ctx context.Context, f *format.Formatter, accountID id.AccountID) (*accountresponses.AccountResponse, error)
	ActiveAddress(ctx context.Context, accountID id.AccountID) (*accountmodels.Address, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

const (
	responseTypeOrder        = "patient_order"
	responseTypeAutocomplete = "patient_order_autocomplete"
	responseTypeEncounter    = "encounter"
)

type Service struct {
	orders   PatientOrderStore
	activity ActivityStore
	accounts AccountRenderer
	audit    AuditPublisher
	metrics  *metrics.Metrics
	tracer   tracer.Tracer
	logger   *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.audit = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func New(orders PatientOrderStore, activity ActivityStore, accounts AccountRenderer, opts ...Option) *Service {
	s := &Service{
		orders:   orders,
		activity: activity,
		accounts: accounts,
		logger:   slog.Default(),
		tracer:   tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetPatientOrder renders an order in the format the viewer's role calls for. Care team
// members of the order's institution may view any order; patients only their own. The
// EVERYTHING supplement is honored for the care team only.
func (s *Service) GetPatientOrder(ctx context.Context, f *format.Formatter, orderID id.PatientOrderID, supplements supplement.Set[responses.PatientOrderSupplement]) (_ *responses.PatientOrderResponse, err error) {
	viewer := requestcontext.AccountID(ctx)
	if viewer.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "sign in required")
	}

	ctx, span := s.tracer.Start(ctx, tracer.SpanPatientOrderLoad, tracer.String(tracer.AttrPatientOrderID, orderID.String()))
	defer func() { span.End(err) }()

	order, err := s.orders.FindPatientOrder(ctx, orderID)
	if err != nil {
		return nil, wrapErr(err, "patient order", "failed to load patient order")
	}
	role := requestcontext.RoleID(ctx)
	reason, err := authorizeView(ctx, viewer, role, order)
	if err != nil {
		return nil, err
	}

	orderFormat := responses.FormatForRole(role)
	if orderFormat != responses.PatientOrderFormatMhic {
		supplements = nil
	}

	var embeds responses.PatientOrderEmbeds
	if supplements.Has(responses.PatientOrderSupplementEverything) {
		if embeds, err = s.loadEmbeds(ctx, f, order); err != nil {
			return nil, err
		}
	}

	r, err := responses.NewPatientOrderResponse(f, order, orderFormat, supplements, embeds)
	if err != nil {
		s.metrics.IncrementBuildError(responseTypeOrder)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render patient order")
	}
	s.metrics.IncrementRendered(responseTypeOrder)
	span.AddEvent(tracer.EventPHIDisclosed, tracer.String(tracer.AttrSupplement, string(reason)))
	s.recordDisclosure(ctx, order, reason)
	return r, nil
}

// Autocomplete searches the viewer's institution for patients by MRN, ID or name.
func (s *Service) Autocomplete(ctx context.Context, f *format.Formatter, query string) (_ []*responses.PatientOrderAutocompleteResultResponse, err error) {
	if err := requireCareTeam(ctx); err != nil {
		return nil, err
	}
	institutionID := requestcontext.InstitutionID(ctx)
	ctx, span := s.tracer.Start(ctx, tracer.SpanPatientOrderAutocomplete, tracer.String(tracer.AttrInstitutionID, institutionID.String()))
	defer func() { span.End(err) }()

	results, err := s.orders.Autocomplete(ctx, institutionID, query)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search patient orders")
	}
	span.SetAttributes(tracer.Int(tracer.AttrCount, len(results)))

	out := make([]*responses.PatientOrderAutocompleteResultResponse, 0, len(results))
	for _, result := range results {
		r, err := responses.NewPatientOrderAutocompleteResultResponse(f, result)
		if err != nil {
			s.metrics.IncrementBuildError(responseTypeAutocomplete)
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render autocomplete result")
		}
		out = append(out, r)
	}
	s.metrics.IncrementRendered(responseTypeAutocomplete)
	return out, nil
}

// ListEncounters renders the EHR encounters an order can be synced to, most recent first.
func (s *Service) ListEncounters(ctx context.Context, f *format.Formatter, orderID id.PatientOrderID) (_ []*responses.EncounterResponse, err error) {
	if err := requireCareTeam(ctx); err != nil {
		return nil, err
	}
	ctx, span := s.tracer.Start(ctx, tracer.SpanPatientOrderEncounters, tracer.String(tracer.AttrPatientOrderID, orderID.String()))
	defer func() { span.End(err) }()

	order, err := s.orders.FindPatientOrder(ctx, orderID)
	if err != nil {
		return nil, wrapErr(err, "patient order", "failed to load patient order")
	}
	if _, err := authorizeView(ctx, requestcontext.AccountID(ctx), requestcontext.RoleID(ctx), order); err != nil {
		return nil, err
	}
	encounters, err := s.activity.ListEncounters(ctx, orderID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list encounters")
	}

	out := make([]*responses.EncounterResponse, 0, len(encounters))
	for _, encounter := range encounters {
		r, err := responses.NewEncounterResponse(f, encounter)
		if err != nil {
			s.metrics.IncrementBuildError(responseTypeEncounter)
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render encounter")
		}
		out = append(out, r)
	}
	s.metrics.IncrementRendered(responseTypeEncounter)
	return out, nil
}

// authorizeView returns why the viewer may see the order's PHI.
func authorizeView(ctx context.Context, viewer id.AccountID, role id.RoleID, order *models.PatientOrder) (audit.Reason, error) {
	if role.IsStaff() {
		if institutionID := requestcontext.InstitutionID(ctx); !institutionID.IsNil() && institutionID != order.InstitutionID {
			return "", dErrors.New(dErrors.CodeForbidden, "patient order belongs to another institution")
		}
		return audit.ReasonStaff, nil
	}
	if order.PatientAccountID != nil && *order.PatientAccountID == viewer {
		return audit.ReasonSelf, nil
	}
	return "", dErrors.New(dErrors.CodeForbidden, "not allowed to view this patient order")
}

func requireCareTeam(ctx context.Context) error {
	if requestcontext.AccountID(ctx).IsNil() {
		return dErrors.New(dErrors.CodeUnauthorized, "sign in required")
	}
	if !requestcontext.RoleID(ctx).IsStaff() {
		return dErrors.New(dErrors.CodeForbidden, "care team access required")
	}
	return nil
}

func (s *Service) recordDisclosure(ctx context.Context, order *models.PatientOrder, reason audit.Reason) {
	s.metrics.IncrementPHIDisclosure(string(reason))
	if s.audit == nil {
		return
	}
	err := s.audit.Emit(ctx, audit.Event{
		Action:        audit.ActionPHIDisclosed,
		SubjectID:     order.ID.String(),
		InstitutionID: order.InstitutionID.String(),
		ResponseType:  responseTypeOrder,
		Reason:        reason,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event",
			"action", audit.ActionPHIDisclosed,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
			"patient_order_id", order.ID.String(),
		)
	}
}

func wrapErr(err error, entity, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, entity+" not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}
