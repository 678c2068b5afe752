// Package service loads scheduling entities and renders them for the requesting viewer.
package service

import (
	"context"
	"errors"
	"log/slog"

	accountresponses "cobalt/internal/account/responses"
	"cobalt/internal/format"
	"cobalt/internal/platform/metrics"
	"cobalt/internal/platform/tracer"
	"cobalt/internal/scheduling/models"
	"cobalt/internal/scheduling/responses"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/requestcontext"
	"cobalt/pkg/supplement"
)

type ProviderStore interface {
	FindProvider(ctx context.Context, providerID id.ProviderID) (*models.Provider, error)
	ListLogicalAvailabilities(ctx context.Context, providerID id.ProviderID) ([]*models.LogicalAvailability, error)
}

type AppointmentStore interface {
	FindAppointment(ctx context.Context, appointmentID id.AppointmentID) (*models.Appointment, error)
	FindAppointmentType(ctx context.Context, appointmentTypeID id.AppointmentTypeID) (*models.AppointmentType, error)
	ListFollowups(ctx context.Context, accountID id.AccountID) ([]*models.Followup, error)
}

type GroupSessionStore interface {
	ListReservations(ctx context.Context, groupSessionID id.GroupSessionID) ([]*models.GroupSessionReservation, error)
}

// AccountRenderer renders accounts embedded in scheduling responses.
type AccountRenderer interface {
	RenderAccountByID(ctx context.Context, f *format.Formatter, accountID id.AccountID) (*accountresponses.AccountResponse, error)
}

const (
	responseTypeProvider            = "provider"
	responseTypeAppointment         = "appointment"
	responseTypeFollowup            = "followup"
	responseTypeLogicalAvailability = "logical_availability"
	responseTypeReservation         = "group_session_reservation"
)

type Service struct {
	providers     ProviderStore
	appointments  AppointmentStore
	groupSessions GroupSessionStore
	accounts      AccountRenderer
	metrics       *metrics.Metrics
	tracer        tracer.Tracer
	logger        *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
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

func New(providers ProviderStore, appointments AppointmentStore, groupSessions GroupSessionStore, accounts AccountRenderer, opts ...Option) *Service {
	s := &Service{
		providers:     providers,
		appointments:  appointments,
		groupSessions: groupSessions,
		accounts:      accounts,
		logger:        slog.Default(),
		tracer:        tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GetProvider(ctx context.Context, f *format.Formatter, providerID id.ProviderID, supplements supplement.Set[responses.ProviderSupplement]) (*responses.ProviderResponse, error) {
	provider, err := s.providers.FindProvider(ctx, providerID)
	if err != nil {
		return nil, wrapErr(err, "provider", "failed to load provider")
	}
	r, err := responses.NewProviderResponse(f, provider, supplements)
	if err != nil {
		s.metrics.IncrementBuildError(responseTypeProvider)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render provider")
	}
	s.metrics.IncrementRendered(responseTypeProvider)
	return r, nil
}

// GetAppointment renders an appointment for its patient or for staff, loading only the
// related entities the supplements ask for.
func (s *Service) GetAppointment(ctx context.Context, f *format.Formatter, appointmentID id.AppointmentID, supplements supplement.Set[responses.AppointmentSupplement]) (_ *responses.AppointmentResponse, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanAppointmentLoad, tracer.String(tracer.AttrAppointmentID, appointmentID.String()))
	defer func() { span.End(err) }()

	appointment, err := s.appointments.FindAppointment(ctx, appointmentID)
	if err != nil {
		return nil, wrapErr(err, "appointment", "failed to load appointment")
	}
	if err := authorizeAccount(ctx, appointment.AccountID); err != nil {
		return nil, err
	}

	all := supplements.Has(responses.AppointmentSupplementAll)
	var embeds responses.AppointmentEmbeds
	if (all || supplements.Has(responses.AppointmentSupplementProvider)) && appointment.ProviderID != nil {
		if embeds.Provider, err = s.providers.FindProvider(ctx, *appointment.ProviderID); err != nil {
			return nil, wrapErr(err, "provider", "failed to load provider")
		}
	}
	if all || supplements.Has(responses.AppointmentSupplementAccount) {
		if embeds.Account, err = s.accounts.RenderAccountByID(ctx, f, appointment.AccountID); err != nil {
			return nil, err
		}
	}
	if all || supplements.Has(responses.AppointmentSupplementAppointmentType) {
		embeds.AppointmentType, err = s.appointments.FindAppointmentType(ctx, appointment.AppointmentTypeID)
		if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load appointment type")
		}
	}

	r, err := responses.NewAppointmentResponse(f, appointment, supplements, embeds)
	if err != nil {
		s.metrics.IncrementBuildError(responseTypeAppointment)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render appointment")
	}
	s.metrics.IncrementRendered(responseTypeAppointment)
	return r, nil
}

// ListFollowups renders an account's followups with their providers.
func (s *Service) ListFollowups(ctx context.Context, f *format.Formatter, accountID id.AccountID) ([]*responses.FollowupResponse, error) {
	if err := authorizeAccount(ctx, accountID); err != nil {
		return nil, err
	}
	followups, err := s.appointments.ListFollowups(ctx, accountID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list followups")
	}
	if len(followups) == 0 {
		return []*responses.FollowupResponse{}, nil
	}
	account, err := s.accounts.RenderAccountByID(ctx, f, accountID)
	if err != nil {
		return nil, err
	}

	providers := make(map[id.ProviderID]*models.Provider)
	out := make([]*responses.FollowupResponse, 0, len(followups))
	for _, followup := range followups {
		provider, ok := providers[followup.ProviderID]
		if !ok {
			provider, err = s.providers.FindProvider(ctx, followup.ProviderID)
			if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
				return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load provider")
			}
			providers[followup.ProviderID] = provider
		}
		r, err := responses.NewFollowupResponse(f, followup, account, provider)
		if err != nil {
			s.metrics.IncrementBuildError(responseTypeFollowup)
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render followup")
		}
		out = append(out, r)
	}
	s.metrics.IncrementRendered(responseTypeFollowup)
	return out, nil
}

// ListLogicalAvailabilities renders a provider's calendar rules. Staff only.
func (s *Service) ListLogicalAvailabilities(ctx context.Context, f *format.Formatter, providerID id.ProviderID) ([]*responses.LogicalAvailabilityResponse, error) {
	if err := requireStaff(ctx); err != nil {
		return nil, err
	}
	availabilities, err := s.providers.ListLogicalAvailabilities(ctx, providerID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list logical availabilities")
	}
	out := make([]*responses.LogicalAvailabilityResponse, 0, len(availabilities))
	for _, a := range availabilities {
		r, err := responses.NewLogicalAvailabilityResponse(f, a)
		if err != nil {
			s.metrics.IncrementBuildError(responseTypeLogicalAvailability)
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render logical availability")
		}
		out = append(out, r)
	}
	s.metrics.IncrementRendered(responseTypeLogicalAvailability)
	return out, nil
}

// ListReservations renders who booked a group session. Staff only.
func (s *Service) ListReservations(ctx context.Context, f *format.Formatter, groupSessionID id.GroupSessionID) ([]*responses.GroupSessionReservationResponse, error) {
	if err := requireStaff(ctx); err != nil {
		return nil, err
	}
	reservations, err := s.groupSessions.ListReservations(ctx, groupSessionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list reservations")
	}
	out := make([]*responses.GroupSessionReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		r, err := responses.NewGroupSessionReservationResponse(f, reservation)
		if err != nil {
			s.metrics.IncrementBuildError(responseTypeReservation)
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render reservation")
		}
		out = append(out, r)
	}
	s.metrics.IncrementRendered(responseTypeReservation)
	s.logger.InfoContext(ctx, "group session reservations viewed",
		"group_session_id", groupSessionID.String(),
		"count", len(out),
		"request_id", requestcontext.RequestID(ctx),
	)
	return out, nil
}

func authorizeAccount(ctx context.Context, accountID id.AccountID) error {
	viewer := requestcontext.AccountID(ctx)
	if viewer.IsNil() {
		return dErrors.New(dErrors.CodeUnauthorized, "sign in required")
	}
	if viewer == accountID || requestcontext.RoleID(ctx).IsStaff() {
		return nil
	}
	return dErrors.New(dErrors.CodeForbidden, "not allowed to view this account's schedule")
}

func requireStaff(ctx context.Context) error {
	if requestcontext.AccountID(ctx).IsNil() {
		return dErrors.New(dErrors.CodeUnauthorized, "sign in required")
	}
	if !requestcontext.RoleID(ctx).IsStaff() {
		return dErrors.New(dErrors.CodeForbidden, "staff only")
	}
	return nil
}

func wrapErr(err error, entity, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, entity+" not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}
