// Package service renders institution configuration, alerts, blurbs and resource groups.
package service

import (
	"context"
	"errors"
	"log/slog"

	"cobalt/internal/format"
	"cobalt/internal/institution/models"
	"cobalt/internal/institution/responses"
	"cobalt/internal/platform/metrics"
	"cobalt/internal/platform/tracer"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/requestcontext"
)

type InstitutionStore interface {
	FindByID(ctx context.Context, institutionID id.InstitutionID) (*models.Institution, error)
}

type AlertStore interface {
	ListActiveAlerts(ctx context.Context, institutionID id.InstitutionID) ([]*models.Alert, error)
	DismissedAlertIDs(ctx context.Context, accountID id.AccountID) (map[id.AlertID]struct{}, error)
	DismissAlert(ctx context.Context, accountID id.AccountID, alertID id.AlertID) error
}

type BlurbStore interface {
	ListBlurbs(ctx context.Context, institutionID id.InstitutionID) ([]*models.InstitutionBlurb, error)
	ListTeamMembers(ctx context.Context, blurbID id.InstitutionBlurbID) ([]*models.InstitutionTeamMember, error)
}

type ResourceGroupStore interface {
	ListResourceGroups(ctx context.Context, institutionID id.InstitutionID) ([]*models.ResourceGroup, error)
}

const (
	responseTypeInstitution   = "institution"
	responseTypeBlurb         = "institution_blurb"
	responseTypeResourceGroup = "resource_group"
)

type Service struct {
	institutions   InstitutionStore
	alerts         AlertStore
	blurbs         BlurbStore
	resourceGroups ResourceGroupStore
	metrics        *metrics.Metrics
	tracer         tracer.Tracer
	logger         *slog.Logger
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

func New(institutions InstitutionStore, alerts AlertStore, blurbs BlurbStore, resourceGroups ResourceGroupStore, opts ...Option) *Service {
	s := &Service{
		institutions:   institutions,
		alerts:         alerts,
		blurbs:         blurbs,
		resourceGroups: resourceGroups,
		logger:         slog.Default(),
		tracer:         tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetInstitution renders the institution for the viewer's experience. Signed-in viewers
// only see alerts they have not dismissed.
func (s *Service) GetInstitution(ctx context.Context, f *format.Formatter, institutionID id.InstitutionID) (_ *responses.InstitutionResponse, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanInstitutionLoad, tracer.String(tracer.AttrInstitutionID, institutionID.String()))
	defer func() { span.End(err) }()

	institution, err := s.institutions.FindByID(ctx, institutionID)
	if err != nil {
		return nil, wrapErr(err, "failed to load institution")
	}
	alerts, err := s.visibleAlerts(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(tracer.Int(tracer.AttrCount, len(alerts)))

	experience := models.ExperienceFor(requestcontext.RoleID(ctx))
	r, err := responses.NewInstitutionResponse(f, institution, experience, alerts)
	if err != nil {
		s.metrics.IncrementBuildError(responseTypeInstitution)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render institution")
	}
	s.metrics.IncrementRendered(responseTypeInstitution)
	return r, nil
}

func (s *Service) visibleAlerts(ctx context.Context, institutionID id.InstitutionID) ([]*models.Alert, error) {
	alerts, err := s.alerts.ListActiveAlerts(ctx, institutionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list alerts")
	}
	viewer := requestcontext.AccountID(ctx)
	if viewer.IsNil() {
		return alerts, nil
	}
	dismissed, err := s.alerts.DismissedAlertIDs(ctx, viewer)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list dismissed alerts")
	}
	out := alerts[:0:0]
	for _, a := range alerts {
		if _, ok := dismissed[a.ID]; !ok {
			out = append(out, a)
		}
	}
	return out, nil
}

// DismissAlert hides an alert for the signed-in viewer.
func (s *Service) DismissAlert(ctx context.Context, alertID id.AlertID) error {
	viewer := requestcontext.AccountID(ctx)
	if viewer.IsNil() {
		return dErrors.New(dErrors.CodeUnauthorized, "sign in to dismiss alerts")
	}
	if err := s.alerts.DismissAlert(ctx, viewer, alertID); err != nil {
		return wrapErr(err, "failed to dismiss alert")
	}
	s.logger.InfoContext(ctx, "alert dismissed",
		"alert_id", alertID,
		"request_id", requestcontext.RequestID(ctx),
	)
	return nil
}

// ListBlurbs renders the institution's blurbs with their team members.
func (s *Service) ListBlurbs(ctx context.Context, institutionID id.InstitutionID) ([]*responses.InstitutionBlurbResponse, error) {
	blurbs, err := s.blurbs.ListBlurbs(ctx, institutionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list institution blurbs")
	}
	out := make([]*responses.InstitutionBlurbResponse, 0, len(blurbs))
	for _, b := range blurbs {
		members, err := s.blurbs.ListTeamMembers(ctx, b.ID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list team members")
		}
		r, err := responses.NewInstitutionBlurbResponse(b, members)
		if err != nil {
			s.metrics.IncrementBuildError(responseTypeBlurb)
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render institution blurb")
		}
		out = append(out, r)
	}
	s.metrics.IncrementRendered(responseTypeBlurb)
	return out, nil
}

func (s *Service) ListResourceGroups(ctx context.Context, institutionID id.InstitutionID) ([]*responses.ResourceGroupResponse, error) {
	groups, err := s.resourceGroups.ListResourceGroups(ctx, institutionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list resource groups")
	}
	out := make([]*responses.ResourceGroupResponse, 0, len(groups))
	for _, g := range groups {
		r, err := responses.NewResourceGroupResponse(g)
		if err != nil {
			s.metrics.IncrementBuildError(responseTypeResourceGroup)
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render resource group")
		}
		out = append(out, r)
	}
	s.metrics.IncrementRendered(responseTypeResourceGroup)
	return out, nil
}

func wrapErr(err error, action string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "institution not found")
	case errors.Is(err, sentinel.ErrAlreadyUsed):
		return dErrors.New(dErrors.CodeConflict, "alert already dismissed")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}
