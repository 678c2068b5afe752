// Package service loads care resources with their locations and tags.
package service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"cobalt/internal/careresource/models"
	"cobalt/internal/careresource/responses"
	"cobalt/internal/format"
	"cobalt/internal/platform/metrics"
	"cobalt/internal/platform/tracer"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/requestcontext"
)

// locationTagConcurrency caps concurrent tag loads for one resource.
const locationTagConcurrency = 4

const responseTypeCareResource = "care_resource"

type CareResourceStore interface {
	FindCareResource(ctx context.Context, resourceID id.CareResourceID, institutionID id.InstitutionID) (*models.CareResource, error)
	ListLocations(ctx context.Context, resourceID id.CareResourceID) ([]*models.CareResourceLocation, error)
}

type TagStore interface {
	ResourceTags(ctx context.Context, resourceID id.CareResourceID) (models.Tags, error)
	LocationTags(ctx context.Context, locationID id.CareResourceLocationID) (models.Tags, error)
}

type Service struct {
	resources CareResourceStore
	tags      TagStore
	metrics   *metrics.Metrics
	tracer    tracer.Tracer
	logger    *slog.Logger
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

func New(resources CareResourceStore, tags TagStore, opts ...Option) *Service {
	s := &Service{
		resources: resources,
		tags:      tags,
		logger:    slog.Default(),
		tracer:    tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetCareResource renders a resource of the viewer's institution with all of its locations.
func (s *Service) GetCareResource(ctx context.Context, f *format.Formatter, resourceID id.CareResourceID) (_ *responses.CareResourceResponse, err error) {
	if requestcontext.AccountID(ctx).IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "sign in required")
	}
	ctx, span := s.tracer.Start(ctx, tracer.SpanCareResourceLoad, tracer.String(tracer.AttrCareResourceID, resourceID.String()))
	defer func() { span.End(err) }()

	resource, err := s.resources.FindCareResource(ctx, resourceID, requestcontext.InstitutionID(ctx))
	if err != nil {
		return nil, wrapErr(err, "care resource", "failed to load care resource")
	}
	locations, err := s.resources.ListLocations(ctx, resourceID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list care resource locations")
	}
	span.SetAttributes(tracer.Int(tracer.AttrCount, len(locations)))

	in := responses.CareResourceInput{Resource: resource, Locations: locations}
	if in.Tags, in.LocationTags, err = s.loadTags(ctx, resourceID, locations); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load care resource tags")
	}

	r, err := responses.NewCareResourceResponse(f, in, requestcontext.RoleID(ctx))
	if err != nil {
		s.metrics.IncrementBuildError(responseTypeCareResource)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render care resource")
	}
	s.metrics.IncrementRendered(responseTypeCareResource)
	return r, nil
}

// loadTags fetches the resource's tags and each location's concurrently. Every goroutine
// writes its own slot; the map is assembled after Wait.
func (s *Service) loadTags(ctx context.Context, resourceID id.CareResourceID, locations []*models.CareResourceLocation) (models.Tags, map[id.CareResourceLocationID]models.Tags, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(locationTagConcurrency)

	var resourceTags models.Tags
	g.Go(func() (err error) {
		resourceTags, err = s.tags.ResourceTags(ctx, resourceID)
		return err
	})
	perLocation := make([]models.Tags, len(locations))
	for i, location := range locations {
		g.Go(func() (err error) {
			perLocation[i], err = s.tags.LocationTags(ctx, location.ID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	locationTags := make(map[id.CareResourceLocationID]models.Tags, len(locations))
	for i, location := range locations {
		locationTags[location.ID] = perLocation[i]
	}
	return resourceTags, locationTags, nil
}

func wrapErr(err error, entity, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, entity+" not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}
