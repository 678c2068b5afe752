// Package service renders library content and topic centers.
package service

import (
	"context"
	"errors"
	"log/slog"

	"cobalt/internal/content/models"
	"cobalt/internal/content/responses"
	"cobalt/internal/format"
	"cobalt/internal/platform/metrics"
	"cobalt/internal/platform/tracer"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/requestcontext"
	"cobalt/pkg/supplement"
)

type ContentStore interface {
	FindContent(ctx context.Context, contentID id.ContentID) (*models.Content, error)
}

type TagStore interface {
	ListTags(ctx context.Context, institutionID id.InstitutionID) ([]*models.Tag, error)
	ListTagGroups(ctx context.Context, institutionID id.InstitutionID) ([]*models.TagGroup, error)
}

type TopicCenterStore interface {
	FindTopicCenter(ctx context.Context, topicCenterID id.TopicCenterID) (*models.TopicCenter, error)
	ListTopicCenterRows(ctx context.Context, topicCenterID id.TopicCenterID) ([]*models.TopicCenterRow, error)
}

const (
	responseTypeContent     = "content"
	responseTypeTagGroup    = "tag_group"
	responseTypeTopicCenter = "topic_center"
)

type Service struct {
	contents     ContentStore
	tags         TagStore
	topicCenters TopicCenterStore
	metrics      *metrics.Metrics
	tracer       tracer.Tracer
	logger       *slog.Logger
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

func New(contents ContentStore, tags TagStore, topicCenters TopicCenterStore, opts ...Option) *Service {
	s := &Service{
		contents:     contents,
		tags:         tags,
		topicCenters: topicCenters,
		logger:       slog.Default(),
		tracer:       tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GetContent(ctx context.Context, f *format.Formatter, contentID id.ContentID, supplements supplement.Set[responses.ContentSupplement]) (*responses.ContentResponse, error) {
	content, err := s.contents.FindContent(ctx, contentID)
	if err != nil {
		return nil, wrapErr(err, "content", "failed to load content")
	}
	r, err := responses.NewContentResponse(f, content, supplements)
	if err != nil {
		s.metrics.IncrementBuildError(responseTypeContent)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render content")
	}
	s.metrics.IncrementRendered(responseTypeContent)
	return r, nil
}

// ListTagGroups renders the viewer institution's tag groups.
func (s *Service) ListTagGroups(ctx context.Context, institutionID id.InstitutionID) ([]*responses.TagGroupResponse, error) {
	groups, err := s.tags.ListTagGroups(ctx, institutionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list tag groups")
	}
	out := make([]*responses.TagGroupResponse, 0, len(groups))
	for _, g := range groups {
		r, err := responses.NewTagGroupResponse(g)
		if err != nil {
			s.metrics.IncrementBuildError(responseTypeTagGroup)
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render tag group")
		}
		out = append(out, r)
	}
	s.metrics.IncrementRendered(responseTypeTagGroup)
	return out, nil
}

// GetTopicCenter renders a topic center with its rows. Tags come from the viewer's
// institution, or the topic center's own when the request carries none.
func (s *Service) GetTopicCenter(ctx context.Context, f *format.Formatter, topicCenterID id.TopicCenterID) (_ *responses.TopicCenterResponse, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanTopicCenterLoad, tracer.String(tracer.AttrTopicCenterID, topicCenterID.String()))
	defer func() { span.End(err) }()

	topicCenter, err := s.topicCenters.FindTopicCenter(ctx, topicCenterID)
	if err != nil {
		return nil, wrapErr(err, "topic center", "failed to load topic center")
	}
	rows, err := s.topicCenters.ListTopicCenterRows(ctx, topicCenterID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list topic center rows")
	}

	institutionID := requestcontext.InstitutionID(ctx)
	if institutionID.IsNil() {
		institutionID = topicCenter.InstitutionID
	}
	tags, err := s.tags.ListTags(ctx, institutionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list tags")
	}
	span.SetAttributes(tracer.Int(tracer.AttrCount, len(rows)))

	r, err := responses.NewTopicCenterResponse(f, topicCenter, rows, tags)
	if err != nil {
		s.metrics.IncrementBuildError(responseTypeTopicCenter)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render topic center")
	}
	s.metrics.IncrementRendered(responseTypeTopicCenter)
	return r, nil
}

func wrapErr(err error, entity, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, entity+" not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}
