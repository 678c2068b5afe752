// Package service loads screening entities and renders them for the requesting viewer.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	accountmodels "cobalt/internal/account/models"
	"cobalt/internal/format"
	"cobalt/internal/platform/config"
	"cobalt/internal/platform/metrics"
	"cobalt/internal/platform/tracer"
	"cobalt/internal/screening/models"
	"cobalt/internal/screening/responses"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/requestcontext"
)

type FlowVersionStore interface {
	FindFlowVersion(ctx context.Context, versionID id.ScreeningFlowVersionID) (*models.ScreeningFlowVersion, error)
}

type SessionStore interface {
	FindSession(ctx context.Context, sessionID id.ScreeningSessionID) (*models.ScreeningSession, error)
}

type QuestionStore interface {
	ListQuestions(ctx context.Context, versionID id.ScreeningVersionID) ([]*models.ScreeningQuestion, error)
}

// AccountSourceStore lists the sign-in options an institution has configured.
type AccountSourceStore interface {
	ListAccountSources(ctx context.Context, institutionID id.InstitutionID) ([]*accountmodels.AccountSource, error)
}

// TokenSigner issues the signing token SSO providers hand back after sign-in.
type TokenSigner interface {
	IssueSigningToken(ctx context.Context, accountID id.AccountID, ttl time.Duration, subjects map[string]string, actions ...string) (string, error)
}

const (
	responseTypeFlowVersion = "screening_flow_version"
	responseTypeSession     = "screening_session"
	responseTypeQuestion    = "screening_question"

	signingTokenTTL   = 30 * time.Minute
	signingTokenParam = "signingToken"

	actionUpgradeAccount         = "UPGRADE_ACCOUNT"
	actionCreateScreeningSession = "CREATE_SCREENING_SESSION"
)

type Service struct {
	flowVersions FlowVersionStore
	sessions     SessionStore
	questions    QuestionStore
	sources      AccountSourceStore
	signer       TokenSigner
	environment  config.Environment
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

func New(flowVersions FlowVersionStore, sessions SessionStore, questions QuestionStore, sources AccountSourceStore, signer TokenSigner, env config.Environment, opts ...Option) *Service {
	s := &Service{
		flowVersions: flowVersions,
		sessions:     sessions,
		questions:    questions,
		sources:      sources,
		signer:       signer,
		environment:  env,
		logger:       slog.Default(),
		tracer:       tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetScreeningFlowVersion renders a flow version with the sign-in options it requires. A
// signed-in viewer gets a signing token on each SSO URL so the post-auth redirect can
// upgrade their account and start a screening session.
func (s *Service) GetScreeningFlowVersion(ctx context.Context, f *format.Formatter, versionID id.ScreeningFlowVersionID) (_ *responses.ScreeningFlowVersionResponse, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanScreeningFlowVersionLoad, tracer.String(tracer.AttrScreeningFlowVersionID, versionID.String()))
	defer func() { span.End(err) }()

	version, err := s.flowVersions.FindFlowVersion(ctx, versionID)
	if err != nil {
		return nil, wrapErr(err, "screening flow version", "failed to load screening flow version")
	}

	var required []*accountmodels.AccountSource
	var queryParams map[string]string
	if len(version.RequiredAccountSourceIDs) > 0 {
		if required, err = s.requiredSources(ctx, version); err != nil {
			return nil, err
		}
		if viewer := requestcontext.AccountID(ctx); !viewer.IsNil() {
			token, err := s.signer.IssueSigningToken(ctx, viewer, signingTokenTTL,
				map[string]string{"screeningFlowVersionId": version.ID.String()},
				actionUpgradeAccount, actionCreateScreeningSession,
			)
			if err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue signing token")
			}
			queryParams = map[string]string{signingTokenParam: token}
		}
	}
	span.SetAttributes(tracer.Int(tracer.AttrCount, len(required)))

	r, err := responses.NewScreeningFlowVersionResponse(f, version, required, s.environment, queryParams)
	if err != nil {
		s.metrics.IncrementBuildError(responseTypeFlowVersion)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render screening flow version")
	}
	s.metrics.IncrementRendered(responseTypeFlowVersion)
	return r, nil
}

// requiredSources resolves the version's required sources against the viewer's institution.
// Sources the institution has not configured are skipped.
func (s *Service) requiredSources(ctx context.Context, version *models.ScreeningFlowVersion) ([]*accountmodels.AccountSource, error) {
	institutionID := requestcontext.InstitutionID(ctx)
	configured, err := s.sources.ListAccountSources(ctx, institutionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list account sources")
	}
	byID := make(map[id.AccountSourceID]*accountmodels.AccountSource, len(configured))
	for _, src := range configured {
		byID[src.ID] = src
	}

	out := make([]*accountmodels.AccountSource, 0, len(version.RequiredAccountSourceIDs))
	for _, sourceID := range version.RequiredAccountSourceIDs {
		src, ok := byID[sourceID]
		if !ok {
			s.logger.WarnContext(ctx, "required account source not configured for institution",
				"account_source_id", sourceID.String(),
				"institution_id", institutionID.String(),
				"screening_flow_version_id", version.ID.String(),
				"request_id", requestcontext.RequestID(ctx),
			)
			continue
		}
		out = append(out, src)
	}
	return out, nil
}

// GetScreeningSession renders a session for the account it screens, the account that
// started it, or staff.
func (s *Service) GetScreeningSession(ctx context.Context, f *format.Formatter, sessionID id.ScreeningSessionID) (*responses.ScreeningSessionResponse, error) {
	viewer := requestcontext.AccountID(ctx)
	if viewer.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "sign in required")
	}
	session, err := s.sessions.FindSession(ctx, sessionID)
	if err != nil {
		return nil, wrapErr(err, "screening session", "failed to load screening session")
	}
	if viewer != session.TargetAccountID && viewer != session.CreatedByAccountID && !requestcontext.RoleID(ctx).IsStaff() {
		return nil, dErrors.New(dErrors.CodeForbidden, "not allowed to view this screening session")
	}

	r, err := responses.NewScreeningSessionResponse(f, session)
	if err != nil {
		s.metrics.IncrementBuildError(responseTypeSession)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render screening session")
	}
	s.metrics.IncrementRendered(responseTypeSession)
	return r, nil
}

// ListQuestions renders a screening version's questions in display order.
func (s *Service) ListQuestions(ctx context.Context, f *format.Formatter, versionID id.ScreeningVersionID) ([]*responses.ScreeningQuestionResponse, error) {
	questions, err := s.questions.ListQuestions(ctx, versionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list screening questions")
	}
	out := make([]*responses.ScreeningQuestionResponse, 0, len(questions))
	for _, question := range questions {
		r, err := responses.NewScreeningQuestionResponse(f, question)
		if err != nil {
			s.metrics.IncrementBuildError(responseTypeQuestion)
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render screening question")
		}
		out = append(out, r)
	}
	s.metrics.IncrementRendered(responseTypeQuestion)
	return out, nil
}

func wrapErr(err error, entity, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, entity+" not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}
