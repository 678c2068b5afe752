// Package service loads accounts and renders them for the requesting viewer.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"cobalt/internal/account/models"
	"cobalt/internal/account/responses"
	"cobalt/internal/audit"
	"cobalt/internal/format"
	"cobalt/internal/platform/config"
	"cobalt/internal/platform/metrics"
	"cobalt/internal/platform/tracer"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/platform/middleware/device"
	"cobalt/pkg/requestcontext"
	"cobalt/pkg/supplement"
)

type AccountStore interface {
	FindByID(ctx context.Context, accountID id.AccountID) (*models.Account, error)
}

type AddressStore interface {
	FindActiveAddress(ctx context.Context, accountID id.AccountID) (*models.Address, error)
}

type AccountSourceStore interface {
	ListAccountSources(ctx context.Context, institutionID id.InstitutionID) ([]*models.AccountSource, error)
}

type ClientDeviceStore interface {
	Upsert(ctx context.Context, device *models.ClientDevice) (*models.ClientDevice, error)
	AddPushToken(ctx context.Context, token models.ClientDevicePushToken) error
	AddActivity(ctx context.Context, activity models.ClientDeviceActivity) error
	PushTokens(ctx context.Context, deviceID id.ClientDeviceID) ([]models.ClientDevicePushToken, error)
	Activities(ctx context.Context, deviceID id.ClientDeviceID) ([]models.ClientDeviceActivity, error)
}

// InstitutionReader answers the one institution question account rendering needs.
type InstitutionReader interface {
	IntegratedCareEnabled(ctx context.Context, institutionID id.InstitutionID) (bool, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

const (
	responseTypeAccount      = "account"
	responseTypeClientDevice = "client_device"

	activityRegistered = "CLIENT_DEVICE_REGISTERED"
)

// Service renders accounts, account sources and client devices.
type Service struct {
	accounts     AccountStore
	addresses    AddressStore
	sources      AccountSourceStore
	devices      ClientDeviceStore
	institutions InstitutionReader
	environment  config.Environment
	audit        AuditPublisher
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

func WithEnvironment(env config.Environment) Option {
	return func(s *Service) {
		s.environment = env
	}
}

func New(accounts AccountStore, addresses AddressStore, sources AccountSourceStore, devices ClientDeviceStore, institutions InstitutionReader, opts ...Option) *Service {
	s := &Service{
		accounts:     accounts,
		addresses:    addresses,
		sources:      sources,
		devices:      devices,
		institutions: institutions,
		logger:       slog.Default(),
		tracer:       tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Environment is the deployment environment account sources are rendered for.
func (s *Service) Environment() config.Environment {
	return s.environment
}

// GetAccount renders an account for the viewer on ctx. Patients may only see their own
// account; staff may see any account in their institution.
func (s *Service) GetAccount(ctx context.Context, f *format.Formatter, accountID id.AccountID, supplements supplement.Set[responses.AccountSupplement]) (*responses.AccountResponse, error) {
	account, err := s.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := authorizeView(ctx, account); err != nil {
		return nil, err
	}
	return s.RenderAccount(ctx, f, account, supplements)
}

// RenderAccount builds the response for an already loaded account and records a PHI
// disclosure when private details are included.
func (s *Service) RenderAccount(ctx context.Context, f *format.Formatter, account *models.Account, supplements supplement.Set[responses.AccountSupplement]) (*responses.AccountResponse, error) {
	r, err := responses.NewAccountResponse(ctx, f, requestcontext.AccountID(ctx), account, s, supplements)
	if err != nil {
		s.metrics.IncrementBuildError(responseTypeAccount)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render account")
	}
	s.metrics.IncrementRendered(responseTypeAccount)

	if reason := r.DisclosureReason(); reason != "" {
		s.recordDisclosure(ctx, account.ID.String(), responseTypeAccount, reason)
	}
	return r, nil
}

// LoadAccount fetches an account without authorization checks, for embedding in other
// responses.
func (s *Service) LoadAccount(ctx context.Context, accountID id.AccountID) (*models.Account, error) {
	return s.loadAccount(ctx, accountID)
}

// RenderAccountByID loads and renders an account embedded in another response. Callers
// authorize the enclosing entity.
func (s *Service) RenderAccountByID(ctx context.Context, f *format.Formatter, accountID id.AccountID) (*responses.AccountResponse, error) {
	account, err := s.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.RenderAccount(ctx, f, account, nil)
}

func (s *Service) loadAccount(ctx context.Context, accountID id.AccountID) (account *models.Account, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanAccountLoad, tracer.String(tracer.AttrAccountID, accountID.String()))
	defer func() { span.End(err) }()

	account, err = s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, wrapAccountErr(err, "failed to load account")
	}
	return account, nil
}

// ActiveAddress implements responses.AccountLookups. No active address is not an error.
func (s *Service) ActiveAddress(ctx context.Context, accountID id.AccountID) (address *models.Address, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanAccountAddress, tracer.String(tracer.AttrAccountID, accountID.String()))
	defer func() { span.End(err) }()

	address, err = s.addresses.FindActiveAddress(ctx, accountID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	return address, err
}

// IntegratedCareEnabled implements responses.AccountLookups.
func (s *Service) IntegratedCareEnabled(ctx context.Context, institutionID id.InstitutionID) (bool, error) {
	return s.institutions.IntegratedCareEnabled(ctx, institutionID)
}

// ListAccountSources renders the institution's visible sign-in options for the configured
// environment.
func (s *Service) ListAccountSources(ctx context.Context, institutionID id.InstitutionID, queryParams map[string]string) (_ []*responses.AccountSourceResponse, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanAccountSources, tracer.String(tracer.AttrInstitutionID, institutionID.String()))
	defer func() { span.End(err) }()

	sources, err := s.sources.ListAccountSources(ctx, institutionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list account sources")
	}
	out := make([]*responses.AccountSourceResponse, 0, len(sources))
	for _, src := range sources {
		if !src.Visible {
			continue
		}
		r, err := responses.NewAccountSourceResponse(src, s.environment, queryParams)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render account source")
		}
		out = append(out, r)
	}
	span.SetAttributes(tracer.Int(tracer.AttrCount, len(out)))
	return out, nil
}

// RegisterClientDevice records the calling device and returns it with its push tokens.
// Request fields take precedence over what the middleware parsed from headers.
func (s *Service) RegisterClientDevice(ctx context.Context, f *format.Formatter, req *models.RegisterClientDeviceRequest) (_ *responses.ClientDeviceResponse, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanClientDeviceRegister)
	defer func() { span.End(err) }()

	info := device.FromContext(ctx)
	now := requestcontext.Now(ctx)
	candidate := &models.ClientDevice{
		ID:                     id.ClientDeviceID(uuid.New()),
		TypeID:                 firstNonEmpty(req.ClientDeviceTypeID, string(info.TypeID), string(device.TypeUnknown)),
		Fingerprint:            firstNonEmpty(req.Fingerprint, info.Fingerprint),
		AppName:                optional(firstNonEmpty(req.AppName, info.AppName)),
		AppVersion:             optional(firstNonEmpty(req.AppVersion, info.AppVersion)),
		OperatingSystemName:    optional(firstNonEmpty(req.OperatingSystemName, info.OperatingSystem)),
		OperatingSystemVersion: optional(firstNonEmpty(req.OperatingSystemVersion, info.OperatingSystemVer)),
		Model:                  optional(firstNonEmpty(req.Model, info.Model)),
		Brand:                  optional(req.Brand),
		Created:                now,
		LastUpdated:            now,
	}
	if candidate.Fingerprint == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "fingerprint is required when the user agent is unknown")
	}

	stored, err := s.devices.Upsert(ctx, candidate)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to register client device")
	}

	if req.PushToken != "" {
		if err := s.devices.AddPushToken(ctx, models.ClientDevicePushToken{
			ClientDeviceID:  stored.ID,
			PushTokenTypeID: req.PushTokenTypeID,
			PushToken:       req.PushToken,
			Created:         now,
		}); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store push token")
		}
	}

	activity := models.ClientDeviceActivity{ClientDeviceID: stored.ID, ClientDeviceActivityID: activityRegistered, Created: now}
	if viewer := requestcontext.AccountID(ctx); !viewer.IsNil() {
		activity.AccountID = &viewer
	}
	if err := s.devices.AddActivity(ctx, activity); err != nil {
		s.logger.WarnContext(ctx, "failed to record client device activity", "error", err, "request_id", requestcontext.RequestID(ctx))
	}

	r, err := responses.NewClientDeviceResponse(ctx, f, stored, s.devices, supplement.Of(responses.SupplementPushTokens))
	if err != nil {
		s.metrics.IncrementBuildError(responseTypeClientDevice)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render client device")
	}
	s.metrics.IncrementRendered(responseTypeClientDevice)
	return r, nil
}

func (s *Service) recordDisclosure(ctx context.Context, subjectID, responseType string, reason audit.Reason) {
	s.metrics.IncrementPHIDisclosure(string(reason))
	if s.audit == nil {
		return
	}
	err := s.audit.Emit(ctx, audit.Event{
		Action:       audit.ActionPHIDisclosed,
		SubjectID:    subjectID,
		ResponseType: responseType,
		Reason:       reason,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event",
			"action", audit.ActionPHIDisclosed,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}

func authorizeView(ctx context.Context, account *models.Account) error {
	viewer := requestcontext.AccountID(ctx)
	if viewer == account.ID {
		return nil
	}
	if !requestcontext.RoleID(ctx).IsStaff() {
		return dErrors.New(dErrors.CodeForbidden, "not allowed to view this account")
	}
	if institution := requestcontext.InstitutionID(ctx); institution != "" && institution != account.InstitutionID {
		return dErrors.New(dErrors.CodeForbidden, "account belongs to another institution")
	}
	return nil
}

func wrapAccountErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "account not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
