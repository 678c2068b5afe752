// Package service renders study check-ins and issues upload URLs to enrolled accounts.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cobalt/internal/audit"
	"cobalt/internal/format"
	"cobalt/internal/platform/metrics"
	"cobalt/internal/platform/storage"
	"cobalt/internal/platform/tracer"
	"cobalt/internal/sentinel"
	"cobalt/internal/study/models"
	"cobalt/internal/study/responses"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/requestcontext"
)

type EnrollmentStore interface {
	FindAccountStudy(ctx context.Context, accountID id.AccountID, studyID id.StudyID) (*models.AccountStudy, error)
}

type CheckInStore interface {
	ListCheckIns(ctx context.Context, accountID id.AccountID, studyID id.StudyID) ([]*models.AccountCheckIn, error)
	FindCheckIn(ctx context.Context, checkInID id.AccountCheckInID) (*models.AccountCheckIn, error)
	ListCheckInActions(ctx context.Context, checkInID id.AccountCheckInID) ([]*models.AccountCheckInAction, error)
	FindCheckInAction(ctx context.Context, actionID id.AccountCheckInActionID) (*models.AccountCheckInAction, error)
}

type FileUploadStore interface {
	SaveFileUpload(ctx context.Context, upload *models.StudyFileUpload) error
}

// Presigner issues direct-to-storage upload URLs.
type Presigner interface {
	PresignPut(ctx context.Context, req storage.PutRequest) (*storage.PresignedUpload, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

const (
	responseTypeCheckIn    = "account_check_in"
	responseTypeFileUpload = "file_upload_result"
)

type Service struct {
	enrollments EnrollmentStore
	checkIns    CheckInStore
	uploads     FileUploadStore
	presigner   Presigner
	audit       AuditPublisher
	metrics     *metrics.Metrics
	tracer      tracer.Tracer
	logger      *slog.Logger
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

func New(enrollments EnrollmentStore, checkIns CheckInStore, uploads FileUploadStore, presigner Presigner, opts ...Option) *Service {
	s := &Service{
		enrollments: enrollments,
		checkIns:    checkIns,
		uploads:     uploads,
		presigner:   presigner,
		logger:      slog.Default(),
		tracer:      tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListCheckIns renders the viewer's check-ins for a study, each with its actions.
func (s *Service) ListCheckIns(ctx context.Context, f *format.Formatter, studyID id.StudyID) (_ []*responses.AccountCheckInResponse, err error) {
	enrollment, err := s.requireEnrollment(ctx, studyID)
	if err != nil {
		return nil, err
	}
	viewer := enrollment.AccountID
	ctx, span := s.tracer.Start(ctx, tracer.SpanStudyCheckIns,
		tracer.String(tracer.AttrStudyID, studyID.String()),
		tracer.String(tracer.AttrAccountID, viewer.String()),
	)
	defer func() { span.End(err) }()

	checkIns, err := s.checkIns.ListCheckIns(ctx, viewer, studyID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list check-ins")
	}
	span.SetAttributes(tracer.Int(tracer.AttrCount, len(checkIns)))

	now := requestcontext.Now(ctx)
	zone := s.accountZone(ctx, enrollment)
	out := make([]*responses.AccountCheckInResponse, 0, len(checkIns))
	for _, checkIn := range checkIns {
		actions, err := s.checkIns.ListCheckInActions(ctx, checkIn.ID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list check-in actions")
		}
		r, err := responses.NewAccountCheckInResponse(f, checkIn, actions, now, zone)
		if err != nil {
			s.metrics.IncrementBuildError(responseTypeCheckIn)
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render check-in")
		}
		out = append(out, r)
	}
	s.metrics.IncrementRendered(responseTypeCheckIn)
	return out, nil
}

// CreateFileUpload records an upload for the viewer and presigns the PUT that stores it.
// When the request names a check-in action, the action must belong to one of the viewer's
// check-ins in the same study.
func (s *Service) CreateFileUpload(ctx context.Context, f *format.Formatter, studyID id.StudyID, req *models.CreateFileUploadRequest) (_ *responses.FileUploadResultResponse, err error) {
	if req == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	enrollment, err := s.requireEnrollment(ctx, studyID)
	if err != nil {
		return nil, err
	}
	viewer := enrollment.AccountID
	ctx, span := s.tracer.Start(ctx, tracer.SpanStudyFileUpload,
		tracer.String(tracer.AttrStudyID, studyID.String()),
		tracer.String(tracer.AttrAccountID, viewer.String()),
	)
	defer func() { span.End(err) }()

	var actionID *id.AccountCheckInActionID
	if req.AccountCheckInActionID != "" {
		parsed, err := id.ParseAccountCheckInActionID(req.AccountCheckInActionID)
		if err != nil {
			return nil, err
		}
		if err := s.authorizeAction(ctx, viewer, studyID, parsed); err != nil {
			return nil, err
		}
		actionID = &parsed
	}

	upload := &models.StudyFileUpload{
		ID:                     id.FileUploadID(uuid.New()),
		StudyID:                studyID,
		AccountID:              viewer,
		AccountCheckInActionID: actionID,
		Filename:               req.Filename,
		ContentType:            req.ContentType,
		FilesizeInBytes:        req.FilesizeInBytes,
		Created:                requestcontext.Now(ctx),
	}
	upload.StorageKey = StorageKey(upload)

	presigned, err := s.presigner.PresignPut(ctx, storage.PutRequest{
		Key:         upload.StorageKey,
		ContentType: upload.ContentType,
		Metadata: map[string]string{
			"account-id":     viewer.String(),
			"study-id":       studyID.String(),
			"file-upload-id": upload.ID.String(),
		},
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to presign upload")
	}
	if err := s.uploads.SaveFileUpload(ctx, upload); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record file upload")
	}

	r, err := responses.NewFileUploadResultResponse(f, upload, presigned)
	if err != nil {
		s.metrics.IncrementBuildError(responseTypeFileUpload)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render file upload")
	}
	s.metrics.IncrementRendered(responseTypeFileUpload)
	s.metrics.IncrementUploadsPresigned()
	s.recordUpload(ctx, upload)
	return r, nil
}

// StorageKey is where an upload lands in the bucket.
func StorageKey(upload *models.StudyFileUpload) string {
	return fmt.Sprintf("studies/%s/accounts/%s/%s/%s", upload.StudyID, upload.AccountID, upload.ID, upload.Filename)
}

func (s *Service) requireEnrollment(ctx context.Context, studyID id.StudyID) (*models.AccountStudy, error) {
	viewer := requestcontext.AccountID(ctx)
	if viewer.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "sign in required")
	}
	enrollment, err := s.enrollments.FindAccountStudy(ctx, viewer, studyID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeForbidden, "not enrolled in this study")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load study enrollment")
	}
	return enrollment, nil
}

// accountZone loads the enrolled account's zone. Nil means the request's zone applies.
func (s *Service) accountZone(ctx context.Context, enrollment *models.AccountStudy) *time.Location {
	if enrollment.TimeZone == "" {
		return nil
	}
	loc, err := time.LoadLocation(enrollment.TimeZone)
	if err != nil {
		s.logger.WarnContext(ctx, "unknown account time zone, using the request zone",
			"time_zone", enrollment.TimeZone,
			"error", err,
		)
		return nil
	}
	return loc
}

func (s *Service) authorizeAction(ctx context.Context, viewer id.AccountID, studyID id.StudyID, actionID id.AccountCheckInActionID) error {
	action, err := s.checkIns.FindCheckInAction(ctx, actionID)
	if err != nil {
		return wrapErr(err, "check-in action", "failed to load check-in action")
	}
	checkIn, err := s.checkIns.FindCheckIn(ctx, action.AccountCheckInID)
	if err != nil {
		return wrapErr(err, "check-in", "failed to load check-in")
	}
	if checkIn.AccountID != viewer || checkIn.StudyID != studyID {
		return dErrors.New(dErrors.CodeForbidden, "check-in action belongs to another account")
	}
	return nil
}

func (s *Service) recordUpload(ctx context.Context, upload *models.StudyFileUpload) {
	if s.audit == nil {
		return
	}
	err := s.audit.Emit(ctx, audit.Event{
		Action:        audit.ActionUploadPresigned,
		SubjectID:     upload.AccountID.String(),
		InstitutionID: requestcontext.InstitutionID(ctx).String(),
		ResponseType:  responseTypeFileUpload,
		Reason:        audit.ReasonSelf,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event",
			"action", audit.ActionUploadPresigned,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
			"file_upload_id", upload.ID.String(),
		)
	}
}

func wrapErr(err error, entity, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, entity+" not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}
