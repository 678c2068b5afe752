package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cobalt/internal/format"
	"cobalt/internal/study/models"
	"cobalt/internal/study/responses"
	id "cobalt/pkg/domain"
	"cobalt/pkg/platform/httputil"
	"cobalt/pkg/requestcontext"
)

type Service interface {
	ListCheckIns(ctx context.Context, f *format.Formatter, studyID id.StudyID) ([]*responses.AccountCheckInResponse, error)
	CreateFileUpload(ctx context.Context, f *format.Formatter, studyID id.StudyID, req *models.CreateFileUploadRequest) (*responses.FileUploadResultResponse, error)
}

type Handler struct {
	service    Service
	formatters *format.Factory
	logger     *slog.Logger
}

func New(service Service, formatters *format.Factory, logger *slog.Logger) *Handler {
	return &Handler{service: service, formatters: formatters, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/studies/{studyId}/check-ins", h.HandleListCheckIns)
	r.Post("/studies/{studyId}/file-uploads", h.HandleCreateFileUpload)
}

type CheckInsEnvelope struct {
	AccountCheckIns []*responses.AccountCheckInResponse `json:"accountCheckIns"`
}

type FileUploadEnvelope struct {
	FileUploadResult *responses.FileUploadResultResponse `json:"fileUploadResult"`
}

func (h *Handler) HandleListCheckIns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	studyID, err := id.ParseStudyID(chi.URLParam(r, "studyId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	f, err := h.formatters.ForRequest(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "build formatter failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	checkIns, err := h.service.ListCheckIns(ctx, f, studyID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list check-ins failed", "error", err, "request_id", requestID, "study_id", studyID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &CheckInsEnvelope{AccountCheckIns: checkIns})
}

// HandleCreateFileUpload issues a presigned URL the client PUTs the file to. Responds 201.
func (h *Handler) HandleCreateFileUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	studyID, err := id.ParseStudyID(chi.URLParam(r, "studyId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.CreateFileUploadRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	f, err := h.formatters.ForRequest(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "build formatter failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.CreateFileUpload(ctx, f, studyID, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "create file upload failed", "error", err, "request_id", requestID, "study_id", studyID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, &FileUploadEnvelope{FileUploadResult: result})
}
