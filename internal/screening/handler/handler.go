package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cobalt/internal/format"
	"cobalt/internal/screening/responses"
	id "cobalt/pkg/domain"
	"cobalt/pkg/platform/httputil"
	"cobalt/pkg/requestcontext"
)

type Service interface {
	GetScreeningFlowVersion(ctx context.Context, f *format.Formatter, versionID id.ScreeningFlowVersionID) (*responses.ScreeningFlowVersionResponse, error)
	GetScreeningSession(ctx context.Context, f *format.Formatter, sessionID id.ScreeningSessionID) (*responses.ScreeningSessionResponse, error)
	ListQuestions(ctx context.Context, f *format.Formatter, versionID id.ScreeningVersionID) ([]*responses.ScreeningQuestionResponse, error)
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
	r.Get("/screening-flow-versions/{screeningFlowVersionId}", h.HandleGetScreeningFlowVersion)
	r.Get("/screening-sessions/{screeningSessionId}", h.HandleGetScreeningSession)
	r.Get("/screening-versions/{screeningVersionId}/questions", h.HandleListQuestions)
}

type ScreeningFlowVersionEnvelope struct {
	ScreeningFlowVersion *responses.ScreeningFlowVersionResponse `json:"screeningFlowVersion"`
}

type ScreeningSessionEnvelope struct {
	ScreeningSession *responses.ScreeningSessionResponse `json:"screeningSession"`
}

type ScreeningQuestionsEnvelope struct {
	ScreeningQuestions []*responses.ScreeningQuestionResponse `json:"screeningQuestions"`
}

func (h *Handler) formatter(ctx context.Context, w http.ResponseWriter) (*format.Formatter, bool) {
	f, err := h.formatters.ForRequest(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "build formatter failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return nil, false
	}
	return f, true
}

// HandleGetScreeningFlowVersion serves the flow version a screening starts from, including
// the sign-in options it requires.
func (h *Handler) HandleGetScreeningFlowVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	versionID, err := id.ParseScreeningFlowVersionID(chi.URLParam(r, "screeningFlowVersionId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	f, ok := h.formatter(ctx, w)
	if !ok {
		return
	}

	version, err := h.service.GetScreeningFlowVersion(ctx, f, versionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get screening flow version failed", "error", err, "request_id", requestcontext.RequestID(ctx), "screening_flow_version_id", versionID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &ScreeningFlowVersionEnvelope{ScreeningFlowVersion: version})
}

func (h *Handler) HandleGetScreeningSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, err := id.ParseScreeningSessionID(chi.URLParam(r, "screeningSessionId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	f, ok := h.formatter(ctx, w)
	if !ok {
		return
	}

	session, err := h.service.GetScreeningSession(ctx, f, sessionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get screening session failed", "error", err, "request_id", requestcontext.RequestID(ctx), "screening_session_id", sessionID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &ScreeningSessionEnvelope{ScreeningSession: session})
}

func (h *Handler) HandleListQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	versionID, err := id.ParseScreeningVersionID(chi.URLParam(r, "screeningVersionId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	f, ok := h.formatter(ctx, w)
	if !ok {
		return
	}

	questions, err := h.service.ListQuestions(ctx, f, versionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list screening questions failed", "error", err, "request_id", requestcontext.RequestID(ctx), "screening_version_id", versionID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &ScreeningQuestionsEnvelope{ScreeningQuestions: questions})
}
