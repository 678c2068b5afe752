package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cobalt/internal/format"
	"cobalt/internal/institution/responses"
	id "cobalt/pkg/domain"
	"cobalt/pkg/platform/httputil"
	"cobalt/pkg/requestcontext"
)

type Service interface {
	GetInstitution(ctx context.Context, f *format.Formatter, institutionID id.InstitutionID) (*responses.InstitutionResponse, error)
	DismissAlert(ctx context.Context, alertID id.AlertID) error
	ListBlurbs(ctx context.Context, institutionID id.InstitutionID) ([]*responses.InstitutionBlurbResponse, error)
	ListResourceGroups(ctx context.Context, institutionID id.InstitutionID) ([]*responses.ResourceGroupResponse, error)
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
	r.Get("/institutions/{institutionId}", h.HandleGetInstitution)
	r.Get("/institutions/{institutionId}/blurbs", h.HandleListBlurbs)
	r.Get("/institutions/{institutionId}/resource-groups", h.HandleListResourceGroups)
	r.Post("/alerts/{alertId}/dismiss", h.HandleDismissAlert)
}

type InstitutionEnvelope struct {
	Institution *responses.InstitutionResponse `json:"institution"`
}

type BlurbsEnvelope struct {
	InstitutionBlurbs []*responses.InstitutionBlurbResponse `json:"institutionBlurbs"`
}

type ResourceGroupsEnvelope struct {
	InstitutionResourceGroups []*responses.ResourceGroupResponse `json:"institutionResourceGroups"`
}

// HandleGetInstitution returns the institution configuration the web app boots with.
func (h *Handler) HandleGetInstitution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	institutionID, err := id.ParseInstitutionID(chi.URLParam(r, "institutionId"))
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

	institution, err := h.service.GetInstitution(ctx, f, institutionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get institution failed", "error", err, "request_id", requestID, "institution_id", institutionID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &InstitutionEnvelope{Institution: institution})
}

func (h *Handler) HandleListBlurbs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	institutionID, err := id.ParseInstitutionID(chi.URLParam(r, "institutionId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	blurbs, err := h.service.ListBlurbs(ctx, institutionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list institution blurbs failed", "error", err, "request_id", requestID, "institution_id", institutionID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &BlurbsEnvelope{InstitutionBlurbs: blurbs})
}

func (h *Handler) HandleListResourceGroups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	institutionID, err := id.ParseInstitutionID(chi.URLParam(r, "institutionId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	groups, err := h.service.ListResourceGroups(ctx, institutionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list resource groups failed", "error", err, "request_id", requestID, "institution_id", institutionID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &ResourceGroupsEnvelope{InstitutionResourceGroups: groups})
}

// HandleDismissAlert hides an alert for the signed-in viewer. Responds 204.
func (h *Handler) HandleDismissAlert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	alertID, err := id.ParseAlertID(chi.URLParam(r, "alertId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.DismissAlert(ctx, alertID); err != nil {
		h.logger.ErrorContext(ctx, "dismiss alert failed", "error", err, "request_id", requestID, "alert_id", alertID)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
