package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cobalt/internal/careresource/responses"
	"cobalt/internal/format"
	id "cobalt/pkg/domain"
	"cobalt/pkg/platform/httputil"
	"cobalt/pkg/requestcontext"
)

type Service interface {
	GetCareResource(ctx context.Context, f *format.Formatter, resourceID id.CareResourceID) (*responses.CareResourceResponse, error)
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
	r.Get("/care-resources/{careResourceId}", h.HandleGetCareResource)
}

type CareResourceEnvelope struct {
	CareResource *responses.CareResourceResponse `json:"careResource"`
}

func (h *Handler) HandleGetCareResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	resourceID, err := id.ParseCareResourceID(chi.URLParam(r, "careResourceId"))
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

	resource, err := h.service.GetCareResource(ctx, f, resourceID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get care resource failed", "error", err, "request_id", requestID, "care_resource_id", resourceID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &CareResourceEnvelope{CareResource: resource})
}
