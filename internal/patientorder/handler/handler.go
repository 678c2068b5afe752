package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cobalt/internal/format"
	"cobalt/internal/patientorder/responses"
	"cobalt/internal/platform/privacy"
	id "cobalt/pkg/domain"
	"cobalt/pkg/platform/httputil"
	"cobalt/pkg/requestcontext"
	"cobalt/pkg/supplement"
)

type Service interface {
	GetPatientOrder(ctx context.Context, f *format.Formatter, orderID id.PatientOrderID, supplements supplement.Set[responses.PatientOrderSupplement]) (*responses.PatientOrderResponse, error)
	Autocomplete(ctx context.Context, f *format.Formatter, query string) ([]*responses.PatientOrderAutocompleteResultResponse, error)
	ListEncounters(ctx context.Context, f *format.Formatter, orderID id.PatientOrderID) ([]*responses.EncounterResponse, error)
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
	r.Get("/patient-orders/autocomplete", h.HandleAutocomplete)
	r.Get("/patient-orders/{patientOrderId}", h.HandleGetPatientOrder)
	r.Get("/patient-orders/{patientOrderId}/encounters", h.HandleListEncounters)
}

type PatientOrderEnvelope struct {
	PatientOrder *responses.PatientOrderResponse `json:"patientOrder"`
}

type AutocompleteEnvelope struct {
	PatientOrderAutocompleteResults []*responses.PatientOrderAutocompleteResultResponse `json:"patientOrderAutocompleteResults"`
}

type EncountersEnvelope struct {
	Encounters []*responses.EncounterResponse `json:"encounters"`
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

// HandleGetPatientOrder returns one order. Care team viewers may pass supplements=everything
// to embed the patient and the order's activity.
func (h *Handler) HandleGetPatientOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := id.ParsePatientOrderID(chi.URLParam(r, "patientOrderId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	supplements, err := supplement.Parse(r.URL.Query().Get("supplements"), responses.PatientOrderSupplements...)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	f, ok := h.formatter(ctx, w)
	if !ok {
		return
	}

	order, err := h.service.GetPatientOrder(ctx, f, orderID, supplements)
	if err != nil {
		h.logger.ErrorContext(ctx, "get patient order failed", "error", err, "request_id", requestcontext.RequestID(ctx), "patient_order_id", orderID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &PatientOrderEnvelope{PatientOrder: order})
}

func (h *Handler) HandleAutocomplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	f, ok := h.formatter(ctx, w)
	if !ok {
		return
	}

	query := r.URL.Query().Get("searchQuery")
	results, err := h.service.Autocomplete(ctx, f, query)
	if err != nil {
		h.logger.ErrorContext(ctx, "patient order autocomplete failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
			"search_query", privacy.MaskSearchQuery(query),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &AutocompleteEnvelope{PatientOrderAutocompleteResults: results})
}

func (h *Handler) HandleListEncounters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := id.ParsePatientOrderID(chi.URLParam(r, "patientOrderId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	f, ok := h.formatter(ctx, w)
	if !ok {
		return
	}

	encounters, err := h.service.ListEncounters(ctx, f, orderID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list encounters failed", "error", err, "request_id", requestcontext.RequestID(ctx), "patient_order_id", orderID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &EncountersEnvelope{Encounters: encounters})
}
