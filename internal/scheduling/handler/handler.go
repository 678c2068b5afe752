package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cobalt/internal/format"
	"cobalt/internal/scheduling/responses"
	id "cobalt/pkg/domain"
	"cobalt/pkg/platform/httputil"
	"cobalt/pkg/requestcontext"
	"cobalt/pkg/supplement"
)

type Service interface {
	GetProvider(ctx context.Context, f *format.Formatter, providerID id.ProviderID, supplements supplement.Set[responses.ProviderSupplement]) (*responses.ProviderResponse, error)
	GetAppointment(ctx context.Context, f *format.Formatter, appointmentID id.AppointmentID, supplements supplement.Set[responses.AppointmentSupplement]) (*responses.AppointmentResponse, error)
	ListFollowups(ctx context.Context, f *format.Formatter, accountID id.AccountID) ([]*responses.FollowupResponse, error)
	ListLogicalAvailabilities(ctx context.Context, f *format.Formatter, providerID id.ProviderID) ([]*responses.LogicalAvailabilityResponse, error)
	ListReservations(ctx context.Context, f *format.Formatter, groupSessionID id.GroupSessionID) ([]*responses.GroupSessionReservationResponse, error)
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
	r.Get("/appointments/{appointmentId}", h.HandleGetAppointment)
	r.Get("/providers/{providerId}", h.HandleGetProvider)
	r.Get("/providers/{providerId}/logical-availabilities", h.HandleListLogicalAvailabilities)
	r.Get("/accounts/{accountId}/followups", h.HandleListFollowups)
	r.Get("/group-sessions/{groupSessionId}/reservations", h.HandleListReservations)
}

type AppointmentEnvelope struct {
	Appointment *responses.AppointmentResponse `json:"appointment"`
}

type ProviderEnvelope struct {
	Provider *responses.ProviderResponse `json:"provider"`
}

type LogicalAvailabilitiesEnvelope struct {
	LogicalAvailabilities []*responses.LogicalAvailabilityResponse `json:"logicalAvailabilities"`
}

type FollowupsEnvelope struct {
	Followups []*responses.FollowupResponse `json:"followups"`
}

type ReservationsEnvelope struct {
	GroupSessionReservations []*responses.GroupSessionReservationResponse `json:"groupSessionReservations"`
}

var providerSupplements = []responses.ProviderSupplement{
	responses.ProviderSupplementEverything,
	responses.ProviderSupplementSupportRoles,
}

// formatter builds the request formatter, writing the error response when it cannot.
func (h *Handler) formatter(ctx context.Context, w http.ResponseWriter) (*format.Formatter, bool) {
	f, err := h.formatters.ForRequest(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "build formatter failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return nil, false
	}
	return f, true
}

func (h *Handler) HandleGetAppointment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	appointmentID, err := id.ParseAppointmentID(chi.URLParam(r, "appointmentId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	supplements, err := supplement.Parse(r.URL.Query().Get("supplements"), responses.AppointmentSupplements...)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	f, ok := h.formatter(ctx, w)
	if !ok {
		return
	}

	appointment, err := h.service.GetAppointment(ctx, f, appointmentID, supplements)
	if err != nil {
		h.logger.ErrorContext(ctx, "get appointment failed", "error", err, "request_id", requestcontext.RequestID(ctx), "appointment_id", appointmentID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &AppointmentEnvelope{Appointment: appointment})
}

func (h *Handler) HandleGetProvider(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	providerID, err := id.ParseProviderID(chi.URLParam(r, "providerId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	supplements, err := supplement.Parse(r.URL.Query().Get("supplements"), providerSupplements...)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	f, ok := h.formatter(ctx, w)
	if !ok {
		return
	}

	provider, err := h.service.GetProvider(ctx, f, providerID, supplements)
	if err != nil {
		h.logger.ErrorContext(ctx, "get provider failed", "error", err, "request_id", requestcontext.RequestID(ctx), "provider_id", providerID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &ProviderEnvelope{Provider: provider})
}

func (h *Handler) HandleListLogicalAvailabilities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	providerID, err := id.ParseProviderID(chi.URLParam(r, "providerId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	f, ok := h.formatter(ctx, w)
	if !ok {
		return
	}

	availabilities, err := h.service.ListLogicalAvailabilities(ctx, f, providerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list logical availabilities failed", "error", err, "request_id", requestcontext.RequestID(ctx), "provider_id", providerID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &LogicalAvailabilitiesEnvelope{LogicalAvailabilities: availabilities})
}

func (h *Handler) HandleListFollowups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, err := id.ParseAccountID(chi.URLParam(r, "accountId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	f, ok := h.formatter(ctx, w)
	if !ok {
		return
	}

	followups, err := h.service.ListFollowups(ctx, f, accountID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list followups failed", "error", err, "request_id", requestcontext.RequestID(ctx), "account_id", accountID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &FollowupsEnvelope{Followups: followups})
}

func (h *Handler) HandleListReservations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	groupSessionID, err := id.ParseGroupSessionID(chi.URLParam(r, "groupSessionId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	f, ok := h.formatter(ctx, w)
	if !ok {
		return
	}

	reservations, err := h.service.ListReservations(ctx, f, groupSessionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list reservations failed", "error", err, "request_id", requestcontext.RequestID(ctx), "group_session_id", groupSessionID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &ReservationsEnvelope{GroupSessionReservations: reservations})
}
