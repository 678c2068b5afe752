package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cobalt/internal/account/models"
	"cobalt/internal/account/responses"
	"cobalt/internal/format"
	id "cobalt/pkg/domain"
	"cobalt/pkg/platform/httputil"
	"cobalt/pkg/requestcontext"
	"cobalt/pkg/supplement"
)

// Service renders account views. Returns response DTOs, already localized by f.
type Service interface {
	GetAccount(ctx context.Context, f *format.Formatter, accountID id.AccountID, supplements supplement.Set[responses.AccountSupplement]) (*responses.AccountResponse, error)
	ListAccountSources(ctx context.Context, institutionID id.InstitutionID, queryParams map[string]string) ([]*responses.AccountSourceResponse, error)
	RegisterClientDevice(ctx context.Context, f *format.Formatter, req *models.RegisterClientDeviceRequest) (*responses.ClientDeviceResponse, error)
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
	r.Get("/accounts/{accountId}", h.HandleGetAccount)
	r.Get("/institutions/{institutionId}/account-sources", h.HandleListAccountSources)
	r.Post("/client-devices", h.HandleRegisterClientDevice)
}

type AccountEnvelope struct {
	Account *responses.AccountResponse `json:"account"`
}

type AccountSourcesEnvelope struct {
	AccountSources []*responses.AccountSourceResponse `json:"accountSources"`
}

type ClientDeviceEnvelope struct {
	ClientDevice *responses.ClientDeviceResponse `json:"clientDevice"`
}

// HandleGetAccount returns one account. The supplements query parameter widens the view.
func (h *Handler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	accountID, err := id.ParseAccountID(chi.URLParam(r, "accountId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	supplements, err := supplement.Parse(r.URL.Query().Get("supplements"), responses.AccountSupplements...)
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

	account, err := h.service.GetAccount(ctx, f, accountID, supplements)
	if err != nil {
		h.logger.ErrorContext(ctx, "get account failed", "error", err, "request_id", requestID, "account_id", accountID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &AccountEnvelope{Account: account})
}

// HandleListAccountSources returns the sign-in options for an institution. Any query
// parameters are forwarded onto the SSO URLs.
func (h *Handler) HandleListAccountSources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	institutionID, err := id.ParseInstitutionID(chi.URLParam(r, "institutionId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	params := make(map[string]string)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}

	sources, err := h.service.ListAccountSources(ctx, institutionID, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "list account sources failed", "error", err, "request_id", requestID, "institution_id", institutionID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &AccountSourcesEnvelope{AccountSources: sources})
}

// HandleRegisterClientDevice records the calling device.
func (h *Handler) HandleRegisterClientDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.RegisterClientDeviceRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	f, err := h.formatters.ForRequest(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "build formatter failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	device, err := h.service.RegisterClientDevice(ctx, f, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "register client device failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &ClientDeviceEnvelope{ClientDevice: device})
}
