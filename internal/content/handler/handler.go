package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cobalt/internal/content/responses"
	"cobalt/internal/format"
	id "cobalt/pkg/domain"
	"cobalt/pkg/platform/httputil"
	"cobalt/pkg/requestcontext"
	"cobalt/pkg/supplement"
)

type Service interface {
	GetContent(ctx context.Context, f *format.Formatter, contentID id.ContentID, supplements supplement.Set[responses.ContentSupplement]) (*responses.ContentResponse, error)
	ListTagGroups(ctx context.Context, institutionID id.InstitutionID) ([]*responses.TagGroupResponse, error)
	GetTopicCenter(ctx context.Context, f *format.Formatter, topicCenterID id.TopicCenterID) (*responses.TopicCenterResponse, error)
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
	r.Get("/content/{contentId}", h.HandleGetContent)
	r.Get("/institutions/{institutionId}/tag-groups", h.HandleListTagGroups)
	r.Get("/topic-centers/{topicCenterId}", h.HandleGetTopicCenter)
}

type ContentEnvelope struct {
	Content *responses.ContentResponse `json:"content"`
}

type TagGroupsEnvelope struct {
	TagGroups []*responses.TagGroupResponse `json:"tagGroups"`
}

type TopicCenterEnvelope struct {
	TopicCenter *responses.TopicCenterResponse `json:"topicCenter"`
}

func (h *Handler) HandleGetContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	contentID, err := id.ParseContentID(chi.URLParam(r, "contentId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	supplements, err := supplement.Parse(r.URL.Query().Get("supplements"), responses.ContentSupplements...)
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

	content, err := h.service.GetContent(ctx, f, contentID, supplements)
	if err != nil {
		h.logger.ErrorContext(ctx, "get content failed", "error", err, "request_id", requestID, "content_id", contentID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &ContentEnvelope{Content: content})
}

func (h *Handler) HandleListTagGroups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	institutionID, err := id.ParseInstitutionID(chi.URLParam(r, "institutionId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	groups, err := h.service.ListTagGroups(ctx, institutionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list tag groups failed", "error", err, "request_id", requestID, "institution_id", institutionID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &TagGroupsEnvelope{TagGroups: groups})
}

func (h *Handler) HandleGetTopicCenter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	topicCenterID, err := id.ParseTopicCenterID(chi.URLParam(r, "topicCenterId"))
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

	topicCenter, err := h.service.GetTopicCenter(ctx, f, topicCenterID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get topic center failed", "error", err, "request_id", requestID, "topic_center_id", topicCenterID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &TopicCenterEnvelope{TopicCenter: topicCenter})
}
