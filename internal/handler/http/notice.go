package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/notice"
	"github.com/vitalfit/vitalfit-backend-go/internal/handler/http/middleware"
	"github.com/vitalfit/vitalfit-backend-go/internal/handler/http/response"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/jwt"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/sse"
)

type NoticeHandler interface {
	CreateNotice(w http.ResponseWriter, r *http.Request)
	GetNotice(w http.ResponseWriter, r *http.Request)
	ListNotices(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	CountUnread(w http.ResponseWriter, r *http.Request)
	DeleteNotice(w http.ResponseWriter, r *http.Request)

	CreateComment(w http.ResponseWriter, r *http.Request)
	ListComments(w http.ResponseWriter, r *http.Request)
	DeleteComment(w http.ResponseWriter, r *http.Request)

	Subscribe(w http.ResponseWriter, r *http.Request)
}

type noticeHandlerImpl struct {
	noticeService notice.NoticeService
	jwtService    jwt.Service
	hub           *sse.Hub
}

func NewNoticeHandler(noticeService notice.NoticeService, jwtService jwt.Service, hub *sse.Hub) NoticeHandler {
	return &noticeHandlerImpl{
		noticeService: noticeService,
		jwtService:    jwtService,
		hub:           hub,
	}
}

// CreateNotice accepts multipart form data so an attachment can ride
// along with the notice fields.
func (h *noticeHandlerImpl) CreateNotice(w http.ResponseWriter, r *http.Request) {
	// Max 10MB for the attachment
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := notice.CreateNoticeRequest{
		SenderID:     middleware.UserID(r.Context()),
		ReceiverType: r.FormValue("receiver_type"),
		Title:        r.FormValue("title"),
		Content:      r.FormValue("content"),
	}
	if raw := r.FormValue("target_center_ids"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.TargetCenterIDs); err != nil {
			response.BadRequest(w, "target_center_ids must be a JSON array", nil)
			return
		}
	}

	var file multipart.File
	var fileHeader *multipart.FileHeader
	if f, fh, err := r.FormFile("attachment"); err == nil {
		file = f
		fileHeader = fh
		defer f.Close()
	}

	result, err := h.noticeService.CreateNotice(r.Context(), req, file, fileHeader)
	if err != nil {
		slog.Error("CreateNotice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Notice created successfully", result)
}

// GetNotice implements NoticeHandler
func (h *noticeHandlerImpl) GetNotice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Notice ID is required", nil)
		return
	}

	result, err := h.noticeService.GetNotice(r.Context(), id, middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListNotices implements NoticeHandler
func (h *noticeHandlerImpl) ListNotices(w http.ResponseWriter, r *http.Request) {
	q := notice.ListNoticesQuery{
		UserID:     middleware.UserID(r.Context()),
		UnreadOnly: r.URL.Query().Get("unread_only") == "true",
		Search:     optionalQuery(r, "search"),
	}

	results, err := h.noticeService.ListNotices(r.Context(), q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// MarkRead implements NoticeHandler
func (h *noticeHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Notice ID is required", nil)
		return
	}

	if err := h.noticeService.MarkRead(r.Context(), id, middleware.UserID(r.Context())); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notice marked as read", nil)
}

// CountUnread implements NoticeHandler
func (h *noticeHandlerImpl) CountUnread(w http.ResponseWriter, r *http.Request) {
	count, err := h.noticeService.CountUnread(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"unread_count": count})
}

// DeleteNotice implements NoticeHandler
func (h *noticeHandlerImpl) DeleteNotice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Notice ID is required", nil)
		return
	}

	if err := h.noticeService.DeleteNotice(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notice deleted successfully", nil)
}

// CreateComment implements NoticeHandler
func (h *noticeHandlerImpl) CreateComment(w http.ResponseWriter, r *http.Request) {
	noticeID := chi.URLParam(r, "id")
	if noticeID == "" {
		response.BadRequest(w, "Notice ID is required", nil)
		return
	}

	var req notice.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.NoticeID = noticeID
	req.UserID = middleware.UserID(r.Context())

	result, err := h.noticeService.CreateComment(r.Context(), req)
	if err != nil {
		slog.Error("CreateComment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Comment created successfully", result)
}

// ListComments implements NoticeHandler
func (h *noticeHandlerImpl) ListComments(w http.ResponseWriter, r *http.Request) {
	noticeID := chi.URLParam(r, "id")
	if noticeID == "" {
		response.BadRequest(w, "Notice ID is required", nil)
		return
	}

	results, err := h.noticeService.ListComments(r.Context(), noticeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteComment implements NoticeHandler
func (h *noticeHandlerImpl) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "commentID")
	if id == "" {
		response.BadRequest(w, "Comment ID is required", nil)
		return
	}

	if err := h.noticeService.DeleteComment(r.Context(), id, middleware.UserID(r.Context())); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Comment deleted successfully", nil)
}

// Subscribe opens the SSE stream. EventSource cannot set headers, so
// the client authenticates with a short-lived token query parameter.
func (h *noticeHandlerImpl) Subscribe(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		response.Unauthorized(w, "Missing stream token")
		return
	}

	userID, err := h.jwtService.ValidateSSEToken(token)
	if err != nil {
		response.Unauthorized(w, "Invalid stream token")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cleanup := h.hub.Subscribe(userID)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {}\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-ch:
			if !open {
				return
			}
			payload, err := json.Marshal(event.Data)
			if err != nil {
				slog.Error("Failed to marshal SSE payload", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, payload)
			flusher.Flush()
		}
	}
}
