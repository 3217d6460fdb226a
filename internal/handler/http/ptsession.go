package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/ptsession"
	"github.com/vitalfit/vitalfit-backend-go/internal/handler/http/response"
)

type SessionHandler interface {
	CreateSession(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	ListSessions(w http.ResponseWriter, r *http.Request)
	CountByTrainerMonth(w http.ResponseWriter, r *http.Request)
	DeleteSession(w http.ResponseWriter, r *http.Request)
}

type sessionHandlerImpl struct {
	sessionService ptsession.SessionService
}

func NewSessionHandler(sessionService ptsession.SessionService) SessionHandler {
	return &sessionHandlerImpl{sessionService: sessionService}
}

// CreateSession implements SessionHandler
func (h *sessionHandlerImpl) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req ptsession.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.sessionService.CreateSession(r.Context(), req)
	if err != nil {
		slog.Error("CreateSession service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Session recorded successfully", result)
}

// GetSession implements SessionHandler
func (h *sessionHandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Session ID is required", nil)
		return
	}

	result, err := h.sessionService.GetSession(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSessions implements SessionHandler
func (h *sessionHandlerImpl) ListSessions(w http.ResponseWriter, r *http.Request) {
	q := ptsession.ListSessionsQuery{
		MemberID:  optionalQuery(r, "member_id"),
		TrainerID: optionalQuery(r, "trainer_id"),
		CenterID:  optionalQuery(r, "center_id"),
	}
	if y := r.URL.Query().Get("year"); y != "" {
		if year, err := strconv.Atoi(y); err == nil {
			q.Year = year
		}
	}
	if m := r.URL.Query().Get("month"); m != "" {
		if month, err := strconv.Atoi(m); err == nil {
			q.Month = month
		}
	}

	results, err := h.sessionService.ListSessions(r.Context(), q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CountByTrainerMonth implements SessionHandler
func (h *sessionHandlerImpl) CountByTrainerMonth(w http.ResponseWriter, r *http.Request) {
	trainerID := chi.URLParam(r, "trainerID")
	year, month, ok := periodFromURL(w, r)
	if !ok {
		return
	}

	counts, err := h.sessionService.CountByTrainerMonth(r.Context(), trainerID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, counts)
}

// DeleteSession implements SessionHandler
func (h *sessionHandlerImpl) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Session ID is required", nil)
		return
	}

	if err := h.sessionService.DeleteSession(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Session deleted successfully", nil)
}
