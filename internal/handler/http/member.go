package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/member"
	"github.com/vitalfit/vitalfit-backend-go/internal/handler/http/response"
)

type MemberHandler interface {
	CreateMember(w http.ResponseWriter, r *http.Request)
	GetMember(w http.ResponseWriter, r *http.Request)
	ListMembers(w http.ResponseWriter, r *http.Request)
	UpdateMember(w http.ResponseWriter, r *http.Request)
	DeleteMember(w http.ResponseWriter, r *http.Request)
}

type memberHandlerImpl struct {
	memberService member.MemberService
}

func NewMemberHandler(memberService member.MemberService) MemberHandler {
	return &memberHandlerImpl{memberService: memberService}
}

// CreateMember implements MemberHandler
func (h *memberHandlerImpl) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req member.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.memberService.CreateMember(r.Context(), req)
	if err != nil {
		slog.Error("CreateMember service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Member created successfully", result)
}

// GetMember implements MemberHandler
func (h *memberHandlerImpl) GetMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Member ID is required", nil)
		return
	}

	result, err := h.memberService.GetMember(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMembers implements MemberHandler
func (h *memberHandlerImpl) ListMembers(w http.ResponseWriter, r *http.Request) {
	q := member.ListMembersQuery{
		CenterID:  optionalQuery(r, "center_id"),
		TrainerID: optionalQuery(r, "trainer_id"),
		Status:    optionalQuery(r, "status"),
		Search:    optionalQuery(r, "search"),
	}

	results, err := h.memberService.ListMembers(r.Context(), q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateMember implements MemberHandler
func (h *memberHandlerImpl) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Member ID is required", nil)
		return
	}

	var req member.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.memberService.UpdateMember(r.Context(), req); err != nil {
		slog.Error("UpdateMember service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member updated successfully", nil)
}

// DeleteMember implements MemberHandler
func (h *memberHandlerImpl) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Member ID is required", nil)
		return
	}

	if err := h.memberService.DeleteMember(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member deleted successfully", nil)
}
