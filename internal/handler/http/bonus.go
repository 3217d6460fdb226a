package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/bonus"
	"github.com/vitalfit/vitalfit-backend-go/internal/handler/http/response"
)

type BonusHandler interface {
	CreateRule(w http.ResponseWriter, r *http.Request)
	ListRules(w http.ResponseWriter, r *http.Request)
	UpdateRule(w http.ResponseWriter, r *http.Request)
	DeleteRule(w http.ResponseWriter, r *http.Request)
}

type bonusHandlerImpl struct {
	ruleService bonus.RuleService
}

func NewBonusHandler(ruleService bonus.RuleService) BonusHandler {
	return &bonusHandlerImpl{ruleService: ruleService}
}

// CreateRule implements BonusHandler
func (h *bonusHandlerImpl) CreateRule(w http.ResponseWriter, r *http.Request) {
	var req bonus.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ruleService.CreateRule(r.Context(), req)
	if err != nil {
		slog.Error("CreateRule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus rule created successfully", result)
}

// ListRules implements BonusHandler
func (h *bonusHandlerImpl) ListRules(w http.ResponseWriter, r *http.Request) {
	results, err := h.ruleService.ListRules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateRule implements BonusHandler
func (h *bonusHandlerImpl) UpdateRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Rule ID is required", nil)
		return
	}

	var req bonus.UpdateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.ruleService.UpdateRule(r.Context(), req); err != nil {
		slog.Error("UpdateRule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus rule updated successfully", nil)
}

// DeleteRule implements BonusHandler
func (h *bonusHandlerImpl) DeleteRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Rule ID is required", nil)
		return
	}

	if err := h.ruleService.DeleteRule(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus rule deleted successfully", nil)
}
