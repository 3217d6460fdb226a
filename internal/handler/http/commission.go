package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/commission"
	"github.com/vitalfit/vitalfit-backend-go/internal/handler/http/response"
)

type CommissionHandler interface {
	CreateTier(w http.ResponseWriter, r *http.Request)
	GetTier(w http.ResponseWriter, r *http.Request)
	ListTiers(w http.ResponseWriter, r *http.Request)
	UpdateTier(w http.ResponseWriter, r *http.Request)
	DeleteTier(w http.ResponseWriter, r *http.Request)
	ResolveByRevenue(w http.ResponseWriter, r *http.Request)
}

type commissionHandlerImpl struct {
	tierService commission.TierService
}

func NewCommissionHandler(tierService commission.TierService) CommissionHandler {
	return &commissionHandlerImpl{tierService: tierService}
}

// CreateTier implements CommissionHandler
func (h *commissionHandlerImpl) CreateTier(w http.ResponseWriter, r *http.Request) {
	var req commission.CreateTierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.tierService.CreateTier(r.Context(), req)
	if err != nil {
		slog.Error("CreateTier service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Commission tier created successfully", result)
}

// GetTier implements CommissionHandler
func (h *commissionHandlerImpl) GetTier(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Tier ID is required", nil)
		return
	}

	result, err := h.tierService.GetTier(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListTiers implements CommissionHandler
func (h *commissionHandlerImpl) ListTiers(w http.ResponseWriter, r *http.Request) {
	filter := commission.TierFilter{
		PositionID: optionalQuery(r, "position_id"),
		CenterID:   optionalQuery(r, "center_id"),
	}
	if v := r.URL.Query().Get("is_active"); v != "" {
		active := v == "true"
		filter.IsActive = &active
	}

	results, err := h.tierService.ListTiers(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateTier implements CommissionHandler
func (h *commissionHandlerImpl) UpdateTier(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Tier ID is required", nil)
		return
	}

	var req commission.UpdateTierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.tierService.UpdateTier(r.Context(), req); err != nil {
		slog.Error("UpdateTier service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Commission tier updated successfully", nil)
}

// DeleteTier implements CommissionHandler
func (h *commissionHandlerImpl) DeleteTier(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Tier ID is required", nil)
		return
	}

	if err := h.tierService.DeleteTier(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Commission tier deleted successfully", nil)
}

// ResolveByRevenue previews which tier a given monthly revenue falls
// into for a position, optionally scoped to a center.
func (h *commissionHandlerImpl) ResolveByRevenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := strconv.ParseInt(r.URL.Query().Get("revenue"), 10, 64)
	if err != nil || revenue < 0 {
		response.BadRequest(w, "Invalid revenue", nil)
		return
	}
	positionID := r.URL.Query().Get("position_id")
	if positionID == "" {
		response.BadRequest(w, "position_id is required", nil)
		return
	}

	q := commission.ResolveTierQuery{
		TotalRevenue: revenue,
		PositionID:   positionID,
		CenterID:     optionalQuery(r, "center_id"),
	}

	result, err := h.tierService.ResolveByRevenue(r.Context(), q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
