package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/settlement"
	"github.com/vitalfit/vitalfit-backend-go/internal/handler/http/response"
)

type SettlementHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	GetSettlement(w http.ResponseWriter, r *http.Request)
	GetByUserPeriod(w http.ResponseWriter, r *http.Request)
	ListSettlements(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	UpdateNotes(w http.ResponseWriter, r *http.Request)
	DeleteSettlement(w http.ResponseWriter, r *http.Request)
	CalculateBonus(w http.ResponseWriter, r *http.Request)
}

type settlementHandlerImpl struct {
	settlementService settlement.SettlementService
}

func NewSettlementHandler(settlementService settlement.SettlementService) SettlementHandler {
	return &settlementHandlerImpl{settlementService: settlementService}
}

// Generate implements SettlementHandler
func (h *settlementHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req settlement.GenerateSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settlementService.Generate(r.Context(), req)
	if err != nil {
		slog.Error("Generate settlement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Settlement generated successfully", result)
}

// GetSettlement implements SettlementHandler
func (h *settlementHandlerImpl) GetSettlement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Settlement ID is required", nil)
		return
	}

	result, err := h.settlementService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetByUserPeriod implements SettlementHandler
func (h *settlementHandlerImpl) GetByUserPeriod(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	year, month, ok := periodFromURL(w, r)
	if !ok {
		return
	}

	result, err := h.settlementService.GetByUserPeriod(r.Context(), userID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSettlements implements SettlementHandler
func (h *settlementHandlerImpl) ListSettlements(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodFromURL(w, r)
	if !ok {
		return
	}

	q := settlement.ListSettlementsQuery{
		Year:     year,
		Month:    month,
		CenterID: optionalQuery(r, "center_id"),
		UserID:   optionalQuery(r, "user_id"),
		Status:   optionalQuery(r, "status"),
	}

	results, err := h.settlementService.List(r.Context(), q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateStatus implements SettlementHandler
func (h *settlementHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Settlement ID is required", nil)
		return
	}

	var req settlement.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.settlementService.UpdateStatus(r.Context(), req); err != nil {
		slog.Error("UpdateStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settlement status updated successfully", nil)
}

// UpdateNotes implements SettlementHandler
func (h *settlementHandlerImpl) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Settlement ID is required", nil)
		return
	}

	var req settlement.UpdateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.settlementService.UpdateNotes(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settlement notes updated successfully", nil)
}

// DeleteSettlement implements SettlementHandler
func (h *settlementHandlerImpl) DeleteSettlement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Settlement ID is required", nil)
		return
	}

	if err := h.settlementService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settlement deleted successfully", nil)
}

// CalculateBonus previews the bonus evaluation for a trainer and month
// without writing anything.
func (h *settlementHandlerImpl) CalculateBonus(w http.ResponseWriter, r *http.Request) {
	trainerID := chi.URLParam(r, "trainerID")
	year, month, ok := periodFromURL(w, r)
	if !ok {
		return
	}

	result, err := h.settlementService.CalculateBonus(r.Context(), trainerID, year, month)
	if err != nil {
		slog.Error("CalculateBonus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
