package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/payment"
	"github.com/vitalfit/vitalfit-backend-go/internal/handler/http/response"
)

type PaymentHandler interface {
	CreatePayment(w http.ResponseWriter, r *http.Request)
	ListByTrainerMonth(w http.ResponseWriter, r *http.Request)
	GetCarryover(w http.ResponseWriter, r *http.Request)
	GetTrainerSalary(w http.ResponseWriter, r *http.Request)
	DeletePayment(w http.ResponseWriter, r *http.Request)
}

type paymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &paymentHandlerImpl{paymentService: paymentService}
}

// CreatePayment implements PaymentHandler
func (h *paymentHandlerImpl) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req payment.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.paymentService.CreatePayment(r.Context(), req)
	if err != nil {
		slog.Error("CreatePayment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment recorded successfully", result)
}

// ListByTrainerMonth implements PaymentHandler
func (h *paymentHandlerImpl) ListByTrainerMonth(w http.ResponseWriter, r *http.Request) {
	trainerID := chi.URLParam(r, "trainerID")
	year, month, ok := periodFromURL(w, r)
	if !ok {
		return
	}

	results, err := h.paymentService.ListByTrainerMonth(r.Context(), trainerID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetCarryover implements PaymentHandler
func (h *paymentHandlerImpl) GetCarryover(w http.ResponseWriter, r *http.Request) {
	trainerID := chi.URLParam(r, "trainerID")
	year, month, ok := periodFromURL(w, r)
	if !ok {
		return
	}

	result, err := h.paymentService.GetCarryover(r.Context(), trainerID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTrainerSalary implements PaymentHandler
func (h *paymentHandlerImpl) GetTrainerSalary(w http.ResponseWriter, r *http.Request) {
	trainerID := chi.URLParam(r, "trainerID")
	if trainerID == "" {
		response.BadRequest(w, "Trainer ID is required", nil)
		return
	}

	result, err := h.paymentService.GetTrainerSalary(r.Context(), trainerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeletePayment implements PaymentHandler
func (h *paymentHandlerImpl) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	if err := h.paymentService.DeletePayment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment deleted successfully", nil)
}

// periodFromURL parses the {year}/{month} URL params, writing an error
// response when they are missing or out of range.
func periodFromURL(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 2000 || year > 2100 {
		response.BadRequest(w, "Invalid year", nil)
		return 0, 0, false
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "Invalid month", nil)
		return 0, 0, false
	}
	return year, month, true
}
