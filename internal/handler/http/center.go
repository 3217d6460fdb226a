package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/center"
	"github.com/vitalfit/vitalfit-backend-go/internal/handler/http/response"
)

type CenterHandler interface {
	CreateCenter(w http.ResponseWriter, r *http.Request)
	GetCenter(w http.ResponseWriter, r *http.Request)
	ListCenters(w http.ResponseWriter, r *http.Request)
	UpdateCenter(w http.ResponseWriter, r *http.Request)
	DeleteCenter(w http.ResponseWriter, r *http.Request)
	UploadCenterImage(w http.ResponseWriter, r *http.Request)
	ListCenterImages(w http.ResponseWriter, r *http.Request)
	SetMainCenterImage(w http.ResponseWriter, r *http.Request)
	DeleteCenterImage(w http.ResponseWriter, r *http.Request)
}

type centerHandlerImpl struct {
	centerService center.CenterService
}

func NewCenterHandler(centerService center.CenterService) CenterHandler {
	return &centerHandlerImpl{centerService: centerService}
}

// CreateCenter implements CenterHandler
func (h *centerHandlerImpl) CreateCenter(w http.ResponseWriter, r *http.Request) {
	var req center.CreateCenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.centerService.CreateCenter(r.Context(), req)
	if err != nil {
		slog.Error("CreateCenter service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Center created successfully", result)
}

// GetCenter implements CenterHandler
func (h *centerHandlerImpl) GetCenter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Center ID is required", nil)
		return
	}

	result, err := h.centerService.GetCenter(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListCenters implements CenterHandler. with_counts=true adds trainer
// and member totals per center.
func (h *centerHandlerImpl) ListCenters(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("with_counts") == "true" {
		results, err := h.centerService.ListCentersWithCounts(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, results)
		return
	}

	activeOnly := r.URL.Query().Get("active_only") == "true"
	results, err := h.centerService.ListCenters(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateCenter implements CenterHandler
func (h *centerHandlerImpl) UpdateCenter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Center ID is required", nil)
		return
	}

	var req center.UpdateCenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.centerService.UpdateCenter(r.Context(), req); err != nil {
		slog.Error("UpdateCenter service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Center updated successfully", nil)
}

// DeleteCenter implements CenterHandler
func (h *centerHandlerImpl) DeleteCenter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Center ID is required", nil)
		return
	}

	if err := h.centerService.DeleteCenter(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Center deleted successfully", nil)
}

// UploadCenterImage implements CenterHandler
func (h *centerHandlerImpl) UploadCenterImage(w http.ResponseWriter, r *http.Request) {
	centerID := chi.URLParam(r, "centerID")
	if centerID == "" {
		response.BadRequest(w, "Center ID is required", nil)
		return
	}

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "Image file is required", nil)
		return
	}
	defer file.Close()

	result, err := h.centerService.UploadImage(r.Context(), centerID, file, header)
	if err != nil {
		slog.Error("UploadCenterImage service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Center image uploaded successfully", result)
}

// ListCenterImages implements CenterHandler
func (h *centerHandlerImpl) ListCenterImages(w http.ResponseWriter, r *http.Request) {
	centerID := chi.URLParam(r, "centerID")
	if centerID == "" {
		response.BadRequest(w, "Center ID is required", nil)
		return
	}

	results, err := h.centerService.ListImages(r.Context(), centerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// SetMainCenterImage implements CenterHandler
func (h *centerHandlerImpl) SetMainCenterImage(w http.ResponseWriter, r *http.Request) {
	centerID := chi.URLParam(r, "centerID")
	imageID := chi.URLParam(r, "imageID")
	if centerID == "" || imageID == "" {
		response.BadRequest(w, "Center ID and image ID are required", nil)
		return
	}

	if err := h.centerService.SetMainImage(r.Context(), centerID, imageID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Main image updated successfully", nil)
}

// DeleteCenterImage implements CenterHandler
func (h *centerHandlerImpl) DeleteCenterImage(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")
	if imageID == "" {
		response.BadRequest(w, "Image ID is required", nil)
		return
	}

	if err := h.centerService.DeleteImage(r.Context(), imageID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Center image deleted successfully", nil)
}
