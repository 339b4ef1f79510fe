package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pixelfolio.dev/internal/models"
	"pixelfolio.dev/internal/registry"
	"pixelfolio.dev/internal/services"
)

// LandmarkHandler handles landmark endpoints
type LandmarkHandler struct {
	landmarkService *services.LandmarkService
}

// NewLandmarkHandler creates a new LandmarkHandler
func NewLandmarkHandler(ls *services.LandmarkService) *LandmarkHandler {
	return &LandmarkHandler{landmarkService: ls}
}

// ListLandmarks handles GET /api/landmarks
func (h *LandmarkHandler) ListLandmarks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.LandmarkList{Landmarks: h.landmarkService.GetAll()})
}

// GetLandmark handles GET /api/landmarks/{id}
func (h *LandmarkHandler) GetLandmark(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	landmark, err := h.landmarkService.GetByID(id)
	if errors.Is(err, registry.ErrLandmarkNotFound) {
		respondError(w, http.StatusNotFound, "Landmark not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, landmark)
}
