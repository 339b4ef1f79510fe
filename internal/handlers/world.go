package handlers

import (
	"net/http"
	"strconv"

	"pixelfolio.dev/internal/services"
)

// WorldHandler handles world, map and progression endpoints
type WorldHandler struct {
	worldService *services.WorldService
	mapService   *services.MapService
}

// NewWorldHandler creates a new WorldHandler
func NewWorldHandler(ws *services.WorldService, ms *services.MapService) *WorldHandler {
	return &WorldHandler{
		worldService: ws,
		mapService:   ms,
	}
}

// GetWorld handles GET /api/world - returns the world manifest
func (h *WorldHandler) GetWorld(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.worldService.GetWorldResponse())
}

// GetMap handles GET /api/map - returns the full terrain for client-side rendering
func (h *WorldHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.mapService.GetFullMap())
}

// GetProgression handles GET /api/progression?xp=N
func (h *WorldHandler) GetProgression(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("xp")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "Missing xp parameter")
		return
	}

	xp, err := strconv.Atoi(raw)
	if err != nil || xp < 0 {
		respondError(w, http.StatusBadRequest, "Invalid xp parameter")
		return
	}

	respondJSON(w, http.StatusOK, services.DescribeProgress(xp))
}
