package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"pixelfolio.dev/internal/logging"
	"pixelfolio.dev/internal/middleware"
	"pixelfolio.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router. The API is a
// read-only catalog of the static world; no session state lives on the server.
func SetupRoutes(worldService *services.WorldService, logger *zap.Logger) http.Handler {
	logger = logging.OrNop(logger)
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	// Initialize services
	landmarkService := services.NewLandmarkService(worldService)
	mapService := services.NewMapService(worldService)

	// Initialize handlers
	worldHandler := NewWorldHandler(worldService, mapService)
	landmarkHandler := NewLandmarkHandler(landmarkService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/world", worldHandler.GetWorld)
		r.Get("/map", worldHandler.GetMap)
		r.Get("/progression", worldHandler.GetProgression)

		r.Get("/landmarks", landmarkHandler.ListLandmarks)
		r.Get("/landmarks/{id}", landmarkHandler.GetLandmark)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
