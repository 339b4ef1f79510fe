package services

import (
	"pixelfolio.dev/internal/models"
)

// LandmarkService handles landmark lookups
type LandmarkService struct {
	source RegistrySource
}

// NewLandmarkService creates a new LandmarkService
func NewLandmarkService(source RegistrySource) *LandmarkService {
	return &LandmarkService{source: source}
}

// GetAll returns all landmarks
func (s *LandmarkService) GetAll() []models.Landmark {
	return s.source.Registry().Landmarks()
}

// GetByID returns a specific landmark by ID
func (s *LandmarkService) GetByID(id string) (models.Landmark, error) {
	return s.source.Registry().Get(id)
}
