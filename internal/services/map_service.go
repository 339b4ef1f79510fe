package services

import (
	"pixelfolio.dev/internal/models"
	"pixelfolio.dev/internal/terrain"
)

// MapService renders the static terrain
type MapService struct {
	source RegistrySource
}

// NewMapService creates a new MapService
func NewMapService(source RegistrySource) *MapService {
	return &MapService{source: source}
}

// GetFullMap returns the pre-rendered terrain for client-side drawing.
// Landmarks, the bonus star and the avatar are overlays and are not included.
func (s *MapService) GetFullMap() *models.MapResponse {
	world := s.source.Registry().World()
	grid := terrain.Build(world)

	return &models.MapResponse{
		Cols:  grid.Width,
		Rows:  grid.Height,
		Tiles: grid.Render(terrain.DefaultPalette(world.Theme)),
	}
}
