// Package registry holds the validated, immutable world definition: grid bounds,
// landmarks, bonus cell, terrain and theme. It is built once at load time and never
// mutated afterwards.
package registry

import (
	"errors"
	"fmt"
	"slices"

	"pixelfolio.dev/internal/models"
)

var (
	ErrInvalidGrid         = errors.New("grid must have positive dimensions")
	ErrEmptyID             = errors.New("empty identifier")
	ErrDuplicateID         = errors.New("duplicate landmark id")
	ErrCoordinateCollision = errors.New("landmarks share a coordinate")
	ErrOutOfBounds         = errors.New("coordinate outside grid")
	ErrBonusCollision      = errors.New("bonus coordinate coincides with a landmark")
	ErrNoSwatches          = errors.New("at least one avatar swatch is required")
	ErrLandmarkNotFound    = errors.New("landmark not found")
)

// Registry is a read-only view over a validated world
type Registry struct {
	world models.World
	byID  map[string]int
	byPos map[models.Position]int
}

// New validates the world and builds the lookup indexes. All problems are
// reported together; each wraps one of the package sentinels.
func New(w models.World) (*Registry, error) {
	if err := Validate(w); err != nil {
		return nil, err
	}

	r := &Registry{
		world: cloneWorld(w),
		byID:  make(map[string]int, len(w.Landmarks)),
		byPos: make(map[models.Position]int, len(w.Landmarks)),
	}
	for i, lm := range r.world.Landmarks {
		r.byID[lm.ID] = i
		r.byPos[lm.Position] = i
	}
	return r, nil
}

// Validate checks the registry invariants without building a Registry
func Validate(w models.World) error {
	if w.Grid.Cols <= 0 || w.Grid.Rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, w.Grid.Cols, w.Grid.Rows)
	}

	bounds := gridBounds(w.Grid)
	var errs []error

	if !bounds.Contains(w.Spawn) {
		errs = append(errs, fmt.Errorf("spawn (%d,%d): %w", w.Spawn.X, w.Spawn.Y, ErrOutOfBounds))
	}

	ids := make(map[string]bool, len(w.Landmarks))
	cells := make(map[models.Position]string, len(w.Landmarks))
	for i, lm := range w.Landmarks {
		if lm.ID == "" {
			errs = append(errs, fmt.Errorf("landmark #%d: %w", i, ErrEmptyID))
		} else if ids[lm.ID] {
			errs = append(errs, fmt.Errorf("landmark %q: %w", lm.ID, ErrDuplicateID))
		}
		ids[lm.ID] = true

		if !bounds.Contains(lm.Position) {
			errs = append(errs, fmt.Errorf("landmark %q at (%d,%d): %w", lm.ID, lm.Position.X, lm.Position.Y, ErrOutOfBounds))
		}
		if other, taken := cells[lm.Position]; taken {
			errs = append(errs, fmt.Errorf("landmarks %q and %q at (%d,%d): %w",
				other, lm.ID, lm.Position.X, lm.Position.Y, ErrCoordinateCollision))
		} else {
			cells[lm.Position] = lm.ID
		}
	}

	if w.Bonus.ID == "" {
		errs = append(errs, fmt.Errorf("bonus: %w", ErrEmptyID))
	}
	if !bounds.Contains(w.Bonus.Position) {
		errs = append(errs, fmt.Errorf("bonus at (%d,%d): %w", w.Bonus.Position.X, w.Bonus.Position.Y, ErrOutOfBounds))
	}
	if id, taken := cells[w.Bonus.Position]; taken {
		errs = append(errs, fmt.Errorf("bonus and %q at (%d,%d): %w",
			id, w.Bonus.Position.X, w.Bonus.Position.Y, ErrBonusCollision))
	}

	if len(w.Swatches) == 0 {
		errs = append(errs, ErrNoSwatches)
	}

	return errors.Join(errs...)
}

// Cols returns the grid width
func (r *Registry) Cols() int { return r.world.Grid.Cols }

// Rows returns the grid height
func (r *Registry) Rows() int { return r.world.Grid.Rows }

// Bounds returns the walkable rectangle
func (r *Registry) Bounds() models.Bounds { return gridBounds(r.world.Grid) }

// Spawn returns the starting position of a new session
func (r *Registry) Spawn() models.Position { return r.world.Spawn }

// Bonus returns the hidden achievement cell
func (r *Registry) Bonus() models.Bonus { return r.world.Bonus }

// Theme returns the color scheme
func (r *Registry) Theme() models.Theme { return r.world.Theme }

// Swatches returns the selectable avatar colors
func (r *Registry) Swatches() []string { return slices.Clone(r.world.Swatches) }

// Terrain returns the decorative layer definition
func (r *Registry) Terrain() models.Terrain {
	t := r.world.Terrain
	t.Paths = slices.Clone(t.Paths)
	t.Trees = slices.Clone(t.Trees)
	return t
}

// Landmarks returns all landmarks in registry order
func (r *Registry) Landmarks() []models.Landmark {
	out := make([]models.Landmark, len(r.world.Landmarks))
	for i, lm := range r.world.Landmarks {
		out[i] = cloneLandmark(lm)
	}
	return out
}

// Len returns the number of landmarks
func (r *Registry) Len() int { return len(r.world.Landmarks) }

// Landmark looks up a landmark by id
func (r *Registry) Landmark(id string) (models.Landmark, bool) {
	i, ok := r.byID[id]
	if !ok {
		return models.Landmark{}, false
	}
	return cloneLandmark(r.world.Landmarks[i]), true
}

// Get returns a landmark by id or ErrLandmarkNotFound
func (r *Registry) Get(id string) (models.Landmark, error) {
	lm, ok := r.Landmark(id)
	if !ok {
		return models.Landmark{}, fmt.Errorf("%w: %s", ErrLandmarkNotFound, id)
	}
	return lm, nil
}

// At returns the landmark occupying a cell, if any
func (r *Registry) At(pos models.Position) (models.Landmark, bool) {
	i, ok := r.byPos[pos]
	if !ok {
		return models.Landmark{}, false
	}
	return cloneLandmark(r.world.Landmarks[i]), true
}

// IsSwatch reports whether color is one of the avatar swatches
func (r *Registry) IsSwatch(color string) bool {
	return slices.Contains(r.world.Swatches, color)
}

// World returns a copy of the underlying definition
func (r *Registry) World() models.World { return cloneWorld(r.world) }

func gridBounds(g models.Grid) models.Bounds {
	return models.Bounds{MinX: 0, MaxX: g.Cols - 1, MinY: 0, MaxY: g.Rows - 1}
}

func cloneLandmark(lm models.Landmark) models.Landmark {
	lm.Tech = slices.Clone(lm.Tech)
	return lm
}

func cloneWorld(w models.World) models.World {
	landmarks := make([]models.Landmark, len(w.Landmarks))
	for i, lm := range w.Landmarks {
		landmarks[i] = cloneLandmark(lm)
	}
	w.Landmarks = landmarks
	w.Swatches = slices.Clone(w.Swatches)
	w.Terrain.Paths = slices.Clone(w.Terrain.Paths)
	w.Terrain.Trees = slices.Clone(w.Terrain.Trees)
	return w
}
