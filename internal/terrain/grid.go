// Package terrain builds the decorative tile layer of the overworld. Tiles never
// affect movement; they only feed rendering.
package terrain

import "pixelfolio.dev/internal/models"

// Kind identifies a terrain tile
type Kind int

const (
	Grass Kind = iota
	Path
	Flower
	Tree
)

func (k Kind) String() string {
	switch k {
	case Path:
		return "path"
	case Flower:
		return "flower"
	case Tree:
		return "tree"
	}
	return "grass"
}

// Grid represents a 2D tile grid that features render onto
type Grid struct {
	Width, Height int
	Tiles         [][]Kind
}

// NewGrid creates a new grid filled with a default tile
func NewGrid(width, height int, fill Kind) *Grid {
	tiles := make([][]Kind, height)
	for y := 0; y < height; y++ {
		tiles[y] = make([]Kind, width)
		for x := 0; x < width; x++ {
			tiles[y][x] = fill
		}
	}
	return &Grid{Width: width, Height: height, Tiles: tiles}
}

// InBounds checks if a position is within the grid
func (g *Grid) InBounds(p models.Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Set sets a tile at a position; out-of-bounds writes are dropped
func (g *Grid) Set(p models.Position, k Kind) {
	if g.InBounds(p) {
		g.Tiles[p.Y][p.X] = k
	}
}

// Get returns the tile at a position, Grass when out of bounds
func (g *Grid) Get(p models.Position) Kind {
	if g.InBounds(p) {
		return g.Tiles[p.Y][p.X]
	}
	return Grass
}

// Rect fills a rectangular area with a tile
func (g *Grid) Rect(b models.Bounds, k Kind) {
	for y := b.MinY; y <= b.MaxY; y++ {
		for x := b.MinX; x <= b.MaxX; x++ {
			g.Set(models.Position{X: x, Y: y}, k)
		}
	}
}

// ScatterOnTile replaces a fraction of target tiles inside the grid with k.
// The same seed always yields the same layout.
func (g *Grid) ScatterOnTile(target, k Kind, density float64, rng *RNG) {
	if density <= 0 {
		return
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y][x] == target && rng.Float64() < density {
				g.Tiles[y][x] = k
			}
		}
	}
}

// Build lays out the terrain of a world: paths first, then seeded flowers on the
// remaining grass, then trees on top.
func Build(w models.World) *Grid {
	g := NewGrid(w.Grid.Cols, w.Grid.Rows, Grass)

	for _, b := range w.Terrain.Paths {
		g.Rect(b, Path)
	}

	g.ScatterOnTile(Grass, Flower, w.Terrain.Scatter.Density, NewRNG(w.Terrain.Scatter.Seed))

	for _, p := range w.Terrain.Trees {
		g.Set(p, Tree)
	}

	return g
}
