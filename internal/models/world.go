package models

// World is the static world definition loaded at startup
type World struct {
	Grid      Grid       `json:"grid" yaml:"grid"`
	Spawn     Position   `json:"spawn" yaml:"spawn"`
	Bonus     Bonus      `json:"bonus" yaml:"bonus"`
	Landmarks []Landmark `json:"landmarks" yaml:"landmarks"`
	Terrain   Terrain    `json:"terrain" yaml:"terrain"`
	Theme     Theme      `json:"theme" yaml:"theme"`
	Swatches  []string   `json:"swatches" yaml:"swatches"` // avatar colors
}

// Grid holds the overworld dimensions
type Grid struct {
	Cols int `json:"cols" yaml:"cols"`
	Rows int `json:"rows" yaml:"rows"`
}

// Bonus is the hidden cell that grants a one-time achievement
type Bonus struct {
	ID       string   `json:"id" yaml:"id"`
	Label    string   `json:"label" yaml:"label"`
	Position Position `json:"pos" yaml:"pos"`
}

// Terrain describes the decorative layer of the map
type Terrain struct {
	Paths   []Bounds   `json:"paths" yaml:"paths"`
	Trees   []Position `json:"trees" yaml:"trees"`
	Scatter Scatter    `json:"scatter" yaml:"scatter"`
}

// Scatter controls the seeded flower placement on grass
type Scatter struct {
	Seed    uint64  `json:"seed" yaml:"seed"`
	Density float64 `json:"density" yaml:"density"`
}

// Theme holds color scheme settings
type Theme struct {
	Ink  string `json:"ink" yaml:"ink"`
	Pine string `json:"pine" yaml:"pine"`
	Lime string `json:"lime" yaml:"lime"`
	Mist string `json:"mist" yaml:"mist"`
}

// WorldResponse is the manifest sent to the client
type WorldResponse struct {
	Grid      Grid     `json:"grid"`
	Spawn     Position `json:"spawn"`
	Bonus     Position `json:"bonus"`
	Theme     Theme    `json:"theme"`
	Swatches  []string `json:"swatches"`
	Landmarks int      `json:"landmarks"`
}

// MapResponse is the pre-rendered terrain for client-side drawing
type MapResponse struct {
	Cols  int              `json:"cols"`
	Rows  int              `json:"rows"`
	Tiles [][]RenderedTile `json:"tiles"`
}

// ProgressionResponse describes the level reached at a given experience
type ProgressionResponse struct {
	Experience int    `json:"experience"`
	Level      int    `json:"level"`
	Progress   int    `json:"progress"`
	Label      string `json:"label"`
}
