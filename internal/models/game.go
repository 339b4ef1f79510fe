package models

// Position represents a coordinate on the overworld grid
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Bounds defines a rectangular area, inclusive on both ends
type Bounds struct {
	MinX int `json:"min_x" yaml:"min_x"`
	MaxX int `json:"max_x" yaml:"max_x"`
	MinY int `json:"min_y" yaml:"min_y"`
	MaxY int `json:"max_y" yaml:"max_y"`
}

// Contains checks if a position is within bounds
func (b Bounds) Contains(p Position) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Avatar holds the cosmetic player settings
type Avatar struct {
	Color string `json:"color"`
	Hat   bool   `json:"hat"`
}

// Snapshot is the read-only view of a session handed to the presentation layer
// after every transition.
type Snapshot struct {
	SessionID   string   `json:"session_id"`
	Position    Position `json:"position"`
	Discovered  []string `json:"discovered"`
	Achievement string   `json:"achievement,omitempty"`
	Dialog      string   `json:"dialog,omitempty"` // landmark id, empty when closed
	Experience  int      `json:"experience"`
	Level       int      `json:"level"`
	Progress    int      `json:"progress"` // percent toward next level
	Avatar      Avatar   `json:"avatar"`
}

// RenderedTile represents a tile as sent to the client
type RenderedTile struct {
	Character string `json:"char"`
	Color     string `json:"color"`
}
