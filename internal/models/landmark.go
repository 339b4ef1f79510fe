package models

// Landmark represents a portfolio project placed on the overworld
type Landmark struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tech        []string `json:"tech" yaml:"tech"`
	Link        string   `json:"link,omitempty" yaml:"link"`
	Position    Position `json:"pos" yaml:"pos"`
	Icon        string   `json:"icon" yaml:"icon"` // terminal, rocket, shop
	Achievement string   `json:"achievement,omitempty" yaml:"achievement"`
}

// LandmarkList wraps the array of landmarks
type LandmarkList struct {
	Landmarks []Landmark `json:"landmarks"`
}
