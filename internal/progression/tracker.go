// Package progression tracks experience and derives the player level from it.
package progression

import "fmt"

// PointsPerLevel is the experience needed to advance one level
const PointsPerLevel = 100

// Tracker is an experience counter. The zero value is a fresh tracker at level 1.
// Level is always derived from experience and never stored.
type Tracker struct {
	experience int
}

// FromExperience returns a tracker holding xp. Negative values are treated as zero.
func FromExperience(xp int) Tracker {
	return Tracker{experience: max(xp, 0)}
}

// AddExperience returns the tracker with amount added and reports whether the
// level went up. Non-positive amounts leave the tracker unchanged.
func (t Tracker) AddExperience(amount int) (Tracker, bool) {
	if amount <= 0 {
		return t, false
	}
	before := t.Level()
	t.experience += amount
	return t, t.Level() > before
}

// Experience returns the accumulated experience
func (t Tracker) Experience() int {
	return t.experience
}

// Level returns 1 + floor(experience / 100)
func (t Tracker) Level() int {
	return LevelFor(t.experience)
}

// Progress returns the percent toward the next level, in [0, 100)
func (t Tracker) Progress() int {
	return t.experience % PointsPerLevel
}

// Label formats the level the way the XP bar shows it, e.g. "LV 02"
func (t Tracker) Label() string {
	return fmt.Sprintf("LV %02d", t.Level())
}

// LevelFor derives the level reached at xp experience
func LevelFor(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return 1 + xp/PointsPerLevel
}
