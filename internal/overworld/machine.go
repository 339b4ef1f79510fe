// Package overworld implements the exploration state machine: avatar movement with
// edge clamping, first-visit discovery of landmarks, the hidden bonus achievement and
// the landmark dialog selection.
//
// State is a value. Every transition takes the current State and returns the next
// one; the previous value is never modified.
package overworld

import (
	"maps"
	"slices"

	"pixelfolio.dev/internal/models"
	"pixelfolio.dev/internal/registry"
)

// State is the full exploration state of one session
type State struct {
	position    models.Position
	discovered  map[string]bool
	achievement string
	dialog      Dialog
	avatar      models.Avatar
}

// Position returns the avatar cell
func (s State) Position() models.Position { return s.position }

// Discovered reports whether a landmark has been visited
func (s State) Discovered(id string) bool { return s.discovered[id] }

// DiscoveredIDs returns the visited landmark ids in sorted order
func (s State) DiscoveredIDs() []string {
	return slices.Sorted(maps.Keys(s.discovered))
}

// Achievement returns the bonus marker, if it has been earned
func (s State) Achievement() (string, bool) { return s.achievement, s.achievement != "" }

// Dialog returns the active dialog selection
func (s State) Dialog() Dialog { return s.dialog }

// Avatar returns the cosmetic avatar settings
func (s State) Avatar() models.Avatar { return s.avatar }

// Machine applies transitions against a fixed registry
type Machine struct {
	reg *registry.Registry
}

// New creates a Machine for the given registry
func New(reg *registry.Registry) *Machine {
	return &Machine{reg: reg}
}

// Registry returns the registry the machine runs on
func (m *Machine) Registry() *registry.Registry { return m.reg }

// Start returns the initial state: spawn position, nothing discovered, no dialog,
// first swatch with the hat on.
func (m *Machine) Start() State {
	color := ""
	if sw := m.reg.Swatches(); len(sw) > 0 {
		color = sw[0]
	}
	return State{
		position: m.reg.Spawn(),
		avatar:   models.Avatar{Color: color, Hat: true},
	}
}

// Move offsets the avatar one cell and clamps it to the grid, then runs the
// discovery check on the new cell. It returns the awards earned by this move.
func (m *Machine) Move(s State, d Direction) (State, []Award) {
	dx, dy := d.Delta()
	b := m.reg.Bounds()
	s.position = models.Position{
		X: clamp(s.position.X+dx, b.MinX, b.MaxX),
		Y: clamp(s.position.Y+dy, b.MinY, b.MaxY),
	}
	return m.discover(s)
}

// discover grants first-visit awards for the current cell
func (m *Machine) discover(s State) (State, []Award) {
	var awards []Award

	if lm, ok := m.reg.At(s.position); ok && !s.discovered[lm.ID] {
		next := make(map[string]bool, len(s.discovered)+1)
		maps.Copy(next, s.discovered)
		next[lm.ID] = true
		s.discovered = next
		awards = append(awards, Award{Kind: AwardDiscovery, Subject: lm.ID, Amount: DiscoveryXP})
	}

	bonus := m.reg.Bonus()
	if s.position == bonus.Position && s.achievement == "" {
		s.achievement = bonus.ID
		awards = append(awards, Award{Kind: AwardAchievement, Subject: bonus.ID, Amount: AchievementXP})
	}

	return s, awards
}

// Interact opens the dialog for the landmark under the avatar. It is a no-op on
// an empty cell.
func (m *Machine) Interact(s State) State {
	if lm, ok := m.reg.At(s.position); ok {
		s.dialog = DialogFor(lm.ID)
	}
	return s
}

// OpenLandmark opens the dialog for a landmark selected directly, wherever the
// avatar stands. Unknown ids are ignored.
func (m *Machine) OpenLandmark(s State, id string) State {
	if _, ok := m.reg.Landmark(id); ok {
		s.dialog = DialogFor(id)
	}
	return s
}

// CloseDialog clears the dialog selection
func (m *Machine) CloseDialog(s State) State {
	s.dialog = NoDialog()
	return s
}

// SetAvatarColor changes the avatar color to one of the registry swatches.
// Colors outside the swatch list are ignored.
func (m *Machine) SetAvatarColor(s State, color string) State {
	if m.reg.IsSwatch(color) {
		s.avatar.Color = color
	}
	return s
}

// ToggleHat flips the avatar hat
func (m *Machine) ToggleHat(s State) State {
	s.avatar.Hat = !s.avatar.Hat
	return s
}

// Apply dispatches a single command
func (m *Machine) Apply(s State, c Command) (State, []Award) {
	switch c {
	case MoveUp:
		return m.Move(s, Up)
	case MoveDown:
		return m.Move(s, Down)
	case MoveLeft:
		return m.Move(s, Left)
	case MoveRight:
		return m.Move(s, Right)
	case Interact:
		return m.Interact(s), nil
	case CloseDialog:
		return m.CloseDialog(s), nil
	}
	return s, nil
}

// Achievements lists one entry per landmark, in registry order, followed by the
// bonus achievement.
func (m *Machine) Achievements(s State) []Achievement {
	landmarks := m.reg.Landmarks()
	out := make([]Achievement, 0, len(landmarks)+1)
	for _, lm := range landmarks {
		label := lm.Achievement
		if label == "" {
			label = "Discovered " + lm.Title
		}
		out = append(out, Achievement{ID: lm.ID, Label: label, Unlocked: s.discovered[lm.ID]})
	}

	bonus := m.reg.Bonus()
	out = append(out, Achievement{ID: bonus.ID, Label: bonus.Label, Unlocked: s.achievement == bonus.ID})
	return out
}

// clamp limits a value to a range
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
