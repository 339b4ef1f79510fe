package overworld

import "fmt"

// Direction represents the four movement directions
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the x,y offset for moving in this direction
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Dialog is the active detail panel: either nothing or exactly one landmark.
// The zero value is closed.
type Dialog struct {
	landmark string
	open     bool
}

// NoDialog returns a closed dialog
func NoDialog() Dialog { return Dialog{} }

// DialogFor returns a dialog showing the given landmark
func DialogFor(id string) Dialog { return Dialog{landmark: id, open: true} }

// Selected returns the landmark shown, if any
func (d Dialog) Selected() (string, bool) { return d.landmark, d.open }

// IsOpen reports whether a landmark is being shown
func (d Dialog) IsOpen() bool { return d.open }

// AwardKind distinguishes the sources of experience
type AwardKind int

const (
	AwardDiscovery AwardKind = iota
	AwardAchievement
)

func (k AwardKind) String() string {
	if k == AwardAchievement {
		return "achievement"
	}
	return "discovery"
}

// Experience granted per award kind
const (
	DiscoveryXP   = 40
	AchievementXP = 60
)

// Award is an experience-gain event produced by a move
type Award struct {
	Kind    AwardKind
	Subject string // landmark id or bonus id
	Amount  int
}

// Command is a single discrete input to the state machine
type Command int

const (
	MoveUp Command = iota
	MoveDown
	MoveLeft
	MoveRight
	Interact
	CloseDialog
)

// Achievement is one line of the achievements panel
type Achievement struct {
	ID       string
	Label    string
	Unlocked bool
}
