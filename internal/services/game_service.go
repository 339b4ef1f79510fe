package services

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pixelfolio.dev/internal/logging"
	"pixelfolio.dev/internal/models"
	"pixelfolio.dev/internal/overworld"
	"pixelfolio.dev/internal/progression"
	"pixelfolio.dev/internal/registry"
)

// GameService runs one exploration session: it threads the overworld state
// through each command and feeds the resulting awards into the progression
// tracker. It is driven from a single event loop and is not safe for
// concurrent use.
type GameService struct {
	machine *overworld.Machine
	logger  *zap.Logger

	sessionID string
	state     overworld.State
	tracker   progression.Tracker
}

// NewGameService creates a service with a fresh session on the given registry
func NewGameService(reg *registry.Registry, logger *zap.Logger) *GameService {
	s := &GameService{
		machine: overworld.New(reg),
		logger:  logging.OrNop(logger),
	}
	s.Reset()
	return s
}

// Reset discards the current session and starts a new one at the spawn point
func (s *GameService) Reset() models.Snapshot {
	s.sessionID = uuid.NewString()
	s.state = s.machine.Start()
	s.tracker = progression.Tracker{}
	s.logger.Info("session started",
		zap.String("session", s.sessionID),
		zap.Int("x", s.state.Position().X),
		zap.Int("y", s.state.Position().Y))
	return s.Snapshot()
}

// Apply runs a single command and returns the resulting snapshot
func (s *GameService) Apply(cmd overworld.Command) models.Snapshot {
	var awards []overworld.Award
	s.state, awards = s.machine.Apply(s.state, cmd)
	s.grant(awards)

	if cmd == overworld.Interact {
		if id, open := s.state.Dialog().Selected(); open {
			s.logger.Info("dialog opened", zap.String("session", s.sessionID), zap.String("landmark", id))
		}
	}
	return s.Snapshot()
}

// Move moves the avatar one cell
func (s *GameService) Move(d overworld.Direction) models.Snapshot {
	var awards []overworld.Award
	s.state, awards = s.machine.Move(s.state, d)
	s.grant(awards)
	return s.Snapshot()
}

// Interact opens the landmark under the avatar, if any
func (s *GameService) Interact() models.Snapshot {
	return s.Apply(overworld.Interact)
}

// CloseDialog dismisses the open landmark dialog
func (s *GameService) CloseDialog() models.Snapshot {
	return s.Apply(overworld.CloseDialog)
}

// OpenLandmark opens a landmark selected directly from the map or a list
func (s *GameService) OpenLandmark(id string) models.Snapshot {
	s.state = s.machine.OpenLandmark(s.state, id)
	if selected, open := s.state.Dialog().Selected(); open && selected == id {
		s.logger.Info("dialog opened", zap.String("session", s.sessionID), zap.String("landmark", id))
	}
	return s.Snapshot()
}

// CycleColor switches the avatar to the next swatch
func (s *GameService) CycleColor() models.Snapshot {
	swatches := s.machine.Registry().Swatches()
	i := slices.Index(swatches, s.state.Avatar().Color)
	next := swatches[(i+1)%len(swatches)]
	s.state = s.machine.SetAvatarColor(s.state, next)
	return s.Snapshot()
}

// ToggleHat flips the avatar hat
func (s *GameService) ToggleHat() models.Snapshot {
	s.state = s.machine.ToggleHat(s.state)
	return s.Snapshot()
}

// Snapshot returns the read-only view of the session
func (s *GameService) Snapshot() models.Snapshot {
	snap := models.Snapshot{
		SessionID:  s.sessionID,
		Position:   s.state.Position(),
		Discovered: s.state.DiscoveredIDs(),
		Experience: s.tracker.Experience(),
		Level:      s.tracker.Level(),
		Progress:   s.tracker.Progress(),
		Avatar:     s.state.Avatar(),
	}
	if snap.Discovered == nil {
		snap.Discovered = []string{}
	}
	if marker, ok := s.state.Achievement(); ok {
		snap.Achievement = marker
	}
	if id, open := s.state.Dialog().Selected(); open {
		snap.Dialog = id
	}
	return snap
}

// Tracker returns the progression tracker of the session
func (s *GameService) Tracker() progression.Tracker {
	return s.tracker
}

// Achievements returns the achievement panel entries
func (s *GameService) Achievements() []overworld.Achievement {
	return s.machine.Achievements(s.state)
}

// ActiveLandmark returns the landmark shown in the dialog, if one is open
func (s *GameService) ActiveLandmark() (models.Landmark, bool) {
	id, open := s.state.Dialog().Selected()
	if !open {
		return models.Landmark{}, false
	}
	return s.machine.Registry().Landmark(id)
}

// Registry returns the registry the session runs on
func (s *GameService) Registry() *registry.Registry {
	return s.machine.Registry()
}

// grant applies award events to the tracker
func (s *GameService) grant(awards []overworld.Award) {
	for _, a := range awards {
		var leveled bool
		s.tracker, leveled = s.tracker.AddExperience(a.Amount)

		msg := "landmark discovered"
		if a.Kind == overworld.AwardAchievement {
			msg = "achievement unlocked"
		}
		s.logger.Info(msg,
			zap.String("session", s.sessionID),
			zap.String("subject", a.Subject),
			zap.Int("gained", a.Amount),
			zap.Int("xp", s.tracker.Experience()),
			zap.Int("level", s.tracker.Level()))

		if leveled {
			s.logger.Info("level up",
				zap.String("session", s.sessionID),
				zap.Int("level", s.tracker.Level()))
		}
	}
}

// DescribeProgress reports the level, progress and label reached at xp
func DescribeProgress(xp int) *models.ProgressionResponse {
	t := progression.FromExperience(xp)
	return &models.ProgressionResponse{
		Experience: t.Experience(),
		Level:      t.Level(),
		Progress:   t.Progress(),
		Label:      t.Label(),
	}
}
