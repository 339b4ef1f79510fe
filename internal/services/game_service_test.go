package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"pixelfolio.dev/internal/config"
	"pixelfolio.dev/internal/models"
	"pixelfolio.dev/internal/overworld"
	"pixelfolio.dev/internal/registry"
)

func defaultRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := config.LoadRegistry("")
	require.NoError(t, err)
	return reg
}

func moveN(s *GameService, d overworld.Direction, n int) models.Snapshot {
	var snap models.Snapshot
	for i := 0; i < n; i++ {
		snap = s.Move(d)
	}
	return snap
}

func TestGameService_NewSession(t *testing.T) {
	s := NewGameService(defaultRegistry(t), nil)
	snap := s.Snapshot()

	assert.NotEmpty(t, snap.SessionID)
	assert.Equal(t, models.Position{X: 2, Y: 2}, snap.Position)
	assert.Equal(t, []string{}, snap.Discovered)
	assert.Equal(t, 0, snap.Experience)
	assert.Equal(t, 1, snap.Level)
	assert.Empty(t, snap.Dialog)
	assert.Empty(t, snap.Achievement)
}

func TestGameService_ClampAtEdge(t *testing.T) {
	s := NewGameService(defaultRegistry(t), nil)
	snap := moveN(s, overworld.Left, 2)
	assert.Equal(t, models.Position{X: 0, Y: 2}, snap.Position)
}

func TestGameService_FirstDiscovery(t *testing.T) {
	s := NewGameService(defaultRegistry(t), nil)
	moveN(s, overworld.Right, 4)
	snap := moveN(s, overworld.Down, 3)

	assert.Equal(t, models.Position{X: 6, Y: 5}, snap.Position)
	assert.Equal(t, []string{"forest-labs"}, snap.Discovered)
	assert.Equal(t, 40, snap.Experience)
	assert.Equal(t, 1, snap.Level)

	// step off and back: no double award
	s.Move(overworld.Down)
	snap = s.Move(overworld.Up)
	assert.Equal(t, 40, snap.Experience)
}

func TestGameService_LevelTwo(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewGameService(defaultRegistry(t), zap.New(core))

	moveN(s, overworld.Right, 4) // (6,2)
	moveN(s, overworld.Down, 3)  // (6,5) forest-labs
	moveN(s, overworld.Right, 8) // (14,5)
	moveN(s, overworld.Down, 3)  // (14,8) rocket-works
	moveN(s, overworld.Right, 4) // (18,8)
	snap := moveN(s, overworld.Up, 7)

	assert.Equal(t, models.Position{X: 18, Y: 1}, snap.Position)
	assert.Equal(t, "stargazer", snap.Achievement)
	assert.Equal(t, 140, snap.Experience)
	assert.Equal(t, 2, snap.Level)
	assert.Equal(t, 40, snap.Progress)

	assert.Equal(t, 2, logs.FilterMessage("landmark discovered").Len())
	assert.Equal(t, 1, logs.FilterMessage("achievement unlocked").Len())
	levelUps := logs.FilterMessage("level up").All()
	require.Len(t, levelUps, 1)
	assert.Equal(t, int64(2), levelUps[0].ContextMap()["level"])
}

func TestGameService_Dialog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewGameService(defaultRegistry(t), zap.New(core))

	snap := s.Interact()
	assert.Empty(t, snap.Dialog, "nothing to interact with on grass")
	_, open := s.ActiveLandmark()
	assert.False(t, open)

	moveN(s, overworld.Right, 4)
	moveN(s, overworld.Down, 3)
	snap = s.Interact()
	assert.Equal(t, "forest-labs", snap.Dialog)
	lm, open := s.ActiveLandmark()
	require.True(t, open)
	assert.Equal(t, "Forest Labs", lm.Title)
	assert.Equal(t, 1, logs.FilterMessage("dialog opened").Len())

	snap = s.CloseDialog()
	assert.Empty(t, snap.Dialog)

	snap = s.OpenLandmark("pixel-commerce")
	assert.Equal(t, "pixel-commerce", snap.Dialog)
	assert.NotContains(t, snap.Discovered, "pixel-commerce")

	snap = s.OpenLandmark("missing")
	assert.Equal(t, "pixel-commerce", snap.Dialog, "unknown ids leave the dialog alone")
}

func TestGameService_Avatar(t *testing.T) {
	s := NewGameService(defaultRegistry(t), nil)
	swatches := s.Registry().Swatches()

	assert.Equal(t, swatches[0], s.Snapshot().Avatar.Color)
	for i := 1; i <= len(swatches); i++ {
		snap := s.CycleColor()
		assert.Equal(t, swatches[i%len(swatches)], snap.Avatar.Color)
	}

	assert.False(t, s.ToggleHat().Avatar.Hat)
	assert.True(t, s.ToggleHat().Avatar.Hat)
}

func TestGameService_Reset(t *testing.T) {
	s := NewGameService(defaultRegistry(t), nil)
	first := s.Snapshot().SessionID

	moveN(s, overworld.Right, 4)
	moveN(s, overworld.Down, 3)
	require.Equal(t, 40, s.Snapshot().Experience)

	snap := s.Reset()
	assert.NotEqual(t, first, snap.SessionID)
	assert.Equal(t, models.Position{X: 2, Y: 2}, snap.Position)
	assert.Equal(t, 0, snap.Experience)
	assert.Empty(t, snap.Discovered)
	assert.Equal(t, 0, s.Tracker().Experience())
}

func TestGameService_Achievements(t *testing.T) {
	s := NewGameService(defaultRegistry(t), nil)
	moveN(s, overworld.Left, 1)
	moveN(s, overworld.Down, 10) // (1,12)
	moveN(s, overworld.Right, 2) // (3,12) pixel-commerce

	achievements := s.Achievements()
	require.Len(t, achievements, 4)
	assert.Equal(t, "Shopped Pixel Commerce", achievements[2].Label)
	assert.True(t, achievements[2].Unlocked)
	assert.False(t, achievements[0].Unlocked)
	assert.False(t, achievements[3].Unlocked)
}

func TestDescribeProgress(t *testing.T) {
	p := DescribeProgress(140)
	assert.Equal(t, &models.ProgressionResponse{Experience: 140, Level: 2, Progress: 40, Label: "LV 02"}, p)
}
