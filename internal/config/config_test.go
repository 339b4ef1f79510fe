package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelfolio.dev/internal/models"
	"pixelfolio.dev/internal/registry"
)

// clearEnv unsets every variable Load reads; t.Setenv restores them afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_ADDR", "PIXELFOLIO_WORLD", "PIXELFOLIO_LOG_LEVEL",
		"PIXELFOLIO_LOG_FILE", "PIXELFOLIO_MOVE_DELAY", "PIXELFOLIO_WATCH",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "", cfg.WorldPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "pixelfolio.log", cfg.LogFile)
	assert.Equal(t, 60*time.Millisecond, cfg.MoveDelay)
	assert.False(t, cfg.Watch)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("PIXELFOLIO_WORLD", "/tmp/world.yaml")
	t.Setenv("PIXELFOLIO_LOG_LEVEL", "debug")
	t.Setenv("PIXELFOLIO_MOVE_DELAY", "150ms")
	t.Setenv("PIXELFOLIO_WATCH", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "/tmp/world.yaml", cfg.WorldPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 150*time.Millisecond, cfg.MoveDelay)
	assert.True(t, cfg.Watch)
}

func TestLoad_InvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIXELFOLIO_MOVE_DELAY", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("PIXELFOLIO_MOVE_DELAY", "-5ms")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadWorld_Embedded(t *testing.T) {
	world, err := LoadWorld("")
	require.NoError(t, err)

	assert.Equal(t, models.Grid{Cols: 20, Rows: 14}, world.Grid)
	assert.Equal(t, models.Position{X: 2, Y: 2}, world.Spawn)
	assert.Equal(t, models.Position{X: 18, Y: 1}, world.Bonus.Position)
	require.Len(t, world.Landmarks, 3)
	assert.Equal(t, "forest-labs", world.Landmarks[0].ID)
	assert.Equal(t, models.Position{X: 6, Y: 5}, world.Landmarks[0].Position)
	assert.Equal(t, []string{"Next.js", "Stripe"}, world.Landmarks[2].Tech)
	assert.Len(t, world.Terrain.Paths, 3)
	assert.Equal(t, "#89c059", world.Theme.Lime)

	_, err = registry.New(world)
	assert.NoError(t, err, "embedded world must validate")
}

func TestLoadWorld_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.json")
	data := `{
  "grid": {"cols": 5, "rows": 5},
  "spawn": {"x": 0, "y": 0},
  "bonus": {"id": "star", "label": "Star", "pos": {"x": 4, "y": 4}},
  "landmarks": [{"id": "a", "title": "A", "pos": {"x": 2, "y": 2}, "icon": "shop"}],
  "swatches": ["#fff"]
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	reg, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, 5, reg.Cols())
	lm, ok := reg.At(models.Position{X: 2, Y: 2})
	require.True(t, ok)
	assert.Equal(t, "a", lm.ID)
}

func TestLoadWorld_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadWorld(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("grid: {cols: 3, rows: 3}\nsecret: true\n"), 0644))
	_, err = LoadWorld(unknown)
	assert.Error(t, err, "unknown fields are rejected")

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err = LoadWorld(empty)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("grid: {cols: 3, rows: 3}\nswatches: [x]\nbonus: {id: b, pos: {x: 9, y: 9}}\n"), 0644))
	_, err = LoadRegistry(invalid)
	assert.ErrorIs(t, err, registry.ErrOutOfBounds)
}
