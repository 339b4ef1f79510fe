package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"pixelfolio.dev/internal/models"
	"pixelfolio.dev/internal/services"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	ws, err := services.NewWorldService("", nil)
	require.NoError(t, err)
	return SetupRoutes(ws, zaptest.NewLogger(t))
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	rec := get(t, newRouter(t), "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, rec))
}

func TestGetWorld(t *testing.T) {
	rec := get(t, newRouter(t), "/api/world")
	require.Equal(t, http.StatusOK, rec.Code)

	world := decode[models.WorldResponse](t, rec)
	assert.Equal(t, models.Grid{Cols: 20, Rows: 14}, world.Grid)
	assert.Equal(t, models.Position{X: 2, Y: 2}, world.Spawn)
	assert.Equal(t, models.Position{X: 18, Y: 1}, world.Bonus)
	assert.Equal(t, "#161616", world.Theme.Ink)
	assert.Equal(t, 3, world.Landmarks)
}

func TestListLandmarks(t *testing.T) {
	rec := get(t, newRouter(t), "/api/landmarks")
	require.Equal(t, http.StatusOK, rec.Code)

	list := decode[models.LandmarkList](t, rec)
	require.Len(t, list.Landmarks, 3)
	assert.Equal(t, "rocket-works", list.Landmarks[1].ID)
	assert.Equal(t, []string{"Node", "WebSockets"}, list.Landmarks[1].Tech)
}

func TestGetLandmark(t *testing.T) {
	h := newRouter(t)

	rec := get(t, h, "/api/landmarks/pixel-commerce")
	require.Equal(t, http.StatusOK, rec.Code)
	lm := decode[models.Landmark](t, rec)
	assert.Equal(t, "Pixel Commerce", lm.Title)
	assert.Equal(t, models.Position{X: 3, Y: 12}, lm.Position)
	assert.Equal(t, "shop", lm.Icon)

	rec = get(t, h, "/api/landmarks/atlantis")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Landmark not found", decode[map[string]string](t, rec)["error"])
}

func TestGetMap(t *testing.T) {
	rec := get(t, newRouter(t), "/api/map")
	require.Equal(t, http.StatusOK, rec.Code)

	m := decode[models.MapResponse](t, rec)
	assert.Equal(t, 20, m.Cols)
	require.Len(t, m.Tiles, 14)
	require.Len(t, m.Tiles[0], 20)
	assert.Equal(t, ".", m.Tiles[7][3].Character)
}

func TestGetProgression(t *testing.T) {
	h := newRouter(t)

	rec := get(t, h, "/api/progression?xp=140")
	require.Equal(t, http.StatusOK, rec.Code)
	p := decode[models.ProgressionResponse](t, rec)
	assert.Equal(t, models.ProgressionResponse{Experience: 140, Level: 2, Progress: 40, Label: "LV 02"}, p)

	for _, target := range []string{"/api/progression", "/api/progression?xp=abc", "/api/progression?xp=-10"} {
		rec := get(t, h, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestUnknownRoute(t *testing.T) {
	rec := get(t, newRouter(t), "/api/sessions")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
