package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"pixelfolio.dev/internal/config"
	"pixelfolio.dev/internal/logging"
	"pixelfolio.dev/internal/models"
	"pixelfolio.dev/internal/registry"
)

// RegistrySource hands out the current registry
type RegistrySource interface {
	Registry() *registry.Registry
}

// WorldService owns the validated world definition and can hot-reload it from
// disk. Readers always see a complete, validated registry.
type WorldService struct {
	path    string
	current atomic.Pointer[registry.Registry]
	logger  *zap.Logger
}

// NewWorldService loads the world at path; an empty path uses the embedded world
func NewWorldService(path string, logger *zap.Logger) (*WorldService, error) {
	ws := &WorldService{
		path:   path,
		logger: logging.OrNop(logger),
	}

	if err := ws.Reload(); err != nil {
		return nil, err
	}

	return ws, nil
}

// NewStaticWorldService wraps an already validated registry; Reload and Watch are no-ops
func NewStaticWorldService(reg *registry.Registry, logger *zap.Logger) *WorldService {
	ws := &WorldService{logger: logging.OrNop(logger)}
	ws.current.Store(reg)
	return ws
}

// Registry returns the current registry
func (ws *WorldService) Registry() *registry.Registry {
	return ws.current.Load()
}

// Reload re-reads and re-validates the world file. On failure the previous
// registry stays in place.
func (ws *WorldService) Reload() error {
	if ws.path == "" && ws.current.Load() != nil {
		return nil
	}

	reg, err := config.LoadRegistry(ws.path)
	if err != nil {
		return fmt.Errorf("failed to load world: %w", err)
	}

	ws.current.Store(reg)
	ws.logger.Info("world loaded",
		zap.String("path", ws.source()),
		zap.Int("landmarks", reg.Len()),
		zap.Int("cols", reg.Cols()),
		zap.Int("rows", reg.Rows()))
	return nil
}

// Watch reloads the world whenever its file changes, until ctx is done.
// It returns immediately when the world is not backed by a file.
func (ws *WorldService) Watch(ctx context.Context) error {
	if ws.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	target := filepath.Clean(ws.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", target, err)
	}
	ws.logger.Info("watching world file", zap.String("path", target))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := ws.Reload(); err != nil {
				ws.logger.Warn("world reload rejected, keeping previous world", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			ws.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// GetWorldResponse returns the world manifest for the client
func (ws *WorldService) GetWorldResponse() *models.WorldResponse {
	reg := ws.Registry()
	return &models.WorldResponse{
		Grid:      models.Grid{Cols: reg.Cols(), Rows: reg.Rows()},
		Spawn:     reg.Spawn(),
		Bonus:     reg.Bonus().Position,
		Theme:     reg.Theme(),
		Swatches:  reg.Swatches(),
		Landmarks: reg.Len(),
	}
}

func (ws *WorldService) source() string {
	if ws.path == "" {
		return "embedded"
	}
	return ws.path
}
