package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"pixelfolio.dev/internal/models"
	"pixelfolio.dev/internal/registry"
)

//go:embed data/world.yaml
var defaultWorld []byte

// Config holds all application configuration
type Config struct {
	ServerAddr string        `env:"SERVER_ADDR" envDefault:":8080"`
	WorldPath  string        `env:"PIXELFOLIO_WORLD"` // empty selects the embedded world
	LogLevel   string        `env:"PIXELFOLIO_LOG_LEVEL" envDefault:"info"`
	LogFile    string        `env:"PIXELFOLIO_LOG_FILE" envDefault:"pixelfolio.log"`
	MoveDelay  time.Duration `env:"PIXELFOLIO_MOVE_DELAY" envDefault:"60ms"`
	Watch      bool          `env:"PIXELFOLIO_WATCH" envDefault:"false"`
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.MoveDelay < 0 {
		return nil, fmt.Errorf("PIXELFOLIO_MOVE_DELAY must not be negative, got %s", cfg.MoveDelay)
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadWorld reads a world file. YAML and JSON are both accepted. An empty path
// returns the embedded default world.
func LoadWorld(path string) (models.World, error) {
	if path == "" {
		return DecodeWorld(defaultWorld)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.World{}, fmt.Errorf("failed to read world file: %w", err)
	}

	world, err := DecodeWorld(data)
	if err != nil {
		return models.World{}, fmt.Errorf("%s: %w", path, err)
	}
	return world, nil
}

// DecodeWorld parses a world definition, rejecting unknown fields
func DecodeWorld(data []byte) (models.World, error) {
	var world models.World

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&world); err != nil {
		if errors.Is(err, io.EOF) {
			return models.World{}, errors.New("failed to parse world: empty document")
		}
		return models.World{}, fmt.Errorf("failed to parse world: %w", err)
	}

	return world, nil
}

// LoadRegistry reads and validates a world file in one step
func LoadRegistry(path string) (*registry.Registry, error) {
	world, err := LoadWorld(path)
	if err != nil {
		return nil, err
	}

	reg, err := registry.New(world)
	if err != nil {
		return nil, fmt.Errorf("invalid world: %w", err)
	}
	return reg, nil
}
