package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything the game reads at startup
type Config struct {
	Window    WindowConfig `yaml:"window"`
	Map       MapConfig    `yaml:"map"`
	Templates string       `yaml:"templates"`
	Sim       SimConfig    `yaml:"simulation"`
	Log       LogConfig    `yaml:"log"`
}

// WindowConfig describes the game window
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// MapConfig points at the map document and tileset and names the collision layer
type MapConfig struct {
	Path           string `yaml:"path"`
	Tileset        string `yaml:"tileset"`
	CollisionLayer string `yaml:"collision_layer"`
	CollidableKey  string `yaml:"collidable_property"`
}

// SimConfig tunes the per-frame pipeline
type SimConfig struct {
	TicksPerSecond int     `yaml:"ticks_per_second"`
	MaxFrameDelta  float32 `yaml:"max_frame_delta"`
}

// LogConfig selects the logger level and encoding
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Ebiten TMX Collision Playground",
		},
		Map: MapConfig{
			Path:           "resources/dungeon-example/dungeon.tmx",
			Tileset:        "resources/dungeon-example/dungeon_tileset.png",
			CollisionLayer: "Walls",
			CollidableKey:  "collidable",
		},
		Templates: "resources/entities.yaml",
		Sim: SimConfig{
			TicksPerSecond: TicksPerSecond,
			MaxFrameDelta:  MaxFrameDelta,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads a YAML config file over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "open config %s", path)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads YAML from r over the defaults and validates the result
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "decode: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration is usable
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Map.Path == "" {
		return errors.Wrap(ErrInvalidConfig, "map path is empty")
	}
	if c.Map.Tileset == "" {
		return errors.Wrap(ErrInvalidConfig, "tileset path is empty")
	}
	if c.Map.CollisionLayer == "" {
		return errors.Wrap(ErrInvalidConfig, "collision layer name is empty")
	}
	if c.Sim.TicksPerSecond <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "ticks per second %d", c.Sim.TicksPerSecond)
	}
	if c.Sim.MaxFrameDelta <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "max frame delta %v", c.Sim.MaxFrameDelta)
	}
	return nil
}
