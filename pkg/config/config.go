// Package config holds the immutable canvas configuration shared by the
// viewport, interaction controller and scene composer, plus server settings.
//
// Defaults match the editor's historical constants: a 1200×800 canvas, a 20 unit
// grid, zoom clamped to [0.5, 3.0] in 0.1 steps, restored tables placed at
// (300, 300) and new tables at the canvas centre (600, 400).
//
// # Loading
//
// [Load] starts from [Default], overlays a TOML file when one is given, reads a
// .env file if present, then applies FLOORPLAN_* environment overrides:
//
//	[canvas]
//	grid_size = 25
//	max_zoom = 4.0
//
//	[theme]
//	primary = "#2563eb"
//
//	[server]
//	addr = ":9090"
//	redis_addr = "localhost:6379"
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// Canvas is the fixed geometry and interaction configuration of the editor.
// It is passed by value at construction and never mutated afterwards.
type Canvas struct {
	Width    float64 `toml:"width"`     // logical canvas width (world units)
	Height   float64 `toml:"height"`    // logical canvas height (world units)
	GridSize float64 `toml:"grid_size"` // grid pitch used for drawing and snapping

	MinZoom  float64 `toml:"min_zoom"`
	MaxZoom  float64 `toml:"max_zoom"`
	ZoomStep float64 `toml:"zoom_step"` // delta applied by zoom-in / zoom-out

	RestoreX  float64 `toml:"restore_x"` // position of restored tables
	RestoreY  float64 `toml:"restore_y"`
	NewTableX float64 `toml:"new_table_x"` // default position of added tables
	NewTableY float64 `toml:"new_table_y"`

	// AdaptiveGrid thins grid lines at low zoom and fades them at high zoom.
	AdaptiveGrid bool `toml:"adaptive_grid"`
}

// Server configures the HTTP collaborator.
type Server struct {
	Addr            string `toml:"addr"`
	RedisAddr       string `toml:"redis_addr"`        // empty disables the Redis frame cache
	CacheTTLSeconds int    `toml:"cache_ttl_seconds"` // frame cache entry lifetime
	SavePath        string `toml:"save_path"`         // where Save snapshots are written
}

// Config is the complete configuration document.
type Config struct {
	Canvas Canvas            `toml:"canvas"`
	Theme  map[string]string `toml:"theme"` // theme slot name -> hex colour
	Server Server            `toml:"server"`
}

// Default returns the canonical canvas configuration.
func Default() Canvas {
	return Canvas{
		Width:        1200,
		Height:       800,
		GridSize:     20,
		MinZoom:      0.5,
		MaxZoom:      3.0,
		ZoomStep:     0.1,
		RestoreX:     300,
		RestoreY:     300,
		NewTableX:    600,
		NewTableY:    400,
		AdaptiveGrid: true,
	}
}

// DefaultConfig returns a complete configuration with default canvas and server settings.
func DefaultConfig() *Config {
	return &Config{
		Canvas: Default(),
		Server: Server{
			Addr:            ":8080",
			CacheTTLSeconds: 600,
			SavePath:        "floorplan.snapshot.json",
		},
	}
}

// Validate checks the canvas configuration for internally inconsistent values.
func (c Canvas) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "canvas bounds must be positive (got %gx%g)", c.Width, c.Height)
	case c.GridSize <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "grid size must be positive (got %g)", c.GridSize)
	case c.MinZoom <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "min zoom must be positive (got %g)", c.MinZoom)
	case c.MinZoom > c.MaxZoom:
		return errors.New(errors.ErrCodeInvalidConfig, "min zoom %g exceeds max zoom %g", c.MinZoom, c.MaxZoom)
	case c.ZoomStep <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "zoom step must be positive (got %g)", c.ZoomStep)
	}
	return nil
}

// Load builds a Config from defaults, an optional TOML file, an optional .env
// file and FLOORPLAN_* environment variables, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
		}
	}

	// A missing .env file is the normal case outside development.
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Canvas.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	floats := []struct {
		key string
		dst *float64
	}{
		{"FLOORPLAN_GRID_SIZE", &cfg.Canvas.GridSize},
		{"FLOORPLAN_MIN_ZOOM", &cfg.Canvas.MinZoom},
		{"FLOORPLAN_MAX_ZOOM", &cfg.Canvas.MaxZoom},
	}
	for _, f := range floats {
		v := os.Getenv(f.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid %s", f.key)
		}
		*f.dst = parsed
	}
	cfg.Server.Addr = getEnv("FLOORPLAN_ADDR", cfg.Server.Addr)
	cfg.Server.RedisAddr = getEnv("FLOORPLAN_REDIS_ADDR", cfg.Server.RedisAddr)
	cfg.Server.SavePath = getEnv("FLOORPLAN_SAVE_PATH", cfg.Server.SavePath)
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// String summarises the canvas configuration for debug logging.
func (c Canvas) String() string {
	return fmt.Sprintf("%gx%g grid=%g zoom=[%g,%g]", c.Width, c.Height, c.GridSize, c.MinZoom, c.MaxZoom)
}
