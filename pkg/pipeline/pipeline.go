// Package pipeline turns floor plan documents into rendered frames.
//
// The pipeline has three stages, each reported to the render hooks in
// [observability]:
//
//  1. Load: read a JSON or TOML plan document
//  2. Compose: paint the scene for one viewport and selection
//  3. Encode: serialise the painted frame as SVG, PNG or JSON
//
// The CLI and the HTTP server both render through a [Runner] so that frames
// are cached the same way everywhere.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, "plan.toml", pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	    Zoom:    1.5,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/errors"
)

const (
	// DefaultSeed seeds the procedural decoration (plant leaves, flames).
	DefaultSeed = uint64(42)

	// DefaultPixelRatio is the PNG device pixel ratio.
	DefaultPixelRatio = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// Options configures one render.
type Options struct {
	Formats    []string `json:"formats,omitempty"`
	Zoom       float64  `json:"zoom,omitempty"`
	PanX       float64  `json:"pan_x,omitempty"`
	PanY       float64  `json:"pan_y,omitempty"`
	Selected   string   `json:"selected,omitempty"`
	Seed       uint64   `json:"seed,omitempty"`
	PixelRatio float64  `json:"pixel_ratio,omitempty"`
	Refresh    bool     `json:"refresh,omitempty"` // bypass cached frames

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// PlanHash is the content hash of the rendered plan.
	PlanHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Tables     int
	Elements   int
	LoadTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the options and fills in zero values.
// The pan offset has no default: zero is the natural origin.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Zoom == 0 {
		o.Zoom = 1
	}
	if o.Zoom < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "zoom must be positive (got %g)", o.Zoom)
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.PixelRatio == 0 {
		o.PixelRatio = DefaultPixelRatio
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return ValidateFormats(o.Formats)
}

// FrameKeyOpts returns cache key options for one format.
func (o *Options) FrameKeyOpts(format, theme string) cache.FrameKeyOpts {
	opts := cache.FrameKeyOpts{
		Format:   format,
		Zoom:     o.Zoom,
		PanX:     o.PanX,
		PanY:     o.PanY,
		Selected: o.Selected,
		Theme:    theme,
		Seed:     o.Seed,
	}
	if format == FormatPNG {
		opts.Scale = o.PixelRatio
	}
	return opts
}
