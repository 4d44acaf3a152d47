package pipeline

import (
	"bytes"
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/floorplan/pkg/config"
	"github.com/matzehuels/floorplan/pkg/floor"
	pkgio "github.com/matzehuels/floorplan/pkg/io"
	"github.com/matzehuels/floorplan/pkg/render/paint"
	"github.com/matzehuels/floorplan/pkg/render/scene"
	"github.com/matzehuels/floorplan/pkg/render/surface"
	"github.com/matzehuels/floorplan/pkg/viewport"
)

// Render generates output artifacts for plan in the requested formats.
// The zoom in opts is clamped to the canvas zoom range.
func Render(plan *floor.Plan, canvas config.Canvas, theme paint.Theme, opts Options) (map[string][]byte, error) {
	frame := FrameFor(plan, canvas, opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			svg := surface.NewSVG(canvas.Width, canvas.Height, surface.WithTitle(plan.Name))
			composer(canvas, theme, opts.Seed).Compose(svg, frame)
			data = svg.Bytes()
		case FormatPNG:
			r := surface.NewRaster(canvas.Width, canvas.Height, surface.WithPixelRatio(opts.PixelRatio))
			composer(canvas, theme, opts.Seed).Compose(r, frame)
			data, err = r.PNG()
		case FormatJSON:
			var buf bytes.Buffer
			err = pkgio.WriteJSON(plan, &buf)
			data = buf.Bytes()
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// FrameFor builds the scene frame for plan as seen through opts.
func FrameFor(plan *floor.Plan, canvas config.Canvas, opts Options) scene.Frame {
	vp := viewport.New(canvas)
	vp.Restore(viewport.View{Zoom: opts.Zoom, Pan: floor.Point{X: opts.PanX, Y: opts.PanY}})
	return scene.Frame{
		View:     vp.View(),
		Tables:   plan.ActiveTables(),
		Elements: plan.Elements,
		Selected: opts.Selected,
	}
}

// composer returns a fresh composer so every format sees the same random
// sequence for a given seed.
func composer(canvas config.Canvas, theme paint.Theme, seed uint64) *scene.Composer {
	rng := rand.New(rand.NewPCG(seed, seed))
	return scene.New(canvas, scene.WithTheme(theme), scene.WithRand(rng))
}
