// Package fonts provides the label font for raster rendering.
//
// The Go Regular typeface ships with golang.org/x/image, so faces are
// available without external files. Faces are cached per size.
package fonts

import (
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the CSS font-family used for labels in SVG output.
const FontFamily = "Go, 'Helvetica Neue', Arial, sans-serif"

var (
	parsed    *opentype.Font
	parseErr  error
	parseOnce sync.Once
	faceCache sync.Map // map[float64]font.Face
	minFontPx = 1.0
)

func regular() (*opentype.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = opentype.Parse(goregular.TTF)
	})
	return parsed, parseErr
}

// Face returns the regular face at size pixels. Sizes are rounded to a
// quarter pixel so that zoomed rendering reuses faces.
func Face(size float64) (font.Face, error) {
	size = math.Max(minFontPx, math.Round(size*4)/4)
	if f, ok := faceCache.Load(size); ok {
		return f.(font.Face), nil
	}
	f, err := regular()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	actual, _ := faceCache.LoadOrStore(size, face)
	return actual.(font.Face), nil
}
