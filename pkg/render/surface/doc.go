// Package surface defines the 2D drawing surface that floor plan renderers
// paint onto, with three backends:
//
//   - [SVG] builds a standalone SVG document.
//   - [Raster] paints into an RGBA image via github.com/fogleman/gg and encodes PNG.
//   - [Recorder] keeps a list of drawing operations for inspection in tests.
//
// The model follows the immediate-mode canvas found in browsers: a current
// transformation matrix, a current path, and fill/stroke/shadow/font state
// that [Surface.Save] and [Surface.Restore] push and pop together. Path
// coordinates are mapped to device space by the matrix in effect when each
// segment is added; gradients and shadows are resolved when painting.
//
// Transforms are expected to be similarities (translation, rotation and
// uniform scale), which is all the floor plan renderers use.
package surface
