// Package render groups the canvas painters.
//
//   - [paint]: theme palette and per-element style resolution
//   - [surface]: the drawing surface interface with SVG, raster and recording backends
//   - [elements]: painters for walls, doors, windows, plants and the other fixtures
//   - [tables]: table painter with seat markers and labels
//   - [scene]: composes grid, elements and tables into one frame
//
// Painters draw in world coordinates. The scene composer applies the viewport
// transform once before painting.
package render
