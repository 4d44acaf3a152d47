// Package elements draws floor plan elements (walls, doors, windows, plants,
// bars, columns, stairs, artwork, carpets and fireplaces) onto a
// [surface.Surface].
//
// Each element is drawn in its own local frame: the surface is translated to
// the element anchor and rotated by the element rotation, and the drawing
// state is restored afterwards. Missing dimensions fall back to per-type
// defaults.
//
// Plants use randomness for stem lean, leaf placement and bush radii. Pass a
// seeded source with [WithRand] for reproducible output.
package elements
