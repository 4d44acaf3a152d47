// Package paint holds the colours, gradients and shadows used to draw a floor
// plan, plus the theme and the element style resolver.
//
// Colours are kept in HSL with an alpha channel, matching how the palette is
// authored. [Color] implements [image/color.Color] so raster backends can use it
// directly, and [Color.Hex] serves vector backends.
//
// The resolver functions on [Theme] map an element's categorical properties
// (wall material, door type, pot style, frame style, ...) to paints. They are
// pure: the same inputs always give the same paint.
package paint
