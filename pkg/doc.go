// Package pkg provides the libraries behind the floorplan editor.
//
// # Overview
//
// Floorplan draws a restaurant's dining room on a canvas: tables that guests
// are seated at, plus fixtures such as walls, doors, plants and fireplaces.
// Operators drag tables around a snapping grid, zoom the view, and hide
// tables that are not in service. The pkg directory is organized as:
//
//  1. [floor] - Plan model: tables, elements, validation, snapshots
//  2. [config] - Canvas geometry, zoom limits, server settings
//  3. [viewport] and [interaction] - Zoom/pan and pointer dragging
//  4. [render] - Style resolution, element and table painters, scene composer
//  5. [editor] - The interactive session tying the above together
//  6. [pipeline], [cache], [server] - Batch rendering, frame cache, HTTP API
//
// # Architecture
//
// A frame flows through the packages like this:
//
//	plan document (JSON/TOML)
//	         ↓
//	    [io] package (decode)
//	         ↓
//	    [editor] package (viewport + pointer state)
//	         ↓
//	    [render/scene] package (grid, elements by layer, tables)
//	         ↓
//	    [render/surface] SVG or PNG
//
// # Quick Start
//
//	plan, _ := io.ImportFile("terraza.json")
//	ed := editor.New(plan, config.Default())
//
//	ed.PointerDown(floor.Point{X: 205, Y: 150})
//	ed.PointerMove(floor.Point{X: 245, Y: 170})
//	ed.PointerUp()
//
//	svg := surface.NewSVG(1200, 800)
//	ed.Render(svg)
//	os.WriteFile("terraza.svg", svg.Bytes(), 0o644)
//
// # Infrastructure
//
// [cache] stores rendered frames in the filesystem or Redis. [observability]
// exposes hooks for load, compose and HTTP events. [errors] defines the
// error codes the server maps to HTTP statuses.
package pkg
