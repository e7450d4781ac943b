// Package sketch provides a hand-drawn vector path transformation engine.
//
// # Overview
//
// sketch ingests SVG path data (the M/L/H/V/C/S/Q/T/A/Z mini-language),
// normalizes every drawing command to cubic Bezier form, and applies a
// bounded random perturbation to produce a layered "sketchy" rendering:
// one filled base pass plus several stroked outline passes.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sketch"
//	    "github.com/gogpu/sketch/svg"
//	)
//
//	// Create a sketcher (default jitter 1.2, 3 outline passes)
//	s := sketch.NewSketcher()
//
//	// Hand each jittered layer to a renderer
//	doc := svg.NewDocument(200, 200)
//	s.Sketch("M10,10 L190,10 A40,40 0 0 1 190,90 Z", sketch.Attrs{"fill": "#fca"}, doc)
//
// # Normalization
//
// Every input command is reduced to Move, Cubic, or Close before any
// perturbation happens. Lines become degenerate cubics with control
// points at the exact thirds of the segment, elliptical arcs are
// converted with the standard endpoint-to-center parameterization, and
// quadratic curves are raised to cubic degree. Jitter therefore only
// ever moves Bezier anchors and control points, never raw command
// parameters.
//
// # Renderers
//
// The engine hands finished path strings to a [Renderer]. The svg/
// sub-package writes standalone SVG documents; the raster/ sub-package
// rasterizes layers to PNG. Any type with a Draw method can be plugged
// in.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, except arc x-axis rotation which follows the
//     path grammar and is given in degrees
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
