package sketch

import "maps"

// Attrs is the attribute set attached to one drawn layer, keyed by SVG
// presentation attribute name ("fill", "stroke", "stroke-width", ...).
type Attrs map[string]string

// Clone returns a copy of the attribute set. A nil receiver yields an
// empty, writable map.
func (a Attrs) Clone() Attrs {
	c := make(Attrs, len(a)+2)
	maps.Copy(c, a)
	return c
}

// Renderer is the drawing collaborator: it appends one drawn path
// element given a finished path string and its attributes. The sketch
// engine calls Draw once per layer, fill layer first, so strokes
// accumulate over the base fill.
//
// Implementations in this module: svg.Document (SVG text output) and
// raster.Image (PNG rasterization).
type Renderer interface {
	Draw(pathData string, attrs Attrs) error
}
