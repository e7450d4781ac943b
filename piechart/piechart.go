// Package piechart generates hand-drawn pie charts.
//
// The chart is a thin layer over the sketch engine: each slice becomes
// a wedge path (two radii joined by an elliptical arc), and every wedge
// is pushed through a sketch.Sketcher so the final chart carries the
// layered hand-drawn look.
package piechart

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/sketch"
)

// defaultPalette colors slices that bring no color of their own.
var defaultPalette = []string{
	"#e64980", "#4dabf7", "#51cf66", "#fcc419", "#9775fa",
	"#ff8787", "#66d9e8", "#a9e34b", "#ffa94d", "#da77f2",
}

// Slice is one wedge of the chart. Value must be positive to be drawn;
// zero and negative values are skipped. An empty Color picks from the
// default palette.
type Slice struct {
	Value float64
	Color string
}

// Chart describes the geometry of one pie chart.
type Chart struct {
	cx, cy, r float64
	sketcher  *sketch.Sketcher
}

// Option configures a Chart.
type Option func(*Chart)

// WithSketcher sets the sketch engine used for the wedges. Without it
// the chart uses a default sketch.NewSketcher().
func WithSketcher(s *sketch.Sketcher) Option {
	return func(c *Chart) {
		c.sketcher = s
	}
}

// New creates a chart centered at (cx, cy) with radius r.
func New(cx, cy, r float64, opts ...Option) *Chart {
	c := &Chart{cx: cx, cy: cy, r: r}
	for _, opt := range opts {
		opt(c)
	}
	if c.sketcher == nil {
		c.sketcher = sketch.NewSketcher()
	}
	return c
}

// Render draws one sketched wedge per positive slice onto r, in slice
// order, starting at twelve o'clock and proceeding clockwise. A chart
// with no positive values draws nothing and returns nil.
func (c *Chart) Render(slices []Slice, r sketch.Renderer) error {
	total := 0.0
	for _, s := range slices {
		if s.Value > 0 {
			total += s.Value
		}
	}
	if total == 0 {
		sketch.Logger().Debug("pie chart has no positive values, skipping")
		return nil
	}

	angle := -math.Pi / 2
	drawn := 0
	for i, s := range slices {
		if s.Value <= 0 {
			continue
		}
		span := s.Value / total * 2 * math.Pi

		color := s.Color
		if color == "" {
			color = defaultPalette[drawn%len(defaultPalette)]
		}

		if err := c.sketcher.Sketch(c.wedgePath(angle, span), sketch.Attrs{"fill": color}, r); err != nil {
			return fmt.Errorf("piechart: slice %d: %w", i, err)
		}
		angle += span
		drawn++
	}
	sketch.Logger().Debug("pie chart rendered", slog.Int("slices", drawn))
	return nil
}

// wedgePath builds the path data for one wedge spanning span radians
// clockwise from the start angle. A wedge covering (nearly) the whole
// circle has no distinct chord to anchor a single arc command, so it is
// emitted as two half-circle arcs instead.
func (c *Chart) wedgePath(start, span float64) string {
	sx := c.cx + c.r*math.Cos(start)
	sy := c.cy + c.r*math.Sin(start)

	var sb strings.Builder
	if span >= 2*math.Pi-1e-9 {
		ox := c.cx - (sx - c.cx)
		oy := c.cy - (sy - c.cy)
		fmt.Fprintf(&sb, "M%s,%s", num(sx), num(sy))
		fmt.Fprintf(&sb, " A%s,%s 0 1 1 %s,%s", num(c.r), num(c.r), num(ox), num(oy))
		fmt.Fprintf(&sb, " A%s,%s 0 1 1 %s,%s", num(c.r), num(c.r), num(sx), num(sy))
		sb.WriteString(" Z")
		return sb.String()
	}

	ex := c.cx + c.r*math.Cos(start+span)
	ey := c.cy + c.r*math.Sin(start+span)
	largeArc := 0
	if span > math.Pi {
		largeArc = 1
	}
	fmt.Fprintf(&sb, "M%s,%s", num(c.cx), num(c.cy))
	fmt.Fprintf(&sb, " L%s,%s", num(sx), num(sy))
	fmt.Fprintf(&sb, " A%s,%s 0 %d 1 %s,%s", num(c.r), num(c.r), largeArc, num(ex), num(ey))
	sb.WriteString(" Z")
	return sb.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
