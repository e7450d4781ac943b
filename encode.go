package sketch

import (
	"strconv"
	"strings"
)

// distortFunc perturbs one emitted coordinate.
type distortFunc func(float64) float64

// pathEncoder writes the normalized output grammar: space-separated
// M/C/Z tokens with absolute coordinates. Every coordinate passes
// through the distort hook on its way out, so jitter applies uniformly
// to anchors and control points regardless of which converter produced
// them.
type pathEncoder struct {
	sb      strings.Builder
	distort distortFunc
}

func newPathEncoder(distort distortFunc) *pathEncoder {
	if distort == nil {
		distort = func(v float64) float64 { return v }
	}
	return &pathEncoder{distort: distort}
}

func (e *pathEncoder) letter(c byte) {
	if e.sb.Len() > 0 {
		e.sb.WriteByte(' ')
	}
	e.sb.WriteByte(c)
}

func (e *pathEncoder) coord(v float64) {
	e.sb.WriteByte(' ')
	e.sb.WriteString(formatCoord(v))
}

// move emits a Move command.
func (e *pathEncoder) move(p Point) {
	e.letter('M')
	e.coord(e.distort(p.X))
	e.coord(e.distort(p.Y))
}

// cubic emits a Cubic command. The segment's P0 stays implicit: in the
// output grammar each curve starts where the previous token sequence
// ended, which keeps the perturbed layers visually connected.
func (e *pathEncoder) cubic(c Cubic) {
	e.letter('C')
	for _, p := range [...]Point{c.P1, c.P2, c.P3} {
		e.coord(e.distort(p.X))
		e.coord(e.distort(p.Y))
	}
}

// close emits a Close command.
func (e *pathEncoder) close() {
	e.letter('Z')
}

// raw emits an unknown command verbatim, bypassing the distort hook.
func (e *pathEncoder) raw(letter byte, params []float64) {
	e.letter(letter)
	for _, v := range params {
		e.coord(v)
	}
}

func (e *pathEncoder) String() string {
	return e.sb.String()
}

// formatCoord renders a coordinate in its shortest round-trip decimal
// form.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
