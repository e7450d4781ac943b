package sketch

// Cubic represents a cubic Bezier segment: anchor P0, control points
// P1 and P2, anchor P3.
type Cubic struct {
	P0, P1, P2, P3 Point
}

// NewCubic creates a new cubic Bezier segment.
func NewCubic(p0, p1, p2, p3 Point) Cubic {
	return Cubic{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Start returns the starting anchor of the segment.
func (c Cubic) Start() Point {
	return c.P0
}

// End returns the ending anchor of the segment.
func (c Cubic) End() Point {
	return c.P3
}

// Eval evaluates the curve at parameter t (0 to 1) by three levels of
// nested linear interpolation (de Casteljau). All higher-level curve
// math in this package goes through Eval so rounding behavior stays
// consistent.
func (c Cubic) Eval(t float64) Point {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	return p012.Lerp(p123, t)
}

// Split cuts the curve into n sub-curves of equal parameter span.
// Sub-curve i covers [i/n, (i+1)/n] of the original. Endpoints are
// evaluated exactly on the curve; the two control points of each
// sub-curve are re-sampled at the thirds of its sub-interval, which is
// an approximation of true de Casteljau re-basing, not an exact
// re-parameterization. Good enough for visual subdivision.
//
// n < 1 is treated as 1.
func (c Cubic) Split(n int) []Cubic {
	if n < 1 {
		n = 1
	}
	out := make([]Cubic, 0, n)
	step := 1.0 / float64(n)
	for i := 0; i < n; i++ {
		t0 := float64(i) * step
		t1 := t0 + step
		out = append(out, Cubic{
			P0: c.Eval(t0),
			P1: c.Eval(t0 + step/3),
			P2: c.Eval(t0 + 2*step/3),
			P3: c.Eval(t1),
		})
	}
	return out
}

// LineCubic converts the straight segment p0-p1 into a degenerate cubic
// with control points at the exact thirds of the segment. The curve is
// geometrically identical to the line, so downstream jitter needs no
// line-specific code path.
func LineCubic(p0, p1 Point) Cubic {
	return Cubic{
		P0: p0,
		P1: third(p0, p1),
		P2: third(p1, p0),
		P3: p1,
	}
}

// third returns the point one third of the way from a to b, computed as
// (2a+b)/3 so the thirds of axis-aligned segments land on the shortest
// decimal representation.
func third(a, b Point) Point {
	return Point{
		X: (2*a.X + b.X) / 3,
		Y: (2*a.Y + b.Y) / 3,
	}
}
