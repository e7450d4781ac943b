package raster

import "github.com/gogpu/sketch"

// flattenTolerance is the maximum distance the polyline may deviate
// from a curve.
const flattenTolerance = 0.1

// flattenPath converts a normalized path string (M/C/Z commands) into
// flattened subpath polylines. Unknown commands that survived
// normalization verbatim carry no resolvable geometry and are skipped.
func flattenPath(pathData string) []subpath {
	var subs []subpath
	var cur *subpath
	var current sketch.Point

	for _, cmd := range sketch.ParsePath(pathData) {
		switch c := cmd.(type) {
		case sketch.MoveTo:
			subs = append(subs, subpath{points: []sketch.Point{c.To}})
			cur = &subs[len(subs)-1]
			current = c.To

		case sketch.CubicTo:
			if cur == nil {
				subs = append(subs, subpath{points: []sketch.Point{current}})
				cur = &subs[len(subs)-1]
			}
			seg := sketch.Cubic{P0: current, P1: c.C1, P2: c.C2, P3: c.To}
			cur.points = append(cur.points, flattenCubic(seg, flattenTolerance)...)
			current = c.To

		case sketch.Close:
			if cur != nil {
				cur.closed = true
				current = cur.points[0]
			}
			cur = nil
		}
	}
	return subs
}

// flattenCubic approximates a cubic segment with line segments,
// returning the interior and end points (the start point is already in
// the polyline).
func flattenCubic(c sketch.Cubic, tolerance float64) []sketch.Point {
	var points []sketch.Point
	flattenCubicRec(c, tolerance, &points)
	return points
}

// flattenCubicRec recursively subdivides the curve at its midpoint
// until the control points sit within tolerance of the chord.
func flattenCubicRec(c sketch.Cubic, tolerance float64, points *[]sketch.Point) {
	d1 := distanceToLine(c.P1, c.P0, c.P3)
	d2 := distanceToLine(c.P2, c.P0, c.P3)
	if max(d1, d2) < tolerance {
		*points = append(*points, c.P3)
		return
	}

	// De Casteljau subdivision at t=0.5.
	q0 := c.P0.Lerp(c.P1, 0.5)
	q1 := c.P1.Lerp(c.P2, 0.5)
	q2 := c.P2.Lerp(c.P3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubicRec(sketch.Cubic{P0: c.P0, P1: q0, P2: r0, P3: s}, tolerance, points)
	flattenCubicRec(sketch.Cubic{P0: s, P1: r1, P2: q2, P3: c.P3}, tolerance, points)
}

// distanceToLine is the distance from p to the segment a-b.
func distanceToLine(p, a, b sketch.Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
