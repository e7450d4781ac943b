package sketch

import (
	"log/slog"
	"math"
)

// maxArcSweep is the largest angular span covered by a single cubic
// segment when converting an arc. Bounding the sweep to 15 degrees
// keeps the per-segment approximation error visually negligible.
const maxArcSweep = math.Pi / 12

// Arc describes one elliptical arc in endpoint parameterization, the
// form used by the A path command: two endpoints, the ellipse radii,
// the rotation of the ellipse x-axis in degrees, and the two flags
// selecting which of the four candidate arcs to draw.
type Arc struct {
	Start, End Point
	Rx, Ry     float64
	XRotation  float64
	LargeArc   bool
	Sweep      bool
}

// Cubics converts the arc into a sequence of cubic Bezier segments
// whose concatenation approximates the arc from Start to End.
// Consecutive segments share anchors (C0-continuous), segment 0 starts
// at Start and the last segment ends at End.
//
// Degenerate radii (zero or negative) collapse the arc to a straight
// segment, matching how SVG renders such arcs.
func (a Arc) Cubics() []Cubic {
	if a.Rx <= 0 || a.Ry <= 0 {
		return []Cubic{LineCubic(a.Start, a.End)}
	}
	if a.Start == a.End {
		return nil
	}

	phi := a.XRotation * math.Pi / 180
	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)

	// Half-displacement in the rotated frame where the ellipse axes
	// align with X/Y.
	dx2 := (a.Start.X - a.End.X) / 2
	dy2 := (a.Start.Y - a.End.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	rx, ry := correctRadii(math.Abs(a.Rx), math.Abs(a.Ry), x1p, y1p)

	// Center in the rotated frame. The radicand can dip slightly below
	// zero from floating round-off; clamp instead of letting Sqrt
	// produce NaN.
	rxSq, rySq := rx*rx, ry*ry
	x1pSq, y1pSq := x1p*x1p, y1p*y1p
	radicand := (rxSq*rySq - rxSq*y1pSq - rySq*x1pSq) / (rxSq*y1pSq + rySq*x1pSq)
	if radicand < 0 {
		radicand = 0
	}
	coef := math.Sqrt(radicand)
	if a.LargeArc == a.Sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	// Center back in the unrotated frame.
	cx := cosPhi*cxp - sinPhi*cyp + (a.Start.X+a.End.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (a.Start.Y+a.End.Y)/2

	// Start angle and signed sweep between the start and end vectors.
	vx1 := (x1p - cxp) / rx
	vy1 := (y1p - cyp) / ry
	vx2 := (-x1p - cxp) / rx
	vy2 := (-y1p - cyp) / ry
	theta1 := vectorAngle(1, 0, vx1, vy1)
	delta := vectorAngle(vx1, vy1, vx2, vy2)
	if !a.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	if a.Sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta) / maxArcSweep))
	if n < 1 {
		n = 1
	}
	Logger().Debug("arc converted", slog.Int("segments", n), slog.Float64("sweep", delta))

	out := make([]Cubic, 0, n)
	step := delta / float64(n)
	for i := 0; i < n; i++ {
		ta := theta1 + float64(i)*step
		tb := ta + step

		// Tangent length factor for approximating the sub-sweep with
		// one cubic.
		t := 4.0 / 3.0 * math.Tan((tb-ta)/4)

		p0 := ellipsePoint(cx, cy, rx, ry, cosPhi, sinPhi, ta)
		p3 := ellipsePoint(cx, cy, rx, ry, cosPhi, sinPhi, tb)
		d0 := ellipseTangent(rx, ry, cosPhi, sinPhi, ta)
		d3 := ellipseTangent(rx, ry, cosPhi, sinPhi, tb)

		out = append(out, Cubic{
			P0: p0,
			P1: p0.Add(d0.Mul(t)),
			P2: p3.Sub(d3.Mul(t)),
			P3: p3,
		})
	}
	return out
}

// correctRadii scales both radii up when they cannot span the
// half-displacement (x1p, y1p) of the rotated frame. Skipping this
// yields an arc that never terminates at the requested endpoint.
func correctRadii(rx, ry, x1p, y1p float64) (float64, float64) {
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}
	return rx, ry
}

// ellipsePoint evaluates the rotated ellipse at parameter angle theta.
func ellipsePoint(cx, cy, rx, ry, cosPhi, sinPhi, theta float64) Point {
	x := rx * math.Cos(theta)
	y := ry * math.Sin(theta)
	return Point{
		X: cx + cosPhi*x - sinPhi*y,
		Y: cy + sinPhi*x + cosPhi*y,
	}
}

// ellipseTangent returns the derivative of the rotated ellipse with
// respect to theta.
func ellipseTangent(rx, ry, cosPhi, sinPhi, theta float64) Point {
	x := -rx * math.Sin(theta)
	y := ry * math.Cos(theta)
	return Point{
		X: cosPhi*x - sinPhi*y,
		Y: sinPhi*x + cosPhi*y,
	}
}

// vectorAngle returns the signed angle from vector u to vector v.
func vectorAngle(ux, uy, vx, vy float64) float64 {
	sign := 1.0
	if ux*vy-uy*vx < 0 {
		sign = -1
	}
	dot := ux*vx + uy*vy
	// Clamp against floating error before Acos.
	if dot > 1 {
		dot = 1
	}
	if dot < -1 {
		dot = -1
	}
	return sign * math.Acos(dot)
}
