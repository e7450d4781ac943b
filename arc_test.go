package sketch

import (
	"math"
	"testing"
)

func TestArc_Cubics_Continuity(t *testing.T) {
	tests := []struct {
		name string
		arc  Arc
	}{
		{"quarter circle", Arc{Start: Pt(0, 0), End: Pt(50, 50), Rx: 50, Ry: 50, Sweep: true}},
		{"half circle", Arc{Start: Pt(0, 0), End: Pt(100, 0), Rx: 50, Ry: 50, Sweep: true}},
		{"rotated ellipse", Arc{Start: Pt(10, 20), End: Pt(80, 60), Rx: 60, Ry: 30, XRotation: 30, Sweep: true}},
		{"large arc", Arc{Start: Pt(0, 0), End: Pt(40, 0), Rx: 50, Ry: 50, LargeArc: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := tt.arc.Cubics()
			if len(segs) == 0 {
				t.Fatal("no segments generated")
			}
			for i := 0; i < len(segs)-1; i++ {
				if !segs[i].P3.Approx(segs[i+1].P0, epsilon) {
					t.Errorf("segment %d ends at %v but segment %d starts at %v",
						i, segs[i].P3, i+1, segs[i+1].P0)
				}
			}
		})
	}
}

func TestArc_Cubics_EndpointFidelity(t *testing.T) {
	start, end := Pt(10, 20), Pt(90, 45)

	for _, largeArc := range []bool{false, true} {
		for _, sweep := range []bool{false, true} {
			arc := Arc{Start: start, End: end, Rx: 60, Ry: 50, XRotation: 15, LargeArc: largeArc, Sweep: sweep}
			segs := arc.Cubics()
			if len(segs) == 0 {
				t.Fatalf("largeArc=%v sweep=%v: no segments", largeArc, sweep)
			}
			if !segs[0].P0.Approx(start, epsilon) {
				t.Errorf("largeArc=%v sweep=%v: first anchor %v, want %v", largeArc, sweep, segs[0].P0, start)
			}
			if last := segs[len(segs)-1].P3; !last.Approx(end, epsilon) {
				t.Errorf("largeArc=%v sweep=%v: last anchor %v, want %v", largeArc, sweep, last, end)
			}
		}
	}
}

func TestArc_Cubics_RadiiCorrection(t *testing.T) {
	// Radii far too small to span the endpoints must be scaled so the
	// arc still terminates at the requested point.
	arc := Arc{Start: Pt(0, 0), End: Pt(100, 0), Rx: 5, Ry: 5, Sweep: true}
	segs := arc.Cubics()
	if len(segs) == 0 {
		t.Fatal("no segments generated")
	}
	if last := segs[len(segs)-1].P3; !last.Approx(arc.End, epsilon) {
		t.Errorf("corrected arc ends at %v, want %v", last, arc.End)
	}
}

func TestCorrectRadii(t *testing.T) {
	// Half-displacement of a 100-wide chord with 5-unit radii.
	x1p, y1p := -50.0, 0.0
	rx, ry := correctRadii(5, 5, x1p, y1p)

	// The corrected radii must put the displacement exactly on the
	// ellipse: x1p^2/rx^2 + y1p^2/ry^2 == 1.
	if got := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry); !approx(got, 1) {
		t.Errorf("corrected lambda = %v, want 1", got)
	}

	// Radii that already span the displacement stay untouched.
	rx, ry = correctRadii(60, 60, x1p, y1p)
	if rx != 60 || ry != 60 {
		t.Errorf("correctRadii(60, 60) = %v, %v, want unchanged", rx, ry)
	}
}

func TestArc_Cubics_SegmentBound(t *testing.T) {
	// A half-circle sweep spans pi radians; with at most pi/12 per
	// segment that is at least 12 segments.
	arc := Arc{Start: Pt(0, 0), End: Pt(100, 0), Rx: 50, Ry: 50, Sweep: true}
	segs := arc.Cubics()
	if len(segs) < 12 {
		t.Errorf("half circle split into %d segments, want >= 12", len(segs))
	}
	for _, seg := range segs {
		// No segment may stray further from the center than the radius
		// by more than the approximation tolerance.
		for _, tt := range []float64{0.25, 0.5, 0.75} {
			p := seg.Eval(tt)
			r := p.Distance(Pt(50, 0))
			if math.Abs(r-50) > 0.1 {
				t.Errorf("point %v at distance %v from center, want ~50", p, r)
			}
		}
	}
}

func TestArc_Cubics_DegenerateRadii(t *testing.T) {
	tests := []struct {
		name   string
		rx, ry float64
	}{
		{"zero rx", 0, 50},
		{"zero ry", 50, 0},
		{"negative", -10, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arc := Arc{Start: Pt(0, 0), End: Pt(30, 40), Rx: tt.rx, Ry: tt.ry, Sweep: true}
			segs := arc.Cubics()
			if len(segs) != 1 {
				t.Fatalf("degenerate arc produced %d segments, want 1 line segment", len(segs))
			}
			want := LineCubic(arc.Start, arc.End)
			if segs[0] != want {
				t.Errorf("degenerate arc = %+v, want line cubic %+v", segs[0], want)
			}
		})
	}
}

func TestArc_Cubics_CoincidentEndpoints(t *testing.T) {
	arc := Arc{Start: Pt(10, 10), End: Pt(10, 10), Rx: 50, Ry: 50, Sweep: true}
	if segs := arc.Cubics(); len(segs) != 0 {
		t.Errorf("coincident endpoints produced %d segments, want 0", len(segs))
	}
}
