package sketch

import (
	"strings"
	"testing"
)

func TestNormalize_Golden(t *testing.T) {
	// Line segments become collinear cubics with controls at the exact
	// thirds of each segment.
	const want = "M 0 0 C 3.3333333333333335 0 6.666666666666667 0 10 0 C 10 3.3333333333333335 10 6.666666666666667 10 10 Z"
	if got := Normalize("M0,0 L10,0 L10,10 Z"); got != want {
		t.Errorf("Normalize = %q\nwant %q", got, want)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	const d = "M1,2 L30,4 Q10,10 20,20 A5 8 30 1 0 40,40 Z"
	first := Normalize(d)
	second := Normalize(d)
	if first != second {
		t.Errorf("Normalize not deterministic:\n%q\n%q", first, second)
	}
}

func TestNormalize_OutputGrammar(t *testing.T) {
	// Every known input command normalizes to M, C and Z only.
	const d = "M0,0 L5,5 H10 V10 C1 2 3 4 5 6 S7 8 9 10 Q11 12 13 14 T15 16 A20 20 0 0 1 40 16 Z"
	out := Normalize(d)
	for _, tok := range strings.Fields(out) {
		c := tok[0]
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' {
			if c != 'M' && c != 'C' && c != 'Z' {
				t.Errorf("output contains command %q, want only M/C/Z\noutput: %s", tok, out)
			}
		}
	}
}

func TestNormalize_RelativeResolution(t *testing.T) {
	// Relative and absolute spellings of the same geometry normalize
	// identically.
	abs := Normalize("M10,10 L20,10 L20,20 Z")
	rel := Normalize("M10,10 l10,0 l0,10 z")
	if abs != rel {
		t.Errorf("relative path normalized differently:\nabs: %q\nrel: %q", abs, rel)
	}
}

func TestNormalize_HorizontalVertical(t *testing.T) {
	// H and V keep the fixed axis of the current point.
	got := Normalize("M5,7 H15")
	want := "M 5 7 C " + formatCoord((2*5.0+15)/3) + " 7 " + formatCoord((5.0+2*15)/3) + " 7 15 7"
	if got != want {
		t.Errorf("H normalize = %q, want %q", got, want)
	}

	got = Normalize("M5,7 v3")
	if !strings.HasSuffix(got, " 5 10") {
		t.Errorf("relative V should end at (5, 10), got %q", got)
	}
}

func TestNormalize_QuadraticRaised(t *testing.T) {
	// A quadratic raised to cubic degree evaluates to the same curve.
	out := Normalize("M0,0 Q10,20 20,0")
	segs := parseCubics(t, out)
	if len(segs) != 1 {
		t.Fatalf("got %d cubics, want 1", len(segs))
	}
	c := segs[0]

	q0, qc, q1 := Pt(0, 0), Pt(10, 20), Pt(20, 0)
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		// Quadratic evaluation by nested lerp.
		want := q0.Lerp(qc, tt).Lerp(qc.Lerp(q1, tt), tt)
		if got := c.Eval(tt); !got.Approx(want, epsilon) {
			t.Errorf("raised cubic at t=%v: %v, want %v", tt, got, want)
		}
	}
}

func TestNormalize_SmoothReflection(t *testing.T) {
	// S reflects the previous cubic's second control point; spelled out
	// as an explicit C the result must match.
	smooth := Normalize("M0,0 C0,10 10,10 10,0 S20,-10 20,0")
	explicit := Normalize("M0,0 C0,10 10,10 10,0 C10,-10 20,-10 20,0")
	if smooth != explicit {
		t.Errorf("S reflection mismatch:\nsmooth:   %q\nexplicit: %q", smooth, explicit)
	}

	// Without a preceding cubic the first control collapses onto the
	// current point.
	smooth = Normalize("M5,5 S10,0 15,5")
	explicit = Normalize("M5,5 C5,5 10,0 15,5")
	if smooth != explicit {
		t.Errorf("S without predecessor mismatch:\nsmooth:   %q\nexplicit: %q", smooth, explicit)
	}
}

func TestNormalize_ClosePathResetsCurrentPoint(t *testing.T) {
	// After Z the current point is back at the subpath start, so the
	// following line starts from (0,0).
	got := Normalize("M0,0 L10,0 Z L0,10")
	want := Normalize("M0,0 L10,0 Z") + " " + strings.TrimPrefix(Normalize("M0,0 L0,10"), "M 0 0 ")
	if got != want {
		t.Errorf("close reset mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestNormalize_IncompleteCommandKeepsCurrentPoint(t *testing.T) {
	// The dropped trailing "L10" leaves the current point at (5,5), so
	// the next line still starts there.
	got := Normalize("M5,5 L10 L20,5")
	want := Normalize("M5,5 L20,5")
	if got != want {
		t.Errorf("incomplete command moved the current point:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestNormalize_UnknownCommandPassthrough(t *testing.T) {
	got := Normalize("M0,0 W1.5 2 L10,0")
	if !strings.Contains(got, "W 1.5 2") {
		t.Errorf("unknown command not passed through verbatim: %q", got)
	}
}

func TestNormalize_ArcEmitsCubics(t *testing.T) {
	out := Normalize("M0,0 A50,50 0 0 1 100,0")
	segs := parseCubics(t, out)
	if len(segs) < 12 {
		t.Errorf("half-circle arc emitted %d cubics, want >= 12", len(segs))
	}
	if last := segs[len(segs)-1].P3; !last.Approx(Pt(100, 0), epsilon) {
		t.Errorf("arc ends at %v, want (100, 0)", last)
	}
}

// parseCubics re-reads a normalized path string and reconstructs its
// cubic segments, tracking the implicit start point.
func parseCubics(t *testing.T, out string) []Cubic {
	t.Helper()
	var segs []Cubic
	var current Point
	for _, cmd := range ParsePath(out) {
		switch c := cmd.(type) {
		case MoveTo:
			current = c.To
		case CubicTo:
			segs = append(segs, Cubic{P0: current, P1: c.C1, P2: c.C2, P3: c.To})
			current = c.To
		case Close:
		default:
			t.Fatalf("unexpected command %#v in normalized output %q", cmd, out)
		}
	}
	return segs
}
