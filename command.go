package sketch

// Command is one parsed path-data command. The concrete types mirror
// the letters of the path mini-language; each carries its raw numeric
// parameters and a Rel flag recording whether the source letter was
// lowercase (relative coordinates).
//
// Normalization matches exhaustively over these variants, so adding a
// command kind without handling it is a compile-time-visible gap rather
// than a silently skipped case.
type Command interface {
	isCommand()
}

// MoveTo starts a new subpath at To (letter M/m).
type MoveTo struct {
	To  Point
	Rel bool
}

func (MoveTo) isCommand() {}

// LineTo draws a straight segment to To (letter L/l).
type LineTo struct {
	To  Point
	Rel bool
}

func (LineTo) isCommand() {}

// HLineTo draws a horizontal segment to x-coordinate X (letter H/h).
type HLineTo struct {
	X   float64
	Rel bool
}

func (HLineTo) isCommand() {}

// VLineTo draws a vertical segment to y-coordinate Y (letter V/v).
type VLineTo struct {
	Y   float64
	Rel bool
}

func (VLineTo) isCommand() {}

// CubicTo draws a cubic Bezier with control points C1, C2 (letter C/c).
type CubicTo struct {
	C1, C2, To Point
	Rel        bool
}

func (CubicTo) isCommand() {}

// SmoothCubicTo draws a cubic Bezier whose first control point is the
// reflection of the previous cubic's second control point (letter S/s).
type SmoothCubicTo struct {
	C2, To Point
	Rel    bool
}

func (SmoothCubicTo) isCommand() {}

// QuadTo draws a quadratic Bezier with control point C (letter Q/q).
type QuadTo struct {
	C, To Point
	Rel   bool
}

func (QuadTo) isCommand() {}

// SmoothQuadTo draws a quadratic Bezier whose control point is the
// reflection of the previous quadratic's control point (letter T/t).
type SmoothQuadTo struct {
	To  Point
	Rel bool
}

func (SmoothQuadTo) isCommand() {}

// ArcTo draws an elliptical arc to To (letter A/a). Radii, rotation and
// the two flags follow the arc endpoint parameterization.
type ArcTo struct {
	Rx, Ry    float64
	XRotation float64
	LargeArc  bool
	Sweep     bool
	To        Point
	Rel       bool
}

func (ArcTo) isCommand() {}

// Close closes the current subpath (letter Z/z).
type Close struct{}

func (Close) isCommand() {}

// Raw is a command with an unrecognized letter. It is carried through
// normalization verbatim, un-converted and un-jittered: partial
// degradation rather than failure.
type Raw struct {
	Letter byte
	Params []float64
}

func (Raw) isCommand() {}

// arity returns the fixed parameter count for a known command letter
// (upper or lower case) and whether the letter is known at all.
func arity(letter byte) (int, bool) {
	switch letter {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2, true
	case 'H', 'h', 'V', 'v':
		return 1, true
	case 'C', 'c':
		return 6, true
	case 'S', 's', 'Q', 'q':
		return 4, true
	case 'A', 'a':
		return 7, true
	case 'Z', 'z':
		return 0, true
	}
	return 0, false
}
