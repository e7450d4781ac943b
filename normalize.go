package sketch

// Normalize converts path data to the normalized output grammar: only
// absolute Move, Cubic and Close commands, space-separated. No
// perturbation is applied; Normalize is deterministic and running it
// twice on the same input yields byte-identical strings.
func Normalize(d string) string {
	return normalizePath(ParsePath(d), nil)
}

// normalizePath folds the parsed commands through an interpreter state,
// emitting the normalized (and, when distort is non-nil, perturbed)
// path string. The state itself always tracks unperturbed geometry, so
// every pass over the same commands starts from identical inputs and
// jitter never compounds.
func normalizePath(cmds []Command, distort distortFunc) string {
	e := newPathEncoder(distort)
	st := interpState{}
	for _, cmd := range cmds {
		st = st.apply(cmd, e)
	}
	return e.String()
}

// interpState is the interpreter's running geometry: the current point,
// the start of the open subpath, and the trailing control points needed
// for the smooth-command reflection rule. It is a value threaded
// through the fold, one fresh zero state per interpreter run.
type interpState struct {
	current Point
	start   Point

	cubicCtrl    Point
	hasCubicCtrl bool
	quadCtrl     Point
	hasQuadCtrl  bool
}

// resolve converts a possibly-relative coordinate pair to absolute.
func (st interpState) resolve(p Point, rel bool) Point {
	if rel {
		return st.current.Add(p)
	}
	return p
}

// clearSmooth drops the reflection state. Any command that is not a
// cubic resets the cubic reflection, and likewise for quadratics.
func (st interpState) clearSmooth() interpState {
	st.hasCubicCtrl = false
	st.hasQuadCtrl = false
	return st
}

// apply interprets one command: it emits the command's normalized form
// and returns the successor state. Unknown commands pass through
// verbatim and leave the state untouched.
func (st interpState) apply(cmd Command, e *pathEncoder) interpState {
	switch c := cmd.(type) {
	case MoveTo:
		to := st.resolve(c.To, c.Rel)
		e.move(to)
		st.current = to
		st.start = to
		return st.clearSmooth()

	case LineTo:
		return st.lineTo(st.resolve(c.To, c.Rel), e)

	case HLineTo:
		x := c.X
		if c.Rel {
			x += st.current.X
		}
		return st.lineTo(Pt(x, st.current.Y), e)

	case VLineTo:
		y := c.Y
		if c.Rel {
			y += st.current.Y
		}
		return st.lineTo(Pt(st.current.X, y), e)

	case CubicTo:
		c1 := st.resolve(c.C1, c.Rel)
		c2 := st.resolve(c.C2, c.Rel)
		to := st.resolve(c.To, c.Rel)
		return st.cubicTo(c1, c2, to, e)

	case SmoothCubicTo:
		// First control point reflects the previous cubic's second
		// control point through the current point; without a preceding
		// cubic it coincides with the current point.
		c1 := st.current
		if st.hasCubicCtrl {
			c1 = st.cubicCtrl.Reflect(st.current)
		}
		c2 := st.resolve(c.C2, c.Rel)
		to := st.resolve(c.To, c.Rel)
		return st.cubicTo(c1, c2, to, e)

	case QuadTo:
		return st.quadTo(st.resolve(c.C, c.Rel), st.resolve(c.To, c.Rel), e)

	case SmoothQuadTo:
		qc := st.current
		if st.hasQuadCtrl {
			qc = st.quadCtrl.Reflect(st.current)
		}
		return st.quadTo(qc, st.resolve(c.To, c.Rel), e)

	case ArcTo:
		to := st.resolve(c.To, c.Rel)
		arc := Arc{
			Start:     st.current,
			End:       to,
			Rx:        c.Rx,
			Ry:        c.Ry,
			XRotation: c.XRotation,
			LargeArc:  c.LargeArc,
			Sweep:     c.Sweep,
		}
		for _, seg := range arc.Cubics() {
			e.cubic(seg)
		}
		st.current = to
		return st.clearSmooth()

	case Close:
		e.close()
		st.current = st.start
		return st.clearSmooth()

	case Raw:
		e.raw(c.Letter, c.Params)
		return st
	}
	return st
}

// lineTo emits a straight segment as a degenerate cubic.
func (st interpState) lineTo(to Point, e *pathEncoder) interpState {
	e.cubic(LineCubic(st.current, to))
	st.current = to
	return st.clearSmooth()
}

// cubicTo emits a cubic segment and records its second control point
// for a following smooth cubic.
func (st interpState) cubicTo(c1, c2, to Point, e *pathEncoder) interpState {
	e.cubic(Cubic{P0: st.current, P1: c1, P2: c2, P3: to})
	st = st.clearSmooth()
	st.cubicCtrl = c2
	st.hasCubicCtrl = true
	st.current = to
	return st
}

// quadTo raises a quadratic segment to cubic degree and emits it,
// recording the quadratic control point for a following smooth
// quadratic.
func (st interpState) quadTo(qc, to Point, e *pathEncoder) interpState {
	e.cubic(Cubic{
		P0: st.current,
		P1: third(qc, st.current),
		P2: third(qc, to),
		P3: to,
	})
	st = st.clearSmooth()
	st.quadCtrl = qc
	st.hasQuadCtrl = true
	st.current = to
	return st
}
