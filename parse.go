package sketch

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParsePath tokenizes path data into commands. The scan pairs each
// command letter with the parameter text that follows it; letter case
// selects relative coordinates. A letter's parameter list is split by
// the command's fixed arity, so repeated parameter groups under one
// letter yield repeated commands.
//
// Malformed input degrades instead of failing: parameter tokens that do
// not parse to a finite number are dropped (which can desynchronize the
// arity grouping of what follows), a trailing group with fewer
// parameters than the arity requires is dropped, and unknown command
// letters come back as [Raw] commands.
func ParsePath(d string) []Command {
	var cmds []Command
	i := 0
	for i < len(d) {
		c := d[i]
		if !isCommandLetter(c) {
			i++
			continue
		}
		j := i + 1
		for j < len(d) && !isCommandLetter(d[j]) {
			j++
		}
		cmds = append(cmds, splitGroups(c, parseParams(d[i+1:j]))...)
		i = j
	}
	return cmds
}

// isCommandLetter reports whether c can begin a command. Any ASCII
// letter counts except e/E, which stay inside parameter text so
// exponent notation like 1e5 survives tokenization; unknown letters
// become Raw commands downstream.
func isCommandLetter(c byte) bool {
	if c == 'e' || c == 'E' {
		return false
	}
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

// parseParams splits parameter text into whitespace/comma-separated
// tokens and parses each as a float. Tokens that fail to parse to a
// finite number are dropped from the list, not replaced with zero.
func parseParams(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	params := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			Logger().Warn("dropping unparsable path parameter", slog.String("token", f))
			continue
		}
		params = append(params, v)
	}
	return params
}

// splitGroups slices the parameter list of one letter into fixed-arity
// groups and builds one command per group.
func splitGroups(letter byte, params []float64) []Command {
	n, known := arity(letter)
	if !known {
		return []Command{Raw{Letter: letter, Params: params}}
	}
	if n == 0 {
		return []Command{Close{}}
	}

	var cmds []Command
	i := 0
	for ; i+n <= len(params); i += n {
		cmds = append(cmds, buildCommand(letter, params[i:i+n]))
	}
	if i < len(params) {
		Logger().Warn("dropping incomplete path command",
			slog.String("letter", string(letter)),
			slog.Int("missing", n-(len(params)-i)))
	}
	return cmds
}

// buildCommand constructs the command variant for one complete
// parameter group. p has exactly the letter's arity.
func buildCommand(letter byte, p []float64) Command {
	rel := letter >= 'a'
	switch letter & 0xDF { // fold to uppercase
	case 'M':
		return MoveTo{To: Pt(p[0], p[1]), Rel: rel}
	case 'L':
		return LineTo{To: Pt(p[0], p[1]), Rel: rel}
	case 'H':
		return HLineTo{X: p[0], Rel: rel}
	case 'V':
		return VLineTo{Y: p[0], Rel: rel}
	case 'C':
		return CubicTo{C1: Pt(p[0], p[1]), C2: Pt(p[2], p[3]), To: Pt(p[4], p[5]), Rel: rel}
	case 'S':
		return SmoothCubicTo{C2: Pt(p[0], p[1]), To: Pt(p[2], p[3]), Rel: rel}
	case 'Q':
		return QuadTo{C: Pt(p[0], p[1]), To: Pt(p[2], p[3]), Rel: rel}
	case 'T':
		return SmoothQuadTo{To: Pt(p[0], p[1]), Rel: rel}
	case 'A':
		return ArcTo{
			Rx:        p[0],
			Ry:        p[1],
			XRotation: p[2],
			LargeArc:  p[3] != 0,
			Sweep:     p[4] != 0,
			To:        Pt(p[5], p[6]),
			Rel:       rel,
		}
	}
	// Unreachable: arity covered every known letter.
	return Raw{Letter: letter, Params: p}
}
