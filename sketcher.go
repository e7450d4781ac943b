package sketch

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// Defaults for the sketch configuration.
const (
	// DefaultJitter is the default jitter magnitude in path units.
	DefaultJitter = 1.2

	// DefaultRepeats is the default number of stroked outline passes
	// drawn over the fill pass.
	DefaultRepeats = 3
)

// Fallback colors used when a layer has no explicit fill or stroke.
const (
	fallbackFill   = "#666"
	fallbackStroke = "#000"
)

// Option configures a Sketcher during creation.
type Option func(*Sketcher)

// WithJitter sets the jitter magnitude: every emitted coordinate is
// displaced by a uniform random offset in [-jitter, jitter]. Zero
// disables perturbation entirely. Negative values are clamped to zero.
func WithJitter(jitter float64) Option {
	return func(s *Sketcher) {
		s.jitter = max(jitter, 0)
	}
}

// WithRepeats sets how many stroked outline passes are drawn on top of
// the fill pass. Zero draws the fill layer only. Negative values are
// clamped to zero.
func WithRepeats(repeats int) Option {
	return func(s *Sketcher) {
		s.repeats = max(repeats, 0)
	}
}

// WithRandom injects the random source used for jitter. Use a seeded
// source for reproducible output:
//
//	s := sketch.NewSketcher(sketch.WithRandom(rand.New(rand.NewPCG(1, 2))))
//
// Without this option every Sketch call draws from a fresh source, so
// repeated calls over the same input produce different geometry. That
// non-determinism is part of the hand-drawn effect.
func WithRandom(rng *rand.Rand) Option {
	return func(s *Sketcher) {
		s.rng = rng
	}
}

// Sketcher is the multi-pass distortion engine. It normalizes a path to
// cubic form repeats+1 times, independently jittering each pass, and
// hands the resulting layers to a Renderer in order: one fill layer,
// then the stroked outlines.
type Sketcher struct {
	jitter  float64
	repeats int
	rng     *rand.Rand
}

// NewSketcher creates a Sketcher with the default jitter (1.2) and
// repeat count (3), customizable through options.
func NewSketcher(opts ...Option) *Sketcher {
	s := &Sketcher{
		jitter:  DefaultJitter,
		repeats: DefaultRepeats,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Jitter returns the configured jitter magnitude.
func (s *Sketcher) Jitter() float64 { return s.jitter }

// Repeats returns the configured number of outline passes.
func (s *Sketcher) Repeats() int { return s.repeats }

// Layers computes the repeats+1 independently jittered normalized path
// strings for the given path data without drawing them. Layer 0 is the
// fill layer.
func (s *Sketcher) Layers(pathData string) []string {
	cmds := ParsePath(pathData)
	distort := s.distortFunc()
	layers := make([]string, s.repeats+1)
	for i := range layers {
		layers[i] = normalizePath(cmds, distort)
	}
	return layers
}

// Sketch runs the full layered pipeline: every layer from Layers is
// drawn through r in order, fill first. The caller's attributes are
// preserved on every layer except fill and stroke, which are overridden
// per pass: the fill layer gets stroke "none" (and a fallback fill if
// none is set), outline layers get fill "none" (and a fallback stroke
// if none is set).
func (s *Sketcher) Sketch(pathData string, attrs Attrs, r Renderer) error {
	layers := s.Layers(pathData)
	Logger().Debug("sketching path",
		slog.Int("layers", len(layers)),
		slog.Float64("jitter", s.jitter))

	for i, layer := range layers {
		la := attrs.Clone()
		if i == 0 {
			if la["fill"] == "" {
				la["fill"] = fallbackFill
			}
			la["stroke"] = "none"
		} else {
			la["fill"] = "none"
			if la["stroke"] == "" {
				la["stroke"] = fallbackStroke
			}
		}
		if err := r.Draw(layer, la); err != nil {
			return fmt.Errorf("sketch: drawing layer %d: %w", i, err)
		}
	}
	return nil
}

// distortFunc builds the per-coordinate jitter closure for one engine
// run, drawing from the injected random source or a fresh one.
func (s *Sketcher) distortFunc() distortFunc {
	if s.jitter == 0 {
		return nil
	}
	rng := s.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	jitter := s.jitter
	return func(v float64) float64 {
		return v + (rng.Float64()-0.5)*jitter*2
	}
}
