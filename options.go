package tracer

import (
	"time"

	"github.com/gogpu/tracer/internal/blend"
)

// EngineOption configures an Engine during creation.
//
// Example:
//
//	e := tracer.NewEngine(tracer.WithEpsilon(0.5))
type EngineOption func(*engineOptions)

type engineOptions struct {
	epsilon float64
	initial Transform
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		epsilon: DefaultEpsilon,
		initial: IdentityTransform(),
	}
}

// WithEpsilon sets the contact distance below which a pinch baseline is
// treated as degenerate. Non-positive values are ignored.
func WithEpsilon(eps float64) EngineOption {
	return func(o *engineOptions) {
		if eps > 0 && isFinite(eps) {
			o.epsilon = eps
		}
	}
}

// WithInitialTransform sets the placement the engine starts from.
// A transform without a finite positive scale keeps scale 1.
func WithInitialTransform(t Transform) EngineOption {
	return func(o *engineOptions) {
		if !isFinite(t.Scale) || t.Scale <= 0 {
			t.Scale = 1
		}
		o.initial = t
	}
}

// Rounding selects how the difference mode halves the signed difference.
type Rounding = blend.Rounding

const (
	// RoundFloor truncates: (200-50+255)/2 = 202. This is the default.
	RoundFloor = blend.RoundFloor
	// RoundHalfUp rounds halves upward: (200-50+255)/2 = 203.
	RoundHalfUp = blend.RoundHalfUp
)

// CompositorOption configures a Compositor during creation.
type CompositorOption func(*Compositor)

// WithDifferenceRounding sets the rounding policy of the difference mode.
func WithDifferenceRounding(r Rounding) CompositorOption {
	return func(c *Compositor) {
		c.rounding = r
	}
}

// SamplerOption configures a Sampler during creation.
//
// Example:
//
//	s := tracer.NewSampler(camera, settings,
//	    tracer.WithSink(display),
//	    tracer.WithCompositor(tracer.NewCompositor(tracer.WithDifferenceRounding(tracer.RoundHalfUp))))
type SamplerOption func(*Sampler)

// WithCompositor sets the compositor used by the sampler.
func WithCompositor(c *Compositor) SamplerOption {
	return func(s *Sampler) {
		if c != nil {
			s.compositor = c
		}
	}
}

// WithSink sets where composited frames are presented.
func WithSink(sink FrameSink) SamplerOption {
	return func(s *Sampler) {
		s.sink = sink
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) SamplerOption {
	return func(s *Sampler) {
		if now != nil {
			s.now = now
		}
	}
}
