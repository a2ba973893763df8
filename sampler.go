package tracer

import (
	"context"
	"sync/atomic"
	"time"
)

// FrameSource delivers the latest camera frame. Frame returns nil when
// no frame is available yet. Frames are never queued: every call
// returns whatever is current.
//
// The sampler composites into the returned pixmap, so a source must
// hand out a buffer it is willing to have overwritten.
type FrameSource interface {
	Frame() *Pixmap
}

// FrameSink receives each composited frame for presentation.
type FrameSink interface {
	Present(*Pixmap)
}

// FrameSourceFunc adapts a function to FrameSource.
type FrameSourceFunc func() *Pixmap

// Frame calls f.
func (f FrameSourceFunc) Frame() *Pixmap { return f() }

// FrameSinkFunc adapts a function to FrameSink.
type FrameSinkFunc func(*Pixmap)

// Present calls f.
func (f FrameSinkFunc) Present(p *Pixmap) { f(p) }

// Sampler runs the compositor at most once per sample interval,
// independent of how often the display refreshes.
//
// Tick and Run must be called from a single goroutine. SetReference and
// Output may be called from any goroutine.
type Sampler struct {
	camera     FrameSource
	params     ParamSource
	compositor *Compositor
	sink       FrameSink
	now        func() time.Time

	reference atomic.Pointer[Pixmap]
	output    atomic.Pointer[Pixmap]

	last    time.Time
	sampled bool
}

// NewSampler creates a sampler reading frames from camera and blend
// parameters from params.
func NewSampler(camera FrameSource, params ParamSource, opts ...SamplerOption) *Sampler {
	s := &Sampler{
		camera:     camera,
		params:     params,
		compositor: defaultCompositor,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetReference replaces the reference image. The next composite uses
// it. Passing nil lets camera frames through unchanged.
func (s *Sampler) SetReference(p *Pixmap) {
	s.reference.Store(p)
}

// Reference returns the current reference image, or nil.
func (s *Sampler) Reference() *Pixmap {
	return s.reference.Load()
}

// Output returns the most recent composited frame, or nil before the
// first one.
func (s *Sampler) Output() *Pixmap {
	return s.output.Load()
}

// Tick composites a new frame if at least one sample interval has passed
// since the last one. It returns the frame to display and whether it is
// new. Early ticks return the previous output unchanged.
//
// A tick with no camera frame available does not count as a sample.
func (s *Sampler) Tick(now time.Time) (*Pixmap, bool) {
	return s.tick(now, 0)
}

// tick is Tick with a tolerance for timer jitter: a sample is taken
// once interval-slack has elapsed.
func (s *Sampler) tick(now time.Time, slack time.Duration) (*Pixmap, bool) {
	cfg := s.params.BlendConfig()
	if s.sampled && now.Sub(s.last) < sampleInterval(cfg)-slack {
		return s.output.Load(), false
	}

	frame := s.camera.Frame()
	if frame == nil {
		return s.output.Load(), false
	}

	var (
		out *Pixmap
		err error
	)
	if ref := s.reference.Load(); ref != nil {
		out, err = s.compositor.Composite(ref, frame, cfg)
	} else {
		out, err = s.compositor.Passthrough(frame, cfg)
	}
	if err != nil {
		Logger().Warn("tracer: composite failed", "err", err)
		return s.output.Load(), false
	}

	s.last = now
	s.sampled = true
	s.output.Store(out)
	if s.sink != nil {
		s.sink.Present(out)
	}
	return out, true
}

// Run ticks the sampler at the configured sample interval until ctx is
// done, and returns ctx.Err(). A change of interval takes effect on the
// next tick.
func (s *Sampler) Run(ctx context.Context) error {
	d := sampleInterval(s.params.BlendConfig())
	ticker := time.NewTicker(d)
	defer ticker.Stop()

	Logger().Debug("tracer: sampler started", "interval", d)
	s.tick(s.now(), d/jitterDivisor)

	for {
		select {
		case <-ctx.Done():
			Logger().Debug("tracer: sampler stopped", "err", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			s.tick(s.now(), d/jitterDivisor)
			if nd := sampleInterval(s.params.BlendConfig()); nd != d {
				d = nd
				ticker.Reset(d)
			}
		}
	}
}

// jitterDivisor bounds how early a ticker tick may arrive, as a fraction
// of the interval, and still be sampled.
const jitterDivisor = 8

// sampleInterval returns cfg.SampleInterval, or the DefaultFPS interval
// when it is not positive.
func sampleInterval(cfg BlendConfig) time.Duration {
	if cfg.SampleInterval <= 0 {
		return interval(DefaultFPS)
	}
	return cfg.SampleInterval
}
