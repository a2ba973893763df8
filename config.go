package tracer

import (
	"math"
	"time"
)

// DefaultFPS is the sampling rate used when Settings.FPS is unusable.
const DefaultFPS = 10

// BlendConfig controls one compositor invocation. It is read fresh on
// every call and never cached by the compositor.
type BlendConfig struct {
	// ImageOpacity weights the reference image, in [0, 1].
	ImageOpacity float64
	// CameraOpacity weights the camera frame, in [0, 1].
	CameraOpacity float64

	// Invert replaces each camera channel c with 255-c before mixing.
	Invert bool
	// Difference selects the signed difference mode instead of the
	// additive mix. Opacities and Invert do not apply to it.
	Difference bool
	// OverflowMarking replaces saturated additive channels with a
	// repeating diagnostic pattern instead of clamping them to 255.
	OverflowMarking bool

	// FlipHorizontal mirrors the camera frame left to right.
	FlipHorizontal bool
	// FlipVertical mirrors the camera frame top to bottom.
	FlipVertical bool

	// SampleInterval is the minimum time between two composites.
	SampleInterval time.Duration
}

// ParamSource delivers the current blend parameters.
type ParamSource interface {
	BlendConfig() BlendConfig
}

// Settings is the raw form of the blend parameters as UI controls
// deliver them: opacities as integer percentages and the sampling rate
// as frames per second.
type Settings struct {
	ImageOpacity  int // percent, 0-100
	CameraOpacity int // percent, 0-100

	Invert          bool
	Difference      bool
	OverflowMarking bool
	FlipHorizontal  bool
	FlipVertical    bool

	FPS float64
}

// DefaultSettings returns a half-transparent reference over the full
// camera image, sampled at DefaultFPS.
func DefaultSettings() Settings {
	return Settings{
		ImageOpacity:  50,
		CameraOpacity: 100,
		FPS:           DefaultFPS,
	}
}

// BlendConfig normalizes the settings. Percentages are clamped to
// [0, 100] and divided by 100. The interval is 1000/FPS milliseconds;
// an FPS that is not finite and positive falls back to DefaultFPS.
func (s Settings) BlendConfig() BlendConfig {
	return BlendConfig{
		ImageOpacity:    percent(s.ImageOpacity),
		CameraOpacity:   percent(s.CameraOpacity),
		Invert:          s.Invert,
		Difference:      s.Difference,
		OverflowMarking: s.OverflowMarking,
		FlipHorizontal:  s.FlipHorizontal,
		FlipVertical:    s.FlipVertical,
		SampleInterval:  interval(s.FPS),
	}
}

func percent(v int) float64 {
	return float64(min(max(v, 0), 100)) / 100
}

func interval(fps float64) time.Duration {
	if !isFinite(fps) || fps <= 0 {
		fps = DefaultFPS
	}
	return time.Duration(math.Round(float64(time.Second) / fps))
}
