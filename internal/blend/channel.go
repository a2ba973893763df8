package blend

// Rounding selects how the signed difference is halved back into the
// byte range.
type Rounding uint8

const (
	// RoundFloor truncates the half: (200-50+255)/2 = 202.
	RoundFloor Rounding = iota

	// RoundHalfUp rounds halves upward: (200-50+255)/2 = 203.
	RoundHalfUp
)

// String returns a string representation of the rounding policy.
func (r Rounding) String() string {
	switch r {
	case RoundFloor:
		return "Floor"
	case RoundHalfUp:
		return "HalfUp"
	default:
		return "Unknown"
	}
}

// Sum returns the unclamped additive mix
//
//	floor(img*imageOpacity) + floor(cam*cameraOpacity)
//
// When invert is set the camera sample is replaced by 255-cam before
// weighting.
func Sum(img, cam uint8, imageOpacity, cameraOpacity float64, invert bool) int {
	if invert {
		cam = Invert(cam)
	}
	return Weight(img, imageOpacity) + Weight(cam, cameraOpacity)
}

// Add returns the additive mix saturated to 255, and whether the
// unclamped sum exceeded 255.
func Add(img, cam uint8, imageOpacity, cameraOpacity float64, invert bool) (uint8, bool) {
	sum := Sum(img, cam, imageOpacity, cameraOpacity, invert)
	return clamp255(sum), sum > 255
}

// OverflowPattern returns the diagnostic value substituted for a channel
// whose additive sum overflowed. The pattern repeats every four pixels
// along a row-major pixel index: 0, 128, 255, 255. The last two steps
// (256 and 384) saturate.
func OverflowPattern(pixel int) uint8 {
	return clamp255((pixel & 3) * 128)
}

// Difference maps the signed difference img-cam from [-255, 255] back
// into [0, 255] as (img - cam + 255) / 2.
func Difference(img, cam uint8, r Rounding) uint8 {
	d := int(img) - int(cam) + 255
	if r == RoundHalfUp {
		return uint8((d + 1) >> 1)
	}
	return uint8(d >> 1)
}
