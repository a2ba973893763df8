// Package blend implements the per-channel arithmetic that combines a
// reference image sample with a live camera sample.
//
// All functions operate on straight (non-premultiplied) 8-bit channel
// values and are pure. Opacities are fractions in [0, 1]; callers are
// expected to normalize UI percentages before reaching this package.
package blend

import "math"

// clamp255 clamps an int to the byte range [0, 255].
func clamp255(x int) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// Weight returns floor(v * opacity).
//
// The floor is applied per layer, before the layers are summed, so
// Weight(155, 0.5) is 77 and not 77.5.
func Weight(v uint8, opacity float64) int {
	return int(math.Floor(float64(v) * opacity))
}

// Invert returns 255 - v.
func Invert(v uint8) uint8 {
	return 255 - v
}
