package blend

// ChannelFunc combines one color channel of a reference sample with the
// matching channel of a camera sample. pixel is the row-major index of
// the pixel the samples belong to.
type ChannelFunc func(pixel int, img, cam uint8) uint8

// Zip walks two equally sized RGBA8 buffers pixel by pixel and writes
// fn(pixel, img, cam) for the R, G and B channels into dst. The alpha
// channel of every output pixel is forced to 255.
//
// dst and cam may alias; Zip reads each sample before overwriting it.
// Only whole pixels covered by all three buffers are visited. fn does
// not escape, so a method value such as k.Channel costs no allocation.
func Zip(dst, img, cam []byte, fn ChannelFunc) {
	n := min(len(dst), len(img), len(cam)) / 4
	for p := range n {
		i := p * 4
		dst[i+0] = fn(p, img[i+0], cam[i+0])
		dst[i+1] = fn(p, img[i+1], cam[i+1])
		dst[i+2] = fn(p, img[i+2], cam[i+2])
		dst[i+3] = 255
	}
}

// Opaque sets the alpha channel of every whole pixel in buf to 255.
func Opaque(buf []byte) {
	for i := 3; i < len(buf)/4*4; i += 4 {
		buf[i] = 255
	}
}

// AdditiveKernel is the additive/invert mode. With OverflowMarking set,
// an overflowing channel is replaced by OverflowPattern(pixel) instead
// of being saturated.
type AdditiveKernel struct {
	ImageOpacity    float64
	CameraOpacity   float64
	Invert          bool
	OverflowMarking bool
}

// Channel returns the additive blend of one channel.
func (a AdditiveKernel) Channel(pixel int, img, cam uint8) uint8 {
	v, over := Add(img, cam, a.ImageOpacity, a.CameraOpacity, a.Invert)
	if over && a.OverflowMarking {
		return OverflowPattern(pixel)
	}
	return v
}

// DifferenceKernel is the signed difference mode.
type DifferenceKernel struct {
	Rounding Rounding
}

// Channel returns the halved signed difference of one channel.
func (d DifferenceKernel) Channel(_ int, img, cam uint8) uint8 {
	return Difference(img, cam, d.Rounding)
}
