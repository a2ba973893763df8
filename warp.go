package tracer

import (
	"fmt"

	"golang.org/x/image/draw"
)

// WarpReference resamples src into dst under the gesture transform t,
// with the transform origin at the centre of the canvas. dst is cleared
// to transparent black first, so pixels the overlay does not cover stay
// empty. This is how the reference is placed into frame space before
// compositing.
//
// dst and src must have the same dimensions.
func WarpReference(dst, src *Pixmap, t Transform) error {
	if dst == nil || src == nil {
		return ErrNilBuffer
	}
	if !dst.SameSize(src) {
		return fmt.Errorf("%w: destination %dx%d, reference %dx%d",
			ErrSizeMismatch, dst.width, dst.height, src.width, src.height)
	}

	clear(dst.data)

	cx, cy := float64(src.width)/2, float64(src.height)/2
	m := t.Matrix(cx, cy)
	if m.IsIdentity() {
		copy(dst.data, src.data)
		return nil
	}
	if _, ok := m.Invert(); !ok {
		// Collapsed overlay: nothing is covered.
		return nil
	}

	draw.BiLinear.Transform(dst.RGBAView(), m.Aff3(), src.RGBAView(), src.Bounds(), draw.Src, nil)
	return nil
}
