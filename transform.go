package tracer

import (
	"fmt"
	"math"
)

// Transform is the overlay placement produced by the gesture engine:
// a translation in device pixels, a positive uniform scale and a
// rotation in degrees.
//
// Rotation is never wrapped by the engine and may exceed ±360; use
// Normalized or NormalizeDegrees when the value is shown to a user.
type Transform struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
	Rotation   float64
}

// IdentityTransform returns the placement of a freshly loaded reference
// image: no translation, unit scale, no rotation.
func IdentityTransform() Transform {
	return Transform{Scale: 1}
}

// Translation returns the translation component as a Point.
func (t Transform) Translation() Point {
	return Point{X: t.TranslateX, Y: t.TranslateY}
}

// Normalized returns a copy of t with Rotation mapped into (-180, 180].
func (t Transform) Normalized() Transform {
	t.Rotation = NormalizeDegrees(t.Rotation)
	return t
}

// Matrix returns the affine matrix placing the overlay on screen, with
// the transform origin at (cx, cy), usually the overlay centre.
// The overlay is translated, then scaled, then rotated:
//
//	T(cx,cy) · T(tx,ty) · S(s) · R(r) · T(-cx,-cy)
func (t Transform) Matrix(cx, cy float64) Matrix {
	return Translate(cx+t.TranslateX, cy+t.TranslateY).
		Multiply(Scale(t.Scale)).
		Multiply(Rotate(t.Rotation)).
		Multiply(Translate(-cx, -cy))
}

// Place maps a point of the reference image into canvas coordinates
// for a w x h canvas, with the transform origin at the canvas centre.
func (t Transform) Place(p Point, w, h float64) Point {
	return t.Matrix(w/2, h/2).TransformPoint(p)
}

// Locate maps a canvas point back to the reference image point shown
// there. It reports false when the overlay has collapsed too far to be
// inverted.
func (t Transform) Locate(p Point, w, h float64) (Point, bool) {
	inv, ok := t.Matrix(w/2, h/2).Invert()
	if !ok {
		return Point{}, false
	}
	return inv.TransformPoint(p), true
}

// String formats the transform the way a CSS transform would be written.
func (t Transform) String() string {
	return fmt.Sprintf("translate(%gpx, %gpx) scale(%g) rotate(%gdeg)",
		t.TranslateX, t.TranslateY, t.Scale, t.Rotation)
}

// NormalizeDegrees maps an angle in degrees into (-180, 180].
// The result is congruent to deg modulo 360. Non-finite input is
// returned unchanged.
func NormalizeDegrees(deg float64) float64 {
	if !isFinite(deg) {
		return deg
	}
	r := math.Mod(deg, 360)
	if r <= -180 {
		r += 360
	} else if r > 180 {
		r -= 360
	}
	return r
}
