package tracer

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func assertTransform(t *testing.T, got, want Transform) {
	t.Helper()
	if !approx(got.TranslateX, want.TranslateX) || !approx(got.TranslateY, want.TranslateY) ||
		!approx(got.Scale, want.Scale) || !approx(got.Rotation, want.Rotation) {
		t.Errorf("transform = %v, want %v", got, want)
	}
}

// solid returns a w x h pixmap filled with one color.
func solid(w, h int, r, g, b, a uint8) *Pixmap {
	pm := NewPixmap(w, h)
	pm.Fill(r, g, b, a)
	return pm
}

// gradient returns a w x h pixmap whose pixels are all distinct.
func gradient(w, h int) *Pixmap {
	pm := NewPixmap(w, h)
	for y := range h {
		for x := range w {
			pm.SetRGBA(x, y, uint8(x*10), uint8(y*10), uint8(x+y), 255)
		}
	}
	return pm
}
