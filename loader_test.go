package tracer

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func redImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	return img
}

func TestFitRect(t *testing.T) {
	tests := []struct {
		name         string
		sw, sh, w, h int
		want         image.Rectangle
	}{
		{"same", 4, 4, 4, 4, image.Rect(0, 0, 4, 4)},
		{"wide into square", 4, 2, 8, 8, image.Rect(0, 2, 8, 6)},
		{"tall into square", 2, 4, 8, 8, image.Rect(2, 0, 6, 8)},
		{"upscale", 2, 1, 640, 480, image.Rect(0, 80, 640, 400)},
		{"extreme ratio keeps a pixel", 1000, 1, 10, 10, image.Rect(0, 4, 10, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fitRect(tt.sw, tt.sh, tt.w, tt.h); got != tt.want {
				t.Errorf("fitRect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLetterboxCentresWithBlackBars(t *testing.T) {
	pm, err := Letterbox(redImage(4, 2), 8, 8)
	if err != nil {
		t.Fatalf("Letterbox() = %v", err)
	}
	for _, y := range []int{0, 1, 6, 7} {
		for x := range 8 {
			if r, g, b, a := pm.RGBAAt(x, y); r != 0 || g != 0 || b != 0 || a != 255 {
				t.Fatalf("bar pixel (%d,%d) = %d,%d,%d,%d, want opaque black", x, y, r, g, b, a)
			}
		}
	}
	if r, g, b, a := pm.RGBAAt(4, 4); r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("centre = %d,%d,%d,%d, want opaque red", r, g, b, a)
	}
}

func TestLetterboxInvalid(t *testing.T) {
	if _, err := Letterbox(redImage(2, 2), 0, 5); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero canvas error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := Letterbox(image.NewNRGBA(image.Rectangle{}), 5, 5); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("empty source error = %v, want ErrInvalidDimensions", err)
	}
}

func TestDecodeReferenceFormats(t *testing.T) {
	src := redImage(4, 4)
	encoders := map[string]func(*bytes.Buffer) error{
		"png": func(b *bytes.Buffer) error { return png.Encode(b, src) },
		"bmp": func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
	}
	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := enc(&buf); err != nil {
				t.Fatalf("encode: %v", err)
			}
			pm, err := DecodeReference(&buf, 4, 4)
			if err != nil {
				t.Fatalf("DecodeReference() = %v", err)
			}
			if r, g, b, a := pm.RGBAAt(2, 2); r != 255 || g != 0 || b != 0 || a != 255 {
				t.Errorf("pixel = %d,%d,%d,%d, want opaque red", r, g, b, a)
			}
		})
	}
}

func TestDecodeReferenceErrors(t *testing.T) {
	if _, err := DecodeReference(strings.NewReader("not an image"), 4, 4); err == nil {
		t.Error("DecodeReference(garbage) = nil error")
	}
	if _, err := DecodeReference(strings.NewReader(""), -1, 4); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("negative width error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := LoadReference(filepath.Join(t.TempDir(), "missing.png"), 4, 4); err == nil {
		t.Error("LoadReference(missing) = nil error")
	}
}
