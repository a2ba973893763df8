package tracer

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	// Formats a reference image may arrive in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
)

// LoadReference reads an image file and letterboxes it onto a
// width x height canvas. See Letterbox.
func LoadReference(path string, width, height int) (*Pixmap, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("tracer: read reference: %w", err)
	}
	return DecodeReference(bytes.NewReader(data), width, height)
}

// DecodeReference decodes an image in any registered format (PNG, JPEG,
// GIF, BMP, TIFF, WebP) and letterboxes it onto a width x height canvas.
func DecodeReference(r io.Reader, width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("tracer: decode reference: %w", err)
	}
	Logger().Debug("tracer: reference decoded",
		"format", format, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	return Letterbox(img, width, height)
}

// Letterbox scales src to fit inside a width x height canvas while
// keeping its aspect ratio, centres it, and fills the bars with opaque
// black.
func Letterbox(src image.Image, width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	sb := src.Bounds()
	if sb.Empty() {
		return nil, fmt.Errorf("%w: empty source image", ErrInvalidDimensions)
	}

	pm := NewPixmap(width, height)
	pm.Fill(0, 0, 0, 255)

	target := fitRect(sb.Dx(), sb.Dy(), width, height)
	draw.ApproxBiLinear.Scale(pm.RGBAView(), target, src, sb, draw.Over, nil)
	return pm, nil
}

// fitRect returns the largest rectangle with the aspect ratio of a
// sw x sh image that fits centred inside a w x h canvas.
func fitRect(sw, sh, w, h int) image.Rectangle {
	fw, fh := w, sh*w/sw
	if fh > h {
		fw, fh = sw*h/sh, h
	}
	fw, fh = max(fw, 1), max(fh, 1)
	x0 := (w - fw) / 2
	y0 := (h - fh) / 2
	return image.Rect(x0, y0, x0+fw, y0+fh)
}
