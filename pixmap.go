package tracer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Pixmap is a rectangular buffer of straight (non-premultiplied) RGBA8
// samples, stored row-major with 4 bytes per pixel and no padding.
//
// Reference images, camera frames and composited output are all
// Pixmaps of the working canvas size.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new zeroed pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// PixmapFromRaw wraps existing RGBA8 data without copying. The caller
// keeps ownership of data and must not resize it while the pixmap is
// in use.
func PixmapFromRaw(data []uint8, width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	need := width * height * 4
	if len(data) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrDataTooSmall, len(data), need)
	}
	return &Pixmap{width: width, height: height, data: data[:need]}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SameSize reports whether p and q have identical dimensions.
func (p *Pixmap) SameSize(q *Pixmap) bool {
	return p.width == q.width && p.height == q.height
}

// SetRGBA sets a single pixel. Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetRGBA(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// RGBAAt returns a single pixel. Out-of-bounds coordinates read as
// transparent black.
func (p *Pixmap) RGBAAt(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]
}

// Fill sets every pixel to the same color.
func (p *Pixmap) Fill(r, g, b, a uint8) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// FlipHorizontal mirrors the pixmap in place so that pixel (x, y) moves
// to (width-1-x, y).
func (p *Pixmap) FlipHorizontal() {
	stride := p.width * 4
	for y := range p.height {
		row := p.data[y*stride : (y+1)*stride]
		for l, r := 0, p.width-1; l < r; l, r = l+1, r-1 {
			li, ri := l*4, r*4
			row[li+0], row[ri+0] = row[ri+0], row[li+0]
			row[li+1], row[ri+1] = row[ri+1], row[li+1]
			row[li+2], row[ri+2] = row[ri+2], row[li+2]
			row[li+3], row[ri+3] = row[ri+3], row[li+3]
		}
	}
}

// FlipVertical mirrors the pixmap in place so that pixel (x, y) moves
// to (x, height-1-y).
func (p *Pixmap) FlipVertical() {
	stride := p.width * 4
	for t, b := 0, p.height-1; t < b; t, b = t+1, b-1 {
		top := p.data[t*stride : (t+1)*stride]
		bottom := p.data[b*stride : (b+1)*stride]
		for i := range top {
			top[i], bottom[i] = bottom[i], top[i]
		}
	}
}

// RGBAView returns an *image.RGBA that shares storage with the pixmap.
// Writes through the view are visible in the pixmap and vice versa.
func (p *Pixmap) RGBAView() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// ToImage converts the pixmap to a new image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())

	if src, ok := img.(*image.NRGBA); ok {
		copyRows(pm, src.Pix, src.Stride, src.PixOffset(bounds.Min.X, bounds.Min.Y))
		return pm
	}
	// Premultiplied and straight alpha only agree for opaque images.
	if src, ok := img.(*image.RGBA); ok && src.Opaque() {
		copyRows(pm, src.Pix, src.Stride, src.PixOffset(bounds.Min.X, bounds.Min.Y))
		return pm
	}

	dst := &image.NRGBA{Pix: pm.data, Stride: pm.width * 4, Rect: image.Rect(0, 0, pm.width, pm.height)}
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return pm
}

func copyRows(pm *Pixmap, pix []uint8, stride, offset int) {
	rowBytes := pm.width * 4
	for y := range pm.height {
		start := offset + y*stride
		copy(pm.data[y*rowBytes:(y+1)*rowBytes], pix[start:start+rowBytes])
	}
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	r, g, b, a := p.RGBAAt(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
