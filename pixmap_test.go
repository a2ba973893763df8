package tracer

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestPixmapFromRaw(t *testing.T) {
	data := make([]uint8, 2*3*4+8)
	pm, err := PixmapFromRaw(data, 2, 3)
	if err != nil {
		t.Fatalf("PixmapFromRaw() = %v", err)
	}
	if len(pm.Data()) != 24 {
		t.Errorf("len(Data()) = %d, want 24", len(pm.Data()))
	}
	pm.SetRGBA(1, 2, 9, 9, 9, 9)
	if data[(2*2+1)*4] != 9 {
		t.Error("PixmapFromRaw copied the data instead of wrapping it")
	}

	if _, err := PixmapFromRaw(data, 0, 3); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := PixmapFromRaw(data[:10], 2, 3); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short data error = %v, want ErrDataTooSmall", err)
	}
}

func TestPixmapSetGetOutOfBounds(t *testing.T) {
	pm := solid(4, 4, 1, 2, 3, 4)
	orig := pm.Clone()

	for _, c := range []struct{ x, y int }{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		pm.SetRGBA(c.x, c.y, 255, 255, 255, 255)
		if r, g, b, a := pm.RGBAAt(c.x, c.y); r|g|b|a != 0 {
			t.Errorf("RGBAAt(%d, %d) = %d,%d,%d,%d, want zeros", c.x, c.y, r, g, b, a)
		}
	}
	for i, v := range pm.Data() {
		if v != orig.Data()[i] {
			t.Fatalf("out-of-bounds write modified byte %d", i)
		}
	}
}

func TestPixmapFlipHorizontal(t *testing.T) {
	for _, w := range []int{1, 4, 5} {
		src := gradient(w, 3)
		pm := src.Clone()
		pm.FlipHorizontal()
		for y := range 3 {
			for x := range w {
				r, g, b, a := pm.RGBAAt(x, y)
				wr, wg, wb, wa := src.RGBAAt(w-1-x, y)
				if r != wr || g != wg || b != wb || a != wa {
					t.Fatalf("width %d: pixel (%d,%d) not mirrored", w, x, y)
				}
			}
		}
	}
}

func TestPixmapFlipVertical(t *testing.T) {
	for _, h := range []int{1, 4, 5} {
		src := gradient(3, h)
		pm := src.Clone()
		pm.FlipVertical()
		for y := range h {
			for x := range 3 {
				r, g, b, _ := pm.RGBAAt(x, y)
				wr, wg, wb, _ := src.RGBAAt(x, h-1-y)
				if r != wr || g != wg || b != wb {
					t.Fatalf("height %d: pixel (%d,%d) not mirrored", h, x, y)
				}
			}
		}
	}
}

func TestPixmapBothFlipsRotate180(t *testing.T) {
	src := gradient(5, 4)
	pm := src.Clone()
	pm.FlipHorizontal()
	pm.FlipVertical()
	for y := range 4 {
		for x := range 5 {
			r, g, b, _ := pm.RGBAAt(x, y)
			wr, wg, wb, _ := src.RGBAAt(4-x, 3-y)
			if r != wr || g != wg || b != wb {
				t.Fatalf("pixel (%d,%d) is not the 180° rotation", x, y)
			}
		}
	}
}

func TestPixmapCloneIsIndependent(t *testing.T) {
	pm := solid(2, 2, 10, 10, 10, 255)
	c := pm.Clone()
	c.SetRGBA(0, 0, 99, 99, 99, 99)
	if r, _, _, _ := pm.RGBAAt(0, 0); r != 10 {
		t.Error("modifying the clone changed the original")
	}
}

func TestPixmapRGBAViewSharesStorage(t *testing.T) {
	pm := NewPixmap(3, 2)
	v := pm.RGBAView()
	v.SetRGBA(2, 1, color.RGBA{R: 7, G: 8, B: 9, A: 255})
	if r, g, b, a := pm.RGBAAt(2, 1); r != 7 || g != 8 || b != 9 || a != 255 {
		t.Errorf("RGBAAt = %d,%d,%d,%d, want 7,8,9,255", r, g, b, a)
	}
}

func TestFromImage(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	nrgba.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	opaqueRGBA := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range opaqueRGBA.Pix {
		opaqueRGBA.Pix[i] = 255
	}
	opaqueRGBA.SetRGBA(1, 0, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 0, color.Gray{Y: 77})

	tests := []struct {
		name string
		img  image.Image
		want [4]uint8
	}{
		{"nrgba", nrgba, [4]uint8{200, 100, 50, 128}},
		{"opaque rgba", opaqueRGBA, [4]uint8{200, 100, 50, 255}},
		{"gray", gray, [4]uint8{77, 77, 77, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := FromImage(tt.img)
			if pm.Width() != 2 || pm.Height() != 2 {
				t.Fatalf("size = %dx%d, want 2x2", pm.Width(), pm.Height())
			}
			r, g, b, a := pm.RGBAAt(1, 0)
			if got := [4]uint8{r, g, b, a}; got != tt.want {
				t.Errorf("RGBAAt(1, 0) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromImageSubImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(2, 3, color.NRGBA{R: 11, A: 255})
	pm := FromImage(img.SubImage(image.Rect(1, 1, 4, 4)))
	if r, _, _, _ := pm.RGBAAt(1, 2); r != 11 {
		t.Errorf("sub-image pixel R = %d, want 11", r)
	}
}

func TestPixmapImageInterface(t *testing.T) {
	pm := solid(3, 2, 1, 2, 3, 4)
	var img image.Image = pm
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	if got := img.At(0, 0); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("At(0, 0) = %v", got)
	}
	if img.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBAModel")
	}
}

func TestPixmapSavePNGRoundTrip(t *testing.T) {
	pm := gradient(6, 4)
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}

	loaded, err := LoadReference(path, 6, 4)
	if err != nil {
		t.Fatalf("LoadReference() = %v", err)
	}
	for i, v := range pm.Data() {
		if loaded.Data()[i] != v {
			t.Fatalf("byte %d = %d, want %d", i, loaded.Data()[i], v)
		}
	}
}
