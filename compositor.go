package tracer

import (
	"fmt"

	"github.com/gogpu/tracer/internal/blend"
)

// Compositor combines a reference image with a camera frame.
//
// A Compositor holds only its options and is safe to reuse across
// frames. It allocates nothing per call: the camera pixmap is
// overwritten with the result and returned.
type Compositor struct {
	rounding Rounding
}

// NewCompositor creates a compositor. By default the difference mode
// rounds down.
func NewCompositor(opts ...CompositorOption) *Compositor {
	c := &Compositor{rounding: RoundFloor}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCompositor = NewCompositor()

// Composite combines img and camera with the default compositor.
// See (*Compositor).Composite.
func Composite(img, camera *Pixmap, cfg BlendConfig) (*Pixmap, error) {
	return defaultCompositor.Composite(img, camera, cfg)
}

// Composite writes the blend of img and camera into camera's storage and
// returns camera.
//
// The camera frame is first mirrored in place according to the flip
// flags. Then, for every R, G and B channel:
//
//	additive:   min(255, floor(img*ImageOpacity) + floor(cam'*CameraOpacity))
//	            where cam' = 255-cam if Invert is set
//	difference: (img - cam + 255) / 2
//
// In additive mode with OverflowMarking set, a channel whose sum
// exceeds 255 takes the value ((pixel mod 4) * 128) saturated to 255.
// pixel is the row-major pixel index y*width+x, not the column, so on
// canvases whose width is not a multiple of 4 the pattern shifts from
// one row to the next. Output alpha is always 255.
//
// img is never modified. Both buffers must have the same dimensions;
// otherwise ErrSizeMismatch is returned and neither buffer is touched.
func (c *Compositor) Composite(img, camera *Pixmap, cfg BlendConfig) (*Pixmap, error) {
	if img == nil || camera == nil {
		return nil, ErrNilBuffer
	}
	if !img.SameSize(camera) {
		return nil, fmt.Errorf("%w: image %dx%d, camera %dx%d",
			ErrSizeMismatch, img.width, img.height, camera.width, camera.height)
	}

	orient(camera, cfg)
	if cfg.Difference {
		k := blend.DifferenceKernel{Rounding: c.rounding}
		blend.Zip(camera.data, img.data, camera.data, k.Channel)
	} else {
		k := blend.AdditiveKernel{
			ImageOpacity:    cfg.ImageOpacity,
			CameraOpacity:   cfg.CameraOpacity,
			Invert:          cfg.Invert,
			OverflowMarking: cfg.OverflowMarking,
		}
		blend.Zip(camera.data, img.data, camera.data, k.Channel)
	}
	return camera, nil
}

// Passthrough prepares a camera frame for display when there is no
// reference to blend with: camera is mirrored in place according to the
// flip flags and its alpha is forced to 255. Opacities and blend modes
// are not applied.
func (c *Compositor) Passthrough(camera *Pixmap, cfg BlendConfig) (*Pixmap, error) {
	if camera == nil {
		return nil, ErrNilBuffer
	}
	orient(camera, cfg)
	blend.Opaque(camera.data)
	return camera, nil
}

func orient(camera *Pixmap, cfg BlendConfig) {
	if cfg.FlipHorizontal {
		camera.FlipHorizontal()
	}
	if cfg.FlipVertical {
		camera.FlipVertical()
	}
}
