// Package tracer places a reference image over a live camera feed and
// blends the two so the reference can be traced by hand.
//
// # Overview
//
// The package has two independent halves:
//
//   - Engine turns one or two pointer contacts into an overlay Transform
//     (translation, uniform scale, rotation). One contact drags; two
//     contacts pinch to scale and twist to rotate.
//   - Compositor combines a reference Pixmap with a camera Pixmap under a
//     BlendConfig: an additive mix with optional camera inversion and
//     overflow marking, or a signed difference. Sampler calls it at a
//     fixed sampling interval, decoupled from the display refresh rate.
//
// # Quick Start
//
//	e := tracer.NewEngine()
//	e.Begin(1, 100, 100)
//	e.Move(1, 140, 120)
//	e.End(1)
//	t := e.Transform() // translate(40px, 20px) scale(1) rotate(0deg)
//
//	ref, _ := tracer.LoadReference("sketch.png", 640, 480)
//	frame := tracer.NewPixmap(640, 480) // filled by the camera
//	out, err := tracer.Composite(ref, frame, tracer.DefaultSettings().BlendConfig())
//
// # Coordinate System
//
// Uses device pixel coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees; with Y down, positive angles turn clockwise
//
// # Concurrency
//
// Engine is driven synchronously, one event at a time. Compositor is
// stateless. Sampler runs on a single goroutine; only its reference
// image and output are shared, and those are swapped atomically.
package tracer
