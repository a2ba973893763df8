// Command tracedemo places a reference image over a still camera frame
// the way the live tracer would, and writes the composited frame to a
// PNG file.
//
// Overlay placement comes from a pointer-event script replayed through
// the gesture engine, optionally followed by direct scale and rotation
// overrides.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/tracer"
)

func main() {
	var (
		reference = flag.String("reference", "", "reference image to trace (required)")
		camera    = flag.String("camera", "", "camera frame image (required)")
		output    = flag.String("output", "trace.png", "output file")
		gestures  = flag.String("gestures", "", "pointer-event script to replay")
		width     = flag.Int("width", 640, "canvas width")
		height    = flag.Int("height", 480, "canvas height")

		imageOpacity  = flag.Int("image-opacity", 50, "reference opacity in percent")
		cameraOpacity = flag.Int("camera-opacity", 100, "camera opacity in percent")
		invert        = flag.Bool("invert", false, "invert camera colors")
		difference    = flag.Bool("difference", false, "use the signed difference mode")
		overflow      = flag.Bool("overflow", false, "mark saturated channels with a pattern")
		flipH         = flag.Bool("flip-h", false, "mirror the camera horizontally")
		flipV         = flag.Bool("flip-v", false, "mirror the camera vertically")
		roundHalfUp   = flag.Bool("round-half-up", false, "round the difference mode half up instead of down")

		scale    = flag.Float64("scale", 0, "override scale after the gestures (0 keeps it)")
		rotation = flag.Float64("rotation", 0, "override rotation in degrees after the gestures")
		lang     = flag.String("lang", "en", "language for the printed transform")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *reference == "" || *camera == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		tracer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ref, err := tracer.LoadReference(*reference, *width, *height)
	if err != nil {
		log.Fatalf("Failed to load reference: %v", err)
	}
	frame, err := tracer.LoadReference(*camera, *width, *height)
	if err != nil {
		log.Fatalf("Failed to load camera frame: %v", err)
	}

	engine := tracer.NewEngine()
	if *gestures != "" {
		if err := replay(engine, *gestures); err != nil {
			log.Fatalf("Failed to replay gestures: %v", err)
		}
	}
	if *scale != 0 {
		engine.SetScale(*scale)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "rotation" {
			engine.SetRotation(*rotation)
		}
	})

	settings := tracer.Settings{
		ImageOpacity:    *imageOpacity,
		CameraOpacity:   *cameraOpacity,
		Invert:          *invert,
		Difference:      *difference,
		OverflowMarking: *overflow,
		FlipHorizontal:  *flipH,
		FlipVertical:    *flipV,
		FPS:             tracer.DefaultFPS,
	}
	var opts []tracer.CompositorOption
	if *roundHalfUp {
		opts = append(opts, tracer.WithDifferenceRounding(tracer.RoundHalfUp))
	}

	t := engine.Transform()
	placed := tracer.NewPixmap(*width, *height)
	if err := tracer.WarpReference(placed, ref, t); err != nil {
		log.Fatalf("Failed to place reference: %v", err)
	}

	sampler := tracer.NewSampler(
		tracer.FrameSourceFunc(func() *tracer.Pixmap { return frame }),
		settings,
		tracer.WithCompositor(tracer.NewCompositor(opts...)),
	)
	sampler.SetReference(placed)
	out, ok := sampler.Tick(time.Now())
	if !ok {
		log.Fatal("Failed to composite frame")
	}

	if err := out.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	n := t.Normalized()
	p := message.NewPrinter(language.Make(*lang))
	p.Printf("translate (%.1f, %.1f) px, scale %.3f, rotation %.1f° (%.1f° normalized)\n",
		t.TranslateX, t.TranslateY, t.Scale, t.Rotation, n.Rotation)
	w, h := float64(*width), float64(*height)
	for _, c := range []tracer.Point{tracer.Pt(0, 0), tracer.Pt(w, 0), tracer.Pt(w, h), tracer.Pt(0, h)} {
		q := t.Place(c, w, h)
		p.Printf("corner (%.0f, %.0f) -> (%.1f, %.1f)\n", c.X, c.Y, q.X, q.Y)
	}
	if q, ok := t.Locate(tracer.Pt(w/2, h/2), w, h); ok {
		p.Printf("canvas centre shows reference (%.1f, %.1f)\n", q.X, q.Y)
	}
	log.Printf("Trace saved to %s (%dx%d)\n", *output, *width, *height)
}

func replay(e *tracer.Engine, path string) error {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	events, err := parseScript(f)
	if err != nil {
		return err
	}
	for _, ev := range events {
		e.Handle(ev)
	}
	return nil
}
