package tracer

import "math"

// Point represents a 2D point or vector in device pixels.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return q.Sub(p).Length()
}

// AngleTo returns the direction of the vector from p to q in degrees,
// in the range [-180, 180]. Y grows downward, so positive angles turn
// clockwise on screen.
func (p Point) AngleTo(q Point) float64 {
	d := q.Sub(p)
	return degrees(math.Atan2(d.Y, d.X))
}

// finite reports whether both coordinates are finite numbers.
func (p Point) finite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
