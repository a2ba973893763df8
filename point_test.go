package tracer

import (
	"math"
	"testing"
)

func TestPointDistance(t *testing.T) {
	tests := []struct {
		a, b Point
		want float64
	}{
		{Pt(0, 0), Pt(3, 4), 5},
		{Pt(3, 4), Pt(0, 0), 5},
		{Pt(1, 1), Pt(1, 1), 0},
		{Pt(-2, 0), Pt(2, 0), 4},
	}
	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); !approx(got, tt.want) {
			t.Errorf("%v.Distance(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPointAngleTo(t *testing.T) {
	tests := []struct {
		name string
		to   Point
		want float64
	}{
		{"right", Pt(1, 0), 0},
		{"down", Pt(0, 1), 90},
		{"left", Pt(-1, 0), 180},
		{"up", Pt(0, -1), -90},
		{"diagonal", Pt(1, 1), 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pt(0, 0).AngleTo(tt.to); !approx(got, tt.want) {
				t.Errorf("AngleTo(%v) = %v, want %v", tt.to, got, tt.want)
			}
		})
	}
}

func TestPointFinite(t *testing.T) {
	if !Pt(1, 2).finite() {
		t.Error("Pt(1, 2) should be finite")
	}
	if Pt(math.NaN(), 0).finite() || Pt(0, math.Inf(1)).finite() {
		t.Error("NaN and Inf points should not be finite")
	}
}
