package easing

import (
	"math"
	"testing"
)

func TestLinear(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 1} {
		if Linear(v) != v {
			t.Errorf("Linear(%v) = %v", v, Linear(v))
		}
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	for _, f := range []Function{ZoomIn, ZoomOut, CubicBezier(0.25, 0.1, 0.25, 1.0)} {
		if f(0) != 0 {
			t.Errorf("f(0) = %v, want 0", f(0))
		}
		if f(1) != 1 {
			t.Errorf("f(1) = %v, want 1", f(1))
		}
		if f(-0.5) != 0 || f(1.5) != 1 {
			t.Error("values outside [0,1] must clamp to the endpoints")
		}
	}
}

func TestCubicBezierMonotonic(t *testing.T) {
	for _, f := range []Function{ZoomIn, ZoomOut} {
		prev := f(0)
		for i := 1; i <= 100; i++ {
			v := f(float64(i) / 100)
			if v < prev-1e-9 {
				t.Fatalf("easing not monotonic at %v: %v < %v", float64(i)/100, v, prev)
			}
			prev = v
		}
	}
}

func TestCubicBezierSolvesCurve(t *testing.T) {
	// A curve with symmetric control points is its own inverse around the
	// midpoint, so f(0.5) must land on 0.5.
	f := CubicBezier(0.5, 0.0, 0.5, 1.0)
	if math.Abs(f(0.5)-0.5) > 1e-4 {
		t.Errorf("symmetric curve midpoint = %v, want 0.5", f(0.5))
	}

	// The identity control points give the identity easing.
	id := CubicBezier(1.0/3.0, 1.0/3.0, 2.0/3.0, 2.0/3.0)
	for _, v := range []float64{0.1, 0.3, 0.7, 0.9} {
		if math.Abs(id(v)-v) > 1e-4 {
			t.Errorf("identity curve at %v = %v", v, id(v))
		}
	}
}

func TestZoomInStartsFast(t *testing.T) {
	// The zoom-in curve front-loads its motion relative to linear.
	if ZoomIn(0.3) <= 0.3 {
		t.Errorf("ZoomIn(0.3) = %v, expected above linear", ZoomIn(0.3))
	}
}
