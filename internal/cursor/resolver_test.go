package cursor

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPositionAt(t *testing.T) {
	track := &Track{Moves: []MoveEvent{
		{TimeMS: 1000, X: 0.0, Y: 0.0},
		{TimeMS: 2000, X: 1.0, Y: 0.5},
	}}

	if _, ok := track.PositionAt(0.5); ok {
		t.Error("no position should exist before the first sample")
	}

	p, ok := track.PositionAt(1.5)
	if !ok || !near(p.X, 0.5) || !near(p.Y, 0.25) {
		t.Errorf("midpoint lookup = %+v (%v)", p, ok)
	}

	p, ok = track.PositionAt(5.0)
	if !ok || !near(p.X, 1.0) || !near(p.Y, 0.5) {
		t.Errorf("after-last lookup should hold the last sample, got %+v (%v)", p, ok)
	}
}

func TestPositionAtEmpty(t *testing.T) {
	var track *Track
	if _, ok := track.PositionAt(1.0); ok {
		t.Error("nil track should report no position")
	}
	if _, ok := (&Track{}).PositionAt(1.0); ok {
		t.Error("empty track should report no position")
	}
}

func TestWindowedAverage(t *testing.T) {
	moves := []MoveEvent{
		{TimeMS: 900, X: 0.0, Y: 0.0},  // 100ms away, weight ~0
		{TimeMS: 1000, X: 0.4, Y: 0.4}, // at the query time, full weight
		{TimeMS: 1050, X: 0.8, Y: 0.8}, // 50ms away, half weight
		{TimeMS: 2000, X: 1.0, Y: 1.0}, // outside the window
	}

	p, ok := windowedAverage(moves, 1.0, 0.2)
	if !ok {
		t.Fatal("expected an in-window average")
	}
	// Triangular kernel with half-window 100ms: weights 0, 1, 0.5.
	want := (0.4*1.0 + 0.8*0.5) / 1.5
	if !near(p.X, want) || !near(p.Y, want) {
		t.Errorf("average = %+v, want %v", p, want)
	}
}

func TestWindowedAverageEmptyWindow(t *testing.T) {
	moves := []MoveEvent{{TimeMS: 0, X: 0.5, Y: 0.5}}
	if _, ok := windowedAverage(moves, 10.0, 0.2); ok {
		t.Error("no samples in window should report false")
	}
}

func TestBetweenNeighbors(t *testing.T) {
	moves := []MoveEvent{
		{TimeMS: 1000, X: 0.0, Y: 0.0},
		{TimeMS: 3000, X: 1.0, Y: 1.0},
	}

	p, ok := betweenNeighbors(moves, 1.5)
	if !ok || !near(p.X, 0.25) || !near(p.Y, 0.25) {
		t.Errorf("interpolated neighbor = %+v (%v)", p, ok)
	}

	// Only one side recorded: that side wins.
	p, ok = betweenNeighbors(moves, 0.5)
	if !ok || !near(p.X, 0.0) {
		t.Errorf("after-only fallback = %+v (%v)", p, ok)
	}
	p, ok = betweenNeighbors(moves, 4.0)
	if !ok || !near(p.X, 1.0) {
		t.Errorf("before-only fallback = %+v (%v)", p, ok)
	}

	if _, ok := betweenNeighbors(nil, 1.0); ok {
		t.Error("no samples at all should report false")
	}
}

func TestBetweenNeighborsIdenticalTimestamps(t *testing.T) {
	moves := []MoveEvent{
		{TimeMS: 1000, X: 0.2, Y: 0.2},
		{TimeMS: 1000, X: 0.8, Y: 0.8},
	}

	// Both samples share a timestamp; either position is acceptable but
	// the call must not divide by zero.
	p, ok := betweenNeighbors(moves, 1.0)
	if !ok {
		t.Fatal("expected a position")
	}
	if !near(p.X, 0.2) && !near(p.X, 0.8) {
		t.Errorf("unexpected position %+v", p)
	}
}

func TestResolveStrategyOrder(t *testing.T) {
	r := Resolver{Window: 0.2}

	// Dense samples around the query: the windowed average wins over the
	// exact lookup.
	track := &Track{Moves: []MoveEvent{
		{TimeMS: 950, X: 0.0, Y: 0.0},
		{TimeMS: 1000, X: 0.5, Y: 0.5},
		{TimeMS: 1050, X: 1.0, Y: 1.0},
	}}
	p, ok := r.Resolve(track, 1.0)
	if !ok {
		t.Fatal("expected a position")
	}
	if !near(p.X, 0.5) || !near(p.Y, 0.5) {
		t.Errorf("smoothed position = %+v, want symmetric average (0.5, 0.5)", p)
	}

	// Query before the first sample: no exact lookup, the neighbor
	// fallback returns the nearest recorded position.
	p, ok = r.Resolve(track, 0.1)
	if !ok || !near(p.X, 0.0) {
		t.Errorf("pre-track resolve = %+v (%v)", p, ok)
	}

	if _, ok := r.Resolve(nil, 1.0); ok {
		t.Error("nil track should resolve to nothing")
	}
}
