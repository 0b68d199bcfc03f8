package cursor

import (
	"math"

	"github.com/ivlev/zoomcam/internal/geom"
)

// DefaultWindow is the smoothing window for cursor resolution, in seconds.
const DefaultWindow = 0.15

// Resolver produces a smoothed cursor focus point for a query time.
// Strategies are tried in order:
//
//  1. If the track has a position at the query time, average the samples
//     inside the smoothing window with a triangular kernel (full weight
//     at the query time, zero at the window edges).
//  2. If the window holds no samples, fall back to the exact position.
//  3. If the track has no position at all for that time, interpolate
//     between the nearest samples on either side, or take whichever side
//     exists.
//
// A false result means the recording says nothing about this instant;
// callers fall back to the frame center.
type Resolver struct {
	Window float64 // seconds; <= 0 means DefaultWindow
}

func (r Resolver) window() float64 {
	if r.Window <= 0 {
		return DefaultWindow
	}
	return r.Window
}

// Resolve returns the smoothed cursor position at time (seconds).
func (r Resolver) Resolve(track *Track, time float64) (geom.Point, bool) {
	if track == nil {
		return geom.Point{}, false
	}

	if exact, ok := track.PositionAt(time); ok {
		if avg, ok := windowedAverage(track.Moves, time, r.window()); ok {
			return avg, true
		}
		return exact, true
	}

	return betweenNeighbors(track.Moves, time)
}

// windowedAverage computes the triangular-kernel weighted average of all
// samples within window/2 of time. Reports false when the window is empty
// or the weights cancel out.
func windowedAverage(moves []MoveEvent, time, window float64) (geom.Point, bool) {
	half := window / 2.0
	var sum geom.Point
	total := 0.0
	found := false

	for _, ev := range moves {
		dt := math.Abs(time - ev.Time())
		if dt > half {
			continue
		}
		w := 1.0 - math.Min(dt/half, 1.0)
		sum = sum.Add(ev.Point().Mul(w))
		total += w
		found = true
	}

	if !found || total <= 0 {
		return geom.Point{}, false
	}
	return sum.Mul(1.0 / total), true
}

// betweenNeighbors linearly interpolates between the nearest sample before
// time and the nearest after it. With only one side recorded that side
// wins; identical timestamps return the earlier sample unchanged.
func betweenNeighbors(moves []MoveEvent, time float64) (geom.Point, bool) {
	var before, after *MoveEvent

	for i := range moves {
		ev := &moves[i]
		if ev.Time() <= time {
			if before == nil || ev.Time() > before.Time() {
				before = ev
			}
		} else {
			if after == nil || ev.Time() < after.Time() {
				after = ev
			}
		}
	}

	switch {
	case before != nil && after != nil:
		span := after.Time() - before.Time()
		if span <= 0 {
			return before.Point(), true
		}
		f := (time - before.Time()) / span
		return geom.Lerp(before.Point(), after.Point(), f), true
	case before != nil:
		return before.Point(), true
	case after != nil:
		return after.Point(), true
	default:
		return geom.Point{}, false
	}
}
