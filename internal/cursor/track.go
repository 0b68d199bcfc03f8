package cursor

import (
	"sort"

	"github.com/ivlev/zoomcam/internal/geom"
)

// MoveEvent is one recorded cursor sample. TimeMS is milliseconds since
// the start of the recording; X/Y are normalized [0,1] frame coordinates.
type MoveEvent struct {
	TimeMS float64 `yaml:"time_ms"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

// Time returns the sample time in seconds.
func (e MoveEvent) Time() float64 {
	return e.TimeMS / 1000.0
}

// Point returns the sample position.
func (e MoveEvent) Point() geom.Point {
	return geom.Pt(e.X, e.Y)
}

// Track is an ordered recording of cursor movement. Capture and
// persistence happen elsewhere; the renderer only reads it back.
type Track struct {
	Moves []MoveEvent `yaml:"moves"`
}

// PositionAt returns the cursor position at time (seconds), interpolating
// between the two samples that bracket it. It reports false when the
// track is empty or time falls before the first sample — the recording
// carries no position for that instant.
func (t *Track) PositionAt(time float64) (geom.Point, bool) {
	if t == nil || len(t.Moves) == 0 {
		return geom.Point{}, false
	}

	ms := time * 1000.0
	moves := t.Moves
	if ms < moves[0].TimeMS {
		return geom.Point{}, false
	}
	if ms >= moves[len(moves)-1].TimeMS {
		return moves[len(moves)-1].Point(), true
	}

	// First sample strictly after ms; its predecessor brackets from below.
	i := sort.Search(len(moves), func(i int) bool {
		return moves[i].TimeMS > ms
	})
	prev, next := moves[i-1], moves[i]

	span := next.TimeMS - prev.TimeMS
	if span <= 0 {
		return prev.Point(), true
	}
	f := (ms - prev.TimeMS) / span
	return geom.Lerp(prev.Point(), next.Point(), f), true
}
