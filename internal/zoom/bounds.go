package zoom

import (
	"github.com/ivlev/zoomcam/internal/cursor"
	"github.com/ivlev/zoomcam/internal/geom"
	"github.com/ivlev/zoomcam/internal/timeline"
)

// Bounds is the normalized crop window for a frame: the region of the
// source that fills the output. Corners may extend past [0,1] while a
// zoom-out is still settling. Width always equals height (the zoom is
// isotropic), and both are positive.
type Bounds struct {
	TopLeft     geom.Point
	BottomRight geom.Point
}

// DefaultBounds is the no-zoom window covering exactly the full frame.
func DefaultBounds() Bounds {
	return Bounds{TopLeft: geom.Pt(0, 0), BottomRight: geom.Pt(1, 1)}
}

// Width returns the horizontal extent of the window.
func (b Bounds) Width() float64 {
	return b.BottomRight.X - b.TopLeft.X
}

// Height returns the vertical extent of the window.
func (b Bounds) Height() float64 {
	return b.BottomRight.Y - b.TopLeft.Y
}

// lerpBounds blends two windows corner by corner: a*(1-t) + b*t.
func lerpBounds(a, b Bounds, t float64) Bounds {
	return Bounds{
		TopLeft:     geom.Lerp(a.TopLeft, b.TopLeft, t),
		BottomRight: geom.Lerp(a.BottomRight, b.BottomRight, t),
	}
}

// boundsFor computes the fully-zoomed crop window of a segment at the
// given time. The focus point maps to itself in both the unzoomed and
// zoomed coordinate spaces — that is what makes it a zoom toward a point.
//
// Auto-mode segments re-resolve the cursor at the query time, so the
// window keeps tracking the cursor for as long as the segment (or its
// zoom-out tail) is on screen. Missing cursor data falls back to the
// frame center.
func boundsFor(seg *timeline.Segment, time float64, track *cursor.Track, res cursor.Resolver) Bounds {
	focus := geom.Pt(0.5, 0.5)
	switch seg.Mode {
	case timeline.FocusManual:
		focus = geom.Pt(seg.X, seg.Y)
	case timeline.FocusAuto:
		if p, ok := res.Resolve(track, time); ok {
			focus = p
		}
	}

	scaled := geom.Pt(focus.X*seg.Amount, focus.Y*seg.Amount)
	diff := scaled.Sub(focus)

	return Bounds{
		TopLeft:     geom.Pt(0, 0).Sub(diff),
		BottomRight: geom.Pt(seg.Amount, seg.Amount).Sub(diff),
	}
}
