package zoom

import (
	"github.com/ivlev/zoomcam/internal/cursor"
	"github.com/ivlev/zoomcam/internal/easing"
	"github.com/ivlev/zoomcam/internal/geom"
	"github.com/ivlev/zoomcam/internal/timeline"
)

// DefaultDuration is the length of a zoom-in or zoom-out transition in
// seconds. Fixed per project, not per segment.
const DefaultDuration = 1.0

// Options carries the interpolator tunables. All fields have working
// defaults so the zero value behaves like the production renderer;
// tests inject identity easing and compressed durations.
type Options struct {
	Duration float64         // transition length, seconds; <= 0 means DefaultDuration
	Window   float64         // cursor smoothing window, seconds; <= 0 means cursor.DefaultWindow
	EaseIn   easing.Function // nil means easing.ZoomIn
	EaseOut  easing.Function // nil means easing.ZoomOut
}

func (o Options) fill() Options {
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	if o.EaseIn == nil {
		o.EaseIn = easing.ZoomIn
	}
	if o.EaseOut == nil {
		o.EaseOut = easing.ZoomOut
	}
	return o
}

// InterpolatedZoom is the camera state at one instant: T is how far the
// current transition has progressed toward its own target magnification
// (not a global measure), Bounds is the crop window to render.
type InterpolatedZoom struct {
	T      float64
	Bounds Bounds
}

// DisplayAmount is the multiplier applied to the display width/height.
func (z InterpolatedZoom) DisplayAmount() float64 {
	return z.Bounds.Width()
}

// Interpolate computes the camera state at time for an ordered,
// non-overlapping segment list. It is a pure function of its inputs:
// no state survives between calls and identical inputs produce identical
// outputs, so frames may be evaluated concurrently and in any order.
func Interpolate(time float64, segments []timeline.Segment, track *cursor.Track, opts Options) InterpolatedZoom {
	return interpolate(time, segments, track, opts.fill())
}

func interpolate(time float64, segments []timeline.Segment, track *cursor.Track, opts Options) InterpolatedZoom {
	res := cursor.Resolver{Window: opts.Window}
	def := DefaultBounds()

	current, prev := timeline.Locate(time, segments)

	switch {
	case prev != nil && current == nil:
		// Zooming back out after the segment ended.
		zoomT := opts.EaseOut(geom.Clamp01((time - prev.End) / opts.Duration))
		return InterpolatedZoom{
			T:      1.0 - zoomT,
			Bounds: lerpBounds(boundsFor(prev, time, track, res), def, zoomT),
		}

	case prev == nil && current != nil:
		// Zooming in with nothing before.
		zoomT := opts.EaseIn(geom.Clamp01((time - current.Start) / opts.Duration))
		return InterpolatedZoom{
			T:      zoomT,
			Bounds: lerpBounds(def, boundsFor(current, time, track, res), zoomT),
		}

	case prev != nil && current != nil:
		prevBounds := boundsFor(prev, time, track, res)
		curBounds := boundsFor(current, time, track, res)
		zoomT := opts.EaseIn(geom.Clamp01((time - current.Start) / opts.Duration))
		gap := current.Start - prev.End

		switch {
		case gap == 0:
			// Contiguous segments: the camera never returns to baseline,
			// so progress holds at 1 and only the window blends over.
			return InterpolatedZoom{
				T:      1.0,
				Bounds: lerpBounds(prevBounds, curBounds, zoomT),
			}

		case gap < opts.Duration:
			// The zoom-out from prev was interrupted by this segment.
			// Re-evaluate the state at the instant the segment began and
			// resume the zoom-in from there instead of from baseline.
			min := interpolate(current.Start, segments, track, opts)
			return InterpolatedZoom{
				T:      min.T*(1.0-zoomT) + zoomT,
				Bounds: lerpBounds(min.Bounds, curBounds, zoomT),
			}

		default:
			// Fully separated: prev finished settling long ago.
			return InterpolatedZoom{
				T:      zoomT,
				Bounds: lerpBounds(def, curBounds, zoomT),
			}
		}

	default:
		return InterpolatedZoom{T: 0, Bounds: def}
	}
}
