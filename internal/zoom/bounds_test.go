package zoom

import (
	"testing"

	"github.com/ivlev/zoomcam/internal/cursor"
	"github.com/ivlev/zoomcam/internal/timeline"
)

func TestBoundsForManualFocus(t *testing.T) {
	seg := &timeline.Segment{Start: 0, End: 1, Amount: 2.0, Mode: timeline.FocusManual, X: 0.5, Y: 0.5}

	b := boundsFor(seg, 0.5, nil, cursor.Resolver{})
	want := bounds(-0.5, -0.5, 1.5, 1.5)
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}

	// The focus point stays fixed: its position inside the window,
	// rescaled by the magnification, lands back on itself.
	fx := (0.5 - b.TopLeft.X) / b.Width()
	fy := (0.5 - b.TopLeft.Y) / b.Height()
	if !near(fx, 0.5) || !near(fy, 0.5) {
		t.Errorf("focus moved under magnification: (%v, %v)", fx, fy)
	}
}

func TestBoundsForCornerFocus(t *testing.T) {
	seg := &timeline.Segment{Start: 0, End: 1, Amount: 4.0, Mode: timeline.FocusManual, X: 0.0, Y: 0.0}

	b := boundsFor(seg, 0.5, nil, cursor.Resolver{})
	if b != bounds(0, 0, 4, 4) {
		t.Errorf("corner focus bounds = %+v", b)
	}
}

func TestBoundsForAutoWithoutTrack(t *testing.T) {
	seg := &timeline.Segment{Start: 0, End: 1, Amount: 2.0, Mode: timeline.FocusAuto}

	// No cursor data: auto mode falls back to the frame center.
	b := boundsFor(seg, 0.5, nil, cursor.Resolver{})
	if b != bounds(-0.5, -0.5, 1.5, 1.5) {
		t.Errorf("auto fallback bounds = %+v", b)
	}
}

func TestBoundsForAutoTracksCursor(t *testing.T) {
	track := &cursor.Track{Moves: []cursor.MoveEvent{
		{TimeMS: 0, X: 0.0, Y: 0.0},
		{TimeMS: 1000, X: 1.0, Y: 1.0},
	}}
	seg := &timeline.Segment{Start: 0, End: 2, Amount: 2.0, Mode: timeline.FocusAuto}

	b0 := boundsFor(seg, 0.0, track, cursor.Resolver{})
	b1 := boundsFor(seg, 1.0, track, cursor.Resolver{})
	if b0 == b1 {
		t.Error("auto bounds should follow the cursor between samples")
	}
	if !near(b1.Width(), 2.0) || !near(b1.Height(), 2.0) {
		t.Errorf("window must stay isotropic at the segment amount: %+v", b1)
	}
}
