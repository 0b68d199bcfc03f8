package engine

import (
	"image"
	"math"
	"testing"

	"github.com/ivlev/zoomcam/internal/config"
	"github.com/ivlev/zoomcam/internal/project"
	"github.com/ivlev/zoomcam/internal/timeline"
	"github.com/ivlev/zoomcam/internal/zoom"
)

// stillSource serves a fixed in-memory frame.
type stillSource struct {
	img image.Image
}

func (s *stillSource) FrameCount() int { return 1 }
func (s *stillSource) Dimensions(int) (float64, float64, error) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy()), nil
}
func (s *stillSource) Render(int, int) (image.Image, error) { return s.img, nil }
func (s *stillSource) Close() error                         { return nil }

func testProject() *project.Project {
	return &project.Project{
		Version: project.CurrentVersion,
		Width:   320, Height: 180, FPS: 30,
		Segments: []timeline.Segment{
			{Start: 1.0, End: 2.0, Amount: 2.0, Mode: timeline.FocusManual, X: 0.5, Y: 0.5},
		},
	}
}

func TestGeometryOverrides(t *testing.T) {
	r := New(&config.Config{}, testProject(), nil)
	w, h, fps := r.geometry()
	if w != 320 || h != 180 || fps != 30 {
		t.Errorf("project geometry = %dx%d@%d", w, h, fps)
	}

	r.Config.Width, r.Config.Height, r.Config.FPS = 641, 480, 60
	w, h, fps = r.geometry()
	if w != 642 || h != 480 || fps != 60 {
		t.Errorf("override geometry = %dx%d@%d, odd widths must round up", w, h, fps)
	}
}

func TestPreviewFrame(t *testing.T) {
	src := &stillSource{img: image.NewRGBA(image.Rect(0, 0, 320, 180))}
	r := New(&config.Config{}, testProject(), src)

	frame, state, err := r.PreviewFrame(2.0)
	if err != nil {
		t.Fatalf("PreviewFrame failed: %v", err)
	}
	if frame.Bounds().Dx() != 320 || frame.Bounds().Dy() != 180 {
		t.Errorf("frame geometry = %v", frame.Bounds())
	}
	// End of the segment: fully zoomed.
	if math.Abs(state.T-1.0) > 1e-9 {
		t.Errorf("state.T = %v, want 1", state.T)
	}
}

func TestSampleCameraPath(t *testing.T) {
	p := testProject()
	opts := zoom.Options{Duration: 1.0}

	samples := SampleCameraPath(p, opts, 1.0, 10)
	if len(samples) == 0 {
		t.Fatal("expected samples")
	}

	// The derived timeline runs to the end of the zoom-out tail.
	last := samples[len(samples)-1]
	if last.Time < 3.0-1e-9 {
		t.Errorf("last sample at %.2fs, want the full tail (3s)", last.Time)
	}
	if math.Abs(last.Zoom.T) > 1e-9 {
		t.Errorf("tail should settle to t=0, got %v", last.Zoom.T)
	}

	// Samples at the segment end must be fully zoomed.
	for _, s := range samples {
		if s.Time == 2.0 && math.Abs(s.Zoom.T-1.0) > 1e-9 {
			t.Errorf("at segment end t = %v, want 1", s.Zoom.T)
		}
	}
}
