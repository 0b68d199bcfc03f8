// Package suggest drafts a zoom-segment timeline from the visual
// structure of a source frame: detected content regions become manual
// focus points visited in reading order.
package suggest

import (
	"fmt"
	"math"
	"sort"

	"github.com/ivlev/zoomcam/internal/analyzer"
	"github.com/ivlev/zoomcam/internal/timeline"
)

// Planner turns detected regions into a segment list.
type Planner struct {
	FrameWidth  int
	FrameHeight int

	MinDwell  float64 // shortest time spent zoomed on one region, seconds
	MaxDwell  float64
	MaxAmount float64 // magnification ceiling for suggestions
	Lead      float64 // settle time before the first zoom, seconds
	Spacing   float64 // gap between segments, seconds; >= the transition length keeps them independent
}

// NewPlanner returns a planner with dwell and spacing defaults that read
// well at normal playback speed.
func NewPlanner(frameWidth, frameHeight int) *Planner {
	return &Planner{
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		MinDwell:    1.5,
		MaxDwell:    4.0,
		MaxAmount:   3.0,
		Lead:        1.0,
		Spacing:     1.5,
	}
}

// Plan distributes totalDuration across the regions and emits one manual
// segment per region, sorted in reading order. The result satisfies the
// engine's preconditions by construction but is normalized anyway so a
// planner bug cannot produce a project that fails at load.
func (p *Planner) Plan(regions []analyzer.Region, totalDuration float64) ([]timeline.Segment, error) {
	if len(regions) == 0 {
		return nil, fmt.Errorf("no regions to plan around")
	}

	ordered := readingOrder(regions)
	dwell := p.dwellTime(totalDuration, len(ordered))

	segments := make([]timeline.Segment, 0, len(ordered))
	start := p.Lead
	for _, region := range ordered {
		cx := float64(region.Rect.Min.X+region.Rect.Dx()/2) / float64(p.FrameWidth)
		cy := float64(region.Rect.Min.Y+region.Rect.Dy()/2) / float64(p.FrameHeight)

		segments = append(segments, timeline.Segment{
			Start:  start,
			End:    start + dwell,
			Amount: p.amountFor(region),
			Mode:   timeline.FocusManual,
			X:      clamp01(cx),
			Y:      clamp01(cy),
		})
		start += dwell + p.Spacing
	}

	return timeline.Normalize(segments)
}

// readingOrder sorts regions top-to-bottom, then left-to-right within a
// row band.
func readingOrder(regions []analyzer.Region) []analyzer.Region {
	sorted := make([]analyzer.Region, len(regions))
	copy(sorted, regions)

	const rowBand = 20 // pixels considered the same row

	sort.Slice(sorted, func(i, j int) bool {
		dy := sorted[i].Rect.Min.Y - sorted[j].Rect.Min.Y
		if dy < -rowBand || dy > rowBand {
			return sorted[i].Rect.Min.Y < sorted[j].Rect.Min.Y
		}
		return sorted[i].Rect.Min.X < sorted[j].Rect.Min.X
	})

	return sorted
}

// dwellTime splits the available time evenly, clamped to the dwell range.
func (p *Planner) dwellTime(totalDuration float64, count int) float64 {
	available := totalDuration - p.Lead - float64(count)*p.Spacing
	if available <= 0 {
		available = totalDuration
	}

	dwell := available / float64(count)
	if dwell < p.MinDwell {
		dwell = p.MinDwell
	}
	if dwell > p.MaxDwell {
		dwell = p.MaxDwell
	}
	return dwell
}

// amountFor picks a magnification that fits the region in 90% of the
// frame, clamped to [1, MaxAmount].
func (p *Planner) amountFor(region analyzer.Region) float64 {
	w := float64(region.Rect.Dx())
	h := float64(region.Rect.Dy())
	if w <= 0 || h <= 0 {
		return 1.0
	}

	const padding = 0.9
	scaleX := float64(p.FrameWidth) * padding / w
	scaleY := float64(p.FrameHeight) * padding / h

	amount := math.Min(scaleX, scaleY)
	if amount < 1.0 {
		amount = 1.0
	}
	if amount > p.MaxAmount {
		amount = p.MaxAmount
	}
	return amount
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
