package timeline

import (
	"fmt"
	"sort"
)

// Normalize returns a copy of segments sorted ascending by start time and
// verifies the engine's preconditions: positive duration, magnification
// >= 1, manual focus inside the frame, no overlap between neighbors.
//
// This runs once at project load. The interpolator itself never
// validates — it is on the per-frame hot path and treats the segment
// list as trusted input.
func Normalize(segments []Segment) ([]Segment, error) {
	out := make([]Segment, len(segments))
	copy(out, segments)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})

	for i, s := range out {
		if s.End <= s.Start {
			return nil, fmt.Errorf("segment %d: end %.3f not after start %.3f", i, s.End, s.Start)
		}
		if s.Amount < 1 {
			return nil, fmt.Errorf("segment %d: amount %.3f below 1", i, s.Amount)
		}
		switch s.Mode {
		case FocusAuto:
		case FocusManual:
			if s.X < 0 || s.X > 1 || s.Y < 0 || s.Y > 1 {
				return nil, fmt.Errorf("segment %d: manual focus (%.3f, %.3f) outside frame", i, s.X, s.Y)
			}
		default:
			return nil, fmt.Errorf("segment %d: unknown focus mode %q", i, s.Mode)
		}
		if i > 0 && s.Start < out[i-1].End {
			return nil, fmt.Errorf("segment %d overlaps segment %d (%.3f < %.3f)", i, i-1, s.Start, out[i-1].End)
		}
	}

	return out, nil
}
