package timeline

// Locate finds the segment active at time and the most recently ended
// segment before it.
//
// A segment is active when Start < time <= End: the instant a segment
// starts still counts as "between segments" (the zoom-in has not begun),
// while its end instant is fully zoomed. Given non-overlapping segments
// at most one can be active.
//
// When a current segment exists, previous is the segment immediately
// before it in the list. When none is active, previous is the segment
// with the greatest End not after time.
func Locate(time float64, segments []Segment) (current, previous *Segment) {
	for i := range segments {
		if time > segments[i].Start && time <= segments[i].End {
			current = &segments[i]
			if i > 0 {
				previous = &segments[i-1]
			}
			return current, previous
		}
	}

	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i].End <= time {
			return nil, &segments[i]
		}
	}

	return nil, nil
}
