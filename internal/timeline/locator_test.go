package timeline

import "testing"

var locatorSegments = []Segment{
	{Start: 1.0, End: 2.0, Amount: 2.0, Mode: FocusManual, X: 0.5, Y: 0.5},
	{Start: 3.0, End: 4.0, Amount: 3.0, Mode: FocusManual, X: 0.5, Y: 0.5},
	{Start: 4.0, End: 5.0, Amount: 4.0, Mode: FocusManual, X: 0.5, Y: 0.5},
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name     string
		time     float64
		current  int // index into locatorSegments, -1 for none
		previous int
	}{
		{"before everything", 0.5, -1, -1},
		{"exactly at start is not inside", 1.0, -1, -1},
		{"inside first", 1.5, 0, -1},
		{"end is inclusive", 2.0, 0, -1},
		{"in the gap", 2.5, -1, 0},
		{"second picks first as previous", 3.5, 1, 0},
		{"shared boundary belongs to the earlier segment", 4.0, 1, 0},
		{"third picks second by index", 4.5, 2, 1},
		{"after everything", 9.0, -1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, previous := Locate(tt.time, locatorSegments)
			if got := indexOf(current); got != tt.current {
				t.Errorf("current = %d, want %d", got, tt.current)
			}
			if got := indexOf(previous); got != tt.previous {
				t.Errorf("previous = %d, want %d", got, tt.previous)
			}
		})
	}
}

func TestLocateEmpty(t *testing.T) {
	current, previous := Locate(1.0, nil)
	if current != nil || previous != nil {
		t.Errorf("empty list should locate nothing, got %v, %v", current, previous)
	}
}

func indexOf(s *Segment) int {
	if s == nil {
		return -1
	}
	for i := range locatorSegments {
		if s == &locatorSegments[i] {
			return i
		}
	}
	return -1
}
