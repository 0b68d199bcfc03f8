package timeline

// FocusMode selects how a segment picks the point that stays fixed under
// magnification.
type FocusMode string

const (
	// FocusAuto follows the recorded cursor track.
	FocusAuto FocusMode = "auto"
	// FocusManual pins the focus to the segment's X/Y point.
	FocusManual FocusMode = "manual"
)

// Segment is a timeline interval with a magnification factor and a focus
// mode. Times are seconds on the video timeline, Amount is dimensionless
// (1.0 = no zoom). X/Y are the manual focus point in normalized [0,1]
// frame coordinates and are ignored in auto mode.
//
// The engine assumes segment lists are sorted ascending by Start and
// mutually non-overlapping. Normalize enforces this at load time; the
// per-frame path does not re-check.
type Segment struct {
	Start  float64   `yaml:"start"`
	End    float64   `yaml:"end"`
	Amount float64   `yaml:"amount"`
	Mode   FocusMode `yaml:"mode"`
	X      float64   `yaml:"x,omitempty"`
	Y      float64   `yaml:"y,omitempty"`
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}
