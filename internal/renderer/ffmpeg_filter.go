package renderer

import (
	"fmt"
	"strings"

	"github.com/ivlev/zoomcam/internal/zoom"
)

// Sample is one evaluated camera state on the output frame grid, used to
// drive the FFmpeg-filter render path.
type Sample struct {
	Time float64
	Zoom zoom.InterpolatedZoom
}

// GenerateZoomPanFilter builds a zoompan filter whose z/x/y expressions
// follow the sampled camera path piecewise-linearly. Eased transitions
// come out faithful as long as the samples are dense enough (a handful
// per transition); the compositor path evaluates the exact curve instead.
func GenerateZoomPanFilter(samples []Sample, fps, width, height int) string {
	if len(samples) == 0 {
		return ""
	}

	zExpr := buildExpression(samples, fps, func(s Sample) float64 {
		w := s.Zoom.Bounds.Width()
		if w < 1 {
			w = 1
		}
		return w
	})
	xExpr := buildExpression(samples, fps, func(s Sample) float64 {
		return ViewportFor(s.Zoom.Bounds).X * float64(width)
	})
	yExpr := buildExpression(samples, fps, func(s Sample) float64 {
		return ViewportFor(s.Zoom.Bounds).Y * float64(height)
	})

	return fmt.Sprintf("zoompan=z='%s':x='%s':y='%s':d=1:s=%dx%d:fps=%d",
		zExpr, xExpr, yExpr, width, height, fps)
}

// buildExpression emits a piecewise-linear frame-indexed expression:
// between consecutive samples the value ramps linearly, past the last
// sample it holds.
func buildExpression(samples []Sample, fps int, value func(Sample) float64) string {
	if len(samples) == 1 {
		return fmt.Sprintf("%.6f", value(samples[0]))
	}

	var b strings.Builder
	open := 0
	for i := 0; i < len(samples)-1; i++ {
		startFrame := int(samples[i].Time * float64(fps))
		endFrame := int(samples[i+1].Time * float64(fps))
		v0 := value(samples[i])
		v1 := value(samples[i+1])

		if endFrame <= startFrame {
			continue
		}
		fmt.Fprintf(&b, "if(lte(on,%d),%.6f+(on-%d)/%d*(%.6f-%.6f),",
			endFrame, v0, startFrame, endFrame-startFrame, v1, v0)
		open++
	}

	fmt.Fprintf(&b, "%.6f", value(samples[len(samples)-1]))
	b.WriteString(strings.Repeat(")", open))
	return b.String()
}
