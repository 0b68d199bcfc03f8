package renderer

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/ivlev/zoomcam/internal/zoom"
)

// Compositor renders output frames by scaling the zoomed viewport of a
// source frame into the output geometry.
type Compositor struct {
	scaler xdraw.Scaler
}

// NewCompositor picks the scaling kernel. Quality selects Catmull-Rom
// (slower, sharp under magnification); the default bilinear kernel is
// good enough for previews and fast renders.
func NewCompositor(quality bool) *Compositor {
	if quality {
		return &Compositor{scaler: xdraw.CatmullRom}
	}
	return &Compositor{scaler: xdraw.ApproxBiLinear}
}

// Render draws the part of src selected by the zoom state into dst,
// filling it completely.
func (c *Compositor) Render(dst *image.RGBA, src image.Image, z zoom.InterpolatedZoom) {
	srcBounds := src.Bounds()
	crop := CropRect(ViewportFor(z.Bounds), srcBounds.Dx(), srcBounds.Dy()).Add(srcBounds.Min)
	c.scaler.Scale(dst, dst.Bounds(), src, crop, xdraw.Src, nil)
}
