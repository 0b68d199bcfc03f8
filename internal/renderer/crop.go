package renderer

import (
	"image"

	"github.com/ivlev/zoomcam/internal/zoom"
)

// Viewport is the visible part of the source frame in normalized source
// coordinates, derived from a zoom window. X/Y is the top-left corner,
// Size the edge length (the window is square in normalized space).
type Viewport struct {
	X, Y float64
	Size float64
}

// ViewportFor inverts a zoom window into the source region it shows.
// The window places the magnified source in output space; the part of
// the source that lands inside the output frame is the viewport.
func ViewportFor(b zoom.Bounds) Viewport {
	w := b.Width()
	if w <= 0 {
		// Degenerate window; show the full frame rather than divide by zero.
		return Viewport{X: 0, Y: 0, Size: 1}
	}
	return Viewport{
		X:    -b.TopLeft.X / w,
		Y:    -b.TopLeft.Y / w,
		Size: 1 / w,
	}
}

// CropRect maps a viewport onto a source frame of the given pixel size,
// clamped to the frame. The crop keeps the source aspect: Size scales
// each axis by its own dimension.
func CropRect(v Viewport, width, height int) image.Rectangle {
	x0 := int(v.X * float64(width))
	y0 := int(v.Y * float64(height))
	x1 := int((v.X + v.Size) * float64(width))
	y1 := int((v.Y + v.Size) * float64(height))

	r := image.Rect(x0, y0, x1, y1).Intersect(image.Rect(0, 0, width, height))
	if r.Empty() {
		return image.Rect(0, 0, width, height)
	}
	return r
}
