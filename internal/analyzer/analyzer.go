// Package analyzer finds high-contrast regions in a source frame. The
// suggest command turns them into draft zoom segments so an editor
// starts from something better than an empty timeline.
package analyzer

import (
	"image"
	"image/color"
	"math"
)

// Region is a detected area of visual interest.
type Region struct {
	Rect       image.Rectangle
	Confidence float64 // 0.0-1.0
}

// Detector locates regions worth zooming into.
type Detector struct {
	MinArea       int     // smallest region to keep, pixels²
	EdgeThreshold float64 // Sobel gradient magnitude cutoff
	DilateRadius  int     // neighborhood used to merge nearby edges
	DilatePasses  int
}

// NewDetector returns a detector tuned for screen content: UI text and
// window chrome produce strong edges, so a moderate threshold picks up
// content blocks without firing on gradients and wallpaper.
func NewDetector() *Detector {
	return &Detector{
		MinArea:       500,
		EdgeThreshold: 30.0,
		DilateRadius:  2,
		DilatePasses:  2,
	}
}

// Detect runs the pipeline: grayscale, Sobel edges, dilation to merge
// nearby strokes, connected components, area filter.
func (d *Detector) Detect(img image.Image) []Region {
	mask := newMask(img.Bounds())
	mask.fillEdges(img, d.EdgeThreshold)
	for i := 0; i < d.DilatePasses; i++ {
		mask.dilate(d.DilateRadius)
	}

	var regions []Region
	for _, rect := range mask.components() {
		if rect.Dx()*rect.Dy() < d.MinArea {
			continue
		}
		regions = append(regions, Region{Rect: rect, Confidence: 0.7})
	}
	return regions
}

// mask is a binary pixel grid in frame-local coordinates.
type mask struct {
	rect image.Rectangle
	w, h int
	bits []bool
}

func newMask(rect image.Rectangle) *mask {
	w, h := rect.Dx(), rect.Dy()
	return &mask{rect: rect, w: w, h: h, bits: make([]bool, w*h)}
}

func (m *mask) at(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// fillEdges marks pixels whose Sobel gradient magnitude exceeds the
// threshold.
func (m *mask) fillEdges(img image.Image, threshold float64) {
	gray := image.NewGray(m.rect)
	for y := m.rect.Min.Y; y < m.rect.Max.Y; y++ {
		for x := m.rect.Min.X; x < m.rect.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}

	lum := func(x, y int) float64 {
		return float64(gray.GrayAt(m.rect.Min.X+x, m.rect.Min.Y+y).Y)
	}

	for y := 1; y < m.h-1; y++ {
		for x := 1; x < m.w-1; x++ {
			gx := -lum(x-1, y-1) + lum(x+1, y-1) +
				-2*lum(x-1, y) + 2*lum(x+1, y) +
				-lum(x-1, y+1) + lum(x+1, y+1)
			gy := -lum(x-1, y-1) - 2*lum(x, y-1) - lum(x+1, y-1) +
				lum(x-1, y+1) + 2*lum(x, y+1) + lum(x+1, y+1)

			if math.Sqrt(gx*gx+gy*gy) > threshold {
				m.bits[y*m.w+x] = true
			}
		}
	}
}

// dilate grows marked areas by radius, connecting strokes that belong to
// the same content block.
func (m *mask) dilate(radius int) {
	out := make([]bool, len(m.bits))
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if !m.bits[y*m.w+x] {
				continue
			}
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx, ny := x+dx, y+dy
					if nx >= 0 && nx < m.w && ny >= 0 && ny < m.h {
						out[ny*m.w+nx] = true
					}
				}
			}
		}
	}
	m.bits = out
}

// components returns the bounding box of every connected marked region,
// in the original image's coordinates.
func (m *mask) components() []image.Rectangle {
	visited := make([]bool, len(m.bits))
	var rects []image.Rectangle

	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if !m.bits[y*m.w+x] || visited[y*m.w+x] {
				continue
			}
			rects = append(rects, m.flood(visited, x, y))
		}
	}
	return rects
}

func (m *mask) flood(visited []bool, startX, startY int) image.Rectangle {
	minX, minY, maxX, maxY := startX, startY, startX, startY
	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !m.at(p.X, p.Y) || visited[p.Y*m.w+p.X] {
			continue
		}
		visited[p.Y*m.w+p.X] = true

		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}

		stack = append(stack,
			image.Point{X: p.X + 1, Y: p.Y},
			image.Point{X: p.X - 1, Y: p.Y},
			image.Point{X: p.X, Y: p.Y + 1},
			image.Point{X: p.X, Y: p.Y - 1},
		)
	}

	return image.Rect(minX, minY, maxX+1, maxY+1).Add(m.rect.Min)
}
