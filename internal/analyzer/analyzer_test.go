package analyzer

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func frameWithBlock(w, h int, block image.Rectangle) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(img, block, image.NewUniform(color.Black), image.Point{}, draw.Src)
	return img
}

func TestDetectFindsBlock(t *testing.T) {
	block := image.Rect(100, 80, 220, 160)
	regions := NewDetector().Detect(frameWithBlock(400, 300, block))

	if len(regions) == 0 {
		t.Fatal("expected at least one region")
	}

	found := false
	for _, r := range regions {
		if r.Rect.Overlaps(block) {
			found = true
			if r.Confidence <= 0 || r.Confidence > 1 {
				t.Errorf("confidence out of range: %v", r.Confidence)
			}
		}
	}
	if !found {
		t.Errorf("no region overlaps the block; got %v", regions)
	}
}

func TestDetectIgnoresFlatFrame(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	if regions := NewDetector().Detect(img); len(regions) != 0 {
		t.Errorf("flat frame should yield nothing, got %v", regions)
	}
}

func TestDetectFiltersSmallRegions(t *testing.T) {
	// A 4x4 dot is well under MinArea even after dilation.
	regions := NewDetector().Detect(frameWithBlock(400, 300, image.Rect(50, 50, 54, 54)))
	for _, r := range regions {
		if r.Rect.Dx()*r.Rect.Dy() < 500 {
			t.Errorf("undersized region survived the filter: %v", r.Rect)
		}
	}
}
