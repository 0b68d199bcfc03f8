package testpattern

import (
	"image/color"
	"testing"
)

func TestGenerate(t *testing.T) {
	img, err := Generate(640, 360, "frame-0")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if img.Bounds().Dx() != 640 || img.Bounds().Dy() != 360 {
		t.Errorf("geometry = %v", img.Bounds())
	}

	// Each corner marker carries its own color so a mis-anchored crop is
	// visible at a glance.
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{5, 5, cornerColors[0]},
		{635, 5, cornerColors[1]},
		{5, 355, cornerColors[2]},
		{635, 355, cornerColors[3]},
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Errorf("corner at (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}

	// The QR occupies the center.
	center := img.RGBAAt(320, 180)
	if center == (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		// Center may land on a white QR module; the quiet zone border is
		// always white, a module just inside the code area may not be.
		// Just verify something was drawn in the QR square.
		found := false
		for x := 240; x < 400 && !found; x++ {
			c := img.RGBAAt(x, 180)
			if c.R < 128 && c.G < 128 && c.B < 128 {
				found = true
			}
		}
		if !found {
			t.Error("no QR modules found in the center band")
		}
	}
}

func TestGenerateWithoutLabel(t *testing.T) {
	img, err := Generate(100, 100, "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if img == nil {
		t.Fatal("expected a frame")
	}
}
