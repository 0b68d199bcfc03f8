// Package testpattern renders synthetic source frames for verifying
// crop alignment: a labeled grid with distinct corner markers and a
// center QR code that survives rescaling, so a rendered zoom can be
// checked without a real recording.
package testpattern

import (
	"image"
	"image/color"
	"image/draw"

	qrcode "github.com/skip2/go-qrcode"
)

var cornerColors = [4]color.RGBA{
	{R: 220, G: 60, B: 60, A: 255},  // top-left
	{R: 60, G: 160, B: 60, A: 255},  // top-right
	{R: 60, G: 90, B: 220, A: 255},  // bottom-left
	{R: 220, G: 170, B: 40, A: 255}, // bottom-right
}

// Generate renders a width x height frame: 10% grid lines, colored
// corner markers sized to a tenth of the frame, and a QR code carrying
// label centered on the frame (the default zoom focus).
func Generate(width, height int, label string) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawGrid(img)
	drawCorners(img)

	if label != "" {
		qr, err := qrcode.New(label, qrcode.Medium)
		if err != nil {
			return nil, err
		}
		size := min(width, height) / 4
		qrImg := qr.Image(size)

		offset := image.Pt((width-size)/2, (height-size)/2)
		draw.Draw(img, qrImg.Bounds().Add(offset), qrImg, image.Point{}, draw.Src)
	}

	return img, nil
}

func drawGrid(img *image.RGBA) {
	b := img.Bounds()
	line := color.RGBA{R: 200, G: 200, B: 200, A: 255}

	for i := 1; i < 10; i++ {
		x := b.Dx() * i / 10
		for y := 0; y < b.Dy(); y++ {
			img.SetRGBA(x, y, line)
		}
		y := b.Dy() * i / 10
		for x := 0; x < b.Dx(); x++ {
			img.SetRGBA(x, y, line)
		}
	}
}

func drawCorners(img *image.RGBA) {
	b := img.Bounds()
	mw, mh := b.Dx()/10, b.Dy()/10

	corners := [4]image.Rectangle{
		image.Rect(0, 0, mw, mh),
		image.Rect(b.Dx()-mw, 0, b.Dx(), mh),
		image.Rect(0, b.Dy()-mh, mw, b.Dy()),
		image.Rect(b.Dx()-mw, b.Dy()-mh, b.Dx(), b.Dy()),
	}
	for i, r := range corners {
		draw.Draw(img, r, image.NewUniform(cornerColors[i]), image.Point{}, draw.Src)
	}
}
