package testpattern

import "image"

// Source serves a generated test pattern through the same interface as
// real backdrops, so renders can run with no input file at all.
type Source struct {
	img *image.RGBA
}

// NewSource generates one pattern frame of the given geometry.
func NewSource(width, height int, label string) (*Source, error) {
	img, err := Generate(width, height, label)
	if err != nil {
		return nil, err
	}
	return &Source{img: img}, nil
}

func (s *Source) FrameCount() int { return 1 }

func (s *Source) Dimensions(index int) (float64, float64, error) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy()), nil
}

func (s *Source) Render(index int, dpi int) (image.Image, error) {
	return s.img, nil
}

func (s *Source) Close() error { return nil }
