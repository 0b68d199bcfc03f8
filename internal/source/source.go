package source

import (
	"fmt"
	"image"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Source supplies the backdrop frames the camera zooms over. Offline
// renders work from captured stills, or from document pages when
// previewing a zoom path over slides.
type Source interface {
	FrameCount() int
	Dimensions(index int) (width, height float64, err error)
	Render(index int, dpi int) (image.Image, error)
	Close() error
}

// Open picks an implementation from the path extension.
func Open(path string) (Source, error) {
	if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return NewPDFSource(path)
	}
	return NewImageSource(path)
}

// PDFSource rasterizes document pages through go-fitz. Each Render call
// opens its own document handle: fitz handles are not safe for the
// parallel render workers.
type PDFSource struct {
	doc  *fitz.Document
	path string
}

func NewPDFSource(path string) (*PDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &PDFSource{doc: doc, path: path}, nil
}

func (s *PDFSource) FrameCount() int {
	return s.doc.NumPage()
}

func (s *PDFSource) Dimensions(index int) (float64, float64, error) {
	rect, err := s.doc.Bound(index)
	if err != nil {
		return 0, 0, err
	}
	return float64(rect.Dx()), float64(rect.Dy()), nil
}

func (s *PDFSource) Render(index int, dpi int) (image.Image, error) {
	workerDoc, err := fitz.New(s.path)
	if err != nil {
		return nil, err
	}
	defer workerDoc.Close()
	return workerDoc.ImageDPI(index, float64(dpi))
}

func (s *PDFSource) Close() error {
	return s.doc.Close()
}
