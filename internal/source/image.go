package source

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// ImageSource serves still frames from a file or a directory of images.
// Decoded frames are cached: the render pipeline asks for the same
// backdrop once per worker otherwise.
type ImageSource struct {
	paths []string

	mu     sync.Mutex
	cached map[int]image.Image
}

func NewImageSource(path string) (*ImageSource, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var paths []string
	if fi.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch filepath.Ext(entry.Name()) {
			case ".jpg", ".jpeg", ".png":
				paths = append(paths, filepath.Join(path, entry.Name()))
			}
		}
		sort.Strings(paths)
	} else {
		paths = []string{path}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no images in %s", path)
	}

	return &ImageSource{paths: paths, cached: make(map[int]image.Image)}, nil
}

func (s *ImageSource) FrameCount() int {
	return len(s.paths)
}

func (s *ImageSource) Dimensions(index int) (float64, float64, error) {
	f, err := os.Open(s.paths[index])
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}

// Render decodes and caches the frame; dpi is ignored for raster input.
func (s *ImageSource) Render(index int, dpi int) (image.Image, error) {
	s.mu.Lock()
	if img, ok := s.cached[index]; ok {
		s.mu.Unlock()
		return img, nil
	}
	s.mu.Unlock()

	f, err := os.Open(s.paths[index])
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached[index] = img
	s.mu.Unlock()
	return img, nil
}

func (s *ImageSource) Close() error {
	return nil
}
