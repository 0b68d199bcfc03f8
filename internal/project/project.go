package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/zoomcam/internal/cursor"
	"github.com/ivlev/zoomcam/internal/timeline"
)

// Project is the on-disk description of a recording session: the zoom
// segments placed on the timeline plus the cursor track captured while
// recording. Geometry and duration describe the output video.
type Project struct {
	Version  string             `yaml:"version"`
	Width    int                `yaml:"width"`
	Height   int                `yaml:"height"`
	FPS      int                `yaml:"fps"`
	Duration float64            `yaml:"duration"` // seconds; 0 = derive from the last segment
	Segments []timeline.Segment `yaml:"segments"`
	Cursor   cursor.Track       `yaml:"cursor"`
}

// CurrentVersion is written into new project files.
const CurrentVersion = "1.0"

// Read loads a project file and normalizes its segment list. Loading is
// the one place segment preconditions are enforced; everything downstream
// trusts the list.
func Read(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	p.Segments, err = timeline.Normalize(p.Segments)
	if err != nil {
		return nil, fmt.Errorf("invalid segments in %s: %w", path, err)
	}

	return &p, nil
}

// Write stores a project as YAML.
func Write(p *Project, path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// TotalDuration returns the configured duration, extended past the last
// segment far enough for its zoom-out to settle when none is set.
func (p *Project) TotalDuration(zoomDuration float64) float64 {
	if p.Duration > 0 {
		return p.Duration
	}
	if len(p.Segments) == 0 {
		return 0
	}
	return p.Segments[len(p.Segments)-1].End + zoomDuration
}
