package config

// Config carries the run-wide settings assembled by the CLI. Output
// geometry defaults come from the project file and may be overridden
// by flags.
type Config struct {
	ProjectPath string
	InputPath   string
	OutputVideo string
	Width       int
	Height      int
	FPS         int
	Workers     int
	DPI         int

	// Zoom engine tunables. Explicit so tests and previews can run at
	// compressed time scales.
	ZoomDuration    float64
	SmoothingWindow float64

	VideoEncoder string
	Quality      int
	AudioPath    string
	HighQuality  bool // Catmull-Rom compositing instead of bilinear

	ShowStats    bool
	BuildVersion string
}
