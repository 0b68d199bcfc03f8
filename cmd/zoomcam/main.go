package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/ivlev/zoomcam/internal/analyzer"
	"github.com/ivlev/zoomcam/internal/config"
	"github.com/ivlev/zoomcam/internal/cursor"
	"github.com/ivlev/zoomcam/internal/engine"
	"github.com/ivlev/zoomcam/internal/project"
	"github.com/ivlev/zoomcam/internal/renderer"
	"github.com/ivlev/zoomcam/internal/source"
	"github.com/ivlev/zoomcam/internal/suggest"
	"github.com/ivlev/zoomcam/internal/system"
	"github.com/ivlev/zoomcam/internal/testpattern"
	"github.com/ivlev/zoomcam/internal/zoom"
)

var buildVersion = "dev"

func main() {
	system.InitResourceLimits()

	projectPtr := flag.String("project", "", "Project file with zoom segments and cursor track (default: latest in projects/)")
	inputPtr := flag.String("input", "", "Backdrop source: image, image directory or PDF (default: generated test pattern)")
	outputPtr := flag.String("output", "", "Output video path (default: generated under output/)")
	widthPtr := flag.Int("width", 0, "Output width (0 = from project)")
	heightPtr := flag.Int("height", 0, "Output height (0 = from project)")
	fpsPtr := flag.Int("fps", 0, "Output FPS (0 = from project)")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Compositing workers")
	dpiPtr := flag.Int("dpi", 150, "Rasterization DPI for PDF backdrops")
	zoomDurPtr := flag.Float64("zoom-duration", zoom.DefaultDuration, "Zoom transition length, seconds")
	windowPtr := flag.Float64("smoothing", cursor.DefaultWindow, "Cursor smoothing window, seconds")
	audioPtr := flag.String("audio", "", "Audio track to mux into the render")
	qualityPtr := flag.Int("quality", 0, "Encoder quality (0 = auto per encoder)")
	hqPtr := flag.Bool("hq", false, "High-quality Catmull-Rom compositing")
	statsPtr := flag.Bool("stats", false, "Print a performance report after rendering")

	atPtr := flag.Float64("at", -1, "Preview mode: report the camera state at this time instead of rendering")
	pngPtr := flag.String("png", "", "Preview mode: also write the composited frame to this PNG")
	filterPtr := flag.Bool("filter", false, "Print an FFmpeg zoompan filter for the camera path and exit")
	suggestPtr := flag.Bool("suggest", false, "Analyze the input frame and write a draft project")
	suggestDurPtr := flag.Float64("suggest-duration", 20.0, "Timeline length for suggested segments, seconds")

	flag.Parse()

	projectPath := *projectPtr
	if projectPath == "" && !*suggestPtr {
		latest, err := system.FindLatest("projects", ".yaml", ".yml")
		if err != nil {
			log.Fatalf("[-] No project: %v. Pass -project or put one in projects/", err)
		}
		projectPath = latest
		fmt.Printf("[*] Using project: %s\n", projectPath)
	}

	cfg := &config.Config{
		ProjectPath:     projectPath,
		InputPath:       *inputPtr,
		Width:           *widthPtr,
		Height:          *heightPtr,
		FPS:             *fpsPtr,
		Workers:         *workersPtr,
		DPI:             *dpiPtr,
		ZoomDuration:    *zoomDurPtr,
		SmoothingWindow: *windowPtr,
		AudioPath:       *audioPtr,
		HighQuality:     *hqPtr,
		ShowStats:       *statsPtr,
		BuildVersion:    buildVersion,
	}

	if *suggestPtr {
		if err := runSuggest(cfg, *suggestDurPtr); err != nil {
			log.Fatalf("[-] Suggest failed: %v", err)
		}
		return
	}

	p, err := project.Read(projectPath)
	if err != nil {
		log.Fatalf("[-] Project error: %v", err)
	}
	fmt.Printf("[*] Segments: %d | Cursor samples: %d\n", len(p.Segments), len(p.Cursor.Moves))

	if *filterPtr {
		samples := engine.SampleCameraPath(p, zoom.Options{Duration: cfg.ZoomDuration, Window: cfg.SmoothingWindow}, cfg.ZoomDuration, 10)
		w, h, fps := outputGeometry(cfg, p)
		fmt.Println(renderer.GenerateZoomPanFilter(samples, fps, w, h))
		return
	}

	src, err := openSource(cfg, p)
	if err != nil {
		log.Fatalf("[-] Source error: %v", err)
	}
	defer src.Close()

	r := engine.New(cfg, p, src)

	if *atPtr >= 0 {
		if err := runPreview(r, *atPtr, *pngPtr); err != nil {
			log.Fatalf("[-] Preview failed: %v", err)
		}
		return
	}

	cfg.OutputVideo = *outputPtr
	if cfg.OutputVideo == "" {
		os.MkdirAll("output", 0755)
		base := strings.TrimSuffix(filepath.Base(projectPath), filepath.Ext(projectPath))
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		cfg.OutputVideo = filepath.Join("output", fmt.Sprintf("%s_%s.mp4", base, timestamp))
	}

	cfg.VideoEncoder = system.GetBestH264Encoder()
	if cfg.VideoEncoder != "libx264" {
		fmt.Printf("[*] Hardware encoder: %s\n", cfg.VideoEncoder)
	}
	cfg.Quality = *qualityPtr
	if cfg.Quality == 0 {
		switch cfg.VideoEncoder {
		case "h264_videotoolbox":
			cfg.Quality = 75
		case "h264_nvenc":
			cfg.Quality = 28
		default:
			cfg.Quality = 23
		}
	}

	if err := r.Run(context.Background()); err != nil {
		log.Fatalf("[-] Render failed: %v", err)
	}
	fmt.Printf("[+++] Done: %s\n", cfg.OutputVideo)
}

// openSource picks the backdrop: the input path when given, a generated
// test pattern otherwise.
func openSource(cfg *config.Config, p *project.Project) (source.Source, error) {
	if cfg.InputPath != "" {
		return source.Open(cfg.InputPath)
	}

	w, h, _ := outputGeometry(cfg, p)
	fmt.Println("[*] No input given, rendering over a test pattern")
	return testpattern.NewSource(w*2, h*2, filepath.Base(cfg.ProjectPath))
}

func outputGeometry(cfg *config.Config, p *project.Project) (int, int, int) {
	w, h, fps := p.Width, p.Height, p.FPS
	if cfg.Width > 0 {
		w = cfg.Width
	}
	if cfg.Height > 0 {
		h = cfg.Height
	}
	if cfg.FPS > 0 {
		fps = cfg.FPS
	}
	if w <= 0 || h <= 0 {
		w, h = 1280, 720
	}
	if fps <= 0 {
		fps = 30
	}
	return w, h, fps
}

func runPreview(r *engine.Renderer, at float64, pngPath string) error {
	frame, state, err := r.PreviewFrame(at)
	if err != nil {
		return err
	}

	v := renderer.ViewportFor(state.Bounds)
	fmt.Printf("[*] t=%.3f | zoom %.3fx | window (%.4f, %.4f)-(%.4f, %.4f) | viewport (%.4f, %.4f) size %.4f\n",
		state.T, state.DisplayAmount(),
		state.Bounds.TopLeft.X, state.Bounds.TopLeft.Y,
		state.Bounds.BottomRight.X, state.Bounds.BottomRight.Y,
		v.X, v.Y, v.Size)

	if pngPath == "" {
		return nil
	}
	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, frame); err != nil {
		return err
	}
	fmt.Printf("[+++] Preview frame: %s\n", pngPath)
	return nil
}

// runSuggest analyzes the input frame and writes a draft project next to
// it for hand editing.
func runSuggest(cfg *config.Config, duration float64) error {
	if cfg.InputPath == "" {
		return fmt.Errorf("suggest mode needs -input")
	}

	src, err := source.Open(cfg.InputPath)
	if err != nil {
		return err
	}
	defer src.Close()

	img, err := src.Render(0, cfg.DPI)
	if err != nil {
		return err
	}

	regions := analyzer.NewDetector().Detect(img)
	fmt.Printf("[*] Detected %d regions\n", len(regions))

	b := img.Bounds()
	planner := suggest.NewPlanner(b.Dx(), b.Dy())
	segments, err := planner.Plan(regions, duration)
	if err != nil {
		return err
	}

	p := &project.Project{
		Version:  project.CurrentVersion,
		Width:    1280,
		Height:   720,
		FPS:      30,
		Segments: segments,
	}

	outPath := cfg.ProjectPath
	if outPath == "" {
		os.MkdirAll("projects", 0755)
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		outPath = filepath.Join("projects", fmt.Sprintf("suggested_%s.yaml", timestamp))
	}

	if err := project.Write(p, outPath); err != nil {
		return err
	}
	fmt.Printf("[+++] Draft project with %d segments: %s\n", len(segments), outPath)
	return nil
}
