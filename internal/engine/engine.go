package engine

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/zoomcam/internal/config"
	"github.com/ivlev/zoomcam/internal/project"
	"github.com/ivlev/zoomcam/internal/renderer"
	"github.com/ivlev/zoomcam/internal/source"
	"github.com/ivlev/zoomcam/internal/system"
	"github.com/ivlev/zoomcam/internal/video"
	"github.com/ivlev/zoomcam/internal/zoom"
)

// Renderer drives a full offline render: it samples the zoom interpolator
// once per output frame, composites the frames against the source
// backdrop in parallel, and streams them in order into one FFmpeg
// process.
type Renderer struct {
	Config  *config.Config
	Project *project.Project
	Source  source.Source
}

func New(cfg *config.Config, p *project.Project, src source.Source) *Renderer {
	return &Renderer{Config: cfg, Project: p, Source: src}
}

func (r *Renderer) options() zoom.Options {
	return zoom.Options{
		Duration: r.Config.ZoomDuration,
		Window:   r.Config.SmoothingWindow,
	}
}

func (r *Renderer) geometry() (width, height, fps int) {
	width, height, fps = r.Project.Width, r.Project.Height, r.Project.FPS
	if r.Config.Width > 0 {
		width = r.Config.Width
	}
	if r.Config.Height > 0 {
		height = r.Config.Height
	}
	if r.Config.FPS > 0 {
		fps = r.Config.FPS
	}
	if width <= 0 || height <= 0 {
		width, height = 1280, 720
	}
	if fps <= 0 {
		fps = 30
	}
	// Encoders want even dimensions for yuv420p.
	width += width % 2
	height += height % 2
	return width, height, fps
}

// zoomDuration mirrors the interpolator's default fill so the derived
// timeline length matches what the engine will actually render.
func (r *Renderer) zoomDuration() float64 {
	if r.Config.ZoomDuration > 0 {
		return r.Config.ZoomDuration
	}
	return zoom.DefaultDuration
}

// Run renders the whole project to Config.OutputVideo.
func (r *Renderer) Run(ctx context.Context) error {
	startTime := time.Now()

	width, height, fps := r.geometry()
	total := r.Project.TotalDuration(r.zoomDuration())
	if total <= 0 {
		return fmt.Errorf("project has no segments and no duration")
	}
	frameCount := int(total*float64(fps)) + 1

	backdrop, err := r.Source.Render(0, r.Config.DPI)
	if err != nil {
		return fmt.Errorf("render source frame: %w", err)
	}

	log.Printf("[*] Rendering %d frames (%dx%d @ %d fps, %.2fs)", frameCount, width, height, fps, total)

	enc := &video.StreamEncoder{Encoder: r.Config.VideoEncoder, Quality: r.Config.Quality}
	if err := enc.Start(ctx, r.Config.OutputVideo, width, height, fps, r.Config.AudioPath); err != nil {
		return err
	}

	comp := renderer.NewCompositor(r.Config.HighQuality)
	opts := r.options()
	track := &r.Project.Cursor
	segments := r.Project.Segments

	workers := r.Config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Frames encode in presentation order but composite out of order:
	// render a chunk in parallel, then flush it sequentially.
	chunkSize := workers * 4
	frames := make([]*image.RGBA, chunkSize)
	outRect := image.Rect(0, 0, width, height)

	for base := 0; base < frameCount; base += chunkSize {
		n := chunkSize
		if base+n > frameCount {
			n = frameCount - base
		}

		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := 0; i < n; i++ {
			i := i
			g.Go(func() error {
				t := float64(base+i) / float64(fps)
				state := zoom.Interpolate(t, segments, track, opts)

				frame := system.GetFrame(outRect)
				comp.Render(frame, backdrop, state)
				frames[i] = frame
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			enc.Close()
			return err
		}

		for i := 0; i < n; i++ {
			if err := enc.WriteFrame(frames[i]); err != nil {
				enc.Close()
				return fmt.Errorf("write frame %d: %w", base+i, err)
			}
			system.PutFrame(frames[i])
			frames[i] = nil
		}

		done := base + n
		if done%(chunkSize*8) == 0 || done == frameCount {
			log.Printf("[>] Frames: %d/%d", done, frameCount)
		}
	}

	if err := enc.Close(); err != nil {
		return err
	}

	if r.Config.ShowStats {
		r.report(startTime, frameCount)
	}
	return nil
}

func (r *Renderer) report(startTime time.Time, frameCount int) {
	elapsed := time.Since(startTime)
	stats := system.SnapshotStats(int32(os.Getpid()))
	effective := float64(frameCount) / elapsed.Seconds()

	fmt.Printf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Frames: %d\n"+
			"Total Time: %.2fs\n"+
			"Effective FPS: %.2f\n"+
			"Host: %s\n"+
			"----------------------------\n",
		r.Config.BuildVersion, frameCount, elapsed.Seconds(), effective, stats,
	)

	logEntry := fmt.Sprintf("[%s] Build: %s | Output: %s | Frames: %d | Total: %.2fs | FPS: %.2f | %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		r.Config.BuildVersion, r.Config.OutputVideo, frameCount, elapsed.Seconds(), effective, stats,
	)

	f, err := os.OpenFile("benchmark.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		f.WriteString(logEntry)
		f.Close()
	} else {
		log.Printf("[!] Could not write benchmark.log: %v", err)
	}
}

// PreviewFrame composites a single frame at the given time, as the scrub
// preview does, and returns it with the camera state that produced it.
func (r *Renderer) PreviewFrame(at float64) (*image.RGBA, zoom.InterpolatedZoom, error) {
	width, height, _ := r.geometry()

	state := zoom.Interpolate(at, r.Project.Segments, &r.Project.Cursor, r.options())

	backdrop, err := r.Source.Render(0, r.Config.DPI)
	if err != nil {
		return nil, state, fmt.Errorf("render source frame: %w", err)
	}

	frame := image.NewRGBA(image.Rect(0, 0, width, height))
	renderer.NewCompositor(r.Config.HighQuality).Render(frame, backdrop, state)
	return frame, state, nil
}

// SampleCameraPath evaluates the interpolator on a fixed grid for the
// FFmpeg-filter render path. samplesPerSecond trades expression size for
// fidelity to the eased curves; a handful per transition is enough.
func SampleCameraPath(p *project.Project, opts zoom.Options, zoomDuration float64, samplesPerSecond int) []renderer.Sample {
	if samplesPerSecond <= 0 {
		samplesPerSecond = 10
	}
	total := p.TotalDuration(zoomDuration)
	count := int(total*float64(samplesPerSecond)) + 1

	samples := make([]renderer.Sample, 0, count)
	for i := 0; i < count; i++ {
		t := float64(i) / float64(samplesPerSecond)
		samples = append(samples, renderer.Sample{
			Time: t,
			Zoom: zoom.Interpolate(t, p.Segments, &p.Cursor, opts),
		})
	}
	return samples
}
