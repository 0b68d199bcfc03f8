package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os/exec"
)

// StreamEncoder feeds raw RGBA frames into a single FFmpeg process on
// stdin and lets it encode the whole render in one pass. No intermediate
// segment files touch the disk.
type StreamEncoder struct {
	Encoder string // ffmpeg -c:v name, e.g. libx264, h264_nvenc
	Quality int    // CRF for x264, CQ for NVENC, bitrate basis for VideoToolbox

	cmd   *exec.Cmd
	stdin io.WriteCloser
	log   bytes.Buffer
}

// Start launches FFmpeg for a stream of width x height RGBA frames at the
// given rate. An audio path may be muxed in alongside.
func (e *StreamEncoder) Start(ctx context.Context, outPath string, width, height, fps int, audioPath string) error {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-framerate", fmt.Sprintf("%d", fps),
		"-i", "-",
	}
	if audioPath != "" {
		args = append(args, "-i", audioPath, "-c:a", "aac", "-shortest")
	}
	args = append(args,
		"-pix_fmt", "yuv420p",
		"-c:v", e.Encoder,
	)
	args = append(args, e.qualityArgs()...)
	args = append(args, outPath)

	e.cmd = exec.CommandContext(ctx, "ffmpeg", args...)
	e.cmd.Stdout = &e.log
	e.cmd.Stderr = &e.log

	stdin, err := e.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe: %w", err)
	}
	e.stdin = stdin

	if err := e.cmd.Start(); err != nil {
		return fmt.Errorf("ffmpeg start: %w", err)
	}
	return nil
}

func (e *StreamEncoder) qualityArgs() []string {
	switch e.Encoder {
	case "h264_videotoolbox":
		// VideoToolbox rejects -q:v on several builds; bitrate is reliable.
		return []string{"-b:v", fmt.Sprintf("%dk", e.Quality*100)}
	case "h264_nvenc":
		return []string{"-cq", fmt.Sprintf("%d", e.Quality)}
	default:
		return []string{"-crf", fmt.Sprintf("%d", e.Quality), "-preset", "medium"}
	}
}

// WriteFrame pushes one frame. Frames must arrive in presentation order;
// the caller owns sequencing.
func (e *StreamEncoder) WriteFrame(img image.Image) error {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || rgba.Rect.Min.X != 0 || rgba.Rect.Min.Y != 0 {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	_, err := e.stdin.Write(rgba.Pix)
	return err
}

// Close ends the stream and waits for FFmpeg to finish the file.
func (e *StreamEncoder) Close() error {
	if e.stdin != nil {
		e.stdin.Close()
	}
	if e.cmd == nil {
		return nil
	}
	if err := e.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg: %w\n%s", err, e.log.String())
	}
	return nil
}
