package encode

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// FFmpeg pipes raw RGBA frames into an ffmpeg child process that encodes
// them as yuv420p video into the output container chosen by the file
// extension. It implements FrameWriter.
type FFmpeg struct {
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	stderr    strings.Builder
	frameSize int
	lastPTS   int64
	failed    error
}

// NewFFmpeg starts an ffmpeg process encoding width x height RGBA frames
// arriving on stdin at the frame rate implied by the time base.
func NewFFmpeg(output string, width, height int, timeBase Rational) (*FFmpeg, error) {
	cmd := exec.Command("ffmpeg",
		"-hide_banner", "-loglevel", "error",
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-framerate", fmt.Sprintf("%d/%d", timeBase.Den, timeBase.Num),
		"-i", "-",
		"-pix_fmt", "yuv420p",
		"-crf", "30",
		output,
	)

	f := &FFmpeg{
		cmd:       cmd,
		frameSize: width * height * 4,
		lastPTS:   -1,
	}
	cmd.Stderr = &f.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("encode: ffmpeg stdin: %w", err)
	}
	f.stdin = stdin

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("encode: start ffmpeg: %w", err)
	}
	return f, nil
}

// WriteFrame sends one frame to the encoder. Frames must arrive with
// strictly increasing pts; the raw pipe carries no timestamps, so the check
// only guards ordering mistakes in the caller.
func (f *FFmpeg) WriteFrame(frame []byte, pts int64) error {
	if f.failed != nil {
		return f.failed
	}
	if len(frame) != f.frameSize {
		return ErrFrameSize
	}
	if pts <= f.lastPTS {
		return fmt.Errorf("encode: pts %d is not after %d", pts, f.lastPTS)
	}
	if _, err := f.stdin.Write(frame); err != nil {
		f.failed = fmt.Errorf("encode: write frame %d: %w (ffmpeg: %s)", pts, err, f.stderrTail())
		return f.failed
	}
	f.lastPTS = pts
	return nil
}

// Close finishes the stream and waits for ffmpeg to exit.
func (f *FFmpeg) Close() error {
	closeErr := f.stdin.Close()
	waitErr := f.cmd.Wait()
	if f.failed != nil {
		return f.failed
	}
	if waitErr != nil {
		return fmt.Errorf("encode: ffmpeg: %w (%s)", waitErr, f.stderrTail())
	}
	if closeErr != nil {
		return fmt.Errorf("encode: close ffmpeg stdin: %w", closeErr)
	}
	return nil
}

func (f *FFmpeg) stderrTail() string {
	s := strings.TrimSpace(f.stderr.String())
	if len(s) > 512 {
		s = s[len(s)-512:]
	}
	if s == "" {
		return "no ffmpeg output"
	}
	return s
}
