package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arcas-labs/fractalmotion/internal/cliconfig"
)

// captureWriter records every frame it receives.
type captureWriter struct {
	frames [][]byte
	pts    []int64
	closed bool
	fail   error
}

func (w *captureWriter) WriteFrame(frame []byte, pts int64) error {
	if w.fail != nil {
		return w.fail
	}
	buf := make([]byte, len(frame))
	copy(buf, frame)
	w.frames = append(w.frames, buf)
	w.pts = append(w.pts, pts)
	return nil
}

func (w *captureWriter) Close() error {
	w.closed = true
	return nil
}

func testConfig() cliconfig.Config {
	cfg := cliconfig.DefaultConfig()
	cfg.ImageWidth = 8
	cfg.ImageHeight = 8
	cfg.PlaneWidth = 4
	cfg.Frames = 4
	cfg.Iterations = 20
	cfg.Workers = 2
	cfg.Path = "M 0 0 L 1 0"
	return cfg
}

func newTestRenderer(t *testing.T, cfg cliconfig.Config) *Renderer {
	t.Helper()
	r, err := New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestNew_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*cliconfig.Config)
		wantSub string
	}{
		{"bad smoothing", func(c *cliconfig.Config) { c.Smoothing = "cubic" }, "--smoothing"},
		{"bad time base", func(c *cliconfig.Config) { c.TimeBase = "30" }, "--time-base"},
		{"bad path", func(c *cliconfig.Config) { c.Path = "L 1 1" }, "--path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			_, err := New(cfg, zerolog.Nop())
			if err == nil {
				t.Fatal("New() = nil error, want parse failure")
			}
			if got := err.Error(); !strings.Contains(got, tt.wantSub) {
				t.Errorf("error %q does not mention %q", got, tt.wantSub)
			}
		})
	}
}

func TestRenderer_SamplePoints(t *testing.T) {
	r := newTestRenderer(t, testConfig())

	points := r.SamplePoints()
	if len(points) != 4 {
		t.Fatalf("got %d sample points, want 4", len(points))
	}
	for i, pt := range points {
		wantX := float64(i) * 0.25
		if math.Abs(pt.X-wantX) > 1e-9 || pt.Y != 0 {
			t.Errorf("point %d = %v, want (%v, 0)", i, pt, wantX)
		}
	}
}

func TestRenderer_Animate_Julia(t *testing.T) {
	r := newTestRenderer(t, testConfig())
	w := &captureWriter{}

	if err := r.Animate(context.Background(), w); err != nil {
		t.Fatalf("Animate: %v", err)
	}

	if len(w.frames) != 4 {
		t.Fatalf("wrote %d frames, want 4", len(w.frames))
	}
	for i, frame := range w.frames {
		if len(frame) != 8*8*4 {
			t.Errorf("frame %d length = %d, want %d", i, len(frame), 8*8*4)
		}
		if w.pts[i] != int64(i) {
			t.Errorf("frame %d pts = %d, want %d", i, w.pts[i], i)
		}
	}
}

func TestRenderer_Animate_MandelbrotCrosshair(t *testing.T) {
	cfg := testConfig()
	cfg.Mandelbrot = true
	cfg.ImageWidth = 32
	cfg.ImageHeight = 32
	r := newTestRenderer(t, cfg)
	w := &captureWriter{}

	if err := r.Animate(context.Background(), w); err != nil {
		t.Fatalf("Animate: %v", err)
	}
	if len(w.frames) != 4 {
		t.Fatalf("wrote %d frames, want 4", len(w.frames))
	}

	// First sample point is the plane origin, pixel (16, 16) in a 32x32
	// view over a 4-wide window. The crosshair paints that whole row white.
	frame := w.frames[0]
	for x := 0; x < 32; x++ {
		at := (16*32 + x) * 4
		if frame[at] != 0xFF || frame[at+1] != 0xFF || frame[at+2] != 0xFF {
			t.Errorf("crosshair missing at (%d, 16)", x)
		}
	}

	// Frames differ only by annotation, never by the underlying image:
	// the bottom-right corner sits away from every crosshair and the
	// top-left label, so it is identical across frames.
	at := (31*32 + 31) * 4
	for i := 1; i < len(w.frames); i++ {
		if w.frames[i][at] != frame[at] {
			t.Errorf("base image pixel differs between frames 0 and %d", i)
		}
	}
}

func TestRenderer_Animate_EmptyPath(t *testing.T) {
	cfg := testConfig()
	cfg.Path = "M 0 0" // zero-length path
	r := newTestRenderer(t, cfg)

	err := r.Animate(context.Background(), &captureWriter{})
	if !errors.Is(err, ErrNoSamplePoints) {
		t.Errorf("Animate = %v, want ErrNoSamplePoints", err)
	}
}

func TestRenderer_Animate_WriterFailureAborts(t *testing.T) {
	r := newTestRenderer(t, testConfig())
	w := &captureWriter{fail: fmt.Errorf("disk full")}

	err := r.Animate(context.Background(), w)
	if err == nil {
		t.Fatal("Animate = nil, want encoder error")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("error %q does not wrap the writer failure", err)
	}
}

func TestRenderer_RenderFrame(t *testing.T) {
	r := newTestRenderer(t, testConfig())

	frame, err := r.RenderFrame(context.Background(), complex(-0.123, 0.745))
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if len(frame) != 8*8*4 {
		t.Fatalf("frame length = %d, want %d", len(frame), 8*8*4)
	}
	for at := 3; at < len(frame); at += 4 {
		if frame[at] != 255 {
			t.Fatalf("alpha at byte %d = %d, want 255", at, frame[at])
		}
	}
}
