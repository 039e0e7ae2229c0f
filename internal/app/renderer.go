// Package app orchestrates the animation: it samples the camera path, runs
// the parallel fractal engine once per sample point, and hands each
// assembled frame to the configured video encoder in presentation order.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arcas-labs/fractalmotion/internal/cliconfig"
	"github.com/arcas-labs/fractalmotion/internal/encode"
	"github.com/arcas-labs/fractalmotion/internal/fractal"
	"github.com/arcas-labs/fractalmotion/internal/geom"
	"github.com/arcas-labs/fractalmotion/internal/overlay"
)

// ErrNoSamplePoints is returned when the camera path degenerates to zero
// length and yields no animation frames.
var ErrNoSamplePoints = errors.New("fractalmotion: path produced no sample points")

// Renderer drives the full animation for one validated configuration.
type Renderer struct {
	cfg       cliconfig.Config
	view      fractal.View
	smoothing fractal.Smoothing
	path      geom.Path
	timeBase  encode.Rational
	log       zerolog.Logger
}

// New parses the configuration's path, smoothing, and time base and builds
// a renderer. Parse errors name the offending flag and surface before any
// computation starts.
func New(cfg cliconfig.Config, log zerolog.Logger) (*Renderer, error) {
	smoothing, err := fractal.ParseSmoothing(cfg.Smoothing)
	if err != nil {
		return nil, fmt.Errorf("parse --smoothing: %w", err)
	}

	timeBase, err := encode.ParseRational(cfg.TimeBase)
	if err != nil {
		return nil, fmt.Errorf("parse --time-base: %w", err)
	}

	var path geom.Path
	if cfg.Path != "" {
		path, err = geom.ParseSVGPath(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("parse --path: %w", err)
		}
	}

	return &Renderer{
		cfg:       cfg,
		view:      fractal.NewUniformView(cfg.ImageWidth, cfg.ImageHeight, cfg.PlaneWidth),
		smoothing: smoothing,
		path:      path,
		timeBase:  timeBase,
		log:       log,
	}, nil
}

// TimeBase returns the parsed video time base.
func (r *Renderer) TimeBase() encode.Rational { return r.timeBase }

// SamplePoints walks the camera path and returns one plane point per
// animation frame, spaced at arc-length intervals of length/frames.
func (r *Renderer) SamplePoints() []geom.Point {
	length := r.path.Length(r.cfg.PathTolerance)
	if length <= 0 {
		return nil
	}
	interval := length / float64(r.cfg.Frames)
	return r.path.Sample(r.cfg.PathTolerance, interval)
}

// Animate renders every frame of the animation and writes them to w in
// order. The first failure (engine or encoder) aborts the remaining frames.
func (r *Renderer) Animate(ctx context.Context, w encode.FrameWriter) error {
	points := r.SamplePoints()
	if len(points) == 0 {
		return ErrNoSamplePoints
	}

	r.log.Info().
		Int("frames", len(points)).
		Float64("fps", r.timeBase.FPS()).
		Str("smoothing", r.smoothing.String()).
		Bool("mandelbrot", r.cfg.Mandelbrot).
		Msg("starting animation")

	// In Mandelbrot mode every frame shares the same base image; the
	// animation is the crosshair tracking the path over it.
	var base []byte
	if r.cfg.Mandelbrot {
		var err error
		base, err = r.renderImage(ctx, fractal.Mandelbrot, 0)
		if err != nil {
			return err
		}
	}

	lastReport := time.Time{}
	for i, pt := range points {
		c := complex(pt.X, pt.Y)

		var frame []byte
		if r.cfg.Mandelbrot {
			frame = make([]byte, len(base))
			copy(frame, base)
			overlay.DrawCrosshair(frame, r.view, c)
			overlay.DrawLabel(frame, r.view, c)
		} else {
			var err error
			frame, err = r.renderImage(ctx, fractal.Julia, c)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}

		if err := w.WriteFrame(frame, int64(i)); err != nil {
			return fmt.Errorf("encode frame %d: %w", i, err)
		}

		if time.Since(lastReport) > r.cfg.VideoProgressInterval {
			r.log.Info().
				Int("frame", i+1).
				Int("total", len(points)).
				Str("done", fmt.Sprintf("%.1f%%", float64(i+1)/float64(len(points))*100)).
				Msg("video progress")
			lastReport = time.Now()
		}
	}

	r.log.Info().Int("frames", len(points)).Msg("animation rendered")
	return nil
}

// RenderFrame computes a single frame at the given Julia constant (or, in
// Mandelbrot mode, the base image annotated at that point).
func (r *Renderer) RenderFrame(ctx context.Context, c complex128) ([]byte, error) {
	if r.cfg.Mandelbrot {
		frame, err := r.renderImage(ctx, fractal.Mandelbrot, 0)
		if err != nil {
			return nil, err
		}
		overlay.DrawCrosshair(frame, r.view, c)
		overlay.DrawLabel(frame, r.view, c)
		return frame, nil
	}
	return r.renderImage(ctx, fractal.Julia, c)
}

func (r *Renderer) renderImage(ctx context.Context, mode fractal.Mode, c complex128) ([]byte, error) {
	gen := &fractal.ValueGenerator{
		View:       r.view,
		Mode:       mode,
		Iterations: r.cfg.Iterations,
		Smoothing:  r.smoothing,
		C:          c,
	}
	return fractal.Render(ctx, gen, fractal.RenderOptions{
		Workers:          r.cfg.Workers,
		ProgressInterval: r.cfg.FractalProgressInterval,
		OnProgress:       r.logFractalProgress,
	})
}

func (r *Renderer) logFractalProgress(perWorker []float64) {
	var b strings.Builder
	for i, f := range perWorker {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.1f%%", f*100)
	}
	r.log.Debug().Str("workers", b.String()).Msg("fractal progress")
}
