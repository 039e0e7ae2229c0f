// Package fractalmotion renders animated fractal videos: a camera point
// follows a vector path through the complex plane, one escape-time fractal
// frame is computed per sampled path point, and the frames are handed to a
// video encoder in order.
//
// Example usage:
//
//	cfg := fractalmotion.DefaultConfig()
//	cfg.Path = "M -1 0 C -1 1, 1 1, 1 0"
//	cfg.Output = "out/julia.mp4"
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := fractalmotion.Run(context.Background(), cfg); err != nil {
//	    log.Fatal(err)
//	}
package fractalmotion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arcas-labs/fractalmotion/internal/app"
	"github.com/arcas-labs/fractalmotion/internal/cliconfig"
	"github.com/arcas-labs/fractalmotion/internal/encode"
	"github.com/arcas-labs/fractalmotion/internal/fractal"
)

// Config holds the configuration for the renderer.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = cliconfig.Config

// DefaultConfig returns a Config with sensible default values.
// At minimum, you must set Path before calling Run.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// Logger returns the package-level zerolog logger used by the renderer.
func Logger() zerolog.Logger {
	return cliconfig.Logger()
}

// Run renders the animation (or, with cfg.Preview set, a single preview
// frame kept up to date against the config file) and blocks until done or
// the context is cancelled. The configuration must already be validated.
func Run(ctx context.Context, cfg Config) error {
	log := cliconfig.Logger()

	if parent := filepath.Dir(cfg.Output); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if cfg.Preview {
		return runPreview(ctx, cfg, log)
	}

	renderer, err := app.New(cfg, log)
	if err != nil {
		return err
	}

	writer, err := newFrameWriter(cfg, renderer.TimeBase())
	if err != nil {
		return err
	}

	err = renderer.Animate(ctx, writer)
	if cerr := writer.Close(); err == nil {
		err = cerr
	}
	return err
}

func newFrameWriter(cfg Config, timeBase encode.Rational) (encode.FrameWriter, error) {
	if cfg.Encoder == "png" {
		return encode.NewPNGSeq(cfg.Output, cfg.ImageWidth, cfg.ImageHeight)
	}
	return encode.NewFFmpeg(cfg.Output, cfg.ImageWidth, cfg.ImageHeight, timeBase)
}

// runPreview renders one frame to a PNG next to the output path. When a
// config file is known it stays running and re-renders on every change;
// file values then override the session's flags.
func runPreview(ctx context.Context, cfg Config, log zerolog.Logger) error {
	target := previewPath(cfg.Output)

	render := func(ctx context.Context) error {
		current := cfg
		if current.ConfigPath != "" && cliconfig.FileExists(current.ConfigPath) {
			fc, err := cliconfig.LoadFileConfig(current.ConfigPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cliconfig.ApplyFileConfig(&current, fc, nil); err != nil {
				return err
			}
		}
		if err := current.Validate(); err != nil {
			return err
		}

		renderer, err := app.New(current, log)
		if err != nil {
			return err
		}

		var c complex128
		if current.JuliaC != "" {
			c, err = fractal.Landmark(current.JuliaC)
			if err != nil {
				return fmt.Errorf("parse --julia-c: %w", err)
			}
		} else {
			points := renderer.SamplePoints()
			if len(points) == 0 {
				return app.ErrNoSamplePoints
			}
			c = complex(points[0].X, points[0].Y)
		}

		frame, err := renderer.RenderFrame(ctx, c)
		if err != nil {
			return err
		}
		return encode.WritePNG(target, frame, current.ImageWidth, current.ImageHeight)
	}

	if cfg.ConfigPath == "" || !cliconfig.FileExists(cfg.ConfigPath) {
		return render(ctx)
	}

	log.Info().Str("config", cfg.ConfigPath).Str("preview", target).Msg("watching config for preview")
	return app.NewPreviewWatcher(cfg.ConfigPath, render, log).Run(ctx)
}

// previewPath derives the preview PNG location from the output path, e.g.
// out/fractal.mp4 -> out/fractal.preview.png.
func previewPath(output string) string {
	base := strings.TrimSuffix(output, filepath.Ext(output))
	return base + ".preview.png"
}
