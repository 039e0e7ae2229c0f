package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	fractalmotion "github.com/arcas-labs/fractalmotion"
	"github.com/arcas-labs/fractalmotion/internal/cliconfig"
)

const helpDescription = `
Render animated fractal videos by moving a camera point along an SVG path
through the complex plane.

Highlights:
  - Julia animations: each path point becomes the Julia constant of a frame.
  - Mandelbrot mode: one base image with a crosshair tracking the path.
  - Parallel per-frame rendering with per-worker progress reporting.
  - Encodes via ffmpeg (any container ffmpeg supports) or as PNG frames.
  - Configure via file, environment, or flags.
`

var longHelp = strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  fractalmotion --path "M -1 0 C -1 1, 1 1, 1 0" --output out/julia.mp4
  fractalmotion --mandelbrot --path "M -0.8 0.05 L -0.7 0.15" --frames 600
  fractalmotion --preview --julia-c douady-rabbit --output out/rabbit.mp4
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "fractalmotion",
		Short:   "Render animated fractal videos along a path through the complex plane",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default ~/.fractalmotion/config.toml),
			// then apply env and flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
				cfg.ConfigPath = cfgFile
			}

			// Environment variables (FRACTALMOTION_*) override file config
			// but are overridden by flags (checked via changed map).
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			log.Info().Interface("config", cfg).Msg("configuration")

			// Graceful shutdown on SIGINT/SIGTERM: the context aborts the
			// workers of the frame currently being rendered.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return fractalmotion.Run(ctx, cfg)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.fractalmotion/config.toml)")

	root.Flags().IntVar(&cfg.ImageWidth, "image-width", cfg.ImageWidth, "frame width in pixels")
	root.Flags().IntVar(&cfg.ImageHeight, "image-height", cfg.ImageHeight, "frame height in pixels")
	root.Flags().Float64Var(&cfg.PlaneWidth, "plane-width", cfg.PlaneWidth, "width of the complex-plane window")

	root.Flags().IntVar(&cfg.Frames, "frames", cfg.Frames, "number of animation frames (sets the path step interval)")
	root.Flags().IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "escape-time iteration cap")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel workers per frame")

	root.Flags().StringVar(&cfg.Path, "path", cfg.Path, "SVG path for the camera point, in plane coordinates")
	root.Flags().Float64Var(&cfg.PathTolerance, "path-tolerance", cfg.PathTolerance, "maximum curve flattening deviation")

	root.Flags().StringVar(&cfg.Smoothing, "smoothing", cfg.Smoothing, "escape smoothing: none or logarithmic")
	root.Flags().BoolVar(&cfg.Mandelbrot, "mandelbrot", cfg.Mandelbrot, "render the Mandelbrot set with a path crosshair instead of Julia frames")
	root.Flags().StringVar(&cfg.JuliaC, "julia-c", cfg.JuliaC, "named Julia landmark for --preview (dendrite, douady-rabbit, san-marco, siegel-disk)")

	root.Flags().StringVar(&cfg.Output, "output", cfg.Output, "output video file (or directory for --encoder png)")
	root.Flags().StringVar(&cfg.Encoder, "encoder", cfg.Encoder, "frame encoder: ffmpeg or png")
	root.Flags().StringVar(&cfg.TimeBase, "time-base", cfg.TimeBase, "video time base as a fraction, e.g. 1/30")

	root.Flags().DurationVar(&cfg.FractalProgressInterval, "fractal-progress-interval", cfg.FractalProgressInterval, "minimum delay between fractal progress reports")
	root.Flags().DurationVar(&cfg.VideoProgressInterval, "video-progress-interval", cfg.VideoProgressInterval, "minimum delay between video progress reports")

	root.Flags().BoolVar(&cfg.Preview, "preview", cfg.Preview, "render a single preview frame and re-render on config changes")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("fractalmotion")
		os.Exit(1)
	}
}
