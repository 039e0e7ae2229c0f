package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (FRACTALMOTION_*). It respects flags that have been explicitly set
// (changed map). Returns an error if any variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setIntFromString("image-width", os.Getenv("FRACTALMOTION_IMAGE_WIDTH"), &cfg.ImageWidth); err != nil {
		return err
	}
	if err := s.setIntFromString("image-height", os.Getenv("FRACTALMOTION_IMAGE_HEIGHT"), &cfg.ImageHeight); err != nil {
		return err
	}
	if err := s.setFloatFromString("plane-width", os.Getenv("FRACTALMOTION_PLANE_WIDTH"), &cfg.PlaneWidth); err != nil {
		return err
	}
	if err := s.setIntFromString("frames", os.Getenv("FRACTALMOTION_FRAMES"), &cfg.Frames); err != nil {
		return err
	}
	if err := s.setIntFromString("iterations", os.Getenv("FRACTALMOTION_ITERATIONS"), &cfg.Iterations); err != nil {
		return err
	}
	if err := s.setIntFromString("workers", os.Getenv("FRACTALMOTION_WORKERS"), &cfg.Workers); err != nil {
		return err
	}
	if err := s.setFloatFromString("path-tolerance", os.Getenv("FRACTALMOTION_PATH_TOLERANCE"), &cfg.PathTolerance); err != nil {
		return err
	}

	s.setString("path", os.Getenv("FRACTALMOTION_PATH"), &cfg.Path)
	s.setString("smoothing", os.Getenv("FRACTALMOTION_SMOOTHING"), &cfg.Smoothing)
	s.setString("julia-c", os.Getenv("FRACTALMOTION_JULIA_C"), &cfg.JuliaC)
	s.setString("output", os.Getenv("FRACTALMOTION_OUTPUT"), &cfg.Output)
	s.setString("encoder", os.Getenv("FRACTALMOTION_ENCODER"), &cfg.Encoder)
	s.setString("time-base", os.Getenv("FRACTALMOTION_TIME_BASE"), &cfg.TimeBase)

	if err := s.setDuration("fractal-progress-interval", os.Getenv("FRACTALMOTION_FRACTAL_PROGRESS_INTERVAL"), &cfg.FractalProgressInterval); err != nil {
		return err
	}
	if err := s.setDuration("video-progress-interval", os.Getenv("FRACTALMOTION_VIDEO_PROGRESS_INTERVAL"), &cfg.VideoProgressInterval); err != nil {
		return err
	}

	s.setBoolFromString("mandelbrot", os.Getenv("FRACTALMOTION_MANDELBROT"), &cfg.Mandelbrot)
	s.setBoolFromString("preview", os.Getenv("FRACTALMOTION_PREVIEW"), &cfg.Preview)

	return nil
}
