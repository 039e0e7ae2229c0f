// Package cliconfig holds the renderer configuration surface and the
// file/env/flag layering used by the CLI. Precedence, highest first:
// explicitly set flags, FRACTALMOTION_* environment variables, the TOML
// config file, built-in defaults.
package cliconfig

import (
	"fmt"
	"runtime"
	"strconv"
	"time"
)

// Config holds CLI configuration for fractalmotion.
type Config struct {
	ImageWidth  int
	ImageHeight int
	PlaneWidth  float64

	Frames     int
	Iterations int
	Workers    int

	Path          string // SVG path data driving the animation
	PathTolerance float64

	Smoothing  string
	Mandelbrot bool
	JuliaC     string // named Julia landmark, preview mode only

	Output   string
	Encoder  string // "ffmpeg" or "png"
	TimeBase string

	FractalProgressInterval time.Duration
	VideoProgressInterval   time.Duration

	Preview bool

	// ConfigPath is the config file this Config was loaded from, if any.
	// Preview mode watches it for changes. Not itself configurable via
	// file or environment.
	ConfigPath string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ImageWidth:              1280,
		ImageHeight:             720,
		PlaneWidth:              3.0,
		Frames:                  300,
		Iterations:              100,
		Workers:                 runtime.NumCPU(),
		PathTolerance:           0.0001,
		Smoothing:               "logarithmic",
		Output:                  "fractal.mp4",
		Encoder:                 "ffmpeg",
		TimeBase:                "1/30",
		FractalProgressInterval: time.Second,
		VideoProgressInterval:   time.Second,
	}
}

// Validate checks the numeric configuration for errors. Errors name the
// offending flag. Path, smoothing, and time-base syntax are validated when
// the renderer is built, so a malformed value still surfaces before any
// computation starts.
func (c *Config) Validate() error {
	if c.ImageWidth <= 0 {
		return fmt.Errorf("--image-width must be positive, got %d", c.ImageWidth)
	}
	if c.ImageHeight <= 0 {
		return fmt.Errorf("--image-height must be positive, got %d", c.ImageHeight)
	}
	if c.PlaneWidth <= 0 {
		return fmt.Errorf("--plane-width must be positive, got %g", c.PlaneWidth)
	}
	if c.Frames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", c.Frames)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("--iterations must be positive, got %d", c.Iterations)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("--workers must be positive, got %d", c.Workers)
	}
	if c.PathTolerance <= 0 {
		return fmt.Errorf("--path-tolerance must be positive, got %g", c.PathTolerance)
	}
	if c.Path == "" && !(c.Preview && c.JuliaC != "") {
		return fmt.Errorf("--path is required")
	}
	if c.Output == "" {
		return fmt.Errorf("--output is required")
	}
	if c.Encoder != "ffmpeg" && c.Encoder != "png" {
		return fmt.Errorf("--encoder must be ffmpeg or png, got %q", c.Encoder)
	}
	if c.FractalProgressInterval <= 0 {
		return fmt.Errorf("--fractal-progress-interval must be positive")
	}
	if c.VideoProgressInterval <= 0 {
		return fmt.Errorf("--video-progress-interval must be positive")
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
