package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	ImageWidth  int     `toml:"image_width"`
	ImageHeight int     `toml:"image_height"`
	PlaneWidth  float64 `toml:"plane_width"`

	Frames     int `toml:"frames"`
	Iterations int `toml:"iterations"`
	Workers    int `toml:"workers"`

	Path          string  `toml:"path"`
	PathTolerance float64 `toml:"path_tolerance"`

	Smoothing  string `toml:"smoothing"`
	Mandelbrot *bool  `toml:"mandelbrot"`
	JuliaC     string `toml:"julia_c"`

	Output   string `toml:"output"`
	Encoder  string `toml:"encoder"`
	TimeBase string `toml:"time_base"`

	FractalProgressInterval string `toml:"fractal_progress_interval"`
	VideoProgressInterval   string `toml:"video_progress_interval"`

	Preview *bool `toml:"preview"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.fractalmotion/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".fractalmotion", "config.toml")
	}
	return ""
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setInt("image-width", fc.ImageWidth, &cfg.ImageWidth)
	s.setInt("image-height", fc.ImageHeight, &cfg.ImageHeight)
	s.setFloat("plane-width", fc.PlaneWidth, &cfg.PlaneWidth)

	s.setInt("frames", fc.Frames, &cfg.Frames)
	s.setInt("iterations", fc.Iterations, &cfg.Iterations)
	s.setInt("workers", fc.Workers, &cfg.Workers)

	s.setString("path", fc.Path, &cfg.Path)
	s.setFloat("path-tolerance", fc.PathTolerance, &cfg.PathTolerance)

	s.setString("smoothing", fc.Smoothing, &cfg.Smoothing)
	s.setBool("mandelbrot", fc.Mandelbrot, &cfg.Mandelbrot)
	s.setString("julia-c", fc.JuliaC, &cfg.JuliaC)

	s.setString("output", fc.Output, &cfg.Output)
	s.setString("encoder", fc.Encoder, &cfg.Encoder)
	s.setString("time-base", fc.TimeBase, &cfg.TimeBase)

	if err := s.setDuration("fractal-progress-interval", fc.FractalProgressInterval, &cfg.FractalProgressInterval); err != nil {
		return err
	}
	if err := s.setDuration("video-progress-interval", fc.VideoProgressInterval, &cfg.VideoProgressInterval); err != nil {
		return err
	}

	s.setBool("preview", fc.Preview, &cfg.Preview)

	return nil
}
