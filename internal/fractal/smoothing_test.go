package fractal

import (
	"math"
	"testing"
)

func TestParseSmoothing(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"none", "none", "none", false},
		{"logarithmic", "logarithmic", "logarithmic", false},
		{"log abbreviation", "log", "logarithmic", false},
		{"unknown", "cubic", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseSmoothing(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSmoothing(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && s.String() != tt.want {
				t.Errorf("ParseSmoothing(%q) = %v, want %v", tt.input, s.String(), tt.want)
			}
		})
	}
}

func TestNoSmoothing_ReturnsCount(t *testing.T) {
	s := NoSmoothing()

	if s.RadiusSquared() != 4 {
		t.Errorf("RadiusSquared() = %v, want 4", s.RadiusSquared())
	}
	for _, n := range []int{0, 1, 7, 100, 100000} {
		if got := s.Smooth(n, complex(3, 4), complex(0.1, 0)); got != float64(n) {
			t.Errorf("Smooth(%d) = %v, want %v", n, got, float64(n))
		}
	}
}

func TestLogSmoothing(t *testing.T) {
	s := LogSmoothing(2)

	if s.RadiusSquared() != 4 {
		t.Errorf("RadiusSquared() = %v, want 4", s.RadiusSquared())
	}

	// |zPrev| = 1 and |z| = 4: log|z| crosses log(2) halfway through the
	// final step, so three iterations smooth to 2.5.
	got := s.Smooth(3, complex(4, 0), complex(1, 0))
	if math.Abs(got-2.5) > 1e-12 {
		t.Errorf("Smooth(3, |z|=4, |zPrev|=1) = %v, want 2.5", got)
	}

	// An orbit that never escaped keeps its integer count.
	if got := s.Smooth(50, complex(1, 0), complex(0.5, 0)); got != 50 {
		t.Errorf("Smooth(non-escaped) = %v, want 50", got)
	}

	// Escape before the first step keeps count 0.
	if got := s.Smooth(0, complex(8, 0), complex(8, 0)); got != 0 {
		t.Errorf("Smooth(0, ...) = %v, want 0", got)
	}

	// The smoothed value never exceeds the raw count.
	if got := s.Smooth(3, complex(100, 0), complex(1.5, 0)); got > 3 {
		t.Errorf("Smooth = %v, want <= 3", got)
	}
}

func TestWrapRange(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{0, 0, 256, 0},
		{255, 0, 256, 255},
		{256, 0, 256, 0},
		{300, 0, 256, 44},
		{-1, 0, 256, 255},
		{-513, 0, 256, 255},
		{3.5, 1, 3, 1.5},
	}
	for _, tt := range tests {
		if got := wrapRange(tt.value, tt.min, tt.max); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("wrapRange(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}
