package fractal

import (
	"image/color"
	"testing"
)

func TestValueGenerator_Mandelbrot(t *testing.T) {
	g := &ValueGenerator{
		View:       NewUniformView(4, 4, 8),
		Mode:       Mandelbrot,
		Iterations: 10,
		Smoothing:  NoSmoothing(),
	}

	// Pixel (0, 0) sits at -4-4i, far outside the escape radius, so the
	// orbit escapes before the first step.
	if got := g.PixelValue(0, 0); got != 0 {
		t.Errorf("PixelValue(0, 0) = %v, want 0", got)
	}

	// The origin is in the Mandelbrot set and reaches the iteration cap.
	if got := g.Evaluate(0); got != 10 {
		t.Errorf("Evaluate(0) = %v, want 10", got)
	}

	// c = 1: the orbit runs 1, 2, 5 and escapes on the second step.
	if got := g.Evaluate(1); got != 2 {
		t.Errorf("Evaluate(1) = %v, want 2", got)
	}
}

func TestValueGenerator_CornerEscapesBeforeFirstIteration(t *testing.T) {
	// 4x4 image over a 4-wide plane window: scale 1, origin (-2, -2), so
	// pixel (0, 0) sits at -2-2i with |c|^2 = 8, past the escape radius.
	g := &ValueGenerator{
		View:       NewUniformView(4, 4, 4),
		Mode:       Mandelbrot,
		Iterations: 1,
		Smoothing:  NoSmoothing(),
	}

	v := g.PixelValue(0, 0)
	if v != 0 {
		t.Fatalf("PixelValue(0, 0) = %v, want 0", v)
	}
	// Value 0 is below the cap of 1, so the pixel is colored through the
	// hue palette rather than the never-escaped black path.
	if got := g.Pixel(0, 0); got.A != 255 {
		t.Errorf("Pixel(0, 0).A = %d, want 255", got.A)
	}
}

func TestValueGenerator_Julia(t *testing.T) {
	g := &ValueGenerator{
		View:       NewUniformView(4, 4, 4),
		Mode:       Julia,
		Iterations: 10,
		Smoothing:  NoSmoothing(),
		C:          0,
	}

	tests := []struct {
		name string
		loc  complex128
		want float64
	}{
		{"inside unit circle never escapes", 0.5, 10},
		{"outside radius escapes immediately", 3, 0},
		{"escapes after one step", 1.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Evaluate(tt.loc); got != tt.want {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.loc, got, tt.want)
			}
		})
	}
}

func TestValueGenerator_ColorOf(t *testing.T) {
	g := &ValueGenerator{Iterations: 100}

	// Values at or past the cap are opaque black.
	for _, v := range []float64{100, 100.5, 250} {
		if got := g.ColorOf(v); got != (color.RGBA{A: 255}) {
			t.Errorf("ColorOf(%v) = %v, want opaque black", v, got)
		}
	}

	// Escaped values are always fully opaque.
	for _, v := range []float64{0, 0.5, 8, 42.25, 99.9} {
		if got := g.ColorOf(v); got.A != 255 {
			t.Errorf("ColorOf(%v).A = %d, want 255", v, got.A)
		}
	}

	// Value 8 lands at hue 26.4/256 with half brightness.
	if got, want := g.ColorOf(8), (color.RGBA{R: 128, G: 79, B: 0, A: 255}); got != want {
		t.Errorf("ColorOf(8) = %v, want %v", got, want)
	}
}

func TestFromHSB(t *testing.T) {
	tests := []struct {
		name                               string
		hue, saturation, brightness, alpha float64
		want                               color.RGBA
	}{
		{"red", 0, 1, 1, 1, color.RGBA{R: 255, A: 255}},
		{"green", 1.0 / 3.0, 1, 1, 1, color.RGBA{G: 255, A: 255}},
		{"blue", 2.0 / 3.0, 1, 1, 1, color.RGBA{B: 255, A: 255}},
		{"cyan", 0.5, 1, 1, 1, color.RGBA{G: 255, B: 255, A: 255}},
		{"hue wraps past one", 1.5, 1, 1, 1, color.RGBA{G: 255, B: 255, A: 255}},
		{"zero saturation is gray", 0.2, 0, 0.5, 1, color.RGBA{R: 128, G: 128, B: 128, A: 255}},
		{"zero brightness is black", 0.7, 1, 0, 1, color.RGBA{A: 255}},
		{"alpha carried through", 0, 1, 1, 0.5, color.RGBA{R: 255, A: 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromHSB(tt.hue, tt.saturation, tt.brightness, tt.alpha)
			if got != tt.want {
				t.Errorf("FromHSB(%v, %v, %v, %v) = %v, want %v",
					tt.hue, tt.saturation, tt.brightness, tt.alpha, got, tt.want)
			}
		})
	}
}

func TestLandmark(t *testing.T) {
	c, err := Landmark("douady-rabbit")
	if err != nil {
		t.Fatalf("Landmark(douady-rabbit) error: %v", err)
	}
	if c != DouadyRabbit {
		t.Errorf("Landmark(douady-rabbit) = %v, want %v", c, DouadyRabbit)
	}

	if _, err := Landmark("narnia"); err == nil {
		t.Error("Landmark(narnia) expected an error")
	}
}
