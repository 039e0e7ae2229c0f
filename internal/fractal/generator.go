package fractal

import "image/color"

// Mode selects which quadratic escape-time fractal a generator evaluates.
type Mode uint8

const (
	// Julia iterates z <- z^2 + c with a fixed c; z starts at the pixel's
	// plane coordinate.
	Julia Mode = iota
	// Mandelbrot iterates with c equal to the pixel's plane coordinate.
	// The orbit is seeded at c itself (the first step of the z0 = 0 orbit
	// is always c), so a point already outside the escape radius reports
	// iteration count 0 without running the loop.
	Mandelbrot
)

// ValueGenerator evaluates the escape-time value and color of individual
// pixels. It is immutable and cheap to copy; the parallel engine hands one
// copy to every worker.
type ValueGenerator struct {
	View       View
	Mode       Mode
	Iterations int
	Smoothing  Smoothing
	C          complex128 // Julia constant; unused in Mandelbrot mode
}

// Evaluate runs the quadratic iteration at the given plane coordinate and
// returns the smoothed escape index.
func (g *ValueGenerator) Evaluate(loc complex128) float64 {
	z := loc
	c := g.C
	if g.Mode == Mandelbrot {
		c = loc
	}

	radiusSquared := g.Smoothing.RadiusSquared()
	zPrev := z

	n := 0
	for n < g.Iterations {
		if real(z)*real(z)+imag(z)*imag(z) > radiusSquared {
			break
		}
		zPrev = z
		z = z*z + c
		n++
	}

	return g.Smoothing.Smooth(n, z, zPrev)
}

// PixelValue evaluates the pixel at image coordinates (x, y).
func (g *ValueGenerator) PixelValue(x, y int) float64 {
	return g.Evaluate(g.View.PlaneOf(x, y))
}

// ColorOf maps an escape value to a color. Values at or past the iteration
// cap (the orbit never escaped) are opaque black; everything else runs
// through a periodic hue with full saturation.
func (g *ValueGenerator) ColorOf(value float64) color.RGBA {
	if value >= float64(g.Iterations) {
		return color.RGBA{A: 255}
	}
	return FromHSB(
		wrapRange(value*3.3, 0, 256)/256,
		1,
		wrapRange(value*16, 0, 256)/256,
		1,
	)
}

// Pixel returns the color of the pixel at image coordinates (x, y).
func (g *ValueGenerator) Pixel(x, y int) color.RGBA {
	return g.ColorOf(g.PixelValue(x, y))
}

// ImageSize returns the generator's image dimensions in pixels.
func (g *ValueGenerator) ImageSize() (width, height int) {
	return g.View.ImageWidth, g.View.ImageHeight
}
