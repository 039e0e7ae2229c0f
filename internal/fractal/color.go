package fractal

import (
	"image/color"
	"math"
)

// FromHSB converts hue/saturation/brightness/alpha values, each in [0, 1],
// to an 8-bit RGBA color using the standard six-sector color wheel. Hue
// wraps, so any real hue value is accepted.
func FromHSB(hue, saturation, brightness, alpha float64) color.RGBA {
	a := toByte(alpha)
	if saturation == 0 {
		v := toByte(brightness)
		return color.RGBA{R: v, G: v, B: v, A: a}
	}

	sector := (hue - math.Floor(hue)) * 6
	offset := sector - math.Floor(sector)
	off := brightness * (1 - saturation)
	fadeOut := brightness * (1 - saturation*offset)
	fadeIn := brightness * (1 - saturation*(1-offset))

	switch int(sector) {
	case 0:
		return color.RGBA{R: toByte(brightness), G: toByte(fadeIn), B: toByte(off), A: a}
	case 1:
		return color.RGBA{R: toByte(fadeOut), G: toByte(brightness), B: toByte(off), A: a}
	case 2:
		return color.RGBA{R: toByte(off), G: toByte(brightness), B: toByte(fadeIn), A: a}
	case 3:
		return color.RGBA{R: toByte(off), G: toByte(fadeOut), B: toByte(brightness), A: a}
	case 4:
		return color.RGBA{R: toByte(fadeIn), G: toByte(off), B: toByte(brightness), A: a}
	default:
		return color.RGBA{R: toByte(brightness), G: toByte(off), B: toByte(fadeOut), A: a}
	}
}

func toByte(v float64) uint8 {
	return uint8(v*255 + 0.5)
}

// wrapRange wraps value into the half-open range [min, max), shifting by
// the range size in either direction as needed.
func wrapRange(value, min, max float64) float64 {
	size := max - min
	for value < min {
		value += size
	}
	for value >= max {
		value -= size
	}
	return value
}
