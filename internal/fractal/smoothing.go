package fractal

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Escape radii per smoothing policy. Discrete banding only needs the
// classical radius 2; logarithmic interpolation benefits from a much larger
// bailout so the final orbit step is long enough to interpolate within.
const (
	noneEscapeRadius = 2.0
	logEscapeRadius  = 256.0
)

type smoothingKind uint8

const (
	smoothNone smoothingKind = iota
	smoothLog
)

// Smoothing turns a raw escape iteration count into a continuous escape
// index and supplies the escape-radius-squared threshold used by the
// iteration loop. The zero value is the discrete (no smoothing) policy.
type Smoothing struct {
	kind   smoothingKind
	radius float64
}

// NoSmoothing returns the discrete policy: the escape index is the raw
// iteration count, producing visible color bands.
func NoSmoothing() Smoothing {
	return Smoothing{kind: smoothNone, radius: noneEscapeRadius}
}

// LogSmoothing returns the logarithmic policy with the given escape radius,
// interpolating a fractional iteration count from the last orbit step.
func LogSmoothing(escapeRadius float64) Smoothing {
	return Smoothing{kind: smoothLog, radius: escapeRadius}
}

// ParseSmoothing parses a smoothing policy name: "none" or "logarithmic"
// (abbreviated "log").
func ParseSmoothing(name string) (Smoothing, error) {
	switch name {
	case "none":
		return NoSmoothing(), nil
	case "logarithmic", "log":
		return LogSmoothing(logEscapeRadius), nil
	default:
		return Smoothing{}, fmt.Errorf("unknown smoothing %q (want none or logarithmic)", name)
	}
}

// String returns the parseable name of the policy.
func (s Smoothing) String() string {
	if s.kind == smoothLog {
		return "logarithmic"
	}
	return "none"
}

// RadiusSquared returns the escape threshold compared against |z|^2.
// Iteration stops the first time |z|^2 exceeds this value.
func (s Smoothing) RadiusSquared() float64 {
	return s.radius * s.radius
}

// Smooth converts the raw iteration count and the final two orbit values
// into a continuous escape index. Pure and deterministic.
//
// The discrete policy returns n unchanged. The logarithmic policy locates
// the fraction of the final step at which log|z| crossed log(radius),
// interpolating linearly between log|zPrev| and log|z|; orbits that never
// escaped (or escaped before the first step) keep their integer count.
func (s Smoothing) Smooth(n int, z, zPrev complex128) float64 {
	switch s.kind {
	case smoothLog:
		if n == 0 {
			return 0
		}
		abs2 := real(z)*real(z) + imag(z)*imag(z)
		if abs2 <= s.RadiusSquared() {
			// The iteration cap was reached without escaping.
			return float64(n)
		}
		logPrev := math.Log(cmplx.Abs(zPrev))
		logCur := math.Log(cmplx.Abs(z))
		if !isFinite(logPrev) || !isFinite(logCur) || logCur == logPrev {
			return float64(n)
		}
		frac := (math.Log(s.radius) - logPrev) / (logCur - logPrev)
		return float64(n-1) + clamp01(frac)
	default:
		return float64(n)
	}
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
