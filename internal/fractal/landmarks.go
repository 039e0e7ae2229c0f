package fractal

import "fmt"

// Classic Julia set constants, usable as shortcuts for single-frame
// previews in place of a path-driven c.
var (
	// Dendrite: thin branching filaments with no interior.
	Dendrite = complex(0, 1)

	// DouadyRabbit: three-eared rabbit with a large connected interior.
	DouadyRabbit = complex(-0.123, 0.745)

	// SanMarco: basilica-like arches along the real axis.
	SanMarco = complex(-0.75, 0)

	// SiegelDisk: irrationally indifferent fixed point with a rotation disk.
	SiegelDisk = complex(-0.390541, -0.586788)
)

var landmarks = map[string]complex128{
	"dendrite":      Dendrite,
	"douady-rabbit": DouadyRabbit,
	"san-marco":     SanMarco,
	"siegel-disk":   SiegelDisk,
}

// Landmark returns the Julia constant registered under the given name.
func Landmark(name string) (complex128, error) {
	c, ok := landmarks[name]
	if !ok {
		return 0, fmt.Errorf("unknown julia landmark %q", name)
	}
	return c, nil
}
