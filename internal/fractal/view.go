// Package fractal contains the escape-time fractal core: the pixel/plane
// coordinate view, smoothing policies, the per-pixel value generator with
// its HSB palette, and the parallel frame rendering engine.
package fractal

// Constraint classifies a plane coordinate mapped onto one pixel axis.
type Constraint uint8

const (
	// BelowRange means the plane coordinate is at or below the view origin.
	BelowRange Constraint = iota
	// InRange means the coordinate maps to a valid pixel index.
	InRange
	// AboveRange means the derived pixel index is at or past the dimension.
	AboveRange
)

// PixelCoord is the constrained result of mapping a plane coordinate onto
// one axis of the pixel grid. Index is meaningful only when Status is
// InRange.
type PixelCoord struct {
	Status Constraint
	Index  int
}

// Ok returns the pixel index and whether it is within the image.
func (c PixelCoord) Ok() (int, bool) { return c.Index, c.Status == InRange }

// View maps integer pixel coordinates to complex-plane coordinates and back
// for a fixed image size and plane window. Immutable once constructed.
type View struct {
	ImageWidth  int
	ImageHeight int
	ScaleX      float64
	ScaleY      float64
	OriginX     float64
	OriginY     float64
}

// NewUniformView builds a view with a single scale on both axes derived
// from the plane width, preserving pixel aspect ratio, with the plane
// window centered on the origin.
func NewUniformView(imageWidth, imageHeight int, planeWidth float64) View {
	scale := planeWidth / float64(imageWidth)
	planeHeight := float64(imageHeight) * scale

	return View{
		ImageWidth:  imageWidth,
		ImageHeight: imageHeight,
		ScaleX:      scale,
		ScaleY:      scale,
		OriginX:     -planeWidth / 2,
		OriginY:     -planeHeight / 2,
	}
}

// PlaneOf returns the complex-plane coordinate of pixel (x, y).
func (v View) PlaneOf(x, y int) complex128 {
	return complex(
		float64(x)*v.ScaleX+v.OriginX,
		float64(y)*v.ScaleY+v.OriginY,
	)
}

// PixelOf maps a plane coordinate to pixel coordinates, constraining each
// axis independently. The lower bound is exclusive on the plane coordinate
// and the upper bound is exclusive on the derived pixel index; both rules
// matter for overlay elements at image edges.
func (v View) PixelOf(loc complex128) (x, y PixelCoord) {
	x = constrain(real(loc), v.OriginX, v.ScaleX, v.ImageWidth)
	y = constrain(imag(loc), v.OriginY, v.ScaleY, v.ImageHeight)
	return x, y
}

func constrain(plane, origin, scale float64, dim int) PixelCoord {
	if plane <= origin {
		return PixelCoord{Status: BelowRange}
	}
	idx := int((plane - origin) / scale)
	if idx >= dim {
		return PixelCoord{Status: AboveRange}
	}
	return PixelCoord{Status: InRange, Index: idx}
}
