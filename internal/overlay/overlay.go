// Package overlay draws annotation elements (crosshairs, coordinate labels)
// directly into RGBA8 frame buffers produced by the fractal engine.
package overlay

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/arcas-labs/fractalmotion/internal/fractal"
)

// DrawCrosshair draws a full-width horizontal and full-height vertical
// white line through the pixel position of the given plane coordinate.
// Each axis is skipped independently when the coordinate falls outside the
// view on that axis, so a crosshair near an image edge degrades to a single
// line rather than disappearing.
func DrawCrosshair(frame []byte, view fractal.View, loc complex128) {
	px, py := view.PixelOf(loc)

	if y, ok := py.Ok(); ok {
		drawHorizontalLine(frame, view.ImageWidth, y)
	}
	if x, ok := px.Ok(); ok {
		drawVerticalLine(frame, view.ImageWidth, view.ImageHeight, x)
	}
}

func drawHorizontalLine(frame []byte, width, y int) {
	row := y * width * 4
	for x := 0; x < width; x++ {
		at := row + x*4
		frame[at] = 0xFF
		frame[at+1] = 0xFF
		frame[at+2] = 0xFF
		frame[at+3] = 0xFF
	}
}

func drawVerticalLine(frame []byte, width, height, x int) {
	for y := 0; y < height; y++ {
		at := (y*width + x) * 4
		frame[at] = 0xFF
		frame[at+1] = 0xFF
		frame[at+2] = 0xFF
		frame[at+3] = 0xFF
	}
}

// labelMargin keeps the label clear of the frame border.
const labelMargin = 4

// DrawLabel writes the complex coordinate in the top-left corner of the
// frame, e.g. "c = -0.7435+0.1310i".
func DrawLabel(frame []byte, view fractal.View, loc complex128) {
	img := wrapRGBA(frame, view.ImageWidth, view.ImageHeight)
	face := basicfont.Face7x13

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot: fixed.P(
			labelMargin,
			labelMargin+face.Metrics().Ascent.Ceil(),
		),
	}
	d.DrawString(FormatCoordinate(loc))
}

// FormatCoordinate renders a plane coordinate the way labels display it.
func FormatCoordinate(loc complex128) string {
	return fmt.Sprintf("c = %.4f%+.4fi", real(loc), imag(loc))
}

// wrapRGBA views a raw RGBA8 frame buffer as an *image.RGBA without
// copying, so font drawing mutates the frame in place.
func wrapRGBA(frame []byte, width, height int) *image.RGBA {
	return &image.RGBA{
		Pix:    frame,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}
