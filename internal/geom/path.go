// Package geom holds the vector path model used to drive the camera through
// the complex plane: an SVG-style path, adaptive bezier flattening, arc-length
// approximation, and fixed-interval arc-length sampling.
package geom

import "math"

// Point is a 2D coordinate in path space. Path space is interpreted directly
// as complex-plane coordinates by the animation driver.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Command identifies the kind of a path segment.
type Command uint8

const (
	// MoveTo starts a new subpath at P3.
	MoveTo Command = iota
	// LineTo draws a straight segment to P3.
	LineTo
	// QuadTo draws a quadratic bezier with control point P1 ending at P3.
	QuadTo
	// CubicTo draws a cubic bezier with control points P1, P2 ending at P3.
	CubicTo
	// ClosePath draws a straight segment back to the subpath start.
	ClosePath
)

// Segment is a single path command. P1 and P2 are bezier control points and
// are unused for MoveTo, LineTo and ClosePath. P3 is the segment end point
// and is unused for ClosePath.
type Segment struct {
	Cmd        Command
	P1, P2, P3 Point
}

// Path is an ordered sequence of segments. The zero value is an empty path.
// Paths are immutable once built; all methods are read-only.
type Path struct {
	segs []Segment
}

// Segments returns the underlying segment slice. Callers must not modify it.
func (p Path) Segments() []Segment { return p.segs }

// Empty reports whether the path contains no segments.
func (p Path) Empty() bool { return len(p.segs) == 0 }

// pathBuilder accumulates segments while parsing.
type pathBuilder struct {
	segs []Segment
}

func (b *pathBuilder) moveTo(pt Point)          { b.segs = append(b.segs, Segment{Cmd: MoveTo, P3: pt}) }
func (b *pathBuilder) lineTo(pt Point)          { b.segs = append(b.segs, Segment{Cmd: LineTo, P3: pt}) }
func (b *pathBuilder) quadTo(c, pt Point)       { b.segs = append(b.segs, Segment{Cmd: QuadTo, P1: c, P3: pt}) }
func (b *pathBuilder) cubicTo(c1, c2, pt Point) { b.segs = append(b.segs, Segment{Cmd: CubicTo, P1: c1, P2: c2, P3: pt}) }
func (b *pathBuilder) close()                   { b.segs = append(b.segs, Segment{Cmd: ClosePath}) }

func (b *pathBuilder) path() Path { return Path{segs: b.segs} }
