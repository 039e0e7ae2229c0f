package geom

// maxSubdivisions bounds the recursion when a curve never passes the
// flatness test, e.g. for degenerate control points or a zero tolerance.
const maxSubdivisions = 24

// Flatten approximates the path with straight line segments whose maximum
// deviation from the true curves is bounded by tolerance. It returns one
// polyline per subpath; a ClosePath segment appends the subpath start so
// closed subpaths contribute their closing edge.
func (p Path) Flatten(tolerance float64) [][]Point {
	var polys [][]Point
	var poly []Point
	var cur, subStart Point

	flush := func() {
		if len(poly) > 1 {
			polys = append(polys, poly)
		}
		poly = nil
	}

	for _, seg := range p.segs {
		switch seg.Cmd {
		case MoveTo:
			flush()
			cur, subStart = seg.P3, seg.P3
			poly = append(poly, cur)
		case LineTo:
			poly = append(poly, seg.P3)
			cur = seg.P3
		case QuadTo:
			poly = flattenQuad(poly, cur, seg.P1, seg.P3, tolerance, 0)
			cur = seg.P3
		case CubicTo:
			poly = flattenCubic(poly, cur, seg.P1, seg.P2, seg.P3, tolerance, 0)
			cur = seg.P3
		case ClosePath:
			if cur != subStart {
				poly = append(poly, subStart)
			}
			cur = subStart
		}
	}
	flush()
	return polys
}

// Length approximates the total arc length of the path by flattening it
// within tolerance and summing the segment lengths, including the closing
// segment of closed subpaths.
func (p Path) Length(tolerance float64) float64 {
	var length float64
	for _, poly := range p.Flatten(tolerance) {
		for i := 1; i < len(poly); i++ {
			length += poly[i-1].Dist(poly[i])
		}
	}
	return length
}

// Sample walks the flattened path from arc length 0 and emits one point
// every interval of traveled distance, in path order. The first emitted
// point is the path start. A sample landing exactly on the end of the path
// is not emitted, so a path of length 10 sampled at 2.5 yields the four
// points at arc lengths 0, 2.5, 5 and 7.5. Distance does not accumulate
// across subpath gaps, but the leftover interval carries over.
func (p Path) Sample(tolerance, interval float64) []Point {
	if interval <= 0 {
		return nil
	}

	var points []Point
	pending := 0.0 // distance remaining until the next sample
	first := true

	for _, poly := range p.Flatten(tolerance) {
		for i := 1; i < len(poly); i++ {
			from, to := poly[i-1], poly[i]
			if first {
				points = append(points, from)
				pending = interval
				first = false
			}
			segLen := from.Dist(to)
			// Strictly less than: a sample coinciding with the segment end
			// is deferred, and dropped entirely at the end of the path.
			for pending < segLen {
				from = from.Lerp(to, pending/segLen)
				points = append(points, from)
				segLen = from.Dist(to)
				pending = interval
			}
			pending -= segLen
		}
	}
	return points
}

// flattenQuad appends a flat approximation of the quadratic bezier
// (p0, c, p1), excluding p0 and including p1.
func flattenQuad(out []Point, p0, c, p1 Point, tolerance float64, depth int) []Point {
	if depth >= maxSubdivisions || distToChord(c, p0, p1) <= tolerance {
		return append(out, p1)
	}
	// de Casteljau split at t = 1/2
	l := p0.Lerp(c, 0.5)
	r := c.Lerp(p1, 0.5)
	m := l.Lerp(r, 0.5)
	out = flattenQuad(out, p0, l, m, tolerance, depth+1)
	return flattenQuad(out, m, r, p1, tolerance, depth+1)
}

// flattenCubic appends a flat approximation of the cubic bezier
// (p0, c1, c2, p1), excluding p0 and including p1.
func flattenCubic(out []Point, p0, c1, c2, p1 Point, tolerance float64, depth int) []Point {
	if depth >= maxSubdivisions ||
		(distToChord(c1, p0, p1) <= tolerance && distToChord(c2, p0, p1) <= tolerance) {
		return append(out, p1)
	}
	// de Casteljau split at t = 1/2
	l1 := p0.Lerp(c1, 0.5)
	m := c1.Lerp(c2, 0.5)
	r2 := c2.Lerp(p1, 0.5)
	l2 := l1.Lerp(m, 0.5)
	r1 := m.Lerp(r2, 0.5)
	mid := l2.Lerp(r1, 0.5)
	out = flattenCubic(out, p0, l1, l2, mid, tolerance, depth+1)
	return flattenCubic(out, mid, r1, r2, p1, tolerance, depth+1)
}

// distToChord returns the distance from pt to the segment (a, b).
func distToChord(pt, a, b Point) float64 {
	ab := b.Sub(a)
	ap := pt.Sub(a)
	den := ab.X*ab.X + ab.Y*ab.Y
	if den == 0 {
		return pt.Dist(a)
	}
	t := (ap.X*ab.X + ap.Y*ab.Y) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return pt.Dist(a.Lerp(b, t))
}
