package geom

import (
	"math"
	"testing"
)

const tolerance = 0.0001

func mustParse(t *testing.T, data string) Path {
	t.Helper()
	p, err := ParseSVGPath(data)
	if err != nil {
		t.Fatalf("ParseSVGPath(%q): %v", data, err)
	}
	return p
}

func TestPath_Length(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		want   float64
		within float64
	}{
		{"single line", "M 0 0 L 3 4", 5, 0},
		{"closed triangle includes closing edge", "M 0 0 L 3 0 L 3 4 Z", 12, 0},
		{"collinear cubic degenerates to its chord", "M 0 0 C 1 0 2 0 3 0", 3, 0},
		// The bezier traces the parabola y = x - x^2/2 on [0, 2], whose arc
		// length is sqrt(2) + ln(1 + sqrt(2)) = 2.29559.
		{"quadratic arc", "M 0 0 Q 1 1 2 0", 2.29559, 0.01},
		{"two subpaths", "M 0 0 L 1 0 M 5 0 L 5 2", 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParse(t, tt.data).Length(tolerance)
			if math.Abs(got-tt.want) > tt.within+1e-9 {
				t.Errorf("Length = %v, want %v (+/- %v)", got, tt.want, tt.within)
			}
		})
	}
}

func TestPath_Flatten(t *testing.T) {
	t.Run("closed subpath appends its start", func(t *testing.T) {
		polys := mustParse(t, "M 0 0 L 3 0 L 3 4 Z").Flatten(tolerance)
		if len(polys) != 1 {
			t.Fatalf("got %d polylines, want 1", len(polys))
		}
		poly := polys[0]
		if len(poly) != 4 {
			t.Fatalf("got %d points, want 4: %v", len(poly), poly)
		}
		if poly[0] != poly[len(poly)-1] {
			t.Errorf("polyline is not closed: starts %v, ends %v", poly[0], poly[len(poly)-1])
		}
	})

	t.Run("curves stay within tolerance of samples", func(t *testing.T) {
		// Midpoint of M 0 0 Q 1 1 2 0 is (1, 0.5).
		polys := mustParse(t, "M 0 0 Q 1 1 2 0").Flatten(tolerance)
		if len(polys) != 1 {
			t.Fatalf("got %d polylines, want 1", len(polys))
		}
		best := math.Inf(1)
		for _, pt := range polys[0] {
			if d := pt.Dist(Point{1, 0.5}); d < best {
				best = d
			}
		}
		if best > 0.01 {
			t.Errorf("nearest vertex is %v from the curve midpoint", best)
		}
	})

	t.Run("bare move produces no polyline", func(t *testing.T) {
		if polys := mustParse(t, "M 1 1").Flatten(tolerance); len(polys) != 0 {
			t.Errorf("got %d polylines, want 0", len(polys))
		}
	})
}

func TestPath_Sample(t *testing.T) {
	approxEqual := func(p, q Point) bool {
		return math.Abs(p.X-q.X) < 1e-9 && math.Abs(p.Y-q.Y) < 1e-9
	}

	tests := []struct {
		name     string
		data     string
		interval float64
		want     []Point
	}{
		{
			// A sample landing exactly on the path end is dropped.
			name:     "even division excludes the terminal point",
			data:     "M 0 0 L 10 0",
			interval: 2.5,
			want:     []Point{{0, 0}, {2.5, 0}, {5, 0}, {7.5, 0}},
		},
		{
			name:     "sample on an interior vertex",
			data:     "M 0 0 L 2.5 0 L 10 0",
			interval: 2.5,
			want:     []Point{{0, 0}, {2.5, 0}, {5, 0}, {7.5, 0}},
		},
		{
			name:     "interval longer than the path yields only the start",
			data:     "M 0 0 L 1 0",
			interval: 5,
			want:     []Point{{0, 0}},
		},
		{
			name:     "leftover distance carries across subpaths",
			data:     "M 0 0 L 3 0 M 10 0 L 13 0",
			interval: 2,
			want:     []Point{{0, 0}, {2, 0}, {11, 0}},
		},
		{
			name:     "uneven interval",
			data:     "M 0 0 L 7 0",
			interval: 3,
			want:     []Point{{0, 0}, {3, 0}, {6, 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParse(t, tt.data).Sample(tolerance, tt.interval)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d points, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if !approxEqual(got[i], tt.want[i]) {
					t.Errorf("point %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}

	t.Run("non-positive interval yields nothing", func(t *testing.T) {
		p := mustParse(t, "M 0 0 L 10 0")
		if got := p.Sample(tolerance, 0); got != nil {
			t.Errorf("Sample(0) = %v, want nil", got)
		}
		if got := p.Sample(tolerance, -1); got != nil {
			t.Errorf("Sample(-1) = %v, want nil", got)
		}
	})
}
