package tricolor

const (
	// ApexY is the height of the reference triangle apex, sqrt(0.75).
	ApexY = 0.86602540378443864676372317075294

	// Tolerance is the margin kept between the barycentric weights and the [0, 1] bounds.
	Tolerance = 1e-3
)

// Point is a Cartesian coordinate pair.
type Point struct {
	X, Y float64
}

func (p Point) add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) scale(f float64) Point { return Point{p.X * f, p.Y * f} }
func (p Point) dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Triangle is defined by its three vertices.
type Triangle struct {
	Nodes [3]Point
}

// NewTriangle returns a triangle with the vertices p0, p1 and p2.
func NewTriangle(p0, p1, p2 Point) Triangle {
	return Triangle{Nodes: [3]Point{p0, p1, p2}}
}

// Reference returns the equilateral triangle spanning the colorbar:
// (0, 0), (1, 0) and (0.5, sqrt(0.75)).
func Reference() Triangle {
	return NewTriangle(Point{0, 0}, Point{1, 0}, Point{0.5, ApexY})
}

// Midpoints returns, for every vertex, the midpoint of the opposite edge.
func (t Triangle) Midpoints() [3]Point {
	var mid [3]Point
	for i := range mid {
		mid[i] = t.Nodes[(i+1)%3].add(t.Nodes[(i+2)%3]).scale(0.5)
	}
	return mid
}

// Contains reports whether p lies inside the reference triangle.
// The test is split at x = 0.5 into two half-plane checks; points lying
// exactly on x = 0.5 are never inside.
func Contains(p Point) bool {
	slope := ApexY / 0.5
	switch {
	case p.X < 0.5:
		// (0, 0) yields NaN and is kept, (0, y > 0) yields +Inf and is not.
		return !(p.Y/p.X > slope)
	case p.X > 0.5:
		return !(p.Y > float64(-slope*p.X)+slope)
	}
	return false
}

// Barycentric projects p onto the three vertex-to-midpoint axes of t and
// clips every weight into [tol, 1-tol]. The weights are not renormalized,
// so after clipping they may not sum to 1.
func (t Triangle) Barycentric(p Point, tol float64) RGB {
	mid := t.Midpoints()

	var s [3]float64
	for i := range s {
		s[i] = t.Nodes[i].sub(mid[i]).dot(p.sub(mid[i])) / 0.75
		s[i] = Clamp(s[i], tol, 1-tol)
	}
	return RGB{R: s[0], G: s[1], B: s[2]}
}
