package various

import "github.com/Flokey82/go_gens/vectors"

// Chaikin applies the given number of corner cutting passes to a closed
// polygon. Each pass replaces every edge (p0, p1), including the closing edge,
// with the points at 1/4 and 3/4 along it, doubling the vertex count.
//
// Polygons with fewer than 3 points are returned unmodified.
func Chaikin(poly []vectors.Vec2, passes int) []vectors.Vec2 {
	if len(poly) < 3 {
		return poly
	}
	for pass := 0; pass < passes; pass++ {
		next := make([]vectors.Vec2, 0, len(poly)*2)
		for i, p0 := range poly {
			p1 := poly[(i+1)%len(poly)]
			next = append(next, Lerp2(p0, p1, 0.25), Lerp2(p0, p1, 0.75))
		}
		poly = next
	}
	return poly
}
