package various

import "github.com/Flokey82/go_gens/vectors"

// IsPointInTriangle returns true if p is inside the triangle (p1, p2, p3) or
// on one of its edges. Degenerate triangles contain nothing.
func IsPointInTriangle(p1, p2, p3, p vectors.Vec2) bool {
	// Calculate the barycentric coordinates of p with respect to the triangle.
	denom := (p2.Y-p3.Y)*(p1.X-p3.X) + (p3.X-p2.X)*(p1.Y-p3.Y)
	if denom == 0 {
		return false
	}
	s := ((p2.Y-p3.Y)*(p.X-p3.X) + (p3.X-p2.X)*(p.Y-p3.Y)) / denom
	t := ((p3.Y-p1.Y)*(p.X-p3.X) + (p1.X-p3.X)*(p.Y-p3.Y)) / denom
	u := 1 - s - t
	return s >= 0 && t >= 0 && u >= 0
}

// IsPointInPolygon returns true if p lies inside the closed polygon (even-odd
// rule).
func IsPointInPolygon(poly []vectors.Vec2, p vectors.Vec2) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
