package various

import (
	"math"
	"sort"

	"github.com/Flokey82/go_gens/vectors"
)

// ConvexHull returns the convex hull of the given points using a Graham scan.
//
// The pivot is the point with the lowest y (ties: lowest x). The remaining
// points are sorted by polar angle around the pivot (ties: closest first) and
// scanned while popping every point that does not form a strict left turn, so
// collinear points are dropped.
//
// Inputs with fewer than 3 points are returned unmodified.
func ConvexHull(points []vectors.Vec2) []vectors.Vec2 {
	if len(points) < 3 {
		return points
	}

	// Pick the pivot.
	pivot := 0
	for i, p := range points {
		if p.Y < points[pivot].Y || (p.Y == points[pivot].Y && p.X < points[pivot].X) {
			pivot = i
		}
	}
	p0 := points[pivot]

	rest := make([]vectors.Vec2, 0, len(points)-1)
	for i, p := range points {
		if i != pivot {
			rest = append(rest, p)
		}
	}

	// Sort by polar angle around the pivot.
	sort.SliceStable(rest, func(i, j int) bool {
		ai := math.Atan2(rest[i].Y-p0.Y, rest[i].X-p0.X)
		aj := math.Atan2(rest[j].Y-p0.Y, rest[j].X-p0.X)
		if ai != aj {
			return ai < aj
		}
		return DistSq2(p0, rest[i]) < DistSq2(p0, rest[j])
	})

	hull := make([]vectors.Vec2, 0, len(points))
	hull = append(hull, p0)
	for _, p := range rest {
		for len(hull) > 1 && Cross2(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}
