package various

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
)

var Zero2 = vectors.Vec2{}

// Dist2 returns the eucledian distance between two points.
func Dist2(a, b vectors.Vec2) float64 {
	xDiff := a.X - b.X
	yDiff := a.Y - b.Y
	return math.Sqrt(xDiff*xDiff + yDiff*yDiff)
}

// DistSq2 returns the squared distance between two points.
func DistSq2(a, b vectors.Vec2) float64 {
	xDiff := a.X - b.X
	yDiff := a.Y - b.Y
	return xDiff*xDiff + yDiff*yDiff
}

// Cross2 returns the z component of the cross product of (a-o) and (b-o).
// A positive value means o->a->b is a left (counter-clockwise) turn in a
// y-up frame.
func Cross2(o, a, b vectors.Vec2) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Lerp2 returns the point at t along the segment a->b.
func Lerp2(a, b vectors.Vec2, t float64) vectors.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// Centroid2 returns the mean of the given points.
func Centroid2(points []vectors.Vec2) vectors.Vec2 {
	if len(points) == 0 {
		return Zero2
	}
	var sum vectors.Vec2
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

// PolarOffset2 returns p moved by radius in the direction of angle, with the
// y component scaled by squash.
func PolarOffset2(p vectors.Vec2, angle, radius, squash float64) vectors.Vec2 {
	return vectors.Vec2{
		X: p.X + math.Cos(angle)*radius,
		Y: p.Y + math.Sin(angle)*radius*squash,
	}
}

// Bounds2 returns the minimum and maximum corner of the given points.
func Bounds2(points []vectors.Vec2) (vectors.Vec2, vectors.Vec2) {
	if len(points) == 0 {
		return Zero2, Zero2
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}
