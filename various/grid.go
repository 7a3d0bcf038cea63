package various

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
)

// PointGrid buckets points into square cells so that proximity queries only
// look at the surrounding buckets.
type PointGrid struct {
	size    float64
	buckets map[[2]int][]vectors.Vec2
}

// NewPointGrid returns an empty grid with the given bucket size.
func NewPointGrid(size float64) *PointGrid {
	if size <= 0 {
		size = 1
	}
	return &PointGrid{
		size:    size,
		buckets: make(map[[2]int][]vectors.Vec2),
	}
}

func (g *PointGrid) key(p vectors.Vec2) [2]int {
	return [2]int{int(math.Floor(p.X / g.size)), int(math.Floor(p.Y / g.size))}
}

// Insert adds p to the grid.
func (g *PointGrid) Insert(p vectors.Vec2) {
	k := g.key(p)
	g.buckets[k] = append(g.buckets[k], p)
}

// AnyWithin returns true if at least one point of the grid is strictly closer
// than radius to p.
func (g *PointGrid) AnyWithin(p vectors.Vec2, radius float64) bool {
	k := g.key(p)
	span := int(math.Ceil(radius / g.size))
	radiusSq := radius * radius
	for dx := -span; dx <= span; dx++ {
		for dy := -span; dy <= span; dy++ {
			for _, q := range g.buckets[[2]int{k[0] + dx, k[1] + dy}] {
				if DistSq2(p, q) < radiusSq {
					return true
				}
			}
		}
	}
	return false
}
