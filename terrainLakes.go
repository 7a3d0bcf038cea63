package genterrain

import (
	"math"

	"github.com/Flokey82/genterrain/various"
	"github.com/Flokey82/go_gens/vectors"
	"github.com/fogleman/delaunay"
)

// LakeRegion is a connected body of standing water.
type LakeRegion struct {
	Members  []string       // Sorted ids of the water cells
	Center   vectors.Vec2   // Mean position of the members
	Boundary []vectors.Vec2 // Closed outline (first point is not repeated)
	Fill     [][3]int       // Triangles over Boundary indices covering the lake
}

// Contains returns true if p lies inside the lake.
func (l *LakeRegion) Contains(p vectors.Vec2) bool {
	for _, t := range l.Fill {
		if various.IsPointInTriangle(l.Boundary[t[0]], l.Boundary[t[1]], l.Boundary[t[2]], p) {
			return true
		}
	}
	return false
}

const (
	lakeSinglePoints  = 16   // Points of the outline of a single cell lake
	lakeSingleJitter  = 0.1  // Radius jitter of single cell lakes (+/-)
	lakeSingleSquash  = 0.85 // Vertical compression of single cell lakes
	lakeCloudPoints   = 8    // Points per member cloud
	lakeCloudJitter   = 0.15 // Radius jitter of the member clouds (+/-)
	lakeCloudSquash   = 0.9  // Vertical compression of the member clouds
	lakeChaikinPasses = 2
)

// findLakes returns a lake for every connected region of water cells.
func (w *world) findLakes() []*LakeRegion {
	var lakes []*LakeRegion
	for _, members := range w.regionsOf(func(c *cell) bool {
		return c.Tags.IsWater()
	}) {
		lakes = append(lakes, w.newLake(members))
	}
	return lakes
}

func (w *world) newLake(members []string) *LakeRegion {
	l := &LakeRegion{
		Members: members,
		Center:  various.Centroid2(w.positions(members)),
	}
	if len(members) == 1 {
		l.Boundary = singleLakeOutline(l.Center, w.cfg.SingleRadius*w.cellSize)
	} else {
		var cloud []vectors.Vec2
		for _, id := range members {
			cloud = append(cloud, lakeCloud(id, w.cells[id].Pos, w.cfg.CloudRadius*w.cellSize)...)
		}
		l.Boundary = various.Chaikin(various.ConvexHull(cloud), lakeChaikinPasses)
	}
	l.Fill = triangulate(l.Boundary)
	return l
}

// singleLakeOutline returns a jittered, slightly flattened circle around
// center. The jitter of each point is seeded from the center and the point
// index.
func singleLakeOutline(center vectors.Vec2, radius float64) []vectors.Vec2 {
	seed := various.HashPoint(center)
	res := make([]vectors.Vec2, lakeSinglePoints)
	for i := range res {
		angle := 2 * math.Pi * float64(i) / lakeSinglePoints
		factor := 1 - lakeSingleJitter + 2*lakeSingleJitter*various.SeededFloat(seed+int64(i))
		res[i] = various.PolarOffset2(center, angle, radius*factor, lakeSingleSquash)
	}
	return res
}

// lakeCloud returns the points around a member cell that the lake outline is
// wrapped around. The jitter is seeded from the member id and point index.
func lakeCloud(id string, pos vectors.Vec2, radius float64) []vectors.Vec2 {
	seed := various.HashString(id)
	res := make([]vectors.Vec2, lakeCloudPoints)
	for i := range res {
		angle := 2 * math.Pi * float64(i) / lakeCloudPoints
		factor := 1 - lakeCloudJitter + 2*lakeCloudJitter*various.SeededFloat(seed+int64(i))
		res[i] = various.PolarOffset2(pos, angle, radius*factor, lakeCloudSquash)
	}
	return res
}

// triangulate returns the delaunay triangles of the given polygon points that
// lie inside the polygon. A failed triangulation yields no triangles.
func triangulate(poly []vectors.Vec2) [][3]int {
	if len(poly) < 3 {
		return nil
	}
	pts := make([]delaunay.Point, 0, len(poly))
	for _, p := range poly {
		pts = append(pts, delaunay.Point{X: p.X, Y: p.Y})
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil
	}
	res := make([][3]int, 0, len(tri.Triangles)/3)
	for i := 0; i+2 < len(tri.Triangles); i += 3 {
		t := [3]int{tri.Triangles[i], tri.Triangles[i+1], tri.Triangles[i+2]}

		// Outlines of single cell lakes may be concave, so drop the
		// triangles that fill the dents.
		c := various.Centroid2([]vectors.Vec2{poly[t[0]], poly[t[1]], poly[t[2]]})
		if various.IsPointInPolygon(poly, c) {
			res = append(res, t)
		}
	}
	return res
}
