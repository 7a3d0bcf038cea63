package genterrain

import (
	"sort"

	"github.com/Flokey82/genterrain/biome"
	"github.com/Flokey82/genterrain/various"
	"github.com/Flokey82/go_gens/vectors"
)

// TreePlacement is a single tree of a forest.
type TreePlacement struct {
	X, Y  float64
	Size  float64 // Canopy size
	Seed  int64   // Seed for the appearance of the tree
	Depth int     // Depth tier (0-2), lower tiers are drawn first
}

// ForestRegion is a connected forest.
type ForestRegion struct {
	Members []string        // Sorted ids of the forest cells
	Trees   []TreePlacement // Trees ordered by depth tier, then y
}

const (
	forestMinCandidates = 6    // Minimum candidates per member
	forestMaxCandidates = 9    // Maximum candidates per member
	forestOffset        = 0.45 // Maximum candidate offset per axis (in cell sizes)
	forestReach         = 0.55 // Maximum distance to a member center (in cell sizes)
	forestSizeJitter    = 0.15 // Size jitter per tree (+/-)
)

// forestTierScale is the canopy scale per depth tier.
var forestTierScale = [3]float64{0.8, 1.0, 1.2}

// findForests scatters trees over every connected region of forest cells.
func (w *world) findForests() []*ForestRegion {
	var forests []*ForestRegion
	for _, members := range w.regionsOf(func(c *cell) bool {
		return c.Tags.Has(biome.TagForest)
	}) {
		forests = append(forests, &ForestRegion{
			Members: members,
			Trees:   w.scatterTrees(members),
		})
	}
	return forests
}

// scatterTrees places a handful of candidate trees around every member and
// keeps those close enough to any member center. Candidates may spill over
// into neighboring members, so canopies overlap tile edges.
func (w *world) scatterTrees(members []string) []TreePlacement {
	cs := w.cellSize
	reach := forestReach * cs

	centers := various.NewPointGrid(reach)
	for _, id := range members {
		centers.Insert(w.cells[id].Pos)
	}

	var trees []TreePlacement
	for _, id := range members {
		pos := w.cells[id].Pos
		rnd := various.NewRand(various.HashString(id))
		n := forestMinCandidates + rnd.Intn(forestMaxCandidates-forestMinCandidates+1)
		for i := 0; i < n; i++ {
			// Draw everything up front so that rejections don't shift the
			// sequence of later candidates.
			p := pos.Add(vectors.NewVec2(
				various.RandRange(rnd, -forestOffset*cs, forestOffset*cs),
				various.RandRange(rnd, -forestOffset*cs, forestOffset*cs),
			))
			depth := rnd.Intn(len(forestTierScale))
			jitter := various.RandRange(rnd, 1-forestSizeJitter, 1+forestSizeJitter)
			seed := rnd.Int63()
			if !centers.AnyWithin(p, reach) {
				continue
			}
			size := w.cfg.TreeSize * cs * forestTierScale[depth] * jitter
			size *= 1 + w.cfg.NoiseAmount*w.noise.Signed2(p.X, p.Y)
			trees = append(trees, TreePlacement{
				X:     p.X,
				Y:     p.Y,
				Size:  size,
				Seed:  seed,
				Depth: depth,
			})
		}
	}

	// Back to front.
	sort.SliceStable(trees, func(i, j int) bool {
		if trees[i].Depth != trees[j].Depth {
			return trees[i].Depth < trees[j].Depth
		}
		return trees[i].Y < trees[j].Y
	})
	return trees
}
