// Package genterrain turns a graph of discrete map locations, each tagged with
// biome and terrain attributes, into continuous terrain features that span
// location boundaries: lake outlines, river paths, forest canopies and
// mountain ridges.
//
// Synthesis is a pure function of its input. All randomness is seeded from
// stable hashes of location ids and positions, so identical snapshots always
// produce identical terrain.
package genterrain

import (
	"log"
	"sort"
	"time"

	"github.com/Flokey82/genterrain/biome"
	"github.com/Flokey82/genterrain/graph"
	"github.com/Flokey82/genterrain/noise"
	"github.com/Flokey82/genterrain/various"
	"github.com/Flokey82/go_gens/vectors"
)

// Terrain is the consolidated result of one synthesis run.
type Terrain struct {
	Lakes     []*LakeRegion
	Rivers    []*RiverPath
	Forests   []*ForestRegion
	Mountains []*MountainRidge
	Revision  uint64   // Revision of the snapshot the terrain was built from
	Skipped   []string // Ids of locations that could not be placed on the map
}

// cell is a classified location with a resolved map position.
type cell struct {
	ID        string
	Tags      biome.Tags
	Elevation float64
	Moisture  float64
	Whittaker int
	Pos       vectors.Vec2
}

// world holds everything the terrain passes need.
type world struct {
	cfg      *Config
	cellSize float64
	cells    map[string]*cell
	ids      []string // sorted ids of all cells
	graph    *graph.RegionGraph
	noise    *noise.Noise
}

// parallelThreshold is the number of locations above which classification
// is spread over several workers.
const parallelThreshold = 4096

// Synthesize builds the terrain features for the given snapshot.
//
// Locations without an id, duplicates of an earlier id and locations whose
// position cannot be projected are left out of the geometry; the latter two
// are reported in Terrain.Skipped. Exits pointing at locations that are not
// part of the geometry are ignored.
func Synthesize[P any](locs []Location[P], proj Projection[P], cfg *Config) *Terrain {
	if cfg == nil {
		cfg = NewConfig()
	}
	w, skipped := newWorld(locs, proj, cfg)
	t := w.synthesize()
	t.Revision = Revision(locs)
	t.Skipped = skipped
	return t
}

func newWorld[P any](locs []Location[P], proj Projection[P], cfg *Config) (*world, []string) {
	start := time.Now()
	classify := cfg.Classifier
	if classify == nil {
		classify = biome.Classify
	}

	// Classify and project every location.
	cells := make([]*cell, len(locs))
	build := func(start, end int) {
		for i := start; i < end; i++ {
			l := &locs[i]
			pos, ok := proj(l.Position)
			if !ok || !various.IsFinite2(pos.X, pos.Y) {
				continue
			}
			c := classify(l.classifierInput())
			cells[i] = &cell{
				ID:        l.ID,
				Tags:      c.Tags,
				Elevation: c.Elevation,
				Moisture:  c.Moisture,
				Whittaker: c.Whittaker,
				Pos:       pos,
			}
		}
	}
	if cfg.Parallel && len(locs) > parallelThreshold {
		various.KickOffChunkWorkers(len(locs), build)
	} else {
		build(0, len(locs))
	}

	w := &world{
		cfg:      cfg,
		cellSize: cfg.CellSize,
		cells:    make(map[string]*cell, len(locs)),
		noise:    noise.NewNoise(3, 0.5, cfg.NoiseFrequency/cfg.CellSize, cfg.NoiseSeed),
	}
	var skipped []string
	seen := make(map[string]bool, len(locs))
	exits := make(map[string][]string, len(locs))
	for i, c := range cells {
		id := locs[i].ID
		if id == "" {
			continue
		}
		if seen[id] || c == nil {
			skipped = append(skipped, id)
			seen[id] = true
			continue
		}
		seen[id] = true
		w.cells[id] = c
		exits[id] = locs[i].Exits
	}
	w.graph = graph.NewRegionGraph(exits)
	w.ids = w.graph.IDs()
	skipped = various.SortedUnique(skipped)

	if cfg.Verbose {
		log.Println("Done cells in ", time.Since(start).String())
		log.Println("Graph has", len(w.ids), "cells and", w.graph.NumEdges(), "edges,", len(skipped), "skipped")
	}
	return w, skipped
}

// synthesize runs the terrain passes and assembles the result.
func (w *world) synthesize() *Terrain {
	t := &Terrain{}
	passes := []func(){
		func() { t.Lakes = timed(w.cfg.Verbose, "lakes", w.findLakes) },
		func() { t.Rivers = timed(w.cfg.Verbose, "rivers", w.findRivers) },
		func() { t.Forests = timed(w.cfg.Verbose, "forests", w.findForests) },
		func() { t.Mountains = timed(w.cfg.Verbose, "mountains", w.findMountains) },
	}
	if w.cfg.Parallel {
		various.RunParallel(passes...)
	} else {
		for _, pass := range passes {
			pass()
		}
	}
	t.sort()
	return t
}

// timed calls the given pass and logs its duration if verbose.
func timed[T any](verbose bool, name string, pass func() T) T {
	start := time.Now()
	res := pass()
	if verbose {
		log.Println("Done "+name+" in ", time.Since(start).String())
	}
	return res
}

// sort brings every feature list into canonical order.
func (t *Terrain) sort() {
	sort.Slice(t.Lakes, func(i, j int) bool {
		return t.Lakes[i].Members[0] < t.Lakes[j].Members[0]
	})
	sort.Slice(t.Rivers, func(i, j int) bool {
		return t.Rivers[i].Cells[0] < t.Rivers[j].Cells[0]
	})
	sort.Slice(t.Forests, func(i, j int) bool {
		return t.Forests[i].Members[0] < t.Forests[j].Members[0]
	})
	sort.Slice(t.Mountains, func(i, j int) bool {
		return t.Mountains[i].Members[0] < t.Mountains[j].Members[0]
	})
}

// regionsOf returns the connected regions of the cells matching pred.
func (w *world) regionsOf(pred func(c *cell) bool) [][]string {
	return graph.ConnectedRegions(w.ids, func(id string) bool {
		c, ok := w.cells[id]
		return ok && pred(c)
	}, w.graph)
}

// positions returns the positions of the given cells.
func (w *world) positions(ids []string) []vectors.Vec2 {
	res := make([]vectors.Vec2, 0, len(ids))
	for _, id := range ids {
		res = append(res, w.cells[id].Pos)
	}
	return res
}
