package genterrain

import (
	"github.com/Flokey82/genterrain/biome"
	"github.com/Flokey82/genterrain/graph"
	"github.com/Flokey82/go_gens/utils"
	"github.com/Flokey82/go_gens/vectors"
)

// RiverPath is a river traced downhill from its source.
type RiverPath struct {
	Cells  []string       // Ids of the traced cells, source first
	Points []vectors.Vec2 // Positions of the traced cells
	Width  float64        // Rendering width

	// Merged is true if the last cell belongs to an earlier river and was
	// only appended to connect the two.
	Merged bool
}

// findRivers traces the river cells downhill, highest source first.
//
// From the source, a trace repeatedly moves to the lowest untraced river
// neighbor that is not higher than the current cell (ties: lowest id). If no
// such neighbor exists but a neighbor of an earlier river qualifies, it is
// appended as a connector and the trace ends. Traces of a single cell are
// dropped.
func (w *world) findRivers() []*RiverPath {
	var sources []string
	for _, id := range w.ids {
		if w.cells[id].Tags.Has(biome.TagRiver) {
			sources = append(sources, id)
		}
	}

	// Sort sources by elevation (highest first, then by id).
	queue := graph.NewDescQueue(sources, func(id string) float64 {
		return w.cells[id].Elevation
	})

	var rivers []*RiverPath
	visited := make(map[string]bool, len(sources))
	claimed := make(map[string]bool, len(sources)) // cells of emitted rivers
	for queue.Len() > 0 {
		src := queue.PopID()
		if visited[src] {
			continue
		}
		visited[src] = true

		path := []string{src}
		merged := false
		for cur := src; ; {
			if next := w.nextRiverCell(cur, func(id string) bool { return !visited[id] }); next != "" {
				visited[next] = true
				path = append(path, next)
				cur = next
				continue
			}
			if conn := w.nextRiverCell(cur, func(id string) bool { return claimed[id] }); conn != "" {
				path = append(path, conn)
				merged = true
			}
			break
		}
		if len(path) < 2 {
			continue
		}
		for _, id := range path {
			claimed[id] = true
		}
		rivers = append(rivers, &RiverPath{
			Cells:  path,
			Points: w.positions(path),
			Width:  w.riverWidth(len(path)),
			Merged: merged,
		})
	}
	return rivers
}

// nextRiverCell returns the lowest river neighbor of cur that is not higher
// than cur and that passes ok. Ties go to the lowest id. It returns an empty
// string if there is none.
func (w *world) nextRiverCell(cur string, ok func(id string) bool) string {
	elev := w.cells[cur].Elevation
	var best string
	for _, nb := range w.graph.Neighbors(cur) {
		c := w.cells[nb]
		if !c.Tags.Has(biome.TagRiver) || c.Elevation > elev || !ok(nb) {
			continue
		}
		// Neighbors are sorted, so a strict comparison keeps the lowest id.
		if best == "" || c.Elevation < w.cells[best].Elevation {
			best = nb
		}
	}
	return best
}

// riverWidth returns the rendering width of a river with n cells.
func (w *world) riverWidth(n int) float64 {
	width := w.cfg.RiverConfig.Width + w.cfg.WidthPerCell*float64(utils.Max(n-2, 0))
	return utils.Min(width, w.cfg.MaxWidth) * w.cellSize
}
