package genterrain

import (
	"sort"

	"github.com/Flokey82/genterrain/biome"
	"github.com/Flokey82/genterrain/various"
	"github.com/Flokey82/go_gens/vectors"
)

// Peak is a single mountain peak.
type Peak struct {
	X, Y   float64
	Size   float64
	Seed   int64  // Seed for the appearance of the peak
	Member string // Id of the cell the peak belongs to
}

// MountainRidge is a connected mountain range.
type MountainRidge struct {
	Members []string       // Sorted ids of the mountain cells
	Ridge   []vectors.Vec2 // Member positions ordered by x, then y
	Peaks   []Peak         // Peaks in ridge order
}

// findMountains builds a ridge for every connected region of mountain cells.
func (w *world) findMountains() []*MountainRidge {
	var ridges []*MountainRidge
	for _, members := range w.regionsOf(func(c *cell) bool {
		return c.Tags.Has(biome.TagMountain)
	}) {
		ridges = append(ridges, w.newRidge(members))
	}
	return ridges
}

func (w *world) newRidge(members []string) *MountainRidge {
	order := make([]string, len(members))
	copy(order, members)
	sort.Slice(order, func(i, j int) bool {
		a, b := w.cells[order[i]].Pos, w.cells[order[j]].Pos
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return order[i] < order[j]
	})

	r := &MountainRidge{
		Members: members,
		Ridge:   w.positions(order),
	}
	for _, id := range order {
		r.Peaks = append(r.Peaks, w.peaks(id)...)
	}
	return r
}

// peaks returns one or two peaks above the given member, jittered with a
// generator seeded from the member id.
func (w *world) peaks(id string) []Peak {
	cs := w.cellSize
	pos := w.cells[id].Pos
	rnd := various.NewRand(various.HashString(id))
	n := 1
	if rnd.Float64() < w.cfg.ExtraPeakChance {
		n++
	}
	res := make([]Peak, n)
	for i := range res {
		// Screen y grows downwards, so peaks are lifted by subtracting.
		dx := various.RandRange(rnd, -w.cfg.Spread*cs, w.cfg.Spread*cs)
		dy := -(w.cfg.Lift*cs + rnd.Float64()*w.cfg.LiftJitter*cs)
		res[i] = Peak{
			X:      pos.X + dx,
			Y:      pos.Y + dy,
			Size:   w.cfg.PeakSize * cs * various.RandRange(rnd, 0.8, 1.2),
			Seed:   rnd.Int63(),
			Member: id,
		}
	}
	return res
}
