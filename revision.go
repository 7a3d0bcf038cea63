package genterrain

import (
	"fmt"
	"hash/fnv"
	"io"
	"sort"
	"sync"

	"github.com/Flokey82/genterrain/various"
)

// Revision returns a token identifying the content of a snapshot. The token
// does not depend on the order of the locations or of their exits, and
// changes whenever a location is added, removed or edited.
func Revision[P any](locs []Location[P]) uint64 {
	idx := make([]int, len(locs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return locs[idx[a]].ID < locs[idx[b]].ID
	})

	h := fnv.New64a()
	for _, i := range idx {
		writeLocation(h, &locs[i])
	}
	return h.Sum64()
}

func writeLocation[P any](w io.Writer, l *Location[P]) {
	exits := make([]string, len(l.Exits))
	copy(exits, l.Exits)
	sort.Strings(exits)

	// Writes to a hash never fail.
	various.WriteString(w, l.ID)
	various.WriteStringSlice(w, exits)
	various.WriteString(w, l.Biome)
	various.WriteString(w, l.Text)
	various.WriteBool(w, l.River)
	various.WriteBool(w, l.Coast)
	various.WriteOptFloat(w, l.Elevation)
	various.WriteOptFloat(w, l.Moisture)
	various.WriteString(w, fmt.Sprintf("%#v", l.Position))
}

// Cache memoizes terrain by snapshot revision, so unchanged worlds are not
// synthesized again. It is safe for concurrent use.
type Cache[P any] struct {
	proj    Projection[P]
	cfg     *Config
	size    int
	mu      sync.Mutex
	entries map[uint64]*Terrain
	order   []uint64 // revisions in insertion order
}

// NewCache returns a cache holding the terrain of up to size snapshots.
// Once full, the oldest entry is evicted.
func NewCache[P any](proj Projection[P], cfg *Config, size int) *Cache[P] {
	if size < 1 {
		size = 1
	}
	return &Cache[P]{
		proj:    proj,
		cfg:     cfg,
		size:    size,
		entries: make(map[uint64]*Terrain),
	}
}

// Get returns the terrain of the given snapshot, synthesizing it if the
// revision is not cached yet. The returned terrain is shared and must not be
// modified.
func (c *Cache[P]) Get(locs []Location[P]) *Terrain {
	rev := Revision(locs)
	c.mu.Lock()
	t, ok := c.entries[rev]
	c.mu.Unlock()
	if ok {
		return t
	}

	t = Synthesize(locs, c.proj, c.cfg)

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.entries[rev]; ok {
		return cached
	}
	c.entries[rev] = t
	c.order = append(c.order, rev)
	for len(c.order) > c.size {
		delete(c.entries, c.order[0])
		c.order = c.order[1:]
	}
	return t
}

// Len returns the number of cached snapshots.
func (c *Cache[P]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
