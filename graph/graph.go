// Package graph holds the location adjacency graph and the generic
// connected region search that all terrain categories share.
package graph

import "sort"

// Adjacency provides the neighbors of a node.
type Adjacency interface {
	Neighbors(id string) []string
}

// RegionGraph is an undirected adjacency map over the locations of one
// snapshot. Every neighbor list is sorted and free of duplicates.
type RegionGraph struct {
	ids []string            // sorted node ids
	adj map[string][]string // node id to sorted neighbor ids
}

// NewRegionGraph builds the graph from the exit lists of each node.
//
// Exits naming a node that is not a key of exits are dropped, as are
// self-loops. An exit from a to b also connects b to a.
func NewRegionGraph(exits map[string][]string) *RegionGraph {
	g := &RegionGraph{
		ids: make([]string, 0, len(exits)),
		adj: make(map[string][]string, len(exits)),
	}
	seen := make(map[[2]string]bool)
	link := func(a, b string) {
		if seen[[2]string{a, b}] {
			return
		}
		seen[[2]string{a, b}] = true
		g.adj[a] = append(g.adj[a], b)
	}
	for id, out := range exits {
		g.ids = append(g.ids, id)
		for _, nb := range out {
			if nb == id {
				continue
			}
			if _, ok := exits[nb]; !ok {
				continue
			}
			link(id, nb)
			link(nb, id)
		}
	}
	sort.Strings(g.ids)
	for _, nbs := range g.adj {
		sort.Strings(nbs)
	}
	return g
}

// IDs returns all node ids in ascending order.
func (g *RegionGraph) IDs() []string {
	return g.ids
}

// Has returns true if id is a node of the graph.
func (g *RegionGraph) Has(id string) bool {
	i := sort.SearchStrings(g.ids, id)
	return i < len(g.ids) && g.ids[i] == id
}

// Neighbors returns the sorted neighbors of id (nil for unknown ids).
func (g *RegionGraph) Neighbors(id string) []string {
	return g.adj[id]
}

// Lookup returns the neighbors of id and whether id is part of the graph.
func (g *RegionGraph) Lookup(id string) ([]string, bool) {
	if !g.Has(id) {
		return nil, false
	}
	return g.adj[id], true
}

// NumEdges returns the number of undirected edges.
func (g *RegionGraph) NumEdges() int {
	var n int
	for _, nbs := range g.adj {
		n += len(nbs)
	}
	return n / 2
}
