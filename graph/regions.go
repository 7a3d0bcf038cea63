package graph

import (
	"container/list"
	"sort"
)

// ConnectedRegions returns the maximal connected components of the ids that
// satisfy member, walking only through member nodes.
//
// Unvisited candidates are seeded in ascending id order, the members of each
// region are sorted, and regions are ordered by their smallest id. Each
// matching id appears in exactly one region.
func ConnectedRegions(ids []string, member func(id string) bool, adj Adjacency) [][]string {
	candidates := make([]string, 0, len(ids))
	isCandidate := make(map[string]bool, len(ids))
	for _, id := range ids {
		if isCandidate[id] || !member(id) {
			continue
		}
		isCandidate[id] = true
		candidates = append(candidates, id)
	}
	sort.Strings(candidates)

	var regions [][]string
	visited := make(map[string]bool, len(candidates))
	for _, seed := range candidates {
		if visited[seed] {
			continue
		}
		visited[seed] = true

		// Flood fill from the seed.
		region := []string{seed}
		queue := list.New()
		queue.PushBack(seed)
		for queue.Len() > 0 {
			e := queue.Front()
			queue.Remove(e)
			for _, nb := range adj.Neighbors(e.Value.(string)) {
				if visited[nb] || !isCandidate[nb] {
					continue
				}
				visited[nb] = true
				region = append(region, nb)
				queue.PushBack(nb)
			}
		}
		sort.Strings(region)
		regions = append(regions, region)
	}
	return regions
}

// Components labels every id satisfying member with the index of its region
// in the result of ConnectedRegions. Ids that do not match are absent.
func Components(ids []string, member func(id string) bool, adj Adjacency) map[string]int {
	labels := make(map[string]int)
	for i, region := range ConnectedRegions(ids, member, adj) {
		for _, id := range region {
			labels[id] = i
		}
	}
	return labels
}
