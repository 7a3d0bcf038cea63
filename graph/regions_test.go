package graph

import (
	"reflect"
	"sort"
	"testing"
)

func testGraph() *RegionGraph {
	return NewRegionGraph(map[string][]string{
		"a": {"b", "missing"},
		"b": {"c"},
		"c": {},
		"d": {"e", "d"},
		"e": {},
		"f": {"a"},
		"g": {},
	})
}

func TestNewRegionGraphSymmetricAndFiltered(t *testing.T) {
	g := testGraph()

	if got, want := g.Neighbors("a"), []string{"b", "f"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Neighbors(a) = %v, want %v", got, want)
	}
	if got, want := g.Neighbors("c"), []string{"b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Neighbors(c) = %v, want %v", got, want)
	}
	if got := g.Neighbors("d"); !reflect.DeepEqual(got, []string{"e"}) {
		t.Fatalf("Neighbors(d) = %v, want [e] (self loop dropped)", got)
	}
	if _, ok := g.Lookup("missing"); ok {
		t.Fatalf("Lookup(missing) found a dangling exit")
	}
	if got, want := g.NumEdges(), 4; got != want {
		t.Fatalf("NumEdges() = %d, want %d", got, want)
	}
	if got, want := g.IDs(), []string{"a", "b", "c", "d", "e", "f", "g"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("IDs() = %v, want %v", got, want)
	}
}

func TestConnectedRegionsOrdering(t *testing.T) {
	g := testGraph()
	all := func(string) bool { return true }

	got := ConnectedRegions(g.IDs(), all, g)
	want := [][]string{{"a", "b", "c", "f"}, {"d", "e"}, {"g"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ConnectedRegions() = %v, want %v", got, want)
	}

	// Removing b splits the first region.
	noB := func(id string) bool { return id != "b" }
	got = ConnectedRegions(g.IDs(), noB, g)
	want = [][]string{{"a", "f"}, {"c"}, {"d", "e"}, {"g"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ConnectedRegions(no b) = %v, want %v", got, want)
	}
}

func TestConnectedRegionsEmpty(t *testing.T) {
	g := testGraph()
	if got := ConnectedRegions(g.IDs(), func(string) bool { return false }, g); len(got) != 0 {
		t.Fatalf("ConnectedRegions() = %v, want no regions", got)
	}
}

func TestConnectedRegionsPartition(t *testing.T) {
	g := NewRegionGraph(map[string][]string{
		"00": {"01", "10"}, "01": {"02", "11"}, "02": {"12"},
		"10": {"11", "20"}, "11": {"12", "21"}, "12": {"22"},
		"20": {"21"}, "21": {"22"}, "22": {},
	})
	preds := map[string]func(string) bool{
		"corners": func(id string) bool { return id == "00" || id == "02" || id == "20" || id == "22" },
		"cross":   func(id string) bool { return id[0] == '1' || id[1] == '1' },
		"ring":    func(id string) bool { return id != "11" },
		"col0":    func(id string) bool { return id[1] == '0' },
	}
	for name, pred := range preds {
		t.Run(name, func(t *testing.T) {
			regions := ConnectedRegions(g.IDs(), pred, g)
			var union []string
			for _, r := range regions {
				union = append(union, r...)
			}
			sort.Strings(union)

			var matching []string
			for _, id := range g.IDs() {
				if pred(id) {
					matching = append(matching, id)
				}
			}
			if !reflect.DeepEqual(union, matching) {
				t.Fatalf("union of regions = %v, want %v", union, matching)
			}

			labels := Components(g.IDs(), pred, g)
			if len(labels) != len(matching) {
				t.Fatalf("Components() labelled %d ids, want %d", len(labels), len(matching))
			}
		})
	}
}

func TestDescQueueOrder(t *testing.T) {
	scores := map[string]float64{"b": 0.6, "a": 0.9, "c": 0.6, "d": 0.3}
	q := NewDescQueue([]string{"d", "c", "b", "a"}, func(id string) float64 { return scores[id] })
	var got []string
	for q.Len() > 0 {
		got = append(got, q.PopID())
	}
	if want := []string{"a", "b", "c", "d"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("pop order = %v, want %v", got, want)
	}
}
