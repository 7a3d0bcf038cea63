package genterrain

import (
	"math"
	"reflect"
	"testing"

	"github.com/Flokey82/genterrain/various"
	"github.com/Flokey82/go_gens/vectors"
)

func elev(v float64) *float64 { return &v }

func gridLoc(id string, x, y int, biome string, exits ...string) Location[GridPos] {
	return Location[GridPos]{ID: id, Biome: biome, Position: GridPos{X: x, Y: y}, Exits: exits}
}

func TestSynthesizeExampleA(t *testing.T) {
	locs := []Location[GridPos]{
		gridLoc("lake-00", 0, 0, "lake", "lake-10", "lake-01"),
		gridLoc("lake-10", 1, 0, "lake"),
		gridLoc("lake-01", 0, 1, "lake"),
		gridLoc("wood-1", 5, 5, "forest"),
		gridLoc("wood-2", 8, 8, "forest"),
	}
	terr := Synthesize(locs, GridProjection(10), cellConfig(10))

	if len(terr.Lakes) != 1 {
		t.Fatalf("got %d lakes, want 1", len(terr.Lakes))
	}
	if got, want := terr.Lakes[0].Members, []string{"lake-00", "lake-01", "lake-10"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lake members = %v, want %v", got, want)
	}
	if len(terr.Forests) != 2 {
		t.Fatalf("got %d forests, want 2", len(terr.Forests))
	}
	for i, want := range []string{"wood-1", "wood-2"} {
		if got := terr.Forests[i].Members; !reflect.DeepEqual(got, []string{want}) {
			t.Fatalf("forest %d members = %v, want [%s]", i, got, want)
		}
	}
	if len(terr.Rivers) != 0 || len(terr.Mountains) != 0 {
		t.Fatalf("got %d rivers and %d mountains, want none", len(terr.Rivers), len(terr.Mountains))
	}
}

func TestSynthesizeExampleB(t *testing.T) {
	heights := map[string]float64{"a": 0.9, "b": 0.6, "c": 0.6, "d": 0.3, "e": 0.1}
	exits := map[string][]string{"a": {"b"}, "b": {"c"}, "c": {"d"}, "d": {"e"}}
	var locs []Location[GridPos]
	for i, id := range []string{"e", "c", "a", "d", "b"} {
		locs = append(locs, Location[GridPos]{
			ID:        id,
			River:     true,
			Elevation: elev(heights[id]),
			Exits:     exits[id],
			Position:  GridPos{X: i, Y: 0},
		})
	}
	terr := Synthesize(locs, GridProjection(1), NewConfig())

	if len(terr.Rivers) != 1 {
		t.Fatalf("got %d rivers, want 1", len(terr.Rivers))
	}
	r := terr.Rivers[0]
	if want := []string{"a", "b", "c", "d", "e"}; !reflect.DeepEqual(r.Cells, want) {
		t.Fatalf("river cells = %v, want %v", r.Cells, want)
	}
	if len(r.Points) != 5 || r.Merged {
		t.Fatalf("river has %d points (merged %v), want 5 unmerged", len(r.Points), r.Merged)
	}
	for i := 1; i < len(r.Cells); i++ {
		if heights[r.Cells[i]] > heights[r.Cells[i-1]] {
			t.Fatalf("elevation rises from %s to %s", r.Cells[i-1], r.Cells[i])
		}
	}
	if r.Width <= 0 {
		t.Fatalf("river width = %v, want positive", r.Width)
	}
}

func TestRiverMerge(t *testing.T) {
	locs := []Location[GridPos]{
		{ID: "a", River: true, Elevation: elev(0.9), Exits: []string{"c"}, Position: GridPos{0, 0}},
		{ID: "b", River: true, Elevation: elev(0.8), Exits: []string{"c"}, Position: GridPos{2, 0}},
		{ID: "c", River: true, Elevation: elev(0.5), Exits: []string{"d"}, Position: GridPos{1, 1}},
		{ID: "d", River: true, Elevation: elev(0.2), Position: GridPos{1, 2}},
		{ID: "lonely", River: true, Elevation: elev(0.4), Position: GridPos{9, 9}},
	}
	terr := Synthesize(locs, GridProjection(1), NewConfig())

	if len(terr.Rivers) != 2 {
		t.Fatalf("got %d rivers, want 2", len(terr.Rivers))
	}
	trunk, branch := terr.Rivers[0], terr.Rivers[1]
	if want := []string{"a", "c", "d"}; !reflect.DeepEqual(trunk.Cells, want) || trunk.Merged {
		t.Fatalf("trunk = %v (merged %v), want %v", trunk.Cells, trunk.Merged, want)
	}
	if want := []string{"b", "c"}; !reflect.DeepEqual(branch.Cells, want) || !branch.Merged {
		t.Fatalf("branch = %v (merged %v), want %v merged", branch.Cells, branch.Merged, want)
	}
}

func TestSingleLakeOutline(t *testing.T) {
	const cs = 10.0
	locs := []Location[GridPos]{gridLoc("pond", 3, 4, "lake")}
	cfg := cellConfig(cs)
	terr := Synthesize(locs, GridProjection(cs), cfg)
	if len(terr.Lakes) != 1 {
		t.Fatalf("got %d lakes, want 1", len(terr.Lakes))
	}
	l := terr.Lakes[0]
	if len(l.Boundary) != lakeSinglePoints {
		t.Fatalf("got %d boundary points, want %d", len(l.Boundary), lakeSinglePoints)
	}
	if l.Center != vectors.NewVec2(30, 40) {
		t.Fatalf("center = %v, want (30, 40)", l.Center)
	}
	nominal := cfg.SingleRadius * cs
	for i, p := range l.Boundary {
		dx := p.X - l.Center.X
		dy := (p.Y - l.Center.Y) / lakeSingleSquash
		factor := math.Hypot(dx, dy) / nominal
		if factor < 1-lakeSingleJitter-1e-9 || factor > 1+lakeSingleJitter+1e-9 {
			t.Fatalf("point %d radius factor %v out of bounds", i, factor)
		}
	}
	if !l.Contains(l.Center) {
		t.Fatalf("lake does not contain its center")
	}
	if l.Contains(vectors.NewVec2(30+cs, 40)) {
		t.Fatalf("lake contains a point a cell away")
	}
}

func TestMultiLakeBoundary(t *testing.T) {
	locs := []Location[GridPos]{
		gridLoc("a", 0, 0, "ocean", "b"),
		gridLoc("b", 1, 0, "lake", "c"),
		gridLoc("c", 2, 1, "lake"),
	}
	terr := Synthesize(locs, GridProjection(1), NewConfig())
	if len(terr.Lakes) != 1 {
		t.Fatalf("got %d lakes, want 1", len(terr.Lakes))
	}
	l := terr.Lakes[0]
	if len(l.Boundary)%4 != 0 || len(l.Boundary) < 12 {
		t.Fatalf("boundary has %d points, want 4x a hull of at least 3", len(l.Boundary))
	}
	for _, id := range l.Members {
		var p vectors.Vec2
		for _, loc := range locs {
			if loc.ID == id {
				p = vectors.NewVec2(float64(loc.Position.X), float64(loc.Position.Y))
			}
		}
		if !l.Contains(p) {
			t.Fatalf("lake does not contain member %s at %v", id, p)
		}
	}
}

func TestForestContainment(t *testing.T) {
	const cs = 4.0
	var locs []Location[GridPos]
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			id := string(rune('a'+x)) + string(rune('0'+y))
			var exits []string
			if x < 3 {
				exits = append(exits, string(rune('a'+x+1))+string(rune('0'+y)))
			}
			if y < 2 {
				exits = append(exits, string(rune('a'+x))+string(rune('0'+y+1)))
			}
			locs = append(locs, gridLoc(id, x, y, "forest", exits...))
		}
	}
	terr := Synthesize(locs, GridProjection(cs), cellConfig(cs))
	if len(terr.Forests) != 1 || len(terr.Forests[0].Members) != 12 {
		t.Fatalf("got %d forests, want one with 12 members", len(terr.Forests))
	}
	trees := terr.Forests[0].Trees
	if len(trees) == 0 {
		t.Fatalf("no trees placed")
	}
	for i, tr := range trees {
		inside := false
		for _, l := range locs {
			c := vectors.NewVec2(float64(l.Position.X)*cs, float64(l.Position.Y)*cs)
			if various.Dist2(c, vectors.NewVec2(tr.X, tr.Y)) < forestReach*cs {
				inside = true
				break
			}
		}
		if !inside {
			t.Fatalf("tree %d at (%v, %v) is too far from every member", i, tr.X, tr.Y)
		}
		if tr.Depth < 0 || tr.Depth > 2 || tr.Size <= 0 {
			t.Fatalf("tree %d has depth %d and size %v", i, tr.Depth, tr.Size)
		}
		if i > 0 {
			prev := trees[i-1]
			if prev.Depth > tr.Depth || (prev.Depth == tr.Depth && prev.Y > tr.Y) {
				t.Fatalf("trees %d and %d are not in back to front order", i-1, i)
			}
		}
	}
}

func TestMountainRidge(t *testing.T) {
	const cs = 2.0
	locs := []Location[GridPos]{
		gridLoc("m3", 2, 1, "mountain", "m2"),
		gridLoc("m2", 1, 1, "mountain", "m1"),
		gridLoc("m1", 1, 0, "mountain"),
	}
	cfg := cellConfig(cs)
	terr := Synthesize(locs, GridProjection(cs), cfg)
	if len(terr.Mountains) != 1 {
		t.Fatalf("got %d ridges, want 1", len(terr.Mountains))
	}
	m := terr.Mountains[0]
	want := []vectors.Vec2{{X: 2, Y: 0}, {X: 2, Y: 2}, {X: 4, Y: 2}}
	if !reflect.DeepEqual(m.Ridge, want) {
		t.Fatalf("ridge = %v, want %v", m.Ridge, want)
	}
	if len(m.Peaks) < 3 || len(m.Peaks) > 6 {
		t.Fatalf("got %d peaks, want one or two per member", len(m.Peaks))
	}
	pos := map[string]vectors.Vec2{"m1": want[0], "m2": want[1], "m3": want[2]}
	for _, p := range m.Peaks {
		base := pos[p.Member]
		if math.Abs(p.X-base.X) > cfg.Spread*cs+1e-9 {
			t.Fatalf("peak of %s spreads %v, want at most %v", p.Member, p.X-base.X, cfg.Spread*cs)
		}
		lift := base.Y - p.Y
		if lift < cfg.Lift*cs-1e-9 || lift > (cfg.Lift+cfg.LiftJitter)*cs+1e-9 {
			t.Fatalf("peak of %s lifted by %v", p.Member, lift)
		}
	}
}

func TestSynthesizeSkipsUnplaceable(t *testing.T) {
	table := map[string]vectors.Vec2{
		"a": vectors.NewVec2(0, 0),
		"b": vectors.NewVec2(1, 0),
		"c": vectors.NewVec2(math.NaN(), 0),
	}
	locs := []Location[string]{
		{ID: "a", Biome: "lake", Exits: []string{"b", "nowhere"}, Position: "a"},
		{ID: "b", Biome: "lake", Exits: []string{"c"}, Position: "b"},
		{ID: "c", Biome: "lake", Position: "c"},
		{ID: "d", Biome: "lake", Position: "d"},
		{ID: "a", Biome: "forest", Position: "a"},
	}
	terr := Synthesize(locs, TableProjection(table), NewConfig())
	if want := []string{"a", "c", "d"}; !reflect.DeepEqual(terr.Skipped, want) {
		t.Fatalf("Skipped = %v, want %v", terr.Skipped, want)
	}
	if len(terr.Lakes) != 1 || !reflect.DeepEqual(terr.Lakes[0].Members, []string{"a", "b"}) {
		t.Fatalf("lakes = %+v, want one lake of a and b", terr.Lakes)
	}
	if len(terr.Forests) != 0 {
		t.Fatalf("duplicate id produced a forest")
	}
}

func TestSynthesizeEmpty(t *testing.T) {
	terr := Synthesize[GridPos](nil, GridProjection(1), nil)
	if len(terr.Lakes)+len(terr.Rivers)+len(terr.Forests)+len(terr.Mountains) != 0 {
		t.Fatalf("empty snapshot produced terrain: %+v", terr)
	}
}

func TestMercatorProjection(t *testing.T) {
	proj := MercatorProjection(0)
	p, ok := proj(LatLon{Lat: 0, Lon: 0})
	if !ok || math.Abs(p.X-p.Y) > 1e-9 {
		t.Fatalf("proj(0, 0) = %v, %v, want the center of the map", p, ok)
	}
	north, _ := proj(LatLon{Lat: 45, Lon: 0})
	if north.Y >= p.Y {
		t.Fatalf("north is not up: %v vs %v", north, p)
	}
	east, _ := proj(LatLon{Lat: 0, Lon: 45})
	if east.X <= p.X {
		t.Fatalf("east is not right: %v vs %v", east, p)
	}
	for _, ll := range []LatLon{{Lat: 89, Lon: 0}, {Lat: 0, Lon: 181}, {Lat: math.NaN(), Lon: 0}} {
		if _, ok := proj(ll); ok {
			t.Fatalf("proj(%v) succeeded, want not projectable", ll)
		}
	}
}

func cellConfig(cs float64) *Config {
	cfg := NewConfig()
	cfg.CellSize = cs
	return cfg
}
