package snapshot

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Flokey82/genterrain"
)

const sample = `
cell_size: 8
locations:
  - id: pond
    biome: lake
    x: 0
    y: 0
    exits: [shore]
  - id: shore
    text: a sandy beach
    coast: true
    elevation: 0.05
    x: 1
    y: 0
`

func TestReadSample(t *testing.T) {
	s, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Read() returned error: %v", err)
	}
	if s.CellSize != 8 || len(s.Locations) != 2 {
		t.Fatalf("got cell size %v and %d locations, want 8 and 2", s.CellSize, len(s.Locations))
	}
	shore := s.Locations[1]
	if !shore.Coast || shore.Elevation == nil || *shore.Elevation != 0.05 || shore.Moisture != nil {
		t.Fatalf("shore = %+v", shore)
	}

	locs := s.ToLocations()
	if locs[0].ID != "pond" || !reflect.DeepEqual(locs[0].Exits, []string{"shore"}) {
		t.Fatalf("ToLocations()[0] = %+v", locs[0])
	}
	p, ok := s.Projection()(locs[1].Position)
	if !ok || p.X != 8 || p.Y != 0 {
		t.Fatalf("projected shore = %v, %v, want (8, 0)", p, ok)
	}
}

func TestReadRejectsBadIDs(t *testing.T) {
	tests := map[string]struct {
		yaml string
		want error
	}{
		"empty id": {
			yaml: "locations:\n  - x: 1\n    y: 2\n",
			want: ErrEmptyID,
		},
		"duplicate id": {
			yaml: "locations:\n  - id: a\n  - id: b\n  - id: a\n",
			want: ErrDuplicateID,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Read() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Read(strings.NewReader("cell_size: -2\n")); err == nil {
		t.Fatalf("Read(negative cell size) = nil, want error")
	}
}

func TestReadEmpty(t *testing.T) {
	s, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read(empty) returned error: %v", err)
	}
	if s.CellSize != 1 || len(s.Locations) != 0 {
		t.Fatalf("Read(empty) = %+v, want default cell size and no locations", s)
	}
}

func TestSaveLoad(t *testing.T) {
	s := Generate(10, 8, 42)
	path := filepath.Join(t.TempDir(), "world.yaml")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if !reflect.DeepEqual(s, loaded) {
		t.Fatalf("loaded snapshot differs from the saved one")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) error = %v, want not exist", err)
	}
}

func TestGenerate(t *testing.T) {
	s := Generate(24, 16, 7)
	if len(s.Locations) != 24*16 {
		t.Fatalf("got %d locations, want %d", len(s.Locations), 24*16)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}

	var a, b bytes.Buffer
	if err := s.Write(&a); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}
	if err := Generate(24, 16, 7).Write(&b); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatalf("Generate is not deterministic")
	}

	corner := s.Locations[0]
	if len(corner.Exits) != 2 {
		t.Fatalf("corner has exits %v, want 2", corner.Exits)
	}
	for _, l := range s.Locations {
		if l.River && *l.Elevation < 0 {
			t.Fatalf("river %s lies below sea level", l.ID)
		}
	}

	terr := genterrain.Synthesize(s.ToLocations(), s.Projection(), genterrain.NewConfig())
	if len(terr.Skipped) != 0 {
		t.Fatalf("generated world skipped %v", terr.Skipped)
	}
}
