// Package snapshot reads and writes world snapshots in YAML, the input format
// of the terrain commands.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Flokey82/genterrain"
	"github.com/Flokey82/go_gens/vectors"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyID     = errors.New("location id must be set")
	ErrDuplicateID = errors.New("duplicate location id")
)

// Snapshot is a world snapshot as stored on disk.
type Snapshot struct {
	CellSize  float64    `yaml:"cell_size,omitempty"`
	Locations []Location `yaml:"locations"`
}

// Location is a single location of a snapshot. Positions are given in grid
// units and scaled by the cell size when projected.
type Location struct {
	ID        string   `yaml:"id"`
	Biome     string   `yaml:"biome,omitempty"`
	Text      string   `yaml:"text,omitempty"`
	River     bool     `yaml:"river,omitempty"`
	Coast     bool     `yaml:"coast,omitempty"`
	Elevation *float64 `yaml:"elevation,omitempty"`
	Moisture  *float64 `yaml:"moisture,omitempty"`
	X         float64  `yaml:"x"`
	Y         float64  `yaml:"y"`
	Exits     []string `yaml:"exits,omitempty"`
}

// Load reads the snapshot at path.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes and validates a snapshot.
func Read(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every location has a unique, non-empty id and applies
// the default cell size.
func (s *Snapshot) Validate() error {
	if s.CellSize < 0 {
		return fmt.Errorf("cell_size %v cannot be negative", s.CellSize)
	}
	if s.CellSize == 0 {
		s.CellSize = 1
	}
	seen := make(map[string]bool, len(s.Locations))
	for i, l := range s.Locations {
		if l.ID == "" {
			return fmt.Errorf("locations[%d]: %w", i, ErrEmptyID)
		}
		if seen[l.ID] {
			return fmt.Errorf("locations[%d] %q: %w", i, l.ID, ErrDuplicateID)
		}
		seen[l.ID] = true
	}
	return nil
}

// Save writes the snapshot to path.
func (s *Snapshot) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := s.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write encodes the snapshot as YAML.
func (s *Snapshot) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return enc.Close()
}

// ToLocations converts the snapshot into the input of genterrain.Synthesize.
func (s *Snapshot) ToLocations() []genterrain.Location[vectors.Vec2] {
	res := make([]genterrain.Location[vectors.Vec2], 0, len(s.Locations))
	for _, l := range s.Locations {
		res = append(res, genterrain.Location[vectors.Vec2]{
			ID:        l.ID,
			Exits:     l.Exits,
			Biome:     l.Biome,
			Text:      l.Text,
			River:     l.River,
			Coast:     l.Coast,
			Elevation: l.Elevation,
			Moisture:  l.Moisture,
			Position:  vectors.NewVec2(l.X, l.Y),
		})
	}
	return res
}

// Projection returns the projection of snapshot positions onto the map.
func (s *Snapshot) Projection() genterrain.Projection[vectors.Vec2] {
	cellSize := s.CellSize
	return func(pos vectors.Vec2) (vectors.Vec2, bool) {
		return pos.Mul(cellSize), true
	}
}
