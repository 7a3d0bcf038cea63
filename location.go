package genterrain

import (
	"github.com/Flokey82/genterrain/biome"
	"github.com/Flokey82/genterrain/various"
	"github.com/Flokey82/go_gens/vectors"
	"github.com/davvo/mercator"
)

// Location is a single location of the world snapshot. P is the position
// representation of the caller, resolved to map coordinates by a Projection.
type Location[P any] struct {
	ID        string   // Stable id
	Exits     []string // Ids of the directly connected locations
	Biome     string   // Authoritative biome tag (optional)
	Text      string   // Free text description (fallback for classification)
	River     bool     // Location carries a river
	Coast     bool     // Location lies at the coast
	Elevation *float64 // Explicit elevation (optional)
	Moisture  *float64 // Explicit moisture (optional)
	Position  P
}

// classifierInput returns the part of the location the classifier sees.
func (l *Location[P]) classifierInput() biome.Input {
	return biome.Input{
		Biome:     l.Biome,
		Text:      l.Text,
		River:     l.River,
		Coast:     l.Coast,
		Elevation: l.Elevation,
		Moisture:  l.Moisture,
	}
}

// Projection resolves a position to map coordinates. It returns false if the
// position cannot be projected, in which case the location is skipped.
type Projection[P any] func(pos P) (vectors.Vec2, bool)

// GridPos is an integer grid coordinate.
type GridPos struct {
	X, Y int
}

// GridProjection returns a projection placing grid coordinates at cellSize
// intervals.
func GridProjection(cellSize float64) Projection[GridPos] {
	return func(pos GridPos) (vectors.Vec2, bool) {
		return vectors.NewVec2(float64(pos.X)*cellSize, float64(pos.Y)*cellSize), true
	}
}

// LatLon is a geographic coordinate in degrees.
type LatLon struct {
	Lat, Lon float64
}

// MercatorProjection returns a projection of geographic coordinates onto the
// web mercator pixel plane of the given zoom level (north up).
func MercatorProjection(zoom int) Projection[LatLon] {
	return func(pos LatLon) (vectors.Vec2, bool) {
		if !various.IsValidLatLon(pos.Lat, pos.Lon) {
			return various.Zero2, false
		}
		x, y := mercator.LatLonToPixels(-1*pos.Lat, pos.Lon, zoom)
		return vectors.NewVec2(x, y), true
	}
}

// TableProjection returns a projection looking up positions in a fixed table.
// Keys missing from the table are not projectable.
func TableProjection[K comparable](table map[K]vectors.Vec2) Projection[K] {
	return func(pos K) (vectors.Vec2, bool) {
		p, ok := table[pos]
		if !ok || !various.IsFinite2(p.X, p.Y) {
			return various.Zero2, false
		}
		return p, true
	}
}
