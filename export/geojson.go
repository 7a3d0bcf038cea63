// Package export renders synthesized terrain into formats for inspection:
// GeoJSON for map viewers and PNG previews.
package export

import (
	"fmt"

	"github.com/Flokey82/genterrain"
	"github.com/Flokey82/genterrain/various"
	"github.com/Flokey82/go_gens/vectors"
	geojson "github.com/paulmach/go.geojson"
)

// Layer selects a feature category.
type Layer string

const (
	LayerLakes     Layer = "lakes"
	LayerRivers    Layer = "rivers"
	LayerForests   Layer = "forests"
	LayerMountains Layer = "mountains"
)

// AllLayers lists every layer in drawing order.
var AllLayers = []Layer{LayerLakes, LayerRivers, LayerForests, LayerMountains}

// ParseLayer returns the layer of the given name.
func ParseLayer(name string) (Layer, error) {
	for _, l := range AllLayers {
		if string(l) == name {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown layer %q", name)
}

// Number of decimals of exported coordinates.
const coordDecimals = 3

// GeoJSON returns the given layers of the terrain as a GeoJSON feature
// collection. Coordinates are map coordinates, not longitude and latitude.
// If no layers are given, all layers are exported. Forests without trees are
// left out.
func GeoJSON(t *genterrain.Terrain, layers ...Layer) ([]byte, error) {
	if len(layers) == 0 {
		layers = AllLayers
	}
	fc := geojson.NewFeatureCollection()
	for _, layer := range layers {
		switch layer {
		case LayerLakes:
			for _, l := range t.Lakes {
				f := geojson.NewPolygonFeature([][][]float64{ring(l.Boundary)})
				f.ID = l.Members[0]
				f.SetProperty("layer", string(layer))
				f.SetProperty("members", l.Members)
				f.SetProperty("center", various.RoundPoint(l.Center, coordDecimals))
				fc.AddFeature(f)
			}
		case LayerRivers:
			for _, r := range t.Rivers {
				f := geojson.NewLineStringFeature(coords(r.Points))
				f.ID = r.Cells[0]
				f.SetProperty("layer", string(layer))
				f.SetProperty("cells", r.Cells)
				f.SetProperty("width", various.RoundToDecimals(r.Width, coordDecimals))
				f.SetProperty("merged", r.Merged)
				fc.AddFeature(f)
			}
		case LayerForests:
			for _, fr := range t.Forests {
				if len(fr.Trees) == 0 {
					continue
				}
				var pts [][]float64
				var sizes []float64
				var depths []int
				for _, tr := range fr.Trees {
					pts = append(pts, various.RoundPoint(vectors.NewVec2(tr.X, tr.Y), coordDecimals))
					sizes = append(sizes, various.RoundToDecimals(tr.Size, coordDecimals))
					depths = append(depths, tr.Depth)
				}
				f := geojson.NewMultiPointFeature(pts...)
				f.ID = fr.Members[0]
				f.SetProperty("layer", string(layer))
				f.SetProperty("members", fr.Members)
				f.SetProperty("sizes", sizes)
				f.SetProperty("depths", depths)
				fc.AddFeature(f)
			}
		case LayerMountains:
			for _, m := range t.Mountains {
				ridge := geojson.NewLineStringFeature(coords(m.Ridge))
				ridge.ID = m.Members[0]
				ridge.SetProperty("layer", string(layer))
				ridge.SetProperty("members", m.Members)
				fc.AddFeature(ridge)

				var pts [][]float64
				var sizes []float64
				for _, p := range m.Peaks {
					pts = append(pts, various.RoundPoint(vectors.NewVec2(p.X, p.Y), coordDecimals))
					sizes = append(sizes, various.RoundToDecimals(p.Size, coordDecimals))
				}
				peaks := geojson.NewMultiPointFeature(pts...)
				peaks.ID = m.Members[0] + "/peaks"
				peaks.SetProperty("layer", string(layer))
				peaks.SetProperty("sizes", sizes)
				fc.AddFeature(peaks)
			}
		default:
			return nil, fmt.Errorf("unknown layer %q", layer)
		}
	}
	return fc.MarshalJSON()
}

func coords(points []vectors.Vec2) [][]float64 {
	res := make([][]float64, 0, len(points))
	for _, p := range points {
		res = append(res, various.RoundPoint(p, coordDecimals))
	}
	return res
}

// ring returns the coordinates of a closed linear ring.
func ring(points []vectors.Vec2) [][]float64 {
	res := coords(points)
	if len(res) > 0 {
		res = append(res, res[0])
	}
	return res
}
