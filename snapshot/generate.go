package snapshot

import (
	"fmt"

	"github.com/Flokey82/genterrain/noise"
	"github.com/Flokey82/genterrain/various"
)

// Generate returns a width x height grid world with noise based elevation and
// moisture. Locations carry no biome tag, so they are classified by their
// climate. Rivers flow downhill from random high cells until they reach water
// or a sink.
func Generate(width, height int, seed int64) *Snapshot {
	elevNoise := noise.NewNoise(4, 0.5, 0.08, seed)
	moisNoise := noise.NewNoise(3, 0.5, 0.05, seed+1)

	s := &Snapshot{CellSize: 1}
	elev := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			elev[i] = various.RoundToDecimals(elevNoise.Eval2(float64(x), float64(y))*1.4-0.4, 3)
			mois := various.RoundToDecimals(moisNoise.Eval2(float64(x), float64(y)), 3)
			s.Locations = append(s.Locations, Location{
				ID:        gridID(x, y),
				Elevation: &elev[i],
				Moisture:  &mois,
				X:         float64(x),
				Y:         float64(y),
			})
		}
	}

	neighbors := func(i int) []int {
		x, y := i%width, i/width
		var res []int
		if x > 0 {
			res = append(res, i-1)
		}
		if x < width-1 {
			res = append(res, i+1)
		}
		if y > 0 {
			res = append(res, i-width)
		}
		if y < height-1 {
			res = append(res, i+width)
		}
		return res
	}

	// Exits and coasts.
	for i := range s.Locations {
		for _, nb := range neighbors(i) {
			s.Locations[i].Exits = append(s.Locations[i].Exits, s.Locations[nb].ID)
			if elev[i] >= 0 && elev[nb] < 0 {
				s.Locations[i].Coast = true
			}
		}
	}

	// Rivers.
	rnd := various.NewRand(seed)
	for n := len(elev) / 60; n > 0; n-- {
		i := rnd.Intn(len(elev))
		if elev[i] < 0.3 {
			continue
		}
		for elev[i] >= 0 && !s.Locations[i].River {
			s.Locations[i].River = true
			next := -1
			for _, nb := range neighbors(i) {
				if elev[nb] < elev[i] && (next < 0 || elev[nb] < elev[next]) {
					next = nb
				}
			}
			if next < 0 {
				break
			}
			i = next
		}
	}
	return s
}

func gridID(x, y int) string {
	return fmt.Sprintf("%04d_%04d", x, y)
}
