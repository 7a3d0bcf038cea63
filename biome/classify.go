// Package biome classifies map locations into terrain tags and derives their
// elevation and moisture.
package biome

import (
	"math"

	"github.com/Flokey82/genbiome"
	"github.com/Flokey82/go_gens/gameconstants"
	"github.com/Flokey82/go_gens/utils"
)

// Input is everything the classifier gets to see about a location.
type Input struct {
	Biome     string   // Authoritative biome tag (preferred)
	Text      string   // Free text (fallback)
	River     bool     // Location carries a river
	Coast     bool     // Location lies at the coast
	Elevation *float64 // Explicit elevation (-1..1), overrides the heuristic
	Moisture  *float64 // Explicit moisture (0..1), overrides the heuristic
}

// Classification is the result of classifying a location.
type Classification struct {
	Tags      Tags
	Elevation float64
	Moisture  float64
	Whittaker int // Whittaker biome (genbiome) if one was determined, -1 otherwise
}

// Classifier turns an Input into a Classification. Implementations must be
// pure and deterministic.
type Classifier func(in Input) Classification

// BaseTemperature is the sea level temperature (in °C) assumed when deriving
// a Whittaker biome from elevation and moisture alone.
const BaseTemperature = 20.0

// Classify is the default Classifier.
//
// The biome tag is looked up first (the genbiome Whittaker names, then game
// biome names). If it is absent or unknown, the free text is scanned for
// keywords. If neither yields a tag and both elevation and moisture are given
// explicitly, the Whittaker biome for that climate is used. River and coast
// flags always add their tags.
func Classify(in Input) Classification {
	res := Classification{Whittaker: -1}
	if tags, wb, ok := lookupBiome(in.Biome); ok {
		res.Tags, res.Whittaker = tags, wb
	} else {
		res.Tags = lookupText(in.Text)
	}
	if res.Tags == 0 && in.Elevation != nil && in.Moisture != nil {
		res.Tags, res.Whittaker = climateTags(*in.Elevation, *in.Moisture)
	}
	if in.River {
		res.Tags |= TagRiver
	}
	if in.Coast {
		res.Tags |= TagCoast
	}

	if in.Elevation != nil {
		res.Elevation = *in.Elevation
	} else {
		res.Elevation = HeuristicElevation(res.Tags)
	}
	if in.Moisture != nil {
		res.Moisture = *in.Moisture
	} else {
		res.Moisture = HeuristicMoisture(res.Tags)
	}
	return res
}

// climateTags returns the tags of the Whittaker biome for the given elevation
// and moisture. Elevations below sea level are treated as lakes.
func climateTags(elev, mois float64) (Tags, int) {
	if elev < 0 {
		return TagLake, -1
	}
	wb := genbiome.GetWhittakerModBiome(int(Temperature(elev)), int(Precipitation(mois)))
	tags := whittakerTags[wb]
	if elev >= mountainLine {
		tags |= TagMountain
	} else if elev >= hillLine {
		tags |= TagHills
	}
	return tags, wb
}

// Temperature returns the mean temperature in °C at the given elevation
// (0..1, where 1 is the tallest mountain on earth).
func Temperature(elev float64) float64 {
	height := math.Max(elev, 0) * float64(gameconstants.EarthMaxElevation)
	temp := BaseTemperature - float64(gameconstants.EarthElevationTemperatureFalloff)*height
	return math.Max(temp, float64(genbiome.MinTemperatureC))
}

// Precipitation returns the yearly precipitation in dm for moisture 0..1.
func Precipitation(mois float64) float64 {
	return math.Min(math.Max(mois, 0), 1) * float64(genbiome.MaxPrecipitationDM)
}

// HeuristicElevation estimates the elevation of a location from its tags.
//
// Standing water takes the lowest water level, land the highest land level;
// rivers cut into the land they flow through.
func HeuristicElevation(tags Tags) float64 {
	var water []float64
	for tag, elev := range waterElevation {
		if tags.Has(tag) {
			water = append(water, elev)
		}
	}
	if len(water) > 0 {
		lowest, _ := utils.MinMax(water)
		return lowest
	}
	elev := defaultElevation
	for _, le := range landElevation {
		if tags.Has(le.tag) {
			elev = le.elev
			break
		}
	}
	if tags.Has(TagRiver) {
		elev -= riverCut
	}
	return elev
}

// HeuristicMoisture estimates the moisture of a location from its tags.
func HeuristicMoisture(tags Tags) float64 {
	for _, tm := range tagMoisture {
		if tags.Has(tm.tag) {
			return tm.mois
		}
	}
	return defaultMoisture
}
