package biome

import (
	"strings"

	"github.com/Flokey82/genbiome"
)

// keywordTags maps game biome names and description keywords to tags.
var keywordTags = map[string]Tags{
	"lake":      TagLake,
	"lakes":     TagLake,
	"pond":      TagLake,
	"loch":      TagLake,
	"water":     TagLake,
	"ocean":     TagOcean,
	"sea":       TagOcean,
	"river":     TagRiver,
	"stream":    TagRiver,
	"creek":     TagRiver,
	"brook":     TagRiver,
	"ford":      TagRiver,
	"coast":     TagCoast,
	"coastal":   TagCoast,
	"beach":     TagCoast,
	"shore":     TagCoast,
	"harbor":    TagCoast,
	"forest":    TagForest,
	"woods":     TagForest,
	"woodland":  TagForest,
	"grove":     TagForest,
	"jungle":    TagForest,
	"taiga":     TagForest,
	"mountain":  TagMountain,
	"mountains": TagMountain,
	"peak":      TagMountain,
	"peaks":     TagMountain,
	"alpine":    TagMountain,
	"cliffs":    TagMountain,
	"hills":     TagHills,
	"hill":      TagHills,
	"highlands": TagHills,
	"plains":    TagPlains,
	"grassland": TagPlains,
	"meadow":    TagPlains,
	"fields":    TagPlains,
	"farmland":  TagPlains,
	"steppe":    TagPlains,
	"desert":    TagDesert,
	"dunes":     TagDesert,
	"wasteland": TagDesert,
	"swamp":     TagSwamp,
	"marsh":     TagSwamp,
	"bog":       TagSwamp,
	"wetland":   TagSwamp,
	"wetlands":  TagSwamp,
	"snow":      TagSnow,
	"glacier":   TagSnow,
	"tundra":    TagSnow,
	"frozen":    TagSnow,
}

// whittakerTags maps the Whittaker biomes of genbiome to tags.
var whittakerTags = map[int]Tags{
	genbiome.WhittakerModBiomeSubtropicalDesert:       TagDesert,
	genbiome.WhittakerModBiomeColdDesert:              TagDesert,
	genbiome.WhittakerModBiomeTropicalRainforest:      TagForest,
	genbiome.WhittakerModBiomeTropicalSeasonalForest:  TagForest,
	genbiome.WhittakerModBiomeTemperateRainforest:     TagForest,
	genbiome.WhittakerModBiomeTemperateSeasonalForest: TagForest,
	genbiome.WhittakerModBiomeBorealForestTaiga:       TagForest,
	genbiome.WhittakerModBiomeWoodlandShrubland:       TagPlains,
	genbiome.WhittakerModBiomeTemperateGrassland:      TagPlains,
	genbiome.WhittakerModBiomeSavannah:                TagPlains,
	genbiome.WhittakerModBiomeTundra:                  TagSnow,
	genbiome.WhittakerModBiomeSnow:                    TagSnow,
	genbiome.WhittakerModBiomeHotSwamp:                TagSwamp,
	genbiome.WhittakerModBiomeWetlands:                TagSwamp,
}

// whittakerByName indexes whittakerTags by the normalized biome name.
var whittakerByName = func() map[string]int {
	res := make(map[string]int, len(whittakerTags))
	for id := range whittakerTags {
		res[normalizeName(genbiome.WhittakerModBiomeToString(id))] = id
	}
	return res
}()

// normalizeName lower-cases s and folds separators into single spaces.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ", "/", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// lookupBiome returns the tags and Whittaker biome (or -1) of a biome name.
func lookupBiome(name string) (Tags, int, bool) {
	n := normalizeName(name)
	if n == "" {
		return 0, -1, false
	}
	if id, ok := whittakerByName[n]; ok {
		return whittakerTags[id], id, true
	}
	if tags, ok := keywordTags[n]; ok {
		return tags, -1, true
	}
	return 0, -1, false
}

// lookupText unions the tags of every keyword found in the free text.
func lookupText(text string) Tags {
	var tags Tags
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	})
	for _, w := range words {
		tags |= keywordTags[w]
	}
	return tags
}

// Elevation and moisture heuristics per tag.
var (
	landElevation = []struct {
		tag  Tags
		elev float64
	}{
		{TagMountain, 0.8},
		{TagSnow, 0.6},
		{TagHills, 0.45},
		{TagForest, 0.3},
		{TagDesert, 0.25},
		{TagPlains, 0.2},
		{TagSwamp, 0.05},
		{TagCoast, 0.05},
	}
	waterElevation = map[Tags]float64{
		TagLake:  -0.3,
		TagOcean: -0.6,
	}
	tagMoisture = []struct {
		tag  Tags
		mois float64
	}{
		{TagLake, 1},
		{TagOcean, 1},
		{TagSwamp, 0.9},
		{TagRiver, 0.8},
		{TagForest, 0.7},
		{TagCoast, 0.6},
		{TagPlains, 0.4},
		{TagHills, 0.4},
		{TagMountain, 0.3},
		{TagSnow, 0.3},
		{TagDesert, 0.1},
	}
)

const (
	defaultElevation = 0.2
	defaultMoisture  = 0.4
	riverCut         = 0.3  // rivers run this much below the surrounding land
	mountainLine     = 0.6  // elevation above which land counts as mountains
	hillLine         = 0.4  // elevation above which land counts as hills
)
