package biome

import "strings"

// Tags is a set of terrain tags.
type Tags uint16

// Terrain tags.
const (
	TagLake Tags = 1 << iota
	TagOcean
	TagRiver
	TagCoast
	TagForest
	TagMountain
	TagHills
	TagPlains
	TagDesert
	TagSwamp
	TagSnow
)

var tagNames = []struct {
	tag  Tags
	name string
}{
	{TagLake, "lake"},
	{TagOcean, "ocean"},
	{TagRiver, "river"},
	{TagCoast, "coast"},
	{TagForest, "forest"},
	{TagMountain, "mountain"},
	{TagHills, "hills"},
	{TagPlains, "plains"},
	{TagDesert, "desert"},
	{TagSwamp, "swamp"},
	{TagSnow, "snow"},
}

// Has returns true if all tags of t2 are set in t.
func (t Tags) Has(t2 Tags) bool {
	return t2 != 0 && t&t2 == t2
}

// Any returns true if at least one tag of t2 is set in t.
func (t Tags) Any(t2 Tags) bool {
	return t&t2 != 0
}

// IsWater returns true for standing water (lake or ocean).
func (t Tags) IsWater() bool {
	return t.Any(TagLake | TagOcean)
}

// Names returns the names of the set tags in declaration order.
func (t Tags) Names() []string {
	var res []string
	for _, tn := range tagNames {
		if t&tn.tag != 0 {
			res = append(res, tn.name)
		}
	}
	return res
}

func (t Tags) String() string {
	if t == 0 {
		return "none"
	}
	return strings.Join(t.Names(), "|")
}
