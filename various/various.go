package various

import (
	"math"
	"sort"

	"github.com/Flokey82/go_gens/vectors"
)

// RoundToDecimals rounds the given float to the given number of decimals.
func RoundToDecimals(v, d float64) float64 {
	m := math.Pow(10, d)
	return math.Round(v*m) / m
}

// RoundPoint returns p as an [x, y] pair rounded to d decimals.
func RoundPoint(p vectors.Vec2, d float64) []float64 {
	return []float64{RoundToDecimals(p.X, d), RoundToDecimals(p.Y, d)}
}

// SortedUnique sorts s in place and removes duplicates.
func SortedUnique(s []string) []string {
	sort.Strings(s)
	res := s[:0]
	for _, v := range s {
		if len(res) == 0 || v != res[len(res)-1] {
			res = append(res, v)
		}
	}
	return res
}
