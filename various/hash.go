package various

import (
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/Flokey82/go_gens/vectors"
)

// HashString returns a stable 64 bit FNV-1a hash of s.
func HashString(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// HashPoint returns a stable hash of the bit patterns of p's coordinates.
func HashPoint(p vectors.Vec2) int64 {
	h := fnv.New64a()
	var buf [16]byte
	byteorder.PutUint64(buf[:8], math.Float64bits(p.X))
	byteorder.PutUint64(buf[8:], math.Float64bits(p.Y))
	h.Write(buf[:])
	return int64(h.Sum64())
}

// NewRand returns a generator seeded with seed. Every stochastic choice in
// the terrain passes goes through one of these; there is no shared source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// SeededFloat returns the first Float64 of a generator seeded with seed.
func SeededFloat(seed int64) float64 {
	return NewRand(seed).Float64()
}

// RandRange returns a value in [lo, hi) drawn from rnd.
func RandRange(rnd *rand.Rand, lo, hi float64) float64 {
	return lo + rnd.Float64()*(hi-lo)
}
