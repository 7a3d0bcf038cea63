// Package noise provides seeded fractal simplex noise for organic variation
// of synthesized features.
package noise

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Noise layers a number of octaves of normalized opensimplex noise.
type Noise struct {
	Octaves     int
	Persistence float64
	Frequency   float64 // Frequency of the first octave
	Seed        int64
	amplitudes  []float64
	sumAmp      float64
	os          opensimplex.Noise
}

// NewNoise returns a new Noise.
func NewNoise(octaves int, persistence, frequency float64, seed int64) *Noise {
	if octaves < 1 {
		octaves = 1
	}
	n := &Noise{
		Octaves:     octaves,
		Persistence: persistence,
		Frequency:   frequency,
		Seed:        seed,
		amplitudes:  make([]float64, octaves),
		os:          opensimplex.NewNormalized(seed),
	}
	for i := range n.amplitudes {
		n.amplitudes[i] = math.Pow(persistence, float64(i))
		n.sumAmp += n.amplitudes[i]
	}
	return n
}

// Eval2 returns the noise value at the given point in the range [0, 1].
func (n *Noise) Eval2(x, y float64) float64 {
	var sum float64
	for octave, amp := range n.amplitudes {
		f := n.Frequency * float64(int(1)<<octave)
		sum += amp * n.os.Eval2(x*f, y*f)
	}
	return sum / n.sumAmp
}

// Signed2 returns the noise value at the given point in the range [-1, 1].
func (n *Noise) Signed2(x, y float64) float64 {
	return n.Eval2(x, y)*2 - 1
}
