package montecarlo

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalSource supplies independent standard-normal draws for path
// simulation. Implementations must be deterministic for a given seed.
// Stream derives an independent deterministic sub-stream, so partitioned
// workers never share generator state.
type NormalSource interface {
	// StandardNormals fills dst with iid N(0,1) variates.
	StandardNormals(dst []float64)
	// Stream returns the i-th derived sub-stream of this source.
	Stream(i uint64) NormalSource
}

type pcgSource struct {
	seed uint64
	dist distuv.Normal
}

// NewNormalSource returns a seeded PCG-backed NormalSource.
func NewNormalSource(seed uint64) NormalSource {
	return &pcgSource{
		seed: seed,
		dist: distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)},
	}
}

func (s *pcgSource) StandardNormals(dst []float64) {
	for i := range dst {
		dst[i] = s.dist.Rand()
	}
}

func (s *pcgSource) Stream(i uint64) NormalSource {
	return NewNormalSource(mix64(s.seed, i))
}

// mix64 hashes (seed, stream index) into a sub-stream seed. Nearby indices
// must map to decorrelated seeds; the constants are the splitmix64 finalizer.
func mix64(seed, i uint64) uint64 {
	z := seed + (i+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
