package sample

import "math/rand"

// splitmix64 finalizer. Consecutive iteration indices map to uncorrelated
// stream seeds.
func mix(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// NewStream returns the RNG for a single iteration of a run. The stream
// depends only on (seed, iteration), never on scheduling, so a run produces
// identical draws no matter how its iterations are distributed over workers.
func NewStream(seed int64, iteration int64) *rand.Rand {
	streamSeed := mix(mix(uint64(seed)) ^ uint64(iteration))
	return rand.New(rand.NewSource(int64(streamSeed)))
}
