package sample

import "math/rand"

// Reservoir keeps a uniform draw of up to capacity indices from a stream of
// pushes, in a single pass.
type Reservoir struct {
	indices []int
	n       int
}

func NewReservoir(capacity int) *Reservoir {
	return &Reservoir{
		indices: make([]int, 0, capacity),
		n:       0,
	}
}

func (r *Reservoir) Push(index int, rng *rand.Rand) {
	pos := r.n
	r.n++

	if pos < cap(r.indices) {
		r.indices = append(r.indices, index)
		return
	}

	ridx := rng.Intn(r.n)
	if ridx >= len(r.indices) {
		return
	}
	r.indices[ridx] = index
}

func (r *Reservoir) Len() int {
	return len(r.indices)
}

// Indices returns the drawn indices. The slice is owned by the reservoir.
func (r *Reservoir) Indices() []int {
	return r.indices
}
