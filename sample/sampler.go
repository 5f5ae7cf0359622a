package sample

import (
	"math/rand"
	"sort"
)

type Rule int

const (
	TakeAll Rule = iota
	WithReplacement
	WithoutReplacement
	GroupByKey
	Permute
)

func (r Rule) String() string {
	if r == TakeAll {
		return "take-all"
	} else if r == WithReplacement {
		return "with-replacement"
	} else if r == WithoutReplacement {
		return "without-replacement"
	} else if r == GroupByKey {
		return "group-by-key"
	} else if r == Permute {
		return "permute"
	} else {
		return "unknown"
	}
}

// Sampler draws one Sample per iteration. Draw must not retain or mutate the
// source and must take all of its randomness from the supplied rng, so that
// a run stays deterministic for a fixed seed.
type Sampler interface {
	Rule() Rule
	Draw(src *Source, rng *rand.Rand) (*Sample, error)
}

// TakeAllSampler returns the whole source in order on every draw.
type TakeAllSampler struct{}

func NewTakeAllSampler() *TakeAllSampler {
	return &TakeAllSampler{}
}

func (smp *TakeAllSampler) Rule() Rule {
	return TakeAll
}

func (smp *TakeAllSampler) Draw(src *Source, rng *rand.Rand) (*Sample, error) {
	if src.Len() == 0 {
		return nil, ErrEmptySource
	}
	return src.takeAll(), nil
}

// BootstrapSampler draws with replacement. A Size of 0 means the source
// length, the usual bootstrap.
type BootstrapSampler struct {
	Size int
}

func NewBootstrapSampler() *BootstrapSampler {
	return &BootstrapSampler{Size: 0}
}

func (smp *BootstrapSampler) Rule() Rule {
	return WithReplacement
}

func (smp *BootstrapSampler) Draw(src *Source, rng *rand.Rand) (*Sample, error) {
	if src.Len() == 0 {
		return nil, ErrEmptySource
	}
	size := smp.Size
	if size <= 0 {
		size = src.Len()
	}
	indices := make([]int, size)
	for i := range indices {
		indices[i] = rng.Intn(src.Len())
	}
	return src.take(indices), nil
}

// SubsetSampler draws Size observations without replacement, via a
// single-pass reservoir. A Size >= the source length returns the whole
// source.
type SubsetSampler struct {
	Size int
}

func NewSubsetSampler(size int) *SubsetSampler {
	return &SubsetSampler{Size: size}
}

func (smp *SubsetSampler) Rule() Rule {
	return WithoutReplacement
}

func (smp *SubsetSampler) Draw(src *Source, rng *rand.Rand) (*Sample, error) {
	if src.Len() == 0 {
		return nil, ErrEmptySource
	}
	if smp.Size >= src.Len() {
		return src.takeAll(), nil
	}
	reservoir := NewReservoir(smp.Size)
	for i := 0; i < src.Len(); i++ {
		reservoir.Push(i, rng)
	}
	indices := reservoir.Indices()
	// Source order, so a draw is an ordered subsequence.
	sort.Ints(indices)
	return src.take(indices), nil
}

// GroupSampler deterministically selects the subgroup carrying Key.
type GroupSampler struct {
	Key string
}

func NewGroupSampler(key string) *GroupSampler {
	return &GroupSampler{Key: key}
}

func (smp *GroupSampler) Rule() Rule {
	return GroupByKey
}

func (smp *GroupSampler) Draw(src *Source, rng *rand.Rand) (*Sample, error) {
	if src.Len() == 0 {
		return nil, ErrEmptySource
	}
	indices := src.groupIndices(smp.Key)
	if len(indices) == 0 {
		return nil, ErrUnknownKey
	}
	return src.take(indices), nil
}

// PermuteSampler shuffles values against fixed covariates and keys. Under
// the permutation the pairing is random, which is exactly the null
// hypothesis draw for association statistics.
type PermuteSampler struct{}

func NewPermuteSampler() *PermuteSampler {
	return &PermuteSampler{}
}

func (smp *PermuteSampler) Rule() Rule {
	return Permute
}

func (smp *PermuteSampler) Draw(src *Source, rng *rand.Rand) (*Sample, error) {
	if src.Len() == 0 {
		return nil, ErrEmptySource
	}
	s := src.takeAll()
	perm := rng.Perm(len(s.Values))
	permuted := make([]float64, len(s.Values))
	for i, j := range perm {
		permuted[i] = s.Values[j]
	}
	s.Values = permuted
	return s, nil
}
