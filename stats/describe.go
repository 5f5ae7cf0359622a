package stats

import (
	"math"
	"sort"
)

// Summary is the distribution shape of a result collection: what a caller
// reads off before deciding whether an observed statistic is extreme.
type Summary struct {
	Count int
	Mean  float64
	SD    float64
	Min   float64
	Max   float64
	P95   float64
	P99   float64
}

func Describe(values []float64) *Summary {
	if len(values) == 0 {
		return &Summary{}
	}
	w := NewWelford()
	for _, v := range values {
		w.Update(v)
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return &Summary{
		Count: len(values),
		Mean:  w.Mean(),
		SD:    w.SD(),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		P95:   quantileSorted(sorted, 0.95),
		P99:   quantileSorted(sorted, 0.99),
	}
}

// Quantile returns the q-th quantile of values with linear interpolation
// between order statistics. NaN on empty input.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return quantileSorted(sorted, q)
}

func quantileSorted(sorted []float64, q float64) float64 {
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	rank := q * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	frac := rank - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// PermutationPValue is the two-sided add-one permutation p-value: the
// fraction of null draws at least as extreme as the observed statistic. The
// add-one keeps the estimate away from an impossible exact zero.
func PermutationPValue(observed float64, null []float64) float64 {
	if len(null) == 0 {
		return math.NaN()
	}
	extreme := 0
	for _, v := range null {
		if math.Abs(v) >= math.Abs(observed) {
			extreme++
		}
	}
	return float64(extreme+1) / float64(len(null)+1)
}
