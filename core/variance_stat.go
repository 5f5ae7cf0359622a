package core

import (
	"resampledb/sample"
	"resampledb/stats"
)

// VarianceStat is the sample variance. Single-observation samples report 0,
// matching the Welford accumulator.
type VarianceStat struct{}

func NewVarianceStat() *VarianceStat {
	return &VarianceStat{}
}

func (stat *VarianceStat) Name() string {
	return "variance"
}

func (stat *VarianceStat) Compute(s *sample.Sample) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySample
	}
	w := stats.NewWelford()
	for _, v := range s.Values {
		w.Update(v)
	}
	return w.SampleVariance(), nil
}
