package core

import (
	"math"

	"resampledb/sample"
)

type MaxStat struct{}

func NewMaxStat() *MaxStat {
	return &MaxStat{}
}

func (stat *MaxStat) Name() string {
	return "max"
}

func (stat *MaxStat) Compute(s *sample.Sample) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySample
	}
	max := math.Inf(-1)
	for _, v := range s.Values {
		max = math.Max(max, v)
	}
	return max, nil
}
