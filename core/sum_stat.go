package core

import "resampledb/sample"

type SumStat struct{}

func NewSumStat() *SumStat {
	return &SumStat{}
}

func (stat *SumStat) Name() string {
	return "sum"
}

func (stat *SumStat) Compute(s *sample.Sample) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySample
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum, nil
}
