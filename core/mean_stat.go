package core

import "resampledb/sample"

type MeanStat struct{}

func NewMeanStat() *MeanStat {
	return &MeanStat{}
}

func (stat *MeanStat) Name() string {
	return "mean"
}

func (stat *MeanStat) Compute(s *sample.Sample) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySample
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(s.Len()), nil
}
