package core

import (
	"resampledb/sample"
	"resampledb/stats"
)

// TStat is the Welch two-sample t-statistic over a keyed sample with exactly
// two groups. Group order follows first appearance in the sample, so the
// sign is stable for a fixed source.
type TStat struct{}

func NewTStat() *TStat {
	return &TStat{}
}

func (stat *TStat) Name() string {
	return "tstat"
}

func (stat *TStat) Compute(s *sample.Sample) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySample
	}
	if s.Keys == nil {
		return 0, ErrGroupCount
	}

	firstKey := s.Keys[0]
	secondKey := ""
	haveSecond := false
	var a, b []float64
	for i, key := range s.Keys {
		if key == firstKey {
			a = append(a, s.Values[i])
			continue
		}
		if !haveSecond {
			secondKey = key
			haveSecond = true
		}
		if key != secondKey {
			return 0, ErrGroupCount
		}
		b = append(b, s.Values[i])
	}
	if !haveSecond {
		return 0, ErrGroupCount
	}

	return stats.WelchT(a, b)
}
