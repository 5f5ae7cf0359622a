package core

import (
	"resampledb/sample"
	"resampledb/tree"
)

type MedianStat struct{}

func NewMedianStat() *MedianStat {
	return &MedianStat{}
}

func (stat *MedianStat) Name() string {
	return "median"
}

func (stat *MedianStat) Compute(s *sample.Sample) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySample
	}
	mh := tree.NewMedianHeap(s.Len())
	for _, v := range s.Values {
		mh.Push(v)
	}
	return mh.Median(), nil
}
