package core

import (
	"resampledb/sample"
	"resampledb/stats"
)

// RSquaredStat fits the sample values against their covariates by least
// squares and reports R2. Degenerate samples (constant column, too few
// points) propagate the fit error.
type RSquaredStat struct{}

func NewRSquaredStat() *RSquaredStat {
	return &RSquaredStat{}
}

func (stat *RSquaredStat) Name() string {
	return "rsquared"
}

func (stat *RSquaredStat) Compute(s *sample.Sample) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySample
	}
	if s.Xs == nil {
		return 0, ErrNoCovariates
	}
	fit, err := stats.FitLeastSquares(s.Xs, s.Values)
	if err != nil {
		return 0, err
	}
	return fit.R2, nil
}
