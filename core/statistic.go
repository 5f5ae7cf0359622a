package core

import (
	"errors"

	"resampledb/sample"
)

var (
	ErrEmptySample  = errors.New("empty sample")
	ErrNoCovariates = errors.New("sample carries no covariates")
	ErrGroupCount   = errors.New("statistic requires exactly two groups")
)

// Statistic is a pure function from a Sample to a single numeric result.
// Compute must not retain the sample or keep state between calls.
type Statistic interface {
	Name() string
	Compute(s *sample.Sample) (float64, error)
}

func GetStatisticFromName(name string) Statistic {
	if name == "mean" {
		return NewMeanStat()
	} else if name == "sum" {
		return NewSumStat()
	} else if name == "max" {
		return NewMaxStat()
	} else if name == "variance" {
		return NewVarianceStat()
	} else if name == "median" {
		return NewMedianStat()
	} else if name == "rsquared" {
		return NewRSquaredStat()
	} else if name == "tstat" {
		return NewTStat()
	} else {
		return nil
	}
}

func StatisticNames() []string {
	return []string{"mean", "sum", "max", "variance", "median", "rsquared", "tstat"}
}
