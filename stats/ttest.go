package stats

import (
	"fmt"
	"math"
)

// WelchT is the two-sample t-statistic with unpooled variances. Groups with
// fewer than two observations, or two groups that are both constant, have no
// defined statistic and fail.
func WelchT(a, b []float64) (float64, error) {
	if len(a) < 2 || len(b) < 2 {
		return 0, fmt.Errorf("welch t: need at least 2 observations per group: %w", ErrDegenerate)
	}

	wa := NewWelford()
	for _, v := range a {
		wa.Update(v)
	}
	wb := NewWelford()
	for _, v := range b {
		wb.Update(v)
	}

	se := math.Sqrt(wa.SampleVariance()/float64(len(a)) + wb.SampleVariance()/float64(len(b)))
	if se == 0 {
		return 0, fmt.Errorf("welch t: zero variance in both groups: %w", ErrDegenerate)
	}
	return (wa.Mean() - wb.Mean()) / se, nil
}
