package stats

import "math"

type CI struct {
	Mean    float64
	LowerCI float64
	UpperCI float64
}

// NormalCI is the normal-approximation confidence interval around mean with
// the given standard deviation, at confidenceLevel in (0, 1).
func NormalCI(mean, sd, confidenceLevel float64) *CI {
	ci := &CI{
		Mean: mean,
	}
	probability := (1 + confidenceLevel) / 2
	z := StdNormal.InvCDF(probability)

	if math.IsInf(z, 0) {
		ci.LowerCI = math.Inf(-1)
		ci.UpperCI = math.Inf(1)
	} else {
		ci.LowerCI = mean - z*sd
		ci.UpperCI = mean + z*sd
	}
	return ci
}
