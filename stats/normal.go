package stats

import "math"

type NormalDist struct {
	Mu    float64
	Sigma float64
}

var StdNormal = NormalDist{Mu: 0, Sigma: 1}

func (dist NormalDist) CDF(x float64) float64 {
	return 0.5 * math.Erfc(-(x-dist.Mu)/(dist.Sigma*math.Sqrt2))
}

// Acklam's rational approximation, relative error below 1.15e-9 over the
// whole domain.
var (
	invCDFa = [6]float64{
		-3.969683028665376e+01, 2.209460984245205e+02, -2.759285104469687e+02,
		1.383577518672690e+02, -3.066479806614716e+01, 2.506628277459239e+00,
	}
	invCDFb = [5]float64{
		-5.447609879822406e+01, 1.615858368580409e+02, -1.556989798598866e+02,
		6.680131188771972e+01, -1.328068155288572e+01,
	}
	invCDFc = [6]float64{
		-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00,
		-2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00,
	}
	invCDFd = [4]float64{
		7.784695709041462e-03, 3.224671290700398e-01,
		2.445134137142996e+00, 3.754408661907416e+00,
	}
)

func stdInvCDF(p float64) float64 {
	const pLow = 0.02425
	const pHigh = 1 - pLow

	switch {
	case p <= 0:
		return math.Inf(-1)
	case p >= 1:
		return math.Inf(1)
	case p < pLow:
		q := math.Sqrt(-2 * math.Log(p))
		return (((((invCDFc[0]*q+invCDFc[1])*q+invCDFc[2])*q+invCDFc[3])*q+invCDFc[4])*q + invCDFc[5]) /
			((((invCDFd[0]*q+invCDFd[1])*q+invCDFd[2])*q+invCDFd[3])*q + 1)
	case p <= pHigh:
		q := p - 0.5
		r := q * q
		return (((((invCDFa[0]*r+invCDFa[1])*r+invCDFa[2])*r+invCDFa[3])*r+invCDFa[4])*r + invCDFa[5]) * q /
			(((((invCDFb[0]*r+invCDFb[1])*r+invCDFb[2])*r+invCDFb[3])*r+invCDFb[4])*r + 1)
	default:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -(((((invCDFc[0]*q+invCDFc[1])*q+invCDFc[2])*q+invCDFc[3])*q+invCDFc[4])*q + invCDFc[5]) /
			((((invCDFd[0]*q+invCDFd[1])*q+invCDFd[2])*q+invCDFd[3])*q + 1)
	}
}

func (dist NormalDist) InvCDF(p float64) float64 {
	return dist.Mu + dist.Sigma*stdInvCDF(p)
}
