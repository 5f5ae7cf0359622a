package stats

import "math"

// Bin is one histogram cell over [Lo, Hi).
type Bin struct {
	Lo      float64
	Hi      float64
	Count   int64
	Density float64
}

// Histogram groups values into equal-width bins. A binWidth <= 0 picks the
// width by Sturges' rule. The maximum value lands in the last bin.
func Histogram(values []float64, binWidth float64) []Bin {
	if len(values) == 0 {
		return nil
	}

	lo := values[0]
	hi := values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return []Bin{{Lo: lo, Hi: hi, Count: int64(len(values)), Density: 0}}
	}

	if binWidth <= 0 {
		nBins := 1 + math.Ceil(math.Log2(float64(len(values))))
		binWidth = (hi - lo) / nBins
	}
	nBins := int(math.Ceil((hi - lo) / binWidth))

	bins := make([]Bin, nBins)
	for i := range bins {
		bins[i].Lo = lo + float64(i)*binWidth
		bins[i].Hi = bins[i].Lo + binWidth
	}
	for _, v := range values {
		idx := int((v - lo) / binWidth)
		if idx >= nBins {
			idx = nBins - 1
		}
		bins[idx].Count++
	}
	total := float64(len(values))
	for i := range bins {
		bins[i].Density = float64(bins[i].Count) / (total * binWidth)
	}
	return bins
}
