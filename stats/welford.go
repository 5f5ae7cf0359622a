package stats

import "math"

// Welford is an online mean/variance accumulator. Single pass, no stored
// observations, numerically stable.
type Welford struct {
	count uint64
	mean  float64
	m2    float64
}

func NewWelford() *Welford {
	return &Welford{
		count: 0,
		mean:  0,
		m2:    0,
	}
}

func (w *Welford) Update(value float64) {
	w.count++
	delta := value - w.mean
	w.mean += delta / float64(w.count)
	delta2 := value - w.mean
	w.m2 += delta * delta2
}

// Merge folds another accumulator into w (Chan et al. pairwise combine), so
// per-worker accumulators can be reduced into one.
func (w *Welford) Merge(other *Welford) {
	if other.count == 0 {
		return
	}
	if w.count == 0 {
		w.count = other.count
		w.mean = other.mean
		w.m2 = other.m2
		return
	}
	total := w.count + other.count
	delta := other.mean - w.mean
	w.mean += delta * float64(other.count) / float64(total)
	w.m2 += other.m2 + delta*delta*float64(w.count)*float64(other.count)/float64(total)
	w.count = total
}

func (w *Welford) Count() uint64 {
	return w.count
}

func (w *Welford) Mean() float64 {
	return w.mean
}

func (w *Welford) Variance() float64 {
	if w.count < 2 {
		return 0
	}
	return w.m2 / float64(w.count)
}

func (w *Welford) SampleVariance() float64 {
	if w.count < 2 {
		return 0
	}
	return w.m2 / float64(w.count-1)
}

func (w *Welford) SD() float64 {
	return math.Sqrt(w.SampleVariance())
}

func (w *Welford) CV() float64 {
	if w.count < 2 {
		return 0
	}
	return w.SD() / w.Mean()
}
