package sample

// Sample is one drawn subset of observations. Values always holds the
// numeric observations; Xs and Keys are only set when the source carries
// covariates or category labels. A Sample is built fresh on every draw and
// is never shared between iterations.
type Sample struct {
	Values []float64
	Xs     []float64
	Keys   []string
}

func (s *Sample) Len() int {
	return len(s.Values)
}
