package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitLeastSquares_PerfectLine(t *testing.T) {
	fit, err := FitLeastSquares(
		[]float64{1, 2, 3, 4},
		[]float64{3, 5, 7, 9})
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, fit.Slope, 1e-9)
	assert.InDelta(t, 1.0, fit.Intercept, 1e-9)
	assert.InDelta(t, 1.0, fit.R2, 1e-9)
}

func TestFitLeastSquares_Noisy(t *testing.T) {
	fit, err := FitLeastSquares(
		[]float64{1, 2, 3, 4, 5},
		[]float64{2.1, 3.9, 6.2, 7.8, 10.1})
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, fit.Slope, 0.1)
	assert.True(t, fit.R2 > 0.99)
	assert.True(t, fit.R2 <= 1.0)
}

func TestFitLeastSquares_Degenerate(t *testing.T) {
	_, err := FitLeastSquares([]float64{1}, []float64{2})
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = FitLeastSquares([]float64{2, 2, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = FitLeastSquares([]float64{1, 2, 3}, []float64{5, 5, 5})
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = FitLeastSquares([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDegenerate)
}
