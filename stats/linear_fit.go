package stats

import (
	"errors"
	"fmt"
)

var ErrDegenerate = errors.New("degenerate input")

type LinearFit struct {
	Slope     float64
	Intercept float64
	R2        float64
}

// FitLeastSquares fits ys against xs by ordinary least squares. Inputs with
// fewer than two points, constant xs or constant ys are degenerate: the fit
// (or its R2) is undefined and an error is returned rather than a default.
func FitLeastSquares(xs, ys []float64) (*LinearFit, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("fit: %d xs vs %d ys: %w", len(xs), len(ys), ErrDegenerate)
	}
	n := float64(len(xs))
	if len(xs) < 2 {
		return nil, fmt.Errorf("fit: need at least 2 points: %w", ErrDegenerate)
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var sxx, syy, sxy float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 {
		return nil, fmt.Errorf("fit: constant xs: %w", ErrDegenerate)
	}
	if syy == 0 {
		return nil, fmt.Errorf("fit: constant ys: %w", ErrDegenerate)
	}

	slope := sxy / sxx
	return &LinearFit{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
		R2:        (sxy * sxy) / (sxx * syy),
	}, nil
}
