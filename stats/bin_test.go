package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistogram(t *testing.T) {
	values := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5}
	bins := Histogram(values, 1)
	assert.Equal(t, len(bins), 4)

	total := int64(0)
	for i, bin := range bins {
		assert.Equal(t, bin.Lo, float64(i))
		assert.Equal(t, bin.Hi, float64(i+1))
		assert.Equal(t, bin.Count, int64(2))
		assert.InDelta(t, 0.25, bin.Density, 1e-9)
		total += bin.Count
	}
	assert.Equal(t, total, int64(len(values)))
}

func TestHistogram_MaxLandsInLastBin(t *testing.T) {
	bins := Histogram([]float64{0, 1, 2}, 1)
	assert.Equal(t, len(bins), 2)
	assert.Equal(t, bins[1].Count, int64(2))
}

func TestHistogram_AutoWidth(t *testing.T) {
	values := make([]float64, 64)
	for i := range values {
		values[i] = float64(i)
	}
	bins := Histogram(values, 0)
	assert.True(t, len(bins) > 1)

	total := int64(0)
	for _, bin := range bins {
		total += bin.Count
	}
	assert.Equal(t, total, int64(len(values)))
}

func TestHistogram_Degenerate(t *testing.T) {
	assert.Nil(t, Histogram(nil, 1))

	bins := Histogram([]float64{7, 7, 7}, 1)
	assert.Equal(t, len(bins), 1)
	assert.Equal(t, bins[0].Count, int64(3))
}
