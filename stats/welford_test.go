package stats

import (
	"testing"

	"resampledb/utils"
)

func TestWelford(t *testing.T) {
	w := NewWelford()

	utils.AssertEqual(t, w.Mean(), 0.0)
	utils.AssertEqual(t, w.Variance(), 0.0)
	utils.AssertEqual(t, w.SampleVariance(), 0.0)
	utils.AssertEqual(t, w.CV(), 0.0)

	for i := 1; i < 100; i++ {
		w.Update(float64(i))
	}

	utils.AssertEqual(t, w.Count(), uint64(99))
	utils.AssertEqual(t, w.Mean(), 50.0)
	utils.AssertClose(t, w.Variance(), 816.666667, 1e-4)
	utils.AssertClose(t, w.SampleVariance(), 825.0000, 1e-4)
	utils.AssertClose(t, w.CV(), 0.5744563, 1e-4)
}

func TestWelford_Merge(t *testing.T) {
	full := NewWelford()
	left := NewWelford()
	right := NewWelford()

	for i := 1; i < 100; i++ {
		full.Update(float64(i))
		if i <= 50 {
			left.Update(float64(i))
		} else {
			right.Update(float64(i))
		}
	}

	left.Merge(right)
	utils.AssertEqual(t, left.Count(), full.Count())
	utils.AssertClose(t, left.Mean(), full.Mean(), 1e-9)
	utils.AssertClose(t, left.SampleVariance(), full.SampleVariance(), 1e-9)
}

func TestWelford_MergeEmpty(t *testing.T) {
	w := NewWelford()
	w.Update(1)
	w.Update(3)

	w.Merge(NewWelford())
	utils.AssertEqual(t, w.Count(), uint64(2))
	utils.AssertEqual(t, w.Mean(), 2.0)

	empty := NewWelford()
	empty.Merge(w)
	utils.AssertEqual(t, empty.Count(), uint64(2))
	utils.AssertEqual(t, empty.Mean(), 2.0)
}
