package core

import "errors"

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrSlotWritten     = errors.New("slot already written")
)

// ResultCollection is the fixed-length output buffer of a run: one slot per
// iteration, allocated up front, each slot written exactly once by the
// iteration owning that index. Writes to distinct slots need no lock.
type ResultCollection struct {
	values  []float64
	written []bool
}

func NewResultCollection(n int) *ResultCollection {
	if n < 0 {
		n = 0
	}
	return &ResultCollection{
		values:  make([]float64, n),
		written: make([]bool, n),
	}
}

// ResultCollectionFromValues rebuilds a completed collection, e.g. one
// loaded from storage. Every slot counts as written.
func ResultCollectionFromValues(values []float64) *ResultCollection {
	rc := NewResultCollection(len(values))
	copy(rc.values, values)
	for i := range rc.written {
		rc.written[i] = true
	}
	return rc
}

func (rc *ResultCollection) Len() int {
	return len(rc.values)
}

func (rc *ResultCollection) Set(i int, value float64) error {
	if i < 0 || i >= len(rc.values) {
		return ErrIndexOutOfRange
	}
	if rc.written[i] {
		return ErrSlotWritten
	}
	rc.values[i] = value
	rc.written[i] = true
	return nil
}

func (rc *ResultCollection) Get(i int) (float64, bool) {
	if i < 0 || i >= len(rc.values) || !rc.written[i] {
		return 0, false
	}
	return rc.values[i], true
}

func (rc *ResultCollection) IsComplete() bool {
	for _, w := range rc.written {
		if !w {
			return false
		}
	}
	return true
}

// Values returns a copy of the slots in iteration order.
func (rc *ResultCollection) Values() []float64 {
	return append([]float64(nil), rc.values...)
}
