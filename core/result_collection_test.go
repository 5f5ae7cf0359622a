package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultCollection_New(t *testing.T) {
	rc := NewResultCollection(5)
	assert.Equal(t, rc.Len(), 5)
	assert.False(t, rc.IsComplete())

	rc = NewResultCollection(0)
	assert.Equal(t, rc.Len(), 0)
	assert.True(t, rc.IsComplete())

	rc = NewResultCollection(-3)
	assert.Equal(t, rc.Len(), 0)
}

func TestResultCollection_WriteOnce(t *testing.T) {
	rc := NewResultCollection(2)

	assert.NoError(t, rc.Set(0, 1.5))
	assert.ErrorIs(t, rc.Set(0, 2.5), ErrSlotWritten)

	v, ok := rc.Get(0)
	assert.True(t, ok)
	assert.Equal(t, v, 1.5)

	_, ok = rc.Get(1)
	assert.False(t, ok)

	assert.NoError(t, rc.Set(1, 3.5))
	assert.True(t, rc.IsComplete())
}

func TestResultCollection_Bounds(t *testing.T) {
	rc := NewResultCollection(1)
	assert.ErrorIs(t, rc.Set(-1, 0), ErrIndexOutOfRange)
	assert.ErrorIs(t, rc.Set(1, 0), ErrIndexOutOfRange)

	_, ok := rc.Get(-1)
	assert.False(t, ok)
}

func TestResultCollection_FromValues(t *testing.T) {
	rc := ResultCollectionFromValues([]float64{1, 2, 3})
	assert.Equal(t, rc.Len(), 3)
	assert.True(t, rc.IsComplete())
	assert.Equal(t, rc.Values(), []float64{1, 2, 3})

	// Values returns a copy.
	values := rc.Values()
	values[0] = 100
	assert.Equal(t, rc.Values()[0], 1.0)
}
