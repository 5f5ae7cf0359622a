package storage

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetResultsKey(t *testing.T) {
	key := GetResultsKey(42)
	assert.Equal(t, len(key), 9)
	assert.Equal(t, GetRunIDFromKey(key), int64(42))
}

func TestInMemoryBackend(t *testing.T) {
	backend := NewInMemoryBackend()

	_, err := backend.Get(1)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, backend.Put(1, []byte("one")))
	assert.NoError(t, backend.Put(2, []byte("two")))

	buf, err := backend.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, buf, []byte("one"))

	assert.NoError(t, backend.Delete(1))
	_, err = backend.Get(1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryBackend_IterateRuns(t *testing.T) {
	backend := NewInMemoryBackend()
	assert.NoError(t, backend.Put(3, []byte("a")))
	assert.NoError(t, backend.Put(7, []byte("b")))

	var ids []int64
	assert.NoError(t, backend.IterateRuns(func(id int64) {
		ids = append(ids, id)
	}))
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	assert.Equal(t, ids, []int64{3, 7})
}

func TestSimpleMetadataStore(t *testing.T) {
	mds := NewSimpleMetadataStore()

	_, err := mds.GetLab()
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mds.PutLab([]byte("lab")))
	buf, err := mds.GetLab()
	assert.NoError(t, err)
	assert.Equal(t, buf, []byte("lab"))

	assert.NoError(t, mds.PutRun(5, []byte("run")))
	buf, err = mds.GetRun(5)
	assert.NoError(t, err)
	assert.Equal(t, buf, []byte("run"))

	assert.NoError(t, mds.DeleteRun(5))
	_, err = mds.GetRun(5)
	assert.ErrorIs(t, err, ErrNotFound)
}
