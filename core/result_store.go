package core

import (
	"github.com/dgraph-io/ristretto"

	"resampledb/storage"
)

// ResultStore puts a read cache in front of a storage backend and owns the
// (de)serialization of result collections.
type ResultStore struct {
	backend      storage.Backend
	cacheEnabled bool
	resultsCache *ristretto.Cache
}

func NewResultStore(backend storage.Backend, cacheEnabled bool) *ResultStore {
	resultsCache, _ := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 26,
		BufferItems: 64,
	})

	return &ResultStore{
		backend:      backend,
		cacheEnabled: cacheEnabled,
		resultsCache: resultsCache,
	}
}

func (store *ResultStore) Get(runID int64) (*ResultCollection, error) {
	if store.cacheEnabled {
		results, found := store.resultsCache.Get(storage.GetResultsKey(runID))
		if found {
			return results.(*ResultCollection), nil
		}
	}
	buf, err := store.backend.Get(runID)
	if err != nil {
		return nil, err
	}
	return BytesToResultCollection(buf)
}

func (store *ResultStore) Put(runID int64, results *ResultCollection) error {
	if store.cacheEnabled {
		store.resultsCache.Set(storage.GetResultsKey(runID), results, 1)
	}
	buf, err := ResultCollectionToBytes(results)
	if err != nil {
		return err
	}
	return store.backend.Put(runID, buf)
}

func (store *ResultStore) Delete(runID int64) error {
	if store.cacheEnabled {
		store.resultsCache.Del(storage.GetResultsKey(runID))
	}
	return store.backend.Delete(runID)
}
