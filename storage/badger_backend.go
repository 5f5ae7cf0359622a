package storage

import (
	"github.com/dgraph-io/badger/v2"
)

func TestBadgerDB() *badger.DB {
	option := badger.DefaultOptions("").WithInMemory(true)
	db, err := badger.Open(option)
	if err != nil {
		panic(err)
	}
	return db
}

type BadgerBackend struct {
	db *badger.DB
}

func NewBadgerBackend(db *badger.DB) *BadgerBackend {
	return &BadgerBackend{db: db}
}

func (backend *BadgerBackend) Close() error {
	return backend.db.Close()
}

func txnGet(db *badger.DB, key []byte) ([]byte, error) {
	var buf []byte
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		buf, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFound
	}
	return buf, err
}

func txnPut(db *badger.DB, key, buf []byte) error {
	err := db.Update(func(txn *badger.Txn) error {
		err := txn.Set(key, buf)
		return err
	})
	return err
}

func txnDelete(db *badger.DB, key []byte) error {
	err := db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(key)
		return err
	})
	return err
}

func (backend *BadgerBackend) Get(runID int64) ([]byte, error) {
	key := GetResultsKey(runID)
	return txnGet(backend.db, key)
}

func (backend *BadgerBackend) Put(runID int64, buf []byte) error {
	key := GetResultsKey(runID)
	return txnPut(backend.db, key, buf)
}

func (backend *BadgerBackend) Delete(runID int64) error {
	key := GetResultsKey(runID)
	return txnDelete(backend.db, key)
}

func (backend *BadgerBackend) IterateRuns(lambda func(int64)) error {
	prefix := []byte{resultsKind}
	return backend.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			lambda(GetRunIDFromKey(it.Item().Key()))
		}
		return nil
	})
}
