package storage

import (
	"github.com/dgraph-io/badger/v2"
)

// labManifestID is the fixed slot for the lab manifest under labKind.
const labManifestID int64 = 0

type BadgerMetadataStore struct {
	db *badger.DB
}

func NewBadgerMetadataStore(db *badger.DB) *BadgerMetadataStore {
	return &BadgerMetadataStore{db: db}
}

func (bms *BadgerMetadataStore) PutLab(buf []byte) error {
	return txnPut(bms.db, getKey(labKind, labManifestID), buf)
}

func (bms *BadgerMetadataStore) GetLab() ([]byte, error) {
	return txnGet(bms.db, getKey(labKind, labManifestID))
}

func (bms *BadgerMetadataStore) PutRun(id int64, buf []byte) error {
	return txnPut(bms.db, getKey(runMetaKind, id), buf)
}

func (bms *BadgerMetadataStore) GetRun(id int64) ([]byte, error) {
	return txnGet(bms.db, getKey(runMetaKind, id))
}

func (bms *BadgerMetadataStore) DeleteRun(id int64) error {
	return txnDelete(bms.db, getKey(runMetaKind, id))
}
