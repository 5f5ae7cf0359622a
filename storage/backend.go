package storage

import (
	"encoding/binary"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("not found")

const (
	resultsKind byte = iota
	runMetaKind
	labKind
)

func getKey(kind byte, runID int64) []byte {
	buf := make([]byte, 9)

	// <1-byte kind> <8-bytes run ID>
	buf[0] = kind
	binary.LittleEndian.PutUint64(buf[1:], uint64(runID))

	return buf
}

func GetResultsKey(runID int64) []byte {
	return getKey(resultsKind, runID)
}

func GetRunIDFromKey(buf []byte) int64 {
	return int64(binary.LittleEndian.Uint64(buf[1:]))
}

// Backend stores serialized result collections keyed by run ID. Run metadata
// and the lab manifest go through the MetadataStore instead.
type Backend interface {
	Get(runID int64) ([]byte, error)
	Put(runID int64, buf []byte) error
	Delete(runID int64) error

	IterateRuns(lambda func(int64)) error

	Close() error
}

type InMemoryBackend struct {
	resultsMap      map[string][]byte
	resultsMapMutex sync.Mutex
}

func NewInMemoryBackend() *InMemoryBackend {
	return &InMemoryBackend{
		resultsMap: make(map[string][]byte),
	}
}

func (backend *InMemoryBackend) Get(runID int64) ([]byte, error) {
	backend.resultsMapMutex.Lock()
	defer backend.resultsMapMutex.Unlock()
	buf, ok := backend.resultsMap[string(GetResultsKey(runID))]
	if !ok {
		return nil, ErrNotFound
	}
	return buf, nil
}

func (backend *InMemoryBackend) Put(runID int64, buf []byte) error {
	backend.resultsMapMutex.Lock()
	defer backend.resultsMapMutex.Unlock()
	backend.resultsMap[string(GetResultsKey(runID))] = buf
	return nil
}

func (backend *InMemoryBackend) Delete(runID int64) error {
	backend.resultsMapMutex.Lock()
	defer backend.resultsMapMutex.Unlock()
	delete(backend.resultsMap, string(GetResultsKey(runID)))
	return nil
}

func (backend *InMemoryBackend) IterateRuns(lambda func(int64)) error {
	backend.resultsMapMutex.Lock()
	defer backend.resultsMapMutex.Unlock()
	for k := range backend.resultsMap {
		lambda(GetRunIDFromKey([]byte(k)))
	}
	return nil
}

func (backend *InMemoryBackend) Close() error {
	backend.resultsMap = nil
	return nil
}
