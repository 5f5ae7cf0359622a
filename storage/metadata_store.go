package storage

import "sync"

// MetadataStore holds the lab manifest and per-run metadata as opaque
// buffers; callers own the encoding.
type MetadataStore interface {
	PutLab([]byte) error
	GetLab() ([]byte, error)

	PutRun(int64, []byte) error
	GetRun(int64) ([]byte, error)
	DeleteRun(int64) error
}

type SimpleMetadataStore struct {
	lab   []byte
	runs  map[int64][]byte
	mutex sync.Mutex
}

func NewSimpleMetadataStore() *SimpleMetadataStore {
	return &SimpleMetadataStore{
		lab:  nil,
		runs: make(map[int64][]byte),
	}
}

func (sms *SimpleMetadataStore) PutLab(buf []byte) error {
	sms.mutex.Lock()
	defer sms.mutex.Unlock()
	sms.lab = buf
	return nil
}

func (sms *SimpleMetadataStore) GetLab() ([]byte, error) {
	sms.mutex.Lock()
	defer sms.mutex.Unlock()
	if sms.lab == nil {
		return nil, ErrNotFound
	}
	return sms.lab, nil
}

func (sms *SimpleMetadataStore) PutRun(id int64, buf []byte) error {
	sms.mutex.Lock()
	defer sms.mutex.Unlock()
	sms.runs[id] = buf
	return nil
}

func (sms *SimpleMetadataStore) GetRun(id int64) ([]byte, error) {
	sms.mutex.Lock()
	defer sms.mutex.Unlock()
	buf, ok := sms.runs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return buf, nil
}

func (sms *SimpleMetadataStore) DeleteRun(id int64) error {
	sms.mutex.Lock()
	defer sms.mutex.Unlock()
	delete(sms.runs, id)
	return nil
}
