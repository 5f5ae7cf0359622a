package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v2"

	"resampledb/storage"
)

// Lab manages resampling runs over a shared backend: it executes a
// Resampler, assigns the run an ID, and persists the result collection plus
// its metadata so a later Open sees the same runs.
type Lab struct {
	backend   storage.Backend
	mds       storage.MetadataStore
	store     *ResultStore
	runs      map[int64]*RunMeta
	nextRunId int64
	mu        sync.Mutex
}

func NewLab(backend storage.Backend, mds storage.MetadataStore) *Lab {
	return &Lab{
		backend:   backend,
		mds:       mds,
		store:     NewResultStore(backend, true),
		runs:      make(map[int64]*RunMeta),
		nextRunId: 0,
	}
}

func New(path string) (*Lab, error) {
	badgerOptions := badger.DefaultOptions(path).WithTruncate(true)
	badgerDb, err := badger.Open(badgerOptions)
	if err != nil {
		return nil, err
	}
	return NewLab(
		storage.NewBadgerBackend(badgerDb),
		storage.NewBadgerMetadataStore(badgerDb)), nil
}

func NewInMemory() *Lab {
	return NewLab(storage.NewInMemoryBackend(), storage.NewSimpleMetadataStore())
}

func Open(path string) (*Lab, error) {
	lab, err := New(path)
	if err != nil {
		return nil, err
	}
	err = lab.ReadLab()
	if err != nil {
		return nil, err
	}
	return lab, nil
}

// Execute runs the resampler and persists its output under a fresh run ID.
// Nothing is persisted when the run fails.
func (lab *Lab) Execute(ctx context.Context, r *Resampler, iterations int) (*RunMeta, error) {
	results, err := r.Run(ctx, iterations)
	if err != nil {
		return nil, err
	}

	lab.mu.Lock()
	defer lab.mu.Unlock()
	meta := &RunMeta{
		Id:         lab.nextRunId,
		Statistic:  r.stat.Name(),
		Rule:       r.sampler.Rule().String(),
		Seed:       r.seed,
		Iterations: iterations,
		CreatedAt:  time.Now().Unix(),
	}
	lab.nextRunId += 1

	if err := lab.store.Put(meta.Id, results); err != nil {
		return nil, err
	}
	if err := lab.writeLabAndRun(meta); err != nil {
		return nil, err
	}
	lab.runs[meta.Id] = meta
	return meta, nil
}

func (lab *Lab) GetRun(runId int64) (*RunMeta, error) {
	lab.mu.Lock()
	defer lab.mu.Unlock()
	meta, ok := lab.runs[runId]
	if !ok {
		return nil, errors.New("run not found")
	}
	return meta, nil
}

func (lab *Lab) GetResults(runId int64) (*ResultCollection, error) {
	return lab.store.Get(runId)
}

func (lab *Lab) DeleteRun(runId int64) error {
	lab.mu.Lock()
	defer lab.mu.Unlock()
	if err := lab.store.Delete(runId); err != nil {
		return err
	}
	if err := lab.mds.DeleteRun(runId); err != nil {
		return err
	}
	delete(lab.runs, runId)
	return lab.writeLab()
}

func (lab *Lab) RunIds() []int64 {
	lab.mu.Lock()
	defer lab.mu.Unlock()
	ids := make([]int64, 0, len(lab.runs))
	for id := range lab.runs {
		ids = append(ids, id)
	}
	return ids
}

func (lab *Lab) Close() error {
	return lab.backend.Close()
}

func (lab *Lab) writeLab() error {
	snapshot := &labSnapshot{
		RunIds:    make([]int64, 0, len(lab.runs)),
		NextRunId: lab.nextRunId,
	}
	for id := range lab.runs {
		snapshot.RunIds = append(snapshot.RunIds, id)
	}
	buf, err := labToBytes(snapshot)
	if err != nil {
		return err
	}
	return lab.mds.PutLab(buf)
}

func (lab *Lab) writeLabAndRun(meta *RunMeta) error {
	metaBuf, err := RunMetaToBytes(meta)
	if err != nil {
		return err
	}
	if err := lab.mds.PutRun(meta.Id, metaBuf); err != nil {
		return err
	}

	snapshot := &labSnapshot{
		RunIds:    make([]int64, 0, len(lab.runs)+1),
		NextRunId: lab.nextRunId,
	}
	for id := range lab.runs {
		snapshot.RunIds = append(snapshot.RunIds, id)
	}
	snapshot.RunIds = append(snapshot.RunIds, meta.Id)
	buf, err := labToBytes(snapshot)
	if err != nil {
		return err
	}
	return lab.mds.PutLab(buf)
}

func (lab *Lab) ReadLab() error {
	buf, err := lab.mds.GetLab()
	if err != nil {
		// A lab that has never been written to has no manifest yet.
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}
	snapshot, err := bytesToLab(buf)
	if err != nil {
		return err
	}

	lab.mu.Lock()
	defer lab.mu.Unlock()
	lab.nextRunId = snapshot.NextRunId
	for _, runId := range snapshot.RunIds {
		metaBuf, err := lab.mds.GetRun(runId)
		if err != nil {
			return err
		}
		meta, err := BytesToRunMeta(metaBuf)
		if err != nil {
			return err
		}
		lab.runs[runId] = meta
	}
	return nil
}
