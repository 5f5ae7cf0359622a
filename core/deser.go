package core

import (
	json "github.com/goccy/go-json"
)

type resultSnapshot struct {
	Values []float64 `json:"values"`
}

type labSnapshot struct {
	RunIds    []int64 `json:"run_ids"`
	NextRunId int64   `json:"next_run_id"`
}

func ResultCollectionToBytes(rc *ResultCollection) ([]byte, error) {
	return json.Marshal(&resultSnapshot{Values: rc.Values()})
}

func BytesToResultCollection(buf []byte) (*ResultCollection, error) {
	var snapshot resultSnapshot
	if err := json.Unmarshal(buf, &snapshot); err != nil {
		return nil, err
	}
	return ResultCollectionFromValues(snapshot.Values), nil
}

func RunMetaToBytes(meta *RunMeta) ([]byte, error) {
	return json.Marshal(meta)
}

func BytesToRunMeta(buf []byte) (*RunMeta, error) {
	meta := &RunMeta{}
	if err := json.Unmarshal(buf, meta); err != nil {
		return nil, err
	}
	return meta, nil
}

func labToBytes(snapshot *labSnapshot) ([]byte, error) {
	return json.Marshal(snapshot)
}

func bytesToLab(buf []byte) (*labSnapshot, error) {
	snapshot := &labSnapshot{}
	if err := json.Unmarshal(buf, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}
