package core

import (
	"context"
	"testing"

	cmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"resampledb/sample"
	"resampledb/utils"
)

func TestLab_Execute(t *testing.T) {
	lab := NewInMemory()
	defer lab.Close()

	src := sample.NewSource([]float64{1, 2, 3, 4, 5})
	r := NewResampler(src, sample.NewBootstrapSampler(), NewMeanStat()).SetSeed(11)

	meta, err := lab.Execute(context.Background(), r, 25)
	assert.NoError(t, err)
	assert.Equal(t, meta.Id, int64(0))
	assert.Equal(t, meta.Statistic, "mean")
	assert.Equal(t, meta.Rule, "with-replacement")
	assert.Equal(t, meta.Seed, int64(11))
	assert.Equal(t, meta.Iterations, 25)

	results, err := lab.GetResults(meta.Id)
	assert.NoError(t, err)
	assert.Equal(t, results.Len(), 25)

	loaded, err := lab.GetRun(meta.Id)
	assert.NoError(t, err)
	utils.AssertTrue(t, cmp.Equal(meta, loaded))

	second, err := lab.Execute(context.Background(), r, 10)
	assert.NoError(t, err)
	assert.Equal(t, second.Id, int64(1))
	assert.Equal(t, len(lab.RunIds()), 2)
}

func TestLab_FailedRunNotPersisted(t *testing.T) {
	lab := NewInMemory()
	defer lab.Close()

	src := sample.NewSource([]float64{1, 2, 3})
	r := NewResampler(src, sample.NewTakeAllSampler(), NewRSquaredStat())

	_, err := lab.Execute(context.Background(), r, 5)
	assert.ErrorIs(t, err, ErrNoCovariates)
	assert.Equal(t, len(lab.RunIds()), 0)
}

func TestLab_DeleteRun(t *testing.T) {
	lab := NewInMemory()
	defer lab.Close()

	src := sample.NewSource([]float64{1, 2, 3})
	r := NewResampler(src, sample.NewTakeAllSampler(), NewMeanStat())

	meta, err := lab.Execute(context.Background(), r, 3)
	assert.NoError(t, err)

	assert.NoError(t, lab.DeleteRun(meta.Id))
	_, err = lab.GetRun(meta.Id)
	assert.Error(t, err)
	assert.Equal(t, len(lab.RunIds()), 0)
}

func TestLab_Reopen(t *testing.T) {
	path := t.TempDir()

	lab, err := New(path)
	assert.NoError(t, err)

	src := sample.NewSource([]float64{2, 4, 6, 8})
	r := NewResampler(src, sample.NewBootstrapSampler(), NewMeanStat()).SetSeed(3)

	meta, err := lab.Execute(context.Background(), r, 12)
	assert.NoError(t, err)
	original, err := lab.GetResults(meta.Id)
	assert.NoError(t, err)
	assert.NoError(t, lab.Close())

	reopened, err := Open(path)
	assert.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, len(reopened.RunIds()), 1)
	loadedMeta, err := reopened.GetRun(meta.Id)
	assert.NoError(t, err)
	utils.AssertTrue(t, cmp.Equal(meta, loadedMeta))

	loaded, err := reopened.GetResults(meta.Id)
	assert.NoError(t, err)
	utils.AssertTrue(t, cmp.Equal(original.Values(), loaded.Values()))

	// Fresh IDs continue past the persisted runs.
	next, err := reopened.Execute(context.Background(), r, 4)
	assert.NoError(t, err)
	assert.Equal(t, next.Id, meta.Id+1)
}
