package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avask/h2lab/internal/orbital"
	"github.com/avask/h2lab/internal/sweep"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st := New(t.TempDir())
	require.NoError(t, st.Init())
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSaveLoadField(t *testing.T) {
	st := newTestStore(t)

	xs := orbital.SymmetricRange(2.0, 20)
	ys := orbital.SymmetricRange(2.0, 15)
	field, err := orbital.Evaluate2D(1.24, 1.4, xs, ys, true)
	require.NoError(t, err)

	id, err := st.SaveField(1.24, 1.4, 2.0, true, xs, ys, field)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	meta, err := st.Load(id)
	require.NoError(t, err)
	assert.Equal(t, KindField, meta.Kind)
	assert.Equal(t, 1.24, meta.Alpha)
	assert.Equal(t, 1.4, meta.R)
	assert.True(t, meta.Normalized)
	assert.Greater(t, meta.Overlap, 0.0)

	gotXs, gotYs, gotField, err := st.LoadField(id)
	require.NoError(t, err)
	require.Len(t, gotXs, 20)
	require.Len(t, gotYs, 15)
	require.Equal(t, field.NX, gotField.NX)
	require.Equal(t, field.NY, gotField.NY)
	for i := range xs {
		assert.InDelta(t, xs[i], gotXs[i], 1e-6)
	}
	for k := range field.Values {
		assert.Equal(t, field.Values[k], gotField.Values[k])
	}
}

func TestSaveLoadSlice(t *testing.T) {
	st := newTestStore(t)

	xs := orbital.Linspace(-2, 2, 50)
	ds, err := orbital.Evaluate1D(1.24, 1.0, xs)
	require.NoError(t, err)

	id, err := st.SaveSlice(1.24, 1.0, 2.0, xs, ds)
	require.NoError(t, err)

	gotXs, gotDs, err := st.LoadSlice(id)
	require.NoError(t, err)
	require.Len(t, gotXs, 50)
	for i := range ds {
		assert.Equal(t, ds[i], gotDs[i])
	}
}

func TestSaveLoadSweep(t *testing.T) {
	st := newTestStore(t)

	cfg := sweep.DefaultConfig()
	cfg.Steps = 11
	points, err := sweep.Run(context.Background(), cfg)
	require.NoError(t, err)

	id, err := st.SaveSweep(cfg, points)
	require.NoError(t, err)

	got, err := st.LoadSweep(id)
	require.NoError(t, err)
	require.Len(t, got, 11)
	assert.Equal(t, 1.0, got[0].Overlap)
	for i := range points {
		assert.InDelta(t, points[i].R, got[i].R, 1e-6)
		assert.Equal(t, points[i].Overlap, got[i].Overlap)
	}
}

func TestListAndFilter(t *testing.T) {
	st := newTestStore(t)

	xs := orbital.Linspace(-2, 2, 10)
	for _, r := range []float64{0.5, 1.4, 2.5} {
		ds, err := orbital.Evaluate1D(1.24, r, xs)
		require.NoError(t, err)
		_, err = st.SaveSlice(1.24, r, 2.0, xs, ds)
		require.NoError(t, err)
	}

	runs, err := st.List()
	require.NoError(t, err)
	assert.Len(t, runs, 3)

	filtered, err := st.ListByR(1.0, 2.0)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, 1.4, filtered[0].R)
}

func TestSaveFieldRejectsInvalidParams(t *testing.T) {
	st := newTestStore(t)

	xs := orbital.Linspace(-2, 2, 10)
	field := orbital.NewField(10, 10)
	_, err := st.SaveField(-1, 1.4, 2.0, true, xs, xs, field)
	assert.ErrorIs(t, err, orbital.ErrInvalidAlpha)
}

func TestIndexPragmasApplied(t *testing.T) {
	st := newTestStore(t)

	var mode string
	require.NoError(t, st.idx.conn.Get(&mode, "PRAGMA journal_mode"))
	assert.Equal(t, "wal", mode)
}

func TestLoadMissingRun(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Load("field_nope")
	assert.Error(t, err)
}
