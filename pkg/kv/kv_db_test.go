package kv_test

import (
	"lintang/pathplanner/pkg/datastructure"
	"lintang/pathplanner/pkg/kv"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) *kv.KVDB {
	t.Helper()
	db, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	require.NoError(t, err)
	kvDB := kv.NewKVDB(db)
	t.Cleanup(kvDB.Close)
	return kvDB
}

func cell(lat, lon float64) datastructure.Cell {
	return datastructure.NewCell(datastructure.NewCoordinate(lat, lon))
}

func TestPlanKey(t *testing.T) {
	t.Run("blocked order and duplicates do not change the key", func(t *testing.T) {
		a := kv.PlanKey(cell(-7.55, 110.82), cell(-7.549, 110.82),
			[]datastructure.Cell{cell(-7.5495, 110.82), cell(-7.55, 110.821), cell(-7.55, 110.821)})
		b := kv.PlanKey(cell(-7.55, 110.82), cell(-7.549, 110.82),
			[]datastructure.Cell{cell(-7.55, 110.821), cell(-7.5495, 110.82)})
		assert.Equal(t, a, b)
	})

	t.Run("different goal gives a different key", func(t *testing.T) {
		a := kv.PlanKey(cell(-7.55, 110.82), cell(-7.549, 110.82), nil)
		b := kv.PlanKey(cell(-7.55, 110.82), cell(-7.548, 110.82), nil)
		assert.NotEqual(t, a, b)
	})
}

func TestSaveAndGetPlan(t *testing.T) {
	kvDB := newTestKV(t)
	start, goal := datastructure.NewCoordinate(-7.55, 110.82), datastructure.NewCoordinate(-7.55, 110.822)
	key := kv.PlanKey(datastructure.NewCell(start), datastructure.NewCell(goal), nil)

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := kvDB.GetPlan(key)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("stored plan round trips", func(t *testing.T) {
		plan := kv.CachedPlan{
			Start:    start,
			Goal:     goal,
			Path:     []datastructure.Coordinate{start, datastructure.NewCoordinate(-7.55, 110.821), goal},
			Expanded: 7,
			Found:    true,
		}
		require.NoError(t, kvDB.SavePlan(key, plan))

		got, ok, err := kvDB.GetPlan(key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, plan, got)
	})

	t.Run("plans near the start location", func(t *testing.T) {
		plans, err := kvDB.GetPlansNear(-7.55, 110.82)
		require.NoError(t, err)
		require.Len(t, plans, 1)
		assert.Equal(t, goal, plans[0].Goal)

		far, err := kvDB.GetPlansNear(-6.2, 106.8)
		require.NoError(t, err)
		assert.Empty(t, far)
	})
}

func TestCompressPlan(t *testing.T) {
	plan := kv.CachedPlan{Start: datastructure.NewCoordinate(1, 2), Goal: datastructure.NewCoordinate(1, 2),
		Path: []datastructure.Coordinate{{Lat: 1, Lon: 2}}, Found: true}
	bb, err := kv.CompressPlan(plan)
	require.NoError(t, err)
	got, err := kv.LoadPlan(bb)
	require.NoError(t, err)
	assert.Equal(t, plan, got)
}
