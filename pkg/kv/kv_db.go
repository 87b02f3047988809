package kv

import (
	"errors"
	"fmt"
	"lintang/pathplanner/pkg/datastructure"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/pebble"
	"github.com/uber/h3-go/v4"
)

// resolusi h3 buat prefix key, cell res 9 luasnya ~0.1 km2
const h3Resolution = 9

type KVDB struct {
	db *pebble.DB
}

func NewKVDB(db *pebble.DB) *KVDB {
	return &KVDB{db}
}

func h3CellOf(c datastructure.Coordinate) h3.Cell {
	return h3.LatLngToCell(h3.NewLatLng(c.Lat, c.Lon), h3Resolution)
}

// PlanKey key pebble untuk satu query plan: "<h3 cell start>/<xxhash(start, goal, blocked)>".
// blocked diurutkan dulu jadi urutan input tidak mempengaruhi key.
func PlanKey(start, goal datastructure.Cell, blocked []datastructure.Cell) []byte {
	sorted := slices.Clone(blocked)
	slices.SortFunc(sorted, func(a, b datastructure.Cell) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	sorted = slices.Compact(sorted)

	h := xxhash.New()
	buf := make([]byte, 0, 64)
	for _, c := range append([]datastructure.Cell{start, goal}, sorted...) {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, c.Lat, 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, c.Lon, 10)
		buf = append(buf, ';')
		h.Write(buf)
	}

	return []byte(fmt.Sprintf("%s/%016x", h3CellOf(start.Coordinate()).String(), h.Sum64()))
}

// GetPlan ok false kalau key belum ada.
func (k *KVDB) GetPlan(key []byte) (CachedPlan, bool, error) {
	val, closer, err := k.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return CachedPlan{}, false, nil
	}
	if err != nil {
		return CachedPlan{}, false, err
	}
	defer closer.Close()

	plan, err := LoadPlan(val)
	if err != nil {
		return CachedPlan{}, false, err
	}
	return plan, true, nil
}

func (k *KVDB) SavePlan(key []byte, plan CachedPlan) error {
	val, err := CompressPlan(plan)
	if err != nil {
		return err
	}
	return k.db.Set(key, val, pebble.Sync)
}

// GetPlansNear semua plan tersimpan yang start-nya ada di h3 cell dari (lat, lon) atau tetangga langsungnya.
func (k *KVDB) GetPlansNear(lat, lon float64) ([]CachedPlan, error) {
	origin := h3CellOf(datastructure.NewCoordinate(lat, lon))

	plans := []CachedPlan{}
	for _, cell := range h3.GridDisk(origin, 1) {
		prefix := []byte(cell.String() + "/")
		cellPlans, err := k.scanPrefix(prefix)
		if err != nil {
			return []CachedPlan{}, err
		}
		plans = append(plans, cellPlans...)
	}
	return plans, nil
}

func (k *KVDB) scanPrefix(prefix []byte) ([]CachedPlan, error) {
	upper := slices.Clone(prefix)
	upper[len(upper)-1]++

	iter, err := k.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: upper,
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	plans := []CachedPlan{}
	for iter.First(); iter.Valid(); iter.Next() {
		plan, err := LoadPlan(iter.Value())
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, iter.Error()
}

func (k *KVDB) Close() {
	k.db.Close()
}
