package datastructure_test

import (
	"lintang/pathplanner/pkg/datastructure"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCell(t *testing.T) {
	t.Run("coordinates rounding to the same six digits are the same cell", func(t *testing.T) {
		a := datastructure.NewCell(datastructure.NewCoordinate(-7.5502481, 110.8243449))
		b := datastructure.NewCell(datastructure.NewCoordinate(-7.5502479, 110.8243451))
		assert.Equal(t, a, b)
		assert.Equal(t, datastructure.Cell{Lat: -7550248, Lon: 110824345}, a)
	})

	t.Run("round trip back to coordinate", func(t *testing.T) {
		c := datastructure.NewCell(datastructure.NewCoordinate(0.0, 0.002))
		assert.Equal(t, datastructure.NewCoordinate(0.0, 0.002), c.Coordinate())
	})

	t.Run("lexicographic order", func(t *testing.T) {
		a := datastructure.Cell{Lat: 0, Lon: 1000}
		b := datastructure.Cell{Lat: 1000, Lon: 0}
		c := datastructure.Cell{Lat: 0, Lon: 2000}
		assert.True(t, a.Less(b))
		assert.True(t, a.Less(c))
		assert.False(t, b.Less(c))
		assert.False(t, a.Less(a))
	})
}

func TestNewCellChecked(t *testing.T) {
	tests := []struct {
		name   string
		coord  datastructure.Coordinate
		wantOk bool
	}{
		{name: "regular coordinate", coord: datastructure.NewCoordinate(-7.55, 110.82), wantOk: true},
		{name: "at the limit", coord: datastructure.NewCoordinate(datastructure.MaxCellDegrees, -datastructure.MaxCellDegrees), wantOk: true},
		{name: "lat overflows int64", coord: datastructure.NewCoordinate(1e300, 0), wantOk: false},
		{name: "lon just past the limit", coord: datastructure.NewCoordinate(0, -5e12), wantOk: false},
		{name: "NaN", coord: datastructure.NewCoordinate(math.NaN(), 0), wantOk: false},
		{name: "infinity", coord: datastructure.NewCoordinate(0, math.Inf(1)), wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell, ok := datastructure.NewCellChecked(tt.coord)
			assert.Equal(t, tt.wantOk, ok)
			if ok {
				assert.Equal(t, datastructure.NewCell(tt.coord), cell)
			}
		})
	}

	t.Run("distinct huge coordinates are not collapsed into one cell", func(t *testing.T) {
		_, okA := datastructure.NewCellChecked(datastructure.NewCoordinate(1e300, 0))
		_, okB := datastructure.NewCellChecked(datastructure.NewCoordinate(2e300, 0))
		assert.False(t, okA)
		assert.False(t, okB)
	})
}
