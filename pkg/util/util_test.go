package util_test

import (
	"lintang/pathplanner/pkg/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundFloat(t *testing.T) {
	t.Run("round to six digits", func(t *testing.T) {
		assert.Equal(t, 0.001235, util.RoundFloat(0.0012345678, 6))
		assert.Equal(t, -7.550248, util.RoundFloat(-7.5502481, 6))
	})
}

func TestFloorMod(t *testing.T) {
	t.Run("positive and negative dividend", func(t *testing.T) {
		assert.Equal(t, 10.0, util.FloorMod(370, 360))
		assert.Equal(t, 350.0, util.FloorMod(-10, 360))
		assert.Equal(t, 0.0, util.FloorMod(360, 360))
	})
}

func TestAbs(t *testing.T) {
	assert.Equal(t, int64(3000), util.Abs(int64(-3000)))
	assert.Equal(t, 0.5, util.Abs(-0.5))
}

func TestReverseG(t *testing.T) {
	arr := []int{1, 2, 3, 4}
	util.ReverseG(arr)
	assert.Equal(t, []int{4, 3, 2, 1}, arr)
}
