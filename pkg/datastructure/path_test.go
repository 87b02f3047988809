package datastructure_test

import (
	"lintang/pathplanner/pkg/datastructure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twpayne/go-polyline"
)

func TestRenderPath(t *testing.T) {
	path := []datastructure.Coordinate{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 0.001}, {Lat: 0.001, Lon: 0.001}}
	s := datastructure.RenderPath(path)

	coords, _, err := polyline.DecodeCoords([]byte(s))
	assert.NoError(t, err)
	assert.Len(t, coords, 3)
	assert.InDelta(t, 0.001, coords[2][0], 1e-5)
	assert.InDelta(t, 0.001, coords[2][1], 1e-5)
}
