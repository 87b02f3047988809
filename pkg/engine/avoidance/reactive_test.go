package avoidance_test

import (
	"lintang/pathplanner/pkg/datastructure"
	"lintang/pathplanner/pkg/engine/avoidance"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvoid(t *testing.T) {
	pos := datastructure.NewCoordinate(-7.55, 110.82)

	t.Run("obstacle far away keeps heading", func(t *testing.T) {
		m := avoidance.Avoid(pos, datastructure.NewCoordinate(-7.55, 110.821), 45)
		assert.Equal(t, avoidance.CommandHold, m.Command)
		assert.Equal(t, 45.0, m.NewHeading)
	})

	t.Run("obstacle nearby sidesteps", func(t *testing.T) {
		m := avoidance.Avoid(pos, datastructure.NewCoordinate(-7.5502, 110.8201), 45)
		assert.Equal(t, avoidance.CommandSidestep, m.Command)
		assert.Equal(t, 55.0, m.NewHeading)
	})

	t.Run("heading wraps around 360", func(t *testing.T) {
		m := avoidance.Avoid(pos, pos, 355)
		assert.Equal(t, avoidance.CommandSidestep, m.Command)
		assert.Equal(t, 5.0, m.NewHeading)
	})

	t.Run("negative heading normalised", func(t *testing.T) {
		m := avoidance.Avoid(pos, pos, -30)
		assert.Equal(t, 340.0, m.NewHeading)
	})

	t.Run("only one axis close is not enough", func(t *testing.T) {
		m := avoidance.Avoid(pos, datastructure.NewCoordinate(-7.55, 110.8206), 0)
		assert.Equal(t, avoidance.CommandHold, m.Command)
	})
}
