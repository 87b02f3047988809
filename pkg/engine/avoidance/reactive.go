// Package avoidance reactive obstacle avoidance sederhana: kalau obstacle ada di grid ~5m sekitar posisi,
// sidestep 10 derajat. Belum pakai potential field / VFH.
package avoidance

import (
	"lintang/pathplanner/pkg/datastructure"
	"lintang/pathplanner/pkg/util"
)

const (
	// ObstacleRadius setengah lebar kotak deteksi (derajat), kira-kira 5 m di grid lattice.
	ObstacleRadius = 5e-4
	SidestepAngle  = 10.0
)

type Command string

const (
	CommandHold     Command = "hold"
	CommandSidestep Command = "sidestep"
)

type Maneuver struct {
	NewHeading float64
	Command    Command
}

func Avoid(position, obstacle datastructure.Coordinate, heading float64) Maneuver {
	if util.Abs(position.Lat-obstacle.Lat) < ObstacleRadius && util.Abs(position.Lon-obstacle.Lon) < ObstacleRadius {
		return Maneuver{
			NewHeading: util.FloorMod(heading+SidestepAngle, 360.0),
			Command:    CommandSidestep,
		}
	}
	return Maneuver{NewHeading: heading, Command: CommandHold}
}
