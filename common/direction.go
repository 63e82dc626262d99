package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Direction is one of the eight headings a creature can face. The map is
// drawn diagonally, so Up points along +X+Y in world space.
type Direction uint8

const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

var directionNames = [...]string{"up", "up_right", "right", "down_right", "down", "down_left", "left", "up_left"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// Angle is the body rotation, in radians, of a creature facing d.
func (d Direction) Angle() float64 {
	switch d {
	case Up:
		return 45 * math.Pi / 180
	case UpRight:
		return math.Pi / 180
	case Right:
		return -45 * math.Pi / 180
	case DownRight:
		return -90 * math.Pi / 180
	case Down:
		return -135 * math.Pi / 180
	case DownLeft:
		return -180 * math.Pi / 180
	case Left:
		return 135 * math.Pi / 180
	case UpLeft:
		return 90 * math.Pi / 180
	}
	panic("common: unknown direction")
}

// Vector is the unnormalised world-space heading of d.
func (d Direction) Vector() cp.Vector {
	switch d {
	case Up:
		return cp.Vector{X: 1, Y: 1}
	case UpRight:
		return cp.Vector{X: 0, Y: 1}
	case Right:
		return cp.Vector{X: -1, Y: 1}
	case DownRight:
		return cp.Vector{X: -1, Y: 0}
	case Down:
		return cp.Vector{X: -1, Y: -1}
	case DownLeft:
		return cp.Vector{X: 0, Y: -1}
	case Left:
		return cp.Vector{X: 1, Y: -1}
	case UpLeft:
		return cp.Vector{X: 1, Y: 0}
	}
	panic("common: unknown direction")
}

// DirectionFromInput maps a screen-space stick (x right, y up, each in
// -1..1) onto a direction. It reports false when there is no input.
func DirectionFromInput(x, y int) (Direction, bool) {
	wx, wy := y-x, y+x
	return DirectionFromVector(wx, wy)
}

// DirectionFromVector maps a world-space step with components in -2..2
// onto a direction.
func DirectionFromVector(x, y int) (Direction, bool) {
	switch {
	case x == 0 && y > 0:
		return UpRight, true
	case x == 0 && y < 0:
		return DownLeft, true
	case x > 0 && y > 0:
		return Up, true
	case x > 0 && y < 0:
		return Left, true
	case x > 0:
		return UpLeft, true
	case x < 0 && y > 0:
		return Right, true
	case x < 0 && y < 0:
		return Down, true
	case x < 0:
		return DownRight, true
	}
	return Up, false
}
