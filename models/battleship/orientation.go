package battleship

import "strings"

// Orientation is the compass heading of a ship.
type Orientation uint8

const (
	OrientationNorth Orientation = iota
	OrientationEast
	OrientationSouth
	OrientationWest
)

const orientationCount = 4

// Orientations lists every heading in clockwise order starting at north.
func Orientations() []Orientation {
	return []Orientation{OrientationNorth, OrientationEast, OrientationSouth, OrientationWest}
}

// ParseOrientation accepts N, E, S or W in either case.
func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToUpper(s) {
	case "N":
		return OrientationNorth, true
	case "E":
		return OrientationEast, true
	case "S":
		return OrientationSouth, true
	case "W":
		return OrientationWest, true
	}
	return 0, false
}

func (o Orientation) IsValid() bool {
	return o < orientationCount
}

// RotateLeft turns 90 degrees counter-clockwise: N -> W -> S -> E -> N.
func (o Orientation) RotateLeft() Orientation {
	return (o + orientationCount - 1) % orientationCount
}

// RotateRight turns 90 degrees clockwise: N -> E -> S -> W -> N.
func (o Orientation) RotateRight() Orientation {
	return (o + 1) % orientationCount
}

// ToVector returns the (dx, dy) of one step in this heading. North is +y.
func (o Orientation) ToVector() (int, int) {
	switch o {
	case OrientationNorth:
		return 0, 1
	case OrientationEast:
		return 1, 0
	case OrientationSouth:
		return 0, -1
	case OrientationWest:
		return -1, 0
	default:
		return 0, 0
	}
}

func (o Orientation) String() string {
	switch o {
	case OrientationNorth:
		return "N"
	case OrientationEast:
		return "E"
	case OrientationSouth:
		return "S"
	case OrientationWest:
		return "W"
	default:
		return "?"
	}
}
