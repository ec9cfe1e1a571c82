package battleship

import "fmt"

// Ship is owned by the board through a pointer; the same value is looked up,
// mutated and re-indexed, so it must never be copied once placed.
type Ship struct {
	Position    Position
	Orientation Orientation
	sunk        bool
}

func NewShip(position Position, orientation Orientation) *Ship {
	return &Ship{
		Position:    position,
		Orientation: orientation,
		sunk:        false,
	}
}

func (sh *Ship) RotateLeft() {
	sh.Orientation = sh.Orientation.RotateLeft()
}

func (sh *Ship) RotateRight() {
	sh.Orientation = sh.Orientation.RotateRight()
}

func (sh *Ship) MoveForward() {
	sh.Position = sh.Position.Move(sh.Orientation)
}

func (sh *Ship) Sink() {
	sh.sunk = true
}

func (sh *Ship) IsSunk() bool {
	return sh.sunk
}

// String renders "(x, y, O)" with a " SUNK" suffix once sunk.
func (sh *Ship) String() string {
	state := fmt.Sprintf("(%d, %d, %s)", sh.Position.X, sh.Position.Y, sh.Orientation)
	if sh.sunk {
		return state + " SUNK"
	}
	return state
}
