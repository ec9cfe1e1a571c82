package battleship

import (
	"fmt"
	"strings"
)

const (
	PositionStateEmpty uint8 = iota
	PositionStateShip
	PositionStateSunk
)

// Position is a cell on the board. It is comparable and used as a map key.
type Position struct {
	X int
	Y int
}

func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// Move returns the neighbouring cell one step towards o.
// Any integer position is valid here; bounds belong to the board.
func (p Position) Move(o Orientation) Position {
	dx, dy := o.ToVector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Grid is an occupancy snapshot indexed as grid[x][y].
type Grid [][]uint8

// Creates a new default grid
// All indexes are zero/PositionStateEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]uint8, gridSize)
	}
	return grid
}

// String draws the grid with y growing upwards, one row per line.
// '.' is empty water, 'O' a ship afloat and 'X' a sunk ship.
func (g Grid) String() string {
	size := len(g)
	var sb strings.Builder
	for y := size - 1; y >= 0; y-- {
		for x := 0; x < size; x++ {
			switch g[x][y] {
			case PositionStateShip:
				sb.WriteByte('O')
			case PositionStateSunk:
				sb.WriteByte('X')
			default:
				sb.WriteByte('.')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
