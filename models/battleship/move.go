package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-simulator/internal/error"
)

// MoveCommand is a single step of a move sequence.
type MoveCommand byte

const (
	CommandLeft    MoveCommand = 'L'
	CommandRight   MoveCommand = 'R'
	CommandForward MoveCommand = 'M'
)

func (c MoveCommand) String() string {
	return string(c)
}

// ParseMoveSequence converts a string over {L, R, M} (any case) into commands.
func ParseMoveSequence(sequence string) ([]MoveCommand, error) {
	commands := make([]MoveCommand, 0, len(sequence))
	for _, c := range strings.ToUpper(sequence) {
		switch c {
		case rune(CommandLeft), rune(CommandRight), rune(CommandForward):
			commands = append(commands, MoveCommand(c))
		default:
			return nil, cerr.ErrInvalidMoveCommand(c, sequence)
		}
	}
	return commands, nil
}

// FormatMoveSequence is the inverse of ParseMoveSequence.
func FormatMoveSequence(commands []MoveCommand) string {
	var sb strings.Builder
	sb.Grow(len(commands))
	for _, c := range commands {
		sb.WriteByte(byte(c))
	}
	return sb.String()
}

// SimulateMoves walks commands on a detached (position, orientation) pair on
// a board of the given size and returns where it ends up. The first forward
// step leaving the board aborts the walk with a move error naming that
// 1-based step, and the untouched start is returned with it.
func SimulateMoves(start Position, startOrientation Orientation, commands []MoveCommand, size int) (Position, Orientation, error) {
	position, orientation := start, startOrientation
	for i, command := range commands {
		switch command {
		case CommandLeft:
			orientation = orientation.RotateLeft()
		case CommandRight:
			orientation = orientation.RotateRight()
		case CommandForward:
			next := position.Move(orientation)
			if !withinBounds(next, size) {
				return start, startOrientation, cerr.ErrMoveOutOfBounds(next.X, next.Y, size, i+1)
			}
			position = next
		default:
			return start, startOrientation, cerr.ErrInvalidMoveCommand(rune(command), FormatMoveSequence(commands))
		}
	}
	return position, orientation, nil
}

func withinBounds(p Position, size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}
