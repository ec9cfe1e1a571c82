package error

import (
	"errors"
	"fmt"
)

// Error kinds. Every error built in this package wraps exactly one of them,
// so callers classify with errors.Is.
var (
	ErrConfig    = errors.New("config error")
	ErrParse     = errors.New("parse error")
	ErrPlacement = errors.New("placement error")
	ErrMove      = errors.New("move error")
)

func ErrInvalidBoardSize(size int) error {
	return fmt.Errorf("%w: board size must be a positive integer, got %d", ErrConfig, size)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("%w: stage must be either dev or prod, got %q", ErrConfig, stage)
}

func ErrShipOutOfBounds(x, y, size int) error {
	return fmt.Errorf("%w: position (%d, %d) is out of bounds (board size: %dx%d)", ErrPlacement, x, y, size, size)
}

func ErrPositionOccupied(x, y int, occupant fmt.Stringer) error {
	return fmt.Errorf("%w: position (%d, %d) is already occupied by %s", ErrPlacement, x, y, occupant)
}

func ErrNoShipAtPosition(x, y int) error {
	return fmt.Errorf("%w: no ship at position (%d, %d)", ErrMove, x, y)
}

func ErrMoveOutOfBounds(x, y, size, step int) error {
	return fmt.Errorf("%w: target (%d, %d) out of bounds (board size: %dx%d) on step %d", ErrMove, x, y, size, size, step)
}

func ErrMoveCollision(x, y int, occupant fmt.Stringer) error {
	return fmt.Errorf("%w: collision at (%d, %d) with %s", ErrMove, x, y, occupant)
}

func ErrInvalidMoveCommand(c rune, sequence string) error {
	return fmt.Errorf("%w: invalid character '%c' in move sequence %q", ErrParse, c, sequence)
}

func ErrUnknownOperation(kind uint8) error {
	return fmt.Errorf("unknown operation kind: %d", kind)
}

// ParseErr reports a malformed input line. Line is 1-based; zero means the
// error is not tied to a particular line.
type ParseErr struct {
	line int
	desc string
}

func NewParseErr(line int) ParseErr {
	return ParseErr{line: line}
}

func (p ParseErr) AddDesc(desc string) ParseErr {
	p.desc = desc
	return p
}

func (p ParseErr) Line() int {
	return p.line
}

func (p ParseErr) Error() string {
	if p.line == 0 {
		return fmt.Sprintf("%s: %s", ErrParse, p.desc)
	}
	return fmt.Sprintf("%s on line %d: %s", ErrParse, p.line, p.desc)
}

func (p ParseErr) Unwrap() error {
	return ErrParse
}
