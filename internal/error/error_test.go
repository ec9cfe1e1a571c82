package error

import (
	"errors"
	"strings"
	"testing"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     error
		contains string
	}{
		{
			name:     "invalid board size",
			err:      ErrInvalidBoardSize(0),
			kind:     ErrConfig,
			contains: "got 0",
		},
		{
			name:     "invalid stage",
			err:      ErrInvalidStage("staging"),
			kind:     ErrConfig,
			contains: `"staging"`,
		},
		{
			name:     "ship out of bounds",
			err:      ErrShipOutOfBounds(5, 0, 5),
			kind:     ErrPlacement,
			contains: "(5, 0) is out of bounds",
		},
		{
			name:     "position occupied",
			err:      ErrPositionOccupied(1, 1, stringer("(1, 1, N)")),
			kind:     ErrPlacement,
			contains: "already occupied by (1, 1, N)",
		},
		{
			name:     "no ship",
			err:      ErrNoShipAtPosition(3, 4),
			kind:     ErrMove,
			contains: "no ship at position (3, 4)",
		},
		{
			name:     "move out of bounds",
			err:      ErrMoveOutOfBounds(0, 10, 10, 3),
			kind:     ErrMove,
			contains: "on step 3",
		},
		{
			name:     "collision",
			err:      ErrMoveCollision(2, 2, stringer("(2, 2, E)")),
			kind:     ErrMove,
			contains: "collision at (2, 2) with (2, 2, E)",
		},
		{
			name:     "invalid move command",
			err:      ErrInvalidMoveCommand('X', "MXM"),
			kind:     ErrParse,
			contains: "'X'",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if !errors.Is(test.err, test.kind) {
				t.Fatalf("expected kind: %v\t got: %v", test.kind, test.err)
			}
			if !strings.Contains(test.err.Error(), test.contains) {
				t.Fatalf("expected message to contain: %q\t got: %q", test.contains, test.err.Error())
			}
		})
	}
}

func TestParseErr(t *testing.T) {
	err := NewParseErr(7).AddDesc("invalid operation format")

	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected parse error kind\t got: %v", err)
	}

	var parseErr ParseErr
	if !errors.As(err, &parseErr) {
		t.Fatal("expected errors.As to match ParseErr")
	}
	if parseErr.Line() != 7 {
		t.Fatalf("expected line: %d\t got: %d", 7, parseErr.Line())
	}

	expected := "parse error on line 7: invalid operation format"
	if err.Error() != expected {
		t.Fatalf("expected: %q\t got: %q", expected, err.Error())
	}

	noLine := NewParseErr(0).AddDesc("input file is empty")
	if noLine.Error() != "parse error: input file is empty" {
		t.Fatalf("unexpected message: %q", noLine.Error())
	}
}
