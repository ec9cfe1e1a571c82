// Package parser reads the simulation input format:
//
//	line 1:  board size
//	line 2:  initial ships, "(x, y, O)" separated by whitespace (may be empty)
//	line 3+: operations, "(x, y)" to shoot or "(x, y) LRM..." to move
//
// Blank operation lines are skipped; anything else that does not match is a
// parse error carrying the 1-based line number.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-simulator/internal/error"
	mb "github.com/saeidalz13/battleship-simulator/models/battleship"
)

const (
	lineBoardSize = 1
	lineShips     = 2
)

var (
	shipRegex  = regexp.MustCompile(`\(\s*(\d+)\s*,\s*(\d+)\s*,\s*([NESWnesw])\s*\)`)
	shootRegex = regexp.MustCompile(`^\(\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	moveRegex  = regexp.MustCompile(`^\(\s*(\d+)\s*,\s*(\d+)\s*\)\s*([LRMlrm]+)$`)
)

// Setup is everything a simulation needs to start.
type Setup struct {
	Size       int
	Ships      []*mb.Ship
	Operations []mb.Operation
}

func Parse(r io.Reader) (*Setup, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if len(lines) == 0 {
		return nil, cerr.NewParseErr(0).AddDesc("input file is empty")
	}

	size, err := ParseBoardSize(lines[0])
	if err != nil {
		return nil, err
	}

	if len(lines) < lineShips {
		return nil, cerr.NewParseErr(lineShips).AddDesc("input file must contain at least board size and initial ships line")
	}

	ships, err := ParseShips(lines[1])
	if err != nil {
		return nil, err
	}

	operations := make([]mb.Operation, 0, len(lines)-lineShips)
	for i, line := range lines[lineShips:] {
		lineNum := i + lineShips + 1
		if strings.TrimSpace(line) == "" {
			continue
		}

		op, err := ParseOperation(line)
		if err != nil {
			return nil, cerr.NewParseErr(lineNum).AddDesc(err.Error())
		}
		op.Line = lineNum
		operations = append(operations, op)
	}

	return &Setup{
		Size:       size,
		Ships:      ships,
		Operations: operations,
	}, nil
}

// ParseBoardSize reads line 1. A non-integer is a parse error, a
// non-positive integer a config error.
func ParseBoardSize(line string) (int, error) {
	trimmed := strings.TrimSpace(line)
	size, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, cerr.NewParseErr(lineBoardSize).AddDesc(fmt.Sprintf("invalid board size %q, expected an integer", trimmed))
	}
	if size <= 0 {
		return 0, cerr.ErrInvalidBoardSize(size)
	}
	return size, nil
}

// ParseShips reads line 2. Only whitespace may appear between and around
// ship descriptors.
func ParseShips(line string) ([]*mb.Ship, error) {
	ships := make([]*mb.Ship, 0)
	line = strings.TrimSpace(line)
	if line == "" {
		return ships, nil
	}

	lastEnd := 0
	for _, match := range shipRegex.FindAllStringSubmatchIndex(line, -1) {
		if stray := strings.TrimSpace(line[lastEnd:match[0]]); stray != "" {
			return nil, cerr.NewParseErr(lineShips).AddDesc(fmt.Sprintf("invalid characters in initial ships line near %q", stray))
		}

		x, y, err := parseCoords(line[match[2]:match[3]], line[match[4]:match[5]])
		if err != nil {
			return nil, cerr.NewParseErr(lineShips).AddDesc(err.Error())
		}
		orientation, _ := mb.ParseOrientation(line[match[6]:match[7]])

		ships = append(ships, mb.NewShip(mb.NewPosition(x, y), orientation))
		lastEnd = match[1]
	}

	if trailing := strings.TrimSpace(line[lastEnd:]); trailing != "" {
		return nil, cerr.NewParseErr(lineShips).AddDesc(fmt.Sprintf("invalid trailing characters in initial ships line: %q", trailing))
	}

	return ships, nil
}

// ParseOperation reads a single non-blank operation line. The returned
// operation has no line number set.
func ParseOperation(line string) (mb.Operation, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return mb.Operation{}, fmt.Errorf("operation line is empty")
	}

	if groups := moveRegex.FindStringSubmatch(line); groups != nil {
		x, y, err := parseCoords(groups[1], groups[2])
		if err != nil {
			return mb.Operation{}, err
		}
		commands, err := mb.ParseMoveSequence(groups[3])
		if err != nil {
			return mb.Operation{}, err
		}
		return mb.NewMoveOperation(mb.NewPosition(x, y), commands), nil
	}

	if groups := shootRegex.FindStringSubmatch(line); groups != nil {
		x, y, err := parseCoords(groups[1], groups[2])
		if err != nil {
			return mb.Operation{}, err
		}
		return mb.NewShootOperation(mb.NewPosition(x, y)), nil
	}

	return mb.Operation{}, fmt.Errorf("invalid operation format %q, expected '(x, y)' or '(x, y) LRM...'", line)
}

// readLines splits r on '\n' with no limit on line length. A trailing '\r'
// is dropped and a final empty line is not reported.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err != nil {
			return lines, nil
		}
	}
}

func parseCoords(xs, ys string) (int, int, error) {
	x, err := parseCoord(xs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x coordinate %q", xs)
	}
	y, err := parseCoord(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y coordinate %q", ys)
	}
	return x, y, nil
}

// parseCoord reads a digit string. Values too large for an int saturate to
// math.MaxInt, which is off every board.
func parseCoord(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) && n == math.MaxInt {
		return n, nil
	}
	return n, err
}
