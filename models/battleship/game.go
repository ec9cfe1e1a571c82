package battleship

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	cerr "github.com/saeidalz13/battleship-simulator/internal/error"
)

// Boards larger than this are logged as a list of ships instead of a grid.
const maxSnapshotSize = 64

type OperationKind uint8

const (
	OperationMove OperationKind = iota
	OperationShoot
)

func (k OperationKind) String() string {
	switch k {
	case OperationMove:
		return "move"
	case OperationShoot:
		return "shoot"
	default:
		return "unknown"
	}
}

// Operation is one parsed input line. Commands is only set for moves and
// Line is the 1-based line it came from (zero when built in code).
type Operation struct {
	Kind     OperationKind
	Target   Position
	Commands []MoveCommand
	Line     int
}

func NewMoveOperation(start Position, commands []MoveCommand) Operation {
	return Operation{Kind: OperationMove, Target: start, Commands: commands}
}

func NewShootOperation(target Position) Operation {
	return Operation{Kind: OperationShoot, Target: target}
}

func (op Operation) String() string {
	if op.Kind == OperationMove {
		return fmt.Sprintf("%s %s", op.Target, FormatMoveSequence(op.Commands))
	}
	return op.Target.String()
}

// Summary counts what happened while executing a list of operations.
type Summary struct {
	Applied        int
	Failed         int
	MovesCommitted int
	MovesIgnored   int
	Hits           int
	Misses         int
	ShotsIgnored   int
}

// Game runs one simulation: a single board fed operations in order.
type Game struct {
	uuid    string
	board   *Board
	summary Summary
	logger  zerolog.Logger
}

func NewGame(size int) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	gameUuid := uuid.NewString()[:6]
	logger := log.With().Str("game", gameUuid).Logger()
	board.logger = logger

	logger.Info().Int("size", size).Msgf("initialized board of size %dx%d", size, size)
	return &Game{
		uuid:   gameUuid,
		board:  board,
		logger: logger,
	}, nil
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Summary() Summary {
	return g.summary
}

// PlaceShips adds ships in order and stops at the first failure, since a
// simulation on a partially placed board is meaningless.
func (g *Game) PlaceShips(ships []*Ship) error {
	g.logger.Info().Int("count", len(ships)).Msg("placing initial ships")
	for _, ship := range ships {
		if err := g.board.AddShip(ship); err != nil {
			return fmt.Errorf("failed adding initial ship %s: %w", ship, err)
		}
	}
	return nil
}

// Execute applies a single operation. Only moves can fail.
func (g *Game) Execute(op Operation) error {
	switch op.Kind {
	case OperationMove:
		ship, prs := g.board.GetShipAt(op.Target)
		wasSunk := prs && ship.IsSunk()
		if err := g.board.ApplyMoveSequence(op.Target, op.Commands); err != nil {
			return err
		}
		if wasSunk {
			g.summary.MovesIgnored++
		} else {
			g.summary.MovesCommitted++
		}
		return nil

	case OperationShoot:
		switch g.board.ApplyShoot(op.Target) {
		case ShotHit:
			g.summary.Hits++
		case ShotMiss:
			g.summary.Misses++
		default:
			g.summary.ShotsIgnored++
		}
		return nil

	default:
		return cerr.ErrUnknownOperation(uint8(op.Kind))
	}
}

// ExecuteAll applies ops in order. A failing operation is logged and skipped;
// the board is left as it was before it and the run carries on.
func (g *Game) ExecuteAll(ops []Operation) Summary {
	g.logger.Info().Int("count", len(ops)).Msg("applying operations")
	for i, op := range ops {
		if err := g.Execute(op); err != nil {
			g.summary.Failed++
			g.logger.Warn().
				Err(err).
				Int("index", i+1).
				Int("line", op.Line).
				Stringer("kind", op.Kind).
				Stringer("operation", op).
				Msg("operation failed")
			continue
		}
		g.summary.Applied++
	}

	g.logBoard()
	return g.summary
}

func (g *Game) logBoard() {
	e := g.logger.Debug()
	if !e.Enabled() {
		return
	}
	if g.board.Size() > maxSnapshotSize {
		e.Strs("ships", g.board.GetFinalShipStates()).Msg("final board too large to draw")
		return
	}
	e.Msgf("final board:\n%s", g.board.Occupancy())
}

func (g *Game) FinalShipStates() []string {
	return g.board.GetFinalShipStates()
}
