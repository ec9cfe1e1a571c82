package battleship

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	cerr "github.com/saeidalz13/battleship-simulator/internal/error"
)

// ShotResult is the outcome of a shoot operation. None of them is an error.
type ShotResult uint8

const (
	ShotOutOfBounds ShotResult = iota
	ShotMiss
	ShotHit
	ShotAlreadySunk
)

func (r ShotResult) String() string {
	switch r {
	case ShotOutOfBounds:
		return "out of bounds"
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	case ShotAlreadySunk:
		return "already sunk"
	default:
		return "unknown"
	}
}

// Board is a square grid holding at most one ship per cell. ships and each
// ship's Position agree after every committed mutation.
type Board struct {
	size           int
	ships          map[Position]*Ship
	placementOrder []*Ship
	logger         zerolog.Logger
}

func NewBoard(size int) (*Board, error) {
	if size <= 0 {
		return nil, cerr.ErrInvalidBoardSize(size)
	}

	return &Board{
		size:           size,
		ships:          make(map[Position]*Ship),
		placementOrder: make([]*Ship, 0),
		logger:         log.Logger,
	}, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) IsWithinBounds(position Position) bool {
	return withinBounds(position, b.size)
}

// AddShip registers ship at its current position. The ship is not modified.
func (b *Board) AddShip(ship *Ship) error {
	pos := ship.Position
	if !b.IsWithinBounds(pos) {
		err := cerr.ErrShipOutOfBounds(pos.X, pos.Y, b.size)
		b.logger.Error().Err(err).Stringer("ship", ship).Msg("failed to add ship")
		return err
	}
	if occupant, prs := b.ships[pos]; prs {
		err := cerr.ErrPositionOccupied(pos.X, pos.Y, occupant)
		b.logger.Error().Err(err).Stringer("ship", ship).Msg("failed to add ship")
		return err
	}

	b.ships[pos] = ship
	b.placementOrder = append(b.placementOrder, ship)
	b.logger.Info().Stringer("ship", ship).Msg("ship placed")
	return nil
}

func (b *Board) GetShipAt(position Position) (*Ship, bool) {
	ship, prs := b.ships[position]
	return ship, prs
}

// ApplyMoveSequence moves the ship found at start through commands. The
// sequence is simulated first and committed only if every forward step stays
// on the board and the final cell is free or the ship's own. Cells crossed on
// the way never block. A sunk ship ignores the call.
func (b *Board) ApplyMoveSequence(start Position, commands []MoveCommand) error {
	sequence := FormatMoveSequence(commands)

	ship, prs := b.ships[start]
	if !prs {
		err := cerr.ErrNoShipAtPosition(start.X, start.Y)
		b.logger.Warn().Err(err).Str("sequence", sequence).Msg("move failed")
		return err
	}

	if ship.IsSunk() {
		b.logger.Warn().Stringer("ship", ship).Msg("move ignored: ship is already sunk")
		return nil
	}

	b.logger.Debug().Stringer("ship", ship).Str("sequence", sequence).Msg("simulating move")
	finalPos, finalOrientation, err := SimulateMoves(ship.Position, ship.Orientation, commands, b.size)
	if err != nil {
		b.logger.Warn().Err(err).Stringer("ship", ship).Str("sequence", sequence).Msg("move failed")
		return err
	}

	if finalPos != start {
		if occupant, prs := b.ships[finalPos]; prs && occupant != ship {
			err := cerr.ErrMoveCollision(finalPos.X, finalPos.Y, occupant)
			b.logger.Warn().Err(err).Stringer("ship", ship).Str("sequence", sequence).Msg("move failed")
			return err
		}
	}

	before := ship.String()
	ship.Position = finalPos
	ship.Orientation = finalOrientation

	if finalPos != start {
		if b.ships[start] == ship {
			delete(b.ships, start)
		}
		b.ships[finalPos] = ship
	}

	b.logger.Info().Str("from", before).Stringer("to", ship).Msg("move committed")
	return nil
}

// ApplyShoot fires at target. Shots off the board and repeated hits are
// harmless and reported through the result only.
func (b *Board) ApplyShoot(target Position) ShotResult {
	if !b.IsWithinBounds(target) {
		b.logger.Warn().Stringer("target", target).Msg("shoot ignored: target is out of bounds")
		return ShotOutOfBounds
	}

	ship, prs := b.ships[target]
	if !prs {
		b.logger.Info().Stringer("target", target).Msg("shoot: miss")
		return ShotMiss
	}

	if ship.IsSunk() {
		b.logger.Info().Stringer("target", target).Stringer("ship", ship).Msg("shoot: ship already sunk")
		return ShotAlreadySunk
	}

	ship.Sink()
	b.logger.Info().Stringer("target", target).Stringer("ship", ship).Msg("shoot: hit")
	return ShotHit
}

// Ships returns the ships in placement order.
func (b *Board) Ships() []*Ship {
	ships := make([]*Ship, len(b.placementOrder))
	copy(ships, b.placementOrder)
	return ships
}

// GetFinalShipStates renders every ship in placement order, wherever it is.
func (b *Board) GetFinalShipStates() []string {
	states := make([]string, 0, len(b.placementOrder))
	for _, ship := range b.placementOrder {
		states = append(states, ship.String())
	}
	return states
}

func (b *Board) Occupancy() Grid {
	grid := NewGrid(b.size)
	for pos, ship := range b.ships {
		if ship.IsSunk() {
			grid[pos.X][pos.Y] = PositionStateSunk
			continue
		}
		grid[pos.X][pos.Y] = PositionStateShip
	}
	return grid
}
