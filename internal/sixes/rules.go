package sixes

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/sixes-backend/internal/apperror"
	"github.com/rocketscienceinc/sixes-backend/internal/entity"
)

var (
	ErrPlayedLastTurn  = errors.New("location was played last turn")
	ErrOwnCell         = errors.New("cell is already yours")
	ErrKingCell        = errors.New("cell holds a king")
	ErrNotEnoughStones = errors.New("not enough stones to outbid the stack")
	ErrNoKing          = errors.New("king already played")
	ErrEmptyCell       = errors.New("king needs an occupied cell")
	ErrCenterCell      = errors.New("center cell cannot be taken by a king")
)

// validateMove - checks a move against the current turn without touching the game.
func (that *Game) validateMove(location entity.Location, kind entity.MoveKind) error {
	if err := that.state.ConfirmRunning(); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	if !location.IsValid() {
		return fmt.Errorf("%w: %w: %s", apperror.ErrInvalidMove, entity.ErrUnknownLocation, location)
	}

	if location == that.lastPlayed {
		return fmt.Errorf("%w: %s: %w", apperror.ErrInvalidMove, location, ErrPlayedLastTurn)
	}

	var err error
	switch kind {
	case entity.Stones:
		err = that.checkStones(location)
	case entity.King:
		err = that.checkKing(location)
	default:
		err = fmt.Errorf("%w: %s", entity.ErrUnknownMoveKind, kind)
	}

	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", apperror.ErrInvalidMove, kind, location, err)
	}

	return nil
}

func (that *Game) checkStones(location entity.Location) error {
	cell := that.board.Cell(location)

	switch {
	case cell.IsOwnedBy(that.turn):
		return ErrOwnCell
	case cell.King:
		return ErrKingCell
	case that.player(that.turn).Stones+stonesBonus(cell) < stonesCost(cell):
		return ErrNotEnoughStones
	}

	return nil
}

func (that *Game) checkKing(location entity.Location) error {
	cell := that.board.Cell(location)

	switch {
	case cell.IsEmpty():
		return ErrEmptyCell
	case cell.IsOwnedBy(that.turn):
		return ErrOwnCell
	case !that.player(that.turn).HasKing:
		return ErrNoKing
	case cell.King:
		return ErrKingCell
	case cell.Stones == 0:
		return ErrEmptyCell
	case location.IsCenter():
		return ErrCenterCell
	}

	return nil
}

// IsLegal reports whether the player to move may play kind on location right now.
func (that *Game) IsLegal(location entity.Location, kind entity.MoveKind) bool {
	return that.validateMove(location, kind) == nil
}

// LegalMoves - every playable location/kind pair for the current turn, in board order.
func (that *Game) LegalMoves() []entity.Move {
	var moves []entity.Move

	for _, location := range entity.Locations() {
		for _, kind := range entity.MoveKinds() {
			if that.IsLegal(location, kind) {
				moves = append(moves, entity.Move{Location: location, Kind: kind})
			}
		}
	}

	return moves
}
