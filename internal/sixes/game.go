package sixes

import (
	"fmt"

	"github.com/rocketscienceinc/sixes-backend/internal/apperror"
	"github.com/rocketscienceinc/sixes-backend/internal/entity"
)

// EmptyCellBonus is credited for a stone placed on an empty cell other than the center.
const EmptyCellBonus = 2

// Game is a single match of Sixes. It is not safe for concurrent use.
type Game struct {
	board      *entity.Board
	players    [2]*entity.Player
	turn       entity.PlayerID
	lastPlayed entity.Location
	lastScored []entity.Triple
	state      entity.GameState
}

// Start - creates a game with an empty board and player one to move.
func Start() *Game {
	game := &Game{}
	game.Reset()

	return game
}

// Reset - throws the current match away and starts over.
func (that *Game) Reset() {
	that.board = entity.NewBoard()
	that.players = [2]*entity.Player{
		entity.NewPlayer(entity.PlayerOne),
		entity.NewPlayer(entity.PlayerTwo),
	}
	that.turn = entity.PlayerOne
	that.lastPlayed = entity.NoLocation
	that.lastScored = nil
	that.state = entity.Running()
}

// Play - applies a move for the player whose turn it is.
//
// A rejected move returns apperror.ErrInvalidMove and leaves the game untouched.
// apperror.ErrInvalidWin is returned after the move has been applied; the turn
// does not advance in that case.
func (that *Game) Play(location entity.Location, kind entity.MoveKind) error {
	if err := that.validateMove(location, kind); err != nil {
		return err
	}

	that.commit(location, kind)

	if err := that.evaluateAndMaybeWin(); err != nil {
		return err
	}

	that.turn = that.turn.Opponent()

	return nil
}

// commit - mutates board and players for an already validated move.
// Everything done here stays applied even if scoring fails afterwards.
func (that *Game) commit(location entity.Location, kind entity.MoveKind) {
	cell := that.board.Cell(location)
	mover := that.player(that.turn)

	if !cell.IsEmpty() {
		that.player(cell.Owner).AddToGraveyard(cell.Stones)
	}

	switch kind {
	case entity.Stones:
		mover.AddStones(stonesBonus(cell))
		mover.RemoveStones(stonesCost(cell))
		that.board.PlayStones(location, that.turn)
	case entity.King:
		mover.PlayKing()
		that.board.PlayKing(location, that.turn)
	}

	that.lastPlayed = location
}

// stonesCost - a stones move puts one stone more than the stack it covers.
func stonesCost(cell entity.Cell) int {
	return cell.Stones + 1
}

func stonesBonus(cell entity.Cell) int {
	if cell.IsEmpty() && !cell.Location.IsCenter() {
		return EmptyCellBonus
	}

	return 0
}

func (that *Game) player(id entity.PlayerID) *entity.Player {
	if id == entity.PlayerTwo {
		return that.players[1]
	}

	return that.players[0]
}

// evaluateAndMaybeWin - a line held on two consecutive evaluations wins the game.
func (that *Game) evaluateAndMaybeWin() error {
	scored := that.board.EvaluateScoring()

	var sustained []entity.PlayerID
	for _, triple := range scored {
		for _, previous := range that.lastScored {
			if triple == previous {
				sustained = append(sustained, triple.Owner)
			}
		}
	}

	that.lastScored = scored

	if len(sustained) == 0 {
		return nil
	}

	for _, owner := range sustained[1:] {
		if owner != sustained[0] {
			return fmt.Errorf("%w: both players hold a line", apperror.ErrInvalidWin)
		}
	}

	that.state = entity.WonBy(sustained[0])

	return nil
}
