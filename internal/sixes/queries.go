package sixes

import "github.com/rocketscienceinc/sixes-backend/internal/entity"

// Snapshot is a read-only copy of everything a front end needs to draw the game.
type Snapshot struct {
	Board         [entity.LocationCount]entity.Cell
	Players       [2]entity.Player
	Turn          entity.PlayerID
	State         entity.GameState
	LastPlayed    entity.Location
	ScoredTriples []entity.Triple
	LegalMoves    []entity.Move
}

func (that *Game) Board() [entity.LocationCount]entity.Cell {
	return that.board.Cells()
}

func (that *Game) Cell(location entity.Location) entity.Cell {
	return that.board.Cell(location)
}

// Players returns copies of player one and player two, in that order.
func (that *Game) Players() [2]entity.Player {
	return [2]entity.Player{*that.players[0], *that.players[1]}
}

func (that *Game) Player(id entity.PlayerID) entity.Player {
	return *that.player(id)
}

func (that *Game) State() entity.GameState {
	return that.state
}

func (that *Game) Turn() entity.PlayerID {
	return that.turn
}

// LastPlayed returns entity.NoLocation before the first move.
func (that *Game) LastPlayed() entity.Location {
	return that.lastPlayed
}

// ScoredTriples are the lines found by the most recent scoring pass.
func (that *Game) ScoredTriples() []entity.Triple {
	return append([]entity.Triple(nil), that.lastScored...)
}

func (that *Game) Snapshot() *Snapshot {
	return &Snapshot{
		Board:         that.Board(),
		Players:       that.Players(),
		Turn:          that.turn,
		State:         that.state,
		LastPlayed:    that.lastPlayed,
		ScoredTriples: that.ScoredTriples(),
		LegalMoves:    that.LegalMoves(),
	}
}
