package entity

import "fmt"

const StartingStones = 12

// PlayerID identifies one of the two sides. The zero value marks an unowned cell.
type PlayerID int

const (
	NoPlayer PlayerID = iota
	PlayerOne
	PlayerTwo
)

func (that PlayerID) Opponent() PlayerID {
	switch that {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return NoPlayer
	}
}

func (that PlayerID) String() string {
	switch that {
	case PlayerOne:
		return "one"
	case PlayerTwo:
		return "two"
	case NoPlayer:
		return "none"
	default:
		return fmt.Sprintf("PlayerID(%d)", int(that))
	}
}

// Player holds the resource pool of one side.
type Player struct {
	ID      PlayerID
	Stones  int
	HasKing bool

	// Graveyard is the reserve of captured stones used to refill an empty pool.
	Graveyard int
}

func NewPlayer(id PlayerID) *Player {
	return &Player{
		ID:      id,
		Stones:  StartingStones,
		HasKing: true,
	}
}

func (that *Player) AddStones(stones int) {
	that.Stones += stones
}

// RemoveStones - takes exactly n stones from the pool. An emptied pool is refilled from the graveyard.
func (that *Player) RemoveStones(stones int) {
	if stones > that.Stones {
		panic(fmt.Sprintf("player %s: remove %d stones from a pool of %d", that.ID, stones, that.Stones))
	}

	that.Stones -= stones
	if that.Stones == 0 {
		that.Stones = that.Graveyard
		that.ClearGraveyard()
	}
}

func (that *Player) AddToGraveyard(stones int) {
	that.Graveyard += stones
}

func (that *Player) ClearGraveyard() {
	that.Graveyard = 0
}

// PlayKing - spends the king. There is only one per game.
func (that *Player) PlayKing() {
	that.HasKing = false
}
