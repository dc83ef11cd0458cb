package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/sixes-backend/internal/apperror"
)

type Status string

const (
	StatusRunning Status = "running"
	StatusWon     Status = "won"
)

var (
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrUnknownMoveKind   = errors.New("unknown move kind")
)

// GameState is either running or won by Winner. There is no way back from won.
type GameState struct {
	Status Status
	Winner PlayerID
}

func Running() GameState {
	return GameState{Status: StatusRunning}
}

func WonBy(player PlayerID) GameState {
	return GameState{Status: StatusWon, Winner: player}
}

func (that GameState) IsRunning() bool {
	return that.Status == StatusRunning
}

func (that GameState) IsWon() bool {
	return that.Status == StatusWon
}

func (that GameState) ConfirmRunning() error {
	switch {
	case that.IsRunning():
		return nil
	case that.IsWon():
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that GameState) String() string {
	if that.IsWon() {
		return fmt.Sprintf("won by %s", that.Winner)
	}

	return string(that.Status)
}

type MoveKind int

const (
	Stones MoveKind = iota + 1
	King
)

// MoveKinds returns both kinds in the order legal moves are listed.
func MoveKinds() []MoveKind {
	return []MoveKind{Stones, King}
}

func ParseMoveKind(name string) (MoveKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "stones", "stone", "s":
		return Stones, nil
	case "king", "k":
		return King, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMoveKind, name)
	}
}

func (that MoveKind) IsValid() bool {
	return that == Stones || that == King
}

func (that MoveKind) String() string {
	switch that {
	case Stones:
		return "stones"
	case King:
		return "king"
	default:
		return fmt.Sprintf("MoveKind(%d)", int(that))
	}
}

type Move struct {
	Location Location
	Kind     MoveKind
}

func (that Move) String() string {
	return that.Location.String() + ":" + that.Kind.String()
}
