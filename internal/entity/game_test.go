package entity

import (
	"testing"

	"github.com/rocketscienceinc/sixes-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStateMethods(t *testing.T) {
	t.Run("IsRunning returns true for a new game state", func(t *testing.T) {
		// Given: a running state
		state := Running()

		// Then: it should be running and not won
		assert.True(t, state.IsRunning())
		assert.False(t, state.IsWon())
		assert.Equal(t, NoPlayer, state.Winner)
	})

	t.Run("IsWon returns true when a player has won", func(t *testing.T) {
		// Given: a state won by player two
		state := WonBy(PlayerTwo)

		// Then: it should be won by player two
		assert.True(t, state.IsWon())
		assert.False(t, state.IsRunning())
		assert.Equal(t, PlayerTwo, state.Winner)
		assert.Equal(t, "won by two", state.String())
	})
}

func TestGameState_ConfirmRunning(t *testing.T) {
	t.Run("Returns nil when game is running", func(t *testing.T) {
		assert.NoError(t, Running().ConfirmRunning())
	})

	t.Run("Returns ErrGameFinished when game is won", func(t *testing.T) {
		// When: checking a finished game
		err := WonBy(PlayerOne).ConfirmRunning()

		// Then: it should return ErrGameFinished
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a state with an unknown status
		state := GameState{Status: "unknown"}

		// When: checking if the game is running
		err := state.ConfirmRunning()

		// Then: it should return an error
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownGameStatus)
	})
}

func TestParseMoveKind(t *testing.T) {
	t.Run("Accepts long and short names", func(t *testing.T) {
		for name, expected := range map[string]MoveKind{
			"stones": Stones,
			"Stone":  Stones,
			"s":      Stones,
			"KING":   King,
			" k ":    King,
		} {
			kind, err := ParseMoveKind(name)
			require.NoError(t, err, name)
			assert.Equal(t, expected, kind, name)
		}
	})

	t.Run("Rejects unknown names", func(t *testing.T) {
		_, err := ParseMoveKind("queen")

		assert.ErrorIs(t, err, ErrUnknownMoveKind)
	})
}

func TestMove_String(t *testing.T) {
	move := Move{Location: D2, Kind: King}

	assert.Equal(t, "D2:king", move.String())
}
