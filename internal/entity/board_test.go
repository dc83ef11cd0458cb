package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: every cell is empty and knows its location
	for _, location := range Locations() {
		cell := board.Cell(location)
		assert.Equal(t, Cell{Location: location}, cell)
		assert.True(t, cell.IsEmpty())
	}

	// Then: nothing scores
	assert.Empty(t, board.EvaluateScoring())
}

func TestBoard_PlayStones(t *testing.T) {
	// Given: a new board
	board := NewBoard()

	// When: both players stone the same cell
	board.PlayStones(B3, PlayerOne)
	board.PlayStones(B3, PlayerTwo)

	// Then: the stack grows and the last player owns it
	assert.Equal(t, Cell{Location: B3, Stones: 2, Owner: PlayerTwo}, board.Cell(B3))
}

func TestBoard_PlayKing(t *testing.T) {
	// Given: a cell with two stones of player one
	board := NewBoard()
	board.PlayStones(D1, PlayerOne)
	board.PlayStones(D1, PlayerOne)

	// When: player two crowns it
	board.PlayKing(D1, PlayerTwo)

	// Then: the stack stays and the king belongs to player two
	assert.Equal(t, Cell{Location: D1, Stones: 2, King: true, Owner: PlayerTwo}, board.Cell(D1))
}

func TestBoard_Cells(t *testing.T) {
	// Given: a board with one stone
	board := NewBoard()
	board.PlayStones(A1, PlayerOne)

	// When: the snapshot is modified
	cells := board.Cells()
	cells[A1].Stones = 9

	// Then: the board is unaffected
	assert.Equal(t, 1, board.Cell(A1).Stones)
}

func TestBoard_CellsOwnedConsistently(t *testing.T) {
	t.Run("False when a cell is empty", func(t *testing.T) {
		board := NewBoard()
		board.PlayStones(A1, PlayerOne)
		board.PlayStones(B1, PlayerOne)

		assert.False(t, board.CellsOwnedConsistently(A1, B1, C1))
	})

	t.Run("False when owners differ", func(t *testing.T) {
		board := NewBoard()
		board.PlayStones(A1, PlayerOne)
		board.PlayStones(B1, PlayerTwo)
		board.PlayStones(C1, PlayerOne)

		assert.False(t, board.CellsOwnedConsistently(A1, B1, C1))
	})

	t.Run("True when one player owns all three", func(t *testing.T) {
		board := NewBoard()
		board.PlayStones(A1, PlayerTwo)
		board.PlayKing(B1, PlayerTwo)
		board.PlayStones(C1, PlayerTwo)

		assert.True(t, board.CellsOwnedConsistently(A1, B1, C1))
	})
}

func TestBoard_EvaluateScoring(t *testing.T) {
	t.Run("Finds every held line in table order", func(t *testing.T) {
		// Given: player one holds B1, C1 and D1 plus A1; player two holds C3, D3, E3
		board := NewBoard()
		for _, location := range []Location{A1, B1, C1, D1} {
			board.PlayStones(location, PlayerOne)
		}
		for _, location := range []Location{C3, D3, E3} {
			board.PlayStones(location, PlayerTwo)
		}

		// When: scoring the board
		triples := board.EvaluateScoring()

		// Then: both of player one's lines and player two's line are found
		expected := []Triple{
			{A: A1, B: B1, C: C1, Owner: PlayerOne},
			{A: B1, B: C1, C: D1, Owner: PlayerOne},
			{A: C3, B: D3, C: E3, Owner: PlayerTwo},
		}
		require.Equal(t, expected, triples)
	})

	t.Run("Every winning line scores on its own", func(t *testing.T) {
		for _, line := range WinningLines {
			board := NewBoard()
			for _, location := range line {
				board.PlayStones(location, PlayerOne)
			}

			triples := board.EvaluateScoring()

			require.Len(t, triples, 1, "line %v", line)
			assert.Equal(t, Triple{A: line[0], B: line[1], C: line[2], Owner: PlayerOne}, triples[0])
		}
	})
}

func TestParseLocation(t *testing.T) {
	t.Run("Resolves every location name", func(t *testing.T) {
		for _, location := range Locations() {
			parsed, err := ParseLocation(location.String())
			require.NoError(t, err)
			assert.Equal(t, location, parsed)
		}
	})

	t.Run("Is case insensitive", func(t *testing.T) {
		location, err := ParseLocation(" c2 ")

		require.NoError(t, err)
		assert.Equal(t, C2, location)
		assert.True(t, location.IsCenter())
	})

	t.Run("Rejects unknown names", func(t *testing.T) {
		location, err := ParseLocation("E1")

		assert.ErrorIs(t, err, ErrUnknownLocation)
		assert.Equal(t, NoLocation, location)
		assert.False(t, location.IsValid())
	})
}
