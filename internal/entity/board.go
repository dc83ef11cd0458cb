package entity

// Cell is the state of a single location.
type Cell struct {
	Location Location
	Stones   int
	King     bool
	Owner    PlayerID
}

func (that Cell) IsEmpty() bool {
	return that.Owner == NoPlayer
}

func (that Cell) IsOwnedBy(player PlayerID) bool {
	return that.Owner != NoPlayer && that.Owner == player
}

// Triple is a winning line held by one player.
type Triple struct {
	A, B, C Location
	Owner   PlayerID
}

// WinningLines are the 11 three-in-a-row lines of the board.
var WinningLines = [11][3]Location{
	{A1, B1, C1},
	{B1, C1, D1},
	{B1, B2, B3},
	{C1, C2, C3},
	{D1, D2, D3},
	{B2, C2, D2},
	{B3, C3, D3},
	{C3, D3, E3},
	{A1, B2, C3},
	{B1, C2, D3},
	{C1, D2, E3},
}

type Board struct {
	cells [LocationCount]Cell
}

func NewBoard() *Board {
	board := &Board{}
	for _, location := range Locations() {
		board.cells[location] = Cell{Location: location}
	}

	return board
}

func (that *Board) Cell(location Location) Cell {
	return that.cells[location]
}

// Cells returns a copy of every cell in board order.
func (that *Board) Cells() [LocationCount]Cell {
	return that.cells
}

// PlayStones - puts one more stone on the cell and hands it to player.
func (that *Board) PlayStones(location Location, player PlayerID) {
	cell := &that.cells[location]
	cell.Stones++
	cell.Owner = player
}

// PlayKing - crowns the cell for player. Stones already on the cell stay there.
func (that *Board) PlayKing(location Location, player PlayerID) {
	cell := &that.cells[location]
	cell.King = true
	cell.Owner = player
}

func (that *Board) CellsOwnedConsistently(first, second, third Location) bool {
	a, b, c := that.cells[first].Owner, that.cells[second].Owner, that.cells[third].Owner

	return a != NoPlayer && a == b && b == c
}

// EvaluateScoring - returns every winning line currently held by a single player, in table order.
func (that *Board) EvaluateScoring() []Triple {
	var triples []Triple

	for _, line := range WinningLines {
		if that.CellsOwnedConsistently(line[0], line[1], line[2]) {
			triples = append(triples, Triple{
				A:     line[0],
				B:     line[1],
				C:     line[2],
				Owner: that.cells[line[0]].Owner,
			})
		}
	}

	return triples
}
