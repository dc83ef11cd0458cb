package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/sixes-backend/internal/entity"
	"github.com/rocketscienceinc/sixes-backend/internal/sixes"
)

func writeStatus(out io.Writer, snapshot *sixes.Snapshot) {
	fmt.Fprintf(out, "status: %s\n", snapshot.State)

	if snapshot.State.IsRunning() {
		fmt.Fprintf(out, "turn: %s\n", snapshot.Turn)
	}
}

func writeBoard(out io.Writer, snapshot *sixes.Snapshot) {
	for _, cell := range snapshot.Board {
		fmt.Fprintf(out, "%s stones=%d king=%t owner=%s\n", cell.Location, cell.Stones, cell.King, cell.Owner)
	}

	for _, triple := range snapshot.ScoredTriples {
		fmt.Fprintf(out, "line %s-%s-%s held by %s\n", triple.A, triple.B, triple.C, triple.Owner)
	}
}

func writePlayers(out io.Writer, snapshot *sixes.Snapshot) {
	for _, player := range snapshot.Players {
		fmt.Fprintf(out, "%s stones=%d king=%t graveyard=%d\n", player.ID, player.Stones, player.HasKing, player.Graveyard)
	}
}

func writeMoves(out io.Writer, moves []entity.Move) {
	if len(moves) == 0 {
		fmt.Fprintln(out, "moves: none")
		return
	}

	names := make([]string, len(moves))
	for i, move := range moves {
		names[i] = move.String()
	}

	fmt.Fprintf(out, "moves: %s\n", strings.Join(names, " "))
}
