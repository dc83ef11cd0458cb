package console

import (
	"context"
	"fmt"
	"io"

	"github.com/rocketscienceinc/sixes-backend/internal/entity"
)

const helpText = `commands:
  play <cell> <stones|king>   play a move for the side to move, e.g. "play b2 stones"
  moves                       list the legal moves
  board                       show every cell
  players                     show both players
  status                      show turn and game status
  reset                       start a new game
  quit                        leave
`

func (that *Server) handlePlay(ctx context.Context, args []string, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: play <cell> <stones|king>", ErrUsage)
	}

	location, err := entity.ParseLocation(args[0])
	if err != nil {
		return err
	}

	kind, err := entity.ParseMoveKind(args[1])
	if err != nil {
		return err
	}

	snapshot, err := that.uGame.MakeTurn(ctx, location, kind)
	if err != nil {
		if snapshot != nil {
			writeStatus(out, snapshot)
		}
		return err
	}

	fmt.Fprintf(out, "played %s %s\n", location, kind)
	writeStatus(out, snapshot)

	if !that.conf.HideLegalMoves && snapshot.State.IsRunning() {
		writeMoves(out, snapshot.LegalMoves)
	}

	return nil
}

func (that *Server) handleMoves(ctx context.Context, _ []string, out io.Writer) error {
	moves, err := that.uGame.LegalMoves(ctx)
	if err != nil {
		return fmt.Errorf("failed to get legal moves: %w", err)
	}

	writeMoves(out, moves)

	return nil
}

func (that *Server) handleBoard(ctx context.Context, _ []string, out io.Writer) error {
	snapshot, err := that.uGame.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	writeBoard(out, snapshot)

	return nil
}

func (that *Server) handlePlayers(ctx context.Context, _ []string, out io.Writer) error {
	snapshot, err := that.uGame.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	writePlayers(out, snapshot)

	return nil
}

func (that *Server) handleStatus(ctx context.Context, _ []string, out io.Writer) error {
	snapshot, err := that.uGame.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	writeStatus(out, snapshot)

	return nil
}

func (that *Server) handleReset(ctx context.Context, _ []string, out io.Writer) error {
	snapshot, err := that.uGame.Reset(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset game: %w", err)
	}

	fmt.Fprintln(out, "new game")
	writeStatus(out, snapshot)

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string, out io.Writer) error {
	fmt.Fprint(out, helpText)

	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string, _ io.Writer) error {
	return errQuit
}
