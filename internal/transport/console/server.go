package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/sixes-backend/internal/config"
	"github.com/rocketscienceinc/sixes-backend/internal/entity"
	"github.com/rocketscienceinc/sixes-backend/internal/sixes"
)

var (
	errQuit          = errors.New("quit")
	ErrUsage         = errors.New("usage")
	ErrUnknownAction = errors.New("unknown command")
)

type uGame interface {
	MakeTurn(ctx context.Context, location entity.Location, kind entity.MoveKind) (*sixes.Snapshot, error)
	Snapshot(ctx context.Context) (*sixes.Snapshot, error)
	LegalMoves(ctx context.Context) ([]entity.Move, error)
	Reset(ctx context.Context) (*sixes.Snapshot, error)
}

type handler func(ctx context.Context, args []string, out io.Writer) error

// Server reads text commands line by line and drives one game session with them.
type Server struct {
	logger *slog.Logger
	uGame  uGame
	conf   config.Console

	handlers map[string]handler
}

func New(logger *slog.Logger, uGame uGame, conf config.Console) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,
		conf:   conf,

		handlers: make(map[string]handler),
	}

	server.handlers["play"] = server.handlePlay
	server.handlers["moves"] = server.handleMoves
	server.handlers["board"] = server.handleBoard
	server.handlers["players"] = server.handlePlayers
	server.handlers["status"] = server.handleStatus
	server.handlers["reset"] = server.handleReset
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Start - serves commands from in until EOF, quit or ctx is done.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	// The reader outlives a canceled ctx until in yields a line or EOF; readErr is buffered so it never blocks.
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()

	that.prompt(out)

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read command: %w", err)
				}
				return nil
			}

			if err := that.handleLine(ctx, line, out); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				fmt.Fprintf(out, "error: %v\n", err)
			}

			that.prompt(out)
		}
	}
}

// handleLine - dispatches a single command line to its handler.
func (that *Server) handleLine(ctx context.Context, line string, out io.Writer) error {
	log := that.logger.With("method", "handleLine")

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	action := strings.ToLower(fields[0])
	handle, ok := that.handlers[action]
	if !ok {
		log.Warn("unknown command", "action", action)
		return fmt.Errorf("%w %q, type help", ErrUnknownAction, action)
	}

	if err := handle(ctx, fields[1:], out); err != nil {
		if !errors.Is(err, errQuit) {
			log.Debug("command failed", "action", action, "error", err)
		}
		return err
	}

	return nil
}

func (that *Server) prompt(out io.Writer) {
	fmt.Fprint(out, that.conf.Prompt)
}
