package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/sixes-backend/internal/apperror"
	"github.com/rocketscienceinc/sixes-backend/internal/entity"
	"github.com/rocketscienceinc/sixes-backend/internal/sixes"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// GameManager owns a single game session and serialises every call to it.
type GameManager struct {
	logger *slog.Logger
	tracer trace.Tracer

	mu   sync.Mutex
	game *sixes.Game
}

func NewGameManager(logger *slog.Logger, tracer trace.Tracer) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		tracer: tracer,
		game:   sixes.Start(),
	}
}

// MakeTurn - plays a move for the side to move. The snapshot is returned even when the move fails.
func (that *GameManager) MakeTurn(ctx context.Context, location entity.Location, kind entity.MoveKind) (*sixes.Snapshot, error) {
	ctx, span := that.tracer.Start(ctx, "GameManager.MakeTurn", trace.WithAttributes(
		attribute.String("move.location", location.String()),
		attribute.String("move.kind", kind.String()),
	))
	defer span.End()

	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, "context done")
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	player := that.game.Turn()
	span.SetAttributes(attribute.String("move.player", player.String()))

	log := that.logger.With("method", "MakeTurn", "player", player.String(), "location", location.String(), "kind", kind.String())

	err := that.game.Play(location, kind)
	snapshot := that.game.Snapshot()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "move failed")

		if errors.Is(err, apperror.ErrInvalidWin) {
			log.Error("scoring contradiction, move kept", "error", err)
		} else {
			log.Warn("move rejected", "error", err)
		}

		return snapshot, fmt.Errorf("failed make turn: %w", err)
	}

	log.Info("move played", "next", snapshot.Turn.String())

	if snapshot.State.IsWon() {
		span.SetAttributes(attribute.String("game.winner", snapshot.State.Winner.String()))
		log.Info("game won", "winner", snapshot.State.Winner.String())
	}

	return snapshot, nil
}

func (that *GameManager) Snapshot(ctx context.Context) (*sixes.Snapshot, error) {
	_, span := that.tracer.Start(ctx, "GameManager.Snapshot")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed get snapshot: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.Snapshot(), nil
}

func (that *GameManager) LegalMoves(ctx context.Context) ([]entity.Move, error) {
	_, span := that.tracer.Start(ctx, "GameManager.LegalMoves")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed get legal moves: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.LegalMoves(), nil
}

// Reset - starts the session over with a new game.
func (that *GameManager) Reset(ctx context.Context) (*sixes.Snapshot, error) {
	_, span := that.tracer.Start(ctx, "GameManager.Reset")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed reset game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.game.Reset()
	that.logger.Info("game reset")

	return that.game.Snapshot(), nil
}
