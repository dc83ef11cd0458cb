package apperror

import "errors"

var (
	// ErrInvalidMove is returned when a move is rejected. Nothing has been changed.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidWin is returned when both players hold a sustained line at once.
	// The move that caused it has already been applied.
	ErrInvalidWin = errors.New("invalid win")

	ErrGameFinished = errors.New("game is already finished")
)
