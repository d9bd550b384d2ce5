package apperror

import "errors"

var (
	ErrOutOfBounds  = errors.New("cell is out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameOver     = errors.New("game is already finished")
	ErrBoardFull    = errors.New("board is full")
	ErrWrongTurn    = errors.New("it's not your turn")

	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidMode       = errors.New("invalid game mode")
	ErrNotFound          = errors.New("not found")
	ErrNoActiveGame      = errors.New("no active game")
)
