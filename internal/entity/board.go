package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

const BoardSize = 15

// Board is the 15x15 grid, indexed [row][col]. The zero value is an empty board.
type Board [BoardSize][BoardSize]Cell

// InBounds - reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (that *Board) Get(row, col int) (Cell, error) {
	if !InBounds(row, col) {
		return EmptyCell, fmt.Errorf("%w: (%d,%d)", apperror.ErrOutOfBounds, row, col)
	}

	return that[row][col], nil
}

// Place - puts the player's stone on an empty cell.
func (that *Board) Place(row, col int, player Player) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrOutOfBounds, row, col)
	}

	if that[row][col] != EmptyCell {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrCellOccupied, row, col)
	}

	that[row][col] = player.Cell()

	return nil
}

func (that *Board) IsFull() bool {
	for row := range that {
		for _, cell := range that[row] {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that *Board) Reset() {
	*that = Board{}
}

// EmptyCells - lists every empty cell in row-major order.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, BoardSize*BoardSize)
	for row := range that {
		for col, cell := range that[row] {
			if cell == EmptyCell {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

// Count - number of stones on the board.
func (that *Board) Count() int {
	count := 0
	for row := range that {
		for _, cell := range that[row] {
			if cell != EmptyCell {
				count++
			}
		}
	}

	return count
}
