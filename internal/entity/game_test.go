package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

func TestBoard_Place(t *testing.T) {
	t.Run("Places a stone on an empty cell", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: black places a stone in the center
		err := board.Place(7, 7, PlayerBlack)

		// Then: the cell belongs to black and nothing else changed
		require.NoError(t, err)
		cell, err := board.Get(7, 7)
		require.NoError(t, err)
		assert.Equal(t, BlackCell, cell)
		assert.Equal(t, 1, board.Count())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where (3,4) is taken by black
		var board Board
		require.NoError(t, board.Place(3, 4, PlayerBlack))
		before := board

		// When: white tries the same cell
		err := board.Place(3, 4, PlayerWhite)

		// Then: ErrCellOccupied is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, board)
	})

	t.Run("Error on out of bounds coordinates", func(t *testing.T) {
		var board Board

		for _, move := range []Move{{-1, 0}, {0, -1}, {BoardSize, 0}, {0, BoardSize}, {20, 20}} {
			// When: a coordinate outside the grid is used
			err := board.Place(move.Row, move.Col, PlayerBlack)

			// Then: ErrOutOfBounds is returned, never clamped
			require.ErrorIs(t, err, apperror.ErrOutOfBounds, move.String())
		}

		assert.Equal(t, 0, board.Count())
	})
}

func TestBoard_Get(t *testing.T) {
	var board Board

	cell, err := board.Get(14, 14)
	require.NoError(t, err)
	assert.Equal(t, EmptyCell, cell)

	_, err = board.Get(15, 0)
	require.ErrorIs(t, err, apperror.ErrOutOfBounds)
}

func TestBoard_IsFullAndReset(t *testing.T) {
	// Given: a board filled with alternating stones
	var board Board
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			player := PlayerBlack
			if (row+col)%2 == 1 {
				player = PlayerWhite
			}
			require.NoError(t, board.Place(row, col, player))
		}
	}

	// Then: it is full and has no empty cells
	assert.True(t, board.IsFull())
	assert.Empty(t, board.EmptyCells())

	// When: the board is reset
	board.Reset()

	// Then: every cell is empty again
	assert.False(t, board.IsFull())
	assert.Len(t, board.EmptyCells(), BoardSize*BoardSize)
	assert.Equal(t, Board{}, board)
}

func TestBoard_EmptyCells(t *testing.T) {
	var board Board
	require.NoError(t, board.Place(0, 0, PlayerBlack))

	cells := board.EmptyCells()

	assert.Len(t, cells, BoardSize*BoardSize-1)
	assert.Equal(t, Move{Row: 0, Col: 1}, cells[0])
	assert.NotContains(t, cells, Move{Row: 0, Col: 0})
}

func TestPlayer(t *testing.T) {
	assert.Equal(t, PlayerWhite, PlayerBlack.Opponent())
	assert.Equal(t, PlayerBlack, PlayerWhite.Opponent())
	assert.Equal(t, WhiteCell, PlayerWhite.Cell())

	owner, ok := BlackCell.Owner()
	assert.True(t, ok)
	assert.Equal(t, PlayerBlack, owner)

	_, ok = EmptyCell.Owner()
	assert.False(t, ok)
}

func TestGameStatus(t *testing.T) {
	t.Run("Terminal statuses", func(t *testing.T) {
		assert.False(t, InProgress().IsTerminal())
		assert.True(t, Won(PlayerWhite).IsTerminal())
		assert.True(t, Drawn().IsTerminal())
	})

	t.Run("Labels", func(t *testing.T) {
		assert.Equal(t, "Black Wins!", Won(PlayerBlack).String())
		assert.Equal(t, "It's a Draw!", Drawn().String())
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, ModeHumanVsMachine.Validate())
	require.NoError(t, ModeHumanVsHuman.Validate())
	require.ErrorIs(t, GameMode("online").Validate(), apperror.ErrInvalidMode)

	require.NoError(t, MinDifficulty.Validate())
	require.NoError(t, MaxDifficulty.Validate())
	require.ErrorIs(t, Difficulty(0).Validate(), apperror.ErrInvalidDifficulty)
	require.ErrorIs(t, Difficulty(11).Validate(), apperror.ErrInvalidDifficulty)

	assert.Equal(t, ModeHumanVsHuman, ModeHumanVsMachine.Toggle())
}

func TestProfile_Record(t *testing.T) {
	profile := &Profile{ID: "p1"}

	profile.Record(Won(PlayerBlack), PlayerBlack)
	profile.Record(Won(PlayerWhite), PlayerBlack)
	profile.Record(Drawn(), PlayerBlack)
	profile.Record(InProgress(), PlayerBlack)

	assert.Equal(t, &Profile{ID: "p1", Wins: 1, Losses: 1, Draws: 1}, profile)
}
