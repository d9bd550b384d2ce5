package gomoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

func TestCheckWin(t *testing.T) {
	t.Run("Four is not enough, five wins", func(t *testing.T) {
		// Given: black at (7,7) (7,8) (7,9) (7,10) with no interference
		var board entity.Board
		for col := 7; col <= 10; col++ {
			place(t, &board, entity.PlayerBlack, entity.Move{Row: 7, Col: col})
		}

		// Then: four in a row does not win
		assert.False(t, CheckWin(&board, 7, 10, entity.PlayerBlack))

		// When: black adds (7,11)
		place(t, &board, entity.PlayerBlack, entity.Move{Row: 7, Col: 11})

		// Then: five in a row wins
		assert.True(t, CheckWin(&board, 7, 11, entity.PlayerBlack))
		assert.False(t, CheckWin(&board, 7, 11, entity.PlayerWhite))
	})

	tests := []struct {
		name  string
		moves []entity.Move
		at    entity.Move
		want  bool
	}{
		{
			name:  "vertical",
			moves: []entity.Move{{Row: 0, Col: 3}, {Row: 1, Col: 3}, {Row: 2, Col: 3}, {Row: 3, Col: 3}, {Row: 4, Col: 3}},
			at:    entity.Move{Row: 0, Col: 3},
			want:  true,
		},
		{
			name:  "diagonal down-right checked in the middle",
			moves: []entity.Move{{Row: 10, Col: 10}, {Row: 11, Col: 11}, {Row: 12, Col: 12}, {Row: 13, Col: 13}, {Row: 14, Col: 14}},
			at:    entity.Move{Row: 12, Col: 12},
			want:  true,
		},
		{
			name:  "diagonal down-left",
			moves: []entity.Move{{Row: 0, Col: 14}, {Row: 1, Col: 13}, {Row: 2, Col: 12}, {Row: 3, Col: 11}, {Row: 4, Col: 10}},
			at:    entity.Move{Row: 4, Col: 10},
			want:  true,
		},
		{
			name:  "overline of seven still wins",
			moves: []entity.Move{{Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 3, Col: 5}, {Row: 3, Col: 6}},
			at:    entity.Move{Row: 3, Col: 3},
			want:  true,
		},
		{
			name:  "gap breaks the line",
			moves: []entity.Move{{Row: 5, Col: 0}, {Row: 5, Col: 1}, {Row: 5, Col: 2}, {Row: 5, Col: 4}, {Row: 5, Col: 5}},
			at:    entity.Move{Row: 5, Col: 2},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var board entity.Board
			place(t, &board, entity.PlayerWhite, tt.moves...)

			assert.Equal(t, tt.want, CheckWin(&board, tt.at.Row, tt.at.Col, entity.PlayerWhite))
		})
	}

	t.Run("Opponent stone breaks the line", func(t *testing.T) {
		var board entity.Board
		place(t, &board, entity.PlayerBlack, entity.Move{Row: 2, Col: 2}, entity.Move{Row: 2, Col: 3}, entity.Move{Row: 2, Col: 5}, entity.Move{Row: 2, Col: 6})
		place(t, &board, entity.PlayerWhite, entity.Move{Row: 2, Col: 4})

		assert.False(t, CheckWin(&board, 2, 3, entity.PlayerBlack))
	})
}

func TestCheckDraw(t *testing.T) {
	t.Run("Full board without five is a draw", func(t *testing.T) {
		// Given: a full board where no axis holds more than two same stones
		board := fullDrawBoard()

		// Then: it is a draw and no cell wins
		assert.True(t, CheckDraw(&board))
		for row := 0; row < entity.BoardSize; row++ {
			for col := 0; col < entity.BoardSize; col++ {
				owner, ok := board[row][col].Owner()
				require.True(t, ok)
				require.False(t, CheckWin(&board, row, col, owner), "(%d,%d)", row, col)
			}
		}
	})

	t.Run("Board with empty cells is not a draw", func(t *testing.T) {
		board := fullDrawBoard()
		board[14][14] = entity.EmptyCell

		assert.False(t, CheckDraw(&board))
	})

	t.Run("Last cell completing five is a win, not a draw", func(t *testing.T) {
		// Given: a full board with black at (0,0)..(0,3) and (0,4) still empty
		board := fullDrawBoard()
		for col := 0; col < 4; col++ {
			board[0][col] = entity.BlackCell
		}
		board[0][4] = entity.EmptyCell

		// When: black fills the last cell
		place(t, &board, entity.PlayerBlack, entity.Move{Row: 0, Col: 4})

		// Then: the board is full but the result is a black win
		require.True(t, board.IsFull())
		assert.Equal(t, entity.Won(entity.PlayerBlack), evaluate(&board, 0, 4, entity.PlayerBlack))
	})
}
