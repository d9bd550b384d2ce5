package gomoku

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// recordingRand returns a fixed index and remembers the size of the last draw.
type recordingRand struct {
	index int
	lastN int
	calls int
}

func (that *recordingRand) IntN(n int) int {
	that.lastN = n
	that.calls++
	if that.index >= n {
		return n - 1
	}
	return that.index
}

func place(t *testing.T, board *entity.Board, player entity.Player, moves ...entity.Move) {
	t.Helper()

	for _, move := range moves {
		require.NoError(t, board.Place(move.Row, move.Col, player))
	}
}

// drawPattern - color of (row, col) in a full board with no five in a row along any axis.
// Every axis holds runs of at most two stones.
func drawPattern(row, col int) entity.Player {
	if (col/2+row)%2 == 0 {
		return entity.PlayerBlack
	}
	return entity.PlayerWhite
}

func fullDrawBoard() entity.Board {
	var board entity.Board
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			board[row][col] = drawPattern(row, col).Cell()
		}
	}

	return board
}
