package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

// WinLength is the number of stones in a row that wins. Longer lines win too.
const WinLength = 5

// CheckWin - reports whether the stone at (row, col) completes at least five in a row for player.
func CheckWin(board *entity.Board, row, col int, player entity.Player) bool {
	for _, dir := range Directions {
		if Scan(board, row, col, dir, player).Count()+1 >= WinLength {
			return true
		}
	}

	return false
}

// CheckDraw - the game is drawn when no empty cell remains. Callers check for a win first.
func CheckDraw(board *entity.Board) bool {
	return board.IsFull()
}

// evaluate - status after player's stone landed on (row, col).
func evaluate(board *entity.Board, row, col int, player entity.Player) entity.GameStatus {
	switch {
	case CheckWin(board, row, col, player):
		return entity.Won(player)
	case CheckDraw(board):
		return entity.Drawn()
	default:
		return entity.InProgress()
	}
}
