package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

// scanReach is how many cells a leg inspects on each side of the origin.
const scanReach = 4

// Direction is a unit step along one of the four board axes.
type Direction struct {
	DRow int
	DCol int
}

// Directions are the four axes: horizontal, vertical, diagonal down-right and diagonal down-left.
// Win detection and position scoring both iterate this sequence.
var Directions = [4]Direction{
	{DRow: 0, DCol: 1},
	{DRow: 1, DCol: 0},
	{DRow: 1, DCol: 1},
	{DRow: 1, DCol: -1},
}

// Leg is the result of scanning one side of an origin.
type Leg struct {
	// Count - contiguous cells owned by the scanned player, starting next to the origin.
	Count int
	// Blocked - 1 when the scan hit the board edge or an opposing stone, 0 otherwise.
	Blocked int
}

// Line is the scan of both sides of an origin along one direction.
type Line struct {
	Forward  Leg
	Backward Leg
}

// Count - contiguous same-player neighbors on both sides, origin excluded.
func (that Line) Count() int {
	return that.Forward.Count + that.Backward.Count
}

// Blocked - 1 if either side is blocked.
func (that Line) Blocked() int {
	if that.Forward.Blocked > 0 || that.Backward.Blocked > 0 {
		return 1
	}
	return 0
}

// Scan - walks up to four cells forward and backward from (row, col) along dir, counting player's stones.
// The origin itself is never inspected.
func Scan(board *entity.Board, row, col int, dir Direction, player entity.Player) Line {
	return Line{
		Forward:  scanLeg(board, row, col, dir.DRow, dir.DCol, player),
		Backward: scanLeg(board, row, col, -dir.DRow, -dir.DCol, player),
	}
}

func scanLeg(board *entity.Board, row, col, dRow, dCol int, player entity.Player) Leg {
	var leg Leg
	own := player.Cell()

	for i := 1; i <= scanReach; i++ {
		r, c := row+dRow*i, col+dCol*i
		if !entity.InBounds(r, c) {
			leg.Blocked = 1
			return leg
		}

		switch board[r][c] {
		case own:
			leg.Count++
		case entity.EmptyCell:
			return leg
		default:
			leg.Blocked = 1
			return leg
		}
	}

	return leg
}
