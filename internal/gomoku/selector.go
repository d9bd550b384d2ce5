package gomoku

import (
	"math/rand"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// RandomStrategyMaxLevel is the highest difficulty that still plays uniformly random moves.
const RandomStrategyMaxLevel entity.Difficulty = 3

const (
	offenseWeightStep = 0.1
	defenseWeightStep = 0.2
)

// Line pattern scores, keyed by contiguous neighbors around the candidate cell.
const (
	scoreFive         = 10000
	scoreOpenFour     = 1000
	scoreBlockedFour  = 100
	scoreOpenThree    = 100
	scoreBlockedThree = 10
	scoreOpenTwo      = 10
)

// Rand is the source used for uniform choices among candidate cells.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.Intn(n) //nolint: gosec // move choice is not security sensitive
}

// MoveSelector picks the machine's next move.
type MoveSelector struct {
	rnd Rand
}

// NewMoveSelector - builds a selector; a nil rnd uses the process-wide generator.
func NewMoveSelector(rnd Rand) *MoveSelector {
	if rnd == nil {
		rnd = globalRand{}
	}

	return &MoveSelector{rnd: rnd}
}

// Select - chooses a move for machine at the given difficulty.
func (that *MoveSelector) Select(board *entity.Board, machine entity.Player, difficulty entity.Difficulty) (entity.Move, error) {
	if difficulty <= RandomStrategyMaxLevel {
		return that.RandomMove(board)
	}

	return that.HeuristicMove(board, machine, difficulty)
}

// RandomMove - any empty cell, uniformly.
func (that *MoveSelector) RandomMove(board *entity.Board) (entity.Move, error) {
	return that.pick(board.EmptyCells())
}

// HeuristicMove - a uniformly chosen cell among those with the highest Score.
func (that *MoveSelector) HeuristicMove(board *entity.Board, machine entity.Player, difficulty entity.Difficulty) (entity.Move, error) {
	var (
		best      float64
		bestMoves []entity.Move
	)

	for _, move := range board.EmptyCells() {
		score := Score(board, move.Row, move.Col, machine, difficulty)

		switch {
		case len(bestMoves) == 0 || score > best:
			best = score
			bestMoves = append(bestMoves[:0], move)
		case score == best:
			bestMoves = append(bestMoves, move)
		}
	}

	return that.pick(bestMoves)
}

func (that *MoveSelector) pick(moves []entity.Move) (entity.Move, error) {
	if len(moves) == 0 {
		return entity.Move{}, apperror.ErrBoardFull
	}

	return moves[that.rnd.IntN(len(moves))], nil
}

// Score - desirability of the empty cell (row, col) for machine.
// Distance from the center costs one point per step. Blocking the opponent weighs more than building.
func Score(board *entity.Board, row, col int, machine entity.Player, difficulty entity.Difficulty) float64 {
	center := entity.BoardSize / 2
	score := -float64(abs(row-center) + abs(col-center))

	offense, defense := 0, 0
	for _, dir := range Directions {
		offense += LineScore(Scan(board, row, col, dir, machine))
		defense += LineScore(Scan(board, row, col, dir, machine.Opponent()))
	}

	level := float64(difficulty)
	score += float64(offense) * (1 + level*offenseWeightStep)
	score += float64(defense) * (1 + level*defenseWeightStep)

	return score
}

// LineScore - pattern value of one axis through a candidate cell.
func LineScore(line Line) int {
	count, blocked := line.Count(), line.Blocked()

	switch {
	case count >= 4:
		return scoreFive
	case count == 3 && blocked == 0:
		return scoreOpenFour
	case count == 3:
		return scoreBlockedFour
	case count == 2 && blocked == 0:
		return scoreOpenThree
	case count == 2:
		return scoreBlockedThree
	case count == 1 && blocked == 0:
		return scoreOpenTwo
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
