package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

// Player is the color of a side. Black always moves first.
type Player string

const (
	PlayerBlack Player = "black"
	PlayerWhite Player = "white"
)

// Opponent - returns the other color.
func (that Player) Opponent() Player {
	if that == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

// Cell - returns the cell state occupied by this color.
func (that Player) Cell() Cell {
	if that == PlayerBlack {
		return BlackCell
	}
	return WhiteCell
}

func (that Player) String() string {
	switch that {
	case PlayerBlack:
		return "Black"
	case PlayerWhite:
		return "White"
	default:
		return "None"
	}
}

// Cell is the occupancy of one board intersection.
type Cell string

const (
	EmptyCell Cell = ""
	BlackCell Cell = "black"
	WhiteCell Cell = "white"
)

// Owner - returns the color occupying the cell, false for an empty cell.
func (that Cell) Owner() (Player, bool) {
	switch that {
	case BlackCell:
		return PlayerBlack, true
	case WhiteCell:
		return PlayerWhite, true
	default:
		return "", false
	}
}

// Move is a (row, col) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// GameMode selects whether the second side is played by a human or by the machine.
type GameMode string

const (
	ModeHumanVsHuman   GameMode = "pvp"
	ModeHumanVsMachine GameMode = "pve"
)

func (that GameMode) Validate() error {
	switch that {
	case ModeHumanVsHuman, ModeHumanVsMachine:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMode, string(that))
	}
}

// Toggle - returns the other mode.
func (that GameMode) Toggle() GameMode {
	if that == ModeHumanVsMachine {
		return ModeHumanVsHuman
	}
	return ModeHumanVsMachine
}

// Difficulty is the machine strength level.
type Difficulty int

const (
	MinDifficulty     Difficulty = 1
	MaxDifficulty     Difficulty = 10
	DefaultDifficulty Difficulty = 5
)

func (that Difficulty) Validate() error {
	if that < MinDifficulty || that > MaxDifficulty {
		return fmt.Errorf("%w: %d not in [%d, %d]", apperror.ErrInvalidDifficulty, that, MinDifficulty, MaxDifficulty)
	}
	return nil
}

type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWon        Outcome = "won"
	OutcomeDrawn      Outcome = "drawn"
)

// GameStatus is the result of the game so far. Winner is set only for OutcomeWon.
type GameStatus struct {
	Outcome Outcome `json:"outcome"`
	Winner  Player  `json:"winner,omitempty"`
}

func InProgress() GameStatus {
	return GameStatus{Outcome: OutcomeInProgress}
}

func Won(player Player) GameStatus {
	return GameStatus{Outcome: OutcomeWon, Winner: player}
}

func Drawn() GameStatus {
	return GameStatus{Outcome: OutcomeDrawn}
}

func (that GameStatus) IsTerminal() bool {
	return that.Outcome == OutcomeWon || that.Outcome == OutcomeDrawn
}

func (that GameStatus) String() string {
	switch that.Outcome {
	case OutcomeWon:
		return that.Winner.String() + " Wins!"
	case OutcomeDrawn:
		return "It's a Draw!"
	default:
		return "In Progress"
	}
}
