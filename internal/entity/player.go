package entity

import "time"

// Profile is a connected player's identity, preferred setup and running score against the machine.
type Profile struct {
	ID         string     `json:"id"`
	Mode       GameMode   `json:"mode,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Wins       int        `json:"wins"`
	Losses     int        `json:"losses"`
	Draws      int        `json:"draws"`
}

// Record - counts a finished game from the point of view of the profile owner playing `as`.
func (that *Profile) Record(status GameStatus, as Player) {
	switch {
	case status.Outcome == OutcomeDrawn:
		that.Draws++
	case status.Outcome == OutcomeWon && status.Winner == as:
		that.Wins++
	case status.Outcome == OutcomeWon:
		that.Losses++
	}
}

// Result is a finished game summary. It holds no board state.
type Result struct {
	ID         int64      `json:"id"`
	PlayerID   string     `json:"player_id"`
	Mode       GameMode   `json:"mode"`
	Difficulty Difficulty `json:"difficulty"`
	Outcome    Outcome    `json:"outcome"`
	Winner     Player     `json:"winner,omitempty"`
	Moves      int        `json:"moves"`
	FinishedAt time.Time  `json:"finished_at"`
}
