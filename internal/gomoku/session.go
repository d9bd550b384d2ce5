package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// MachinePlayer is the color the machine plays in ModeHumanVsMachine.
const MachinePlayer = entity.PlayerWhite

type Phase string

const (
	PhaseAwaitingMove    Phase = "awaiting_move"
	PhaseMachineThinking Phase = "machine_thinking"
	PhaseWon             Phase = "won"
	PhaseDrawn           Phase = "drawn"
)

// State is a read-only snapshot of a session for presentation.
type State struct {
	Phase        Phase             `json:"phase"`
	ActivePlayer entity.Player     `json:"active_player"`
	Status       entity.GameStatus `json:"status"`
	Mode         entity.GameMode   `json:"mode"`
	Difficulty   entity.Difficulty `json:"difficulty"`
	Board        entity.Board      `json:"board"`
	LastMove     *entity.Move      `json:"last_move,omitempty"`
	Moves        int               `json:"moves"`
}

// Label - status line text.
func (that State) Label() string {
	switch that.Phase {
	case PhaseMachineThinking:
		return "AI is thinking..."
	case PhaseWon, PhaseDrawn:
		return that.Status.String()
	default:
		return that.ActivePlayer.String() + "'s Turn"
	}
}

// GameSession owns one board and drives turns between the two sides.
// It is not safe for concurrent use.
type GameSession struct {
	board      entity.Board
	active     entity.Player
	phase      Phase
	status     entity.GameStatus
	mode       entity.GameMode
	difficulty entity.Difficulty
	history    []entity.Move

	selector *MoveSelector
}

type Option func(*GameSession)

// WithRand - uses rnd for the machine's random choices.
func WithRand(rnd Rand) Option {
	return func(session *GameSession) {
		session.selector = NewMoveSelector(rnd)
	}
}

// NewGameSession - starts a fresh game with Black to move.
func NewGameSession(mode entity.GameMode, difficulty entity.Difficulty, opts ...Option) (*GameSession, error) {
	session := &GameSession{}
	for _, opt := range opts {
		opt(session)
	}

	if session.selector == nil {
		session.selector = NewMoveSelector(nil)
	}

	if err := session.Reset(mode, difficulty); err != nil {
		return nil, err
	}

	return session, nil
}

// ApplyHumanMove - places the active player's stone at (row, col).
func (that *GameSession) ApplyHumanMove(row, col int) (entity.GameStatus, error) {
	if that.status.IsTerminal() {
		return that.status, apperror.ErrGameOver
	}

	if that.phase != PhaseAwaitingMove {
		return that.status, fmt.Errorf("%w: machine is thinking", apperror.ErrWrongTurn)
	}

	if err := that.board.Place(row, col, that.active); err != nil {
		return that.status, fmt.Errorf("invalid move: %w", err)
	}

	that.advance(entity.Move{Row: row, Col: col})

	return that.status, nil
}

// RequestMachineMove - lets the machine choose and play its move. Valid only in PhaseMachineThinking.
func (that *GameSession) RequestMachineMove() (entity.Move, entity.GameStatus, error) {
	if that.status.IsTerminal() {
		return entity.Move{}, that.status, apperror.ErrGameOver
	}

	if that.phase != PhaseMachineThinking {
		return entity.Move{}, that.status, fmt.Errorf("%w: waiting for %s", apperror.ErrWrongTurn, that.active)
	}

	move, err := that.selector.Select(&that.board, that.active, that.difficulty)
	if err != nil {
		return entity.Move{}, that.status, fmt.Errorf("machine failed to select move: %w", err)
	}

	if err = that.board.Place(move.Row, move.Col, that.active); err != nil {
		return entity.Move{}, that.status, fmt.Errorf("machine failed to place move: %w", err)
	}

	that.advance(move)

	return move, that.status, nil
}

// advance - updates status and turn after a stone landed on move.
func (that *GameSession) advance(move entity.Move) {
	that.history = append(that.history, move)
	that.status = evaluate(&that.board, move.Row, move.Col, that.active)

	switch that.status.Outcome {
	case entity.OutcomeWon:
		that.phase = PhaseWon
		return
	case entity.OutcomeDrawn:
		that.phase = PhaseDrawn
		return
	}

	that.active = that.active.Opponent()
	that.phase = PhaseAwaitingMove

	if that.mode == entity.ModeHumanVsMachine && that.active == MachinePlayer {
		that.phase = PhaseMachineThinking
	}
}

// Reset - clears the board and starts over with the given setup.
func (that *GameSession) Reset(mode entity.GameMode, difficulty entity.Difficulty) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	if err := difficulty.Validate(); err != nil {
		return err
	}

	that.board.Reset()
	that.mode = mode
	that.difficulty = difficulty
	that.active = entity.PlayerBlack
	that.phase = PhaseAwaitingMove
	that.status = entity.InProgress()
	that.history = nil

	return nil
}

// SetDifficulty - changes the machine level. The game restarts.
func (that *GameSession) SetDifficulty(level entity.Difficulty) error {
	return that.Reset(that.mode, level)
}

// SetMode - changes the mode. The game restarts.
func (that *GameSession) SetMode(mode entity.GameMode) error {
	return that.Reset(mode, that.difficulty)
}

// ToggleMode - switches between playing a human and the machine. The game restarts.
func (that *GameSession) ToggleMode() error {
	return that.SetMode(that.mode.Toggle())
}

func (that *GameSession) CurrentStatus() entity.GameStatus {
	return that.status
}

func (that *GameSession) Phase() Phase {
	return that.phase
}

func (that *GameSession) ActivePlayer() entity.Player {
	return that.active
}

func (that *GameSession) Mode() entity.GameMode {
	return that.mode
}

func (that *GameSession) Difficulty() entity.Difficulty {
	return that.difficulty
}

// History - moves applied since the last reset, oldest first.
func (that *GameSession) History() []entity.Move {
	history := make([]entity.Move, len(that.history))
	copy(history, that.history)

	return history
}

// Board - copy of the current board.
func (that *GameSession) Board() entity.Board {
	return that.board
}

// LastMove - the most recent move, false before the first one.
func (that *GameSession) LastMove() (entity.Move, bool) {
	if len(that.history) == 0 {
		return entity.Move{}, false
	}

	return that.history[len(that.history)-1], true
}

func (that *GameSession) State() State {
	state := State{
		Phase:        that.phase,
		ActivePlayer: that.active,
		Status:       that.status,
		Mode:         that.mode,
		Difficulty:   that.difficulty,
		Board:        that.board,
		Moves:        len(that.history),
	}

	if n := len(that.history); n > 0 {
		last := that.history[n-1]
		state.LastMove = &last
	}

	return state
}
