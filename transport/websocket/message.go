package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

const (
	actionConnect    = "connect"
	actionNewGame    = "game:new"
	actionTurn       = "game:turn"
	actionMachine    = "game:machine"
	actionReset      = "game:reset"
	actionMode       = "game:mode"
	actionDifficulty = "game:difficulty"
	actionState      = "game:state"
)

const writeTimeout = 10 * time.Second

var (
	errMalformedMessage = errors.New("malformed message")
	errUnknownAction    = errors.New("unknown action")
	errNotConnected     = errors.New("connect first")
	errMoveRequired     = errors.New("move is required")
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Player     *entity.Profile   `json:"player,omitempty"`
	Game       *GameView         `json:"game,omitempty"`
	Move       *entity.Move      `json:"move,omitempty"`
	Mode       entity.GameMode   `json:"mode,omitempty"`
	Difficulty entity.Difficulty `json:"difficulty,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// GameView is the game as the client renders it.
type GameView struct {
	gomoku.State
	Label string `json:"label"`
}

func newGameView(state gomoku.State) *GameView {
	return &GameView{
		State: state,
		Label: state.Label(),
	}
}

// client is one websocket connection. Writes come from the read loop and from machine timers.
type client struct {
	conn      *websocket.Conn
	sessionID string

	writeMu sync.Mutex

	mu       sync.Mutex
	playerID string
	machine  *time.Timer
}

func newClient(conn *websocket.Conn, sessionID string) *client {
	return &client{
		conn:      conn,
		sessionID: sessionID,
	}
}

func (that *client) player() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.playerID
}

func (that *client) setPlayer(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.playerID = id
}

// scheduleMachine - replaces any pending machine move with fn after delay.
func (that *client) scheduleMachine(delay time.Duration, fn func()) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.machine != nil {
		that.machine.Stop()
	}

	that.machine = time.AfterFunc(delay, fn)
}

func (that *client) stopMachine() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.machine != nil {
		that.machine.Stop()
		that.machine = nil
	}
}

func (that *client) sendMessage(action string, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err = that.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *client) sendError(action string, err error) error {
	return that.sendMessage(action, Payload{Error: errorMessage(err)})
}

// errorMessage - user facing text for err.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrOutOfBounds),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameOver),
		errors.Is(err, apperror.ErrWrongTurn),
		errors.Is(err, apperror.ErrInvalidDifficulty),
		errors.Is(err, apperror.ErrInvalidMode),
		errors.Is(err, apperror.ErrNoActiveGame),
		errors.Is(err, errMalformedMessage),
		errors.Is(err, errUnknownAction),
		errors.Is(err, errNotConnected),
		errors.Is(err, errMoveRequired):
		return rootMessage(err)
	default:
		return "internal error"
	}
}

// rootMessage - message of the innermost wrapped error.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}

		err = next
	}
}
