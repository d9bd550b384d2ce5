package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/pkg"
)

const (
	sessionCookieName = "user_session"
	sessionCookieTTL  = 24 * time.Hour

	shutdownTimeout = 5 * time.Second
)

type uGame interface {
	GetOrCreateProfile(ctx context.Context, id string) (*entity.Profile, error)

	NewGame(ctx context.Context, playerID string, mode entity.GameMode, difficulty entity.Difficulty) (gomoku.State, error)
	State(playerID string) (gomoku.State, error)

	MakeTurn(ctx context.Context, playerID string, row, col int) (gomoku.State, error)
	MachineTurn(ctx context.Context, playerID string) (gomoku.State, error)

	Reset(playerID string) (gomoku.State, error)
	SetMode(ctx context.Context, playerID string, mode entity.GameMode) (gomoku.State, error)
	SetDifficulty(ctx context.Context, playerID string, level entity.Difficulty) (gomoku.State, error)

	JoinSession(playerID string)
	EndSession(playerID string)
}

type handlerFunc func(ctx context.Context, client *client, message *Message) error

type Server struct {
	logger *slog.Logger
	uGame  uGame

	// machineDelay is the pause before the machine's answer is pushed.
	machineDelay time.Duration
	upgrader     websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame, machineDelay time.Duration) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,

		machineDelay: machineDelay,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionTurn] = server.handleGameTurn
	server.handlers[actionReset] = server.handleReset
	server.handlers[actionMode] = server.handleMode
	server.handlers[actionDifficulty] = server.handleDifficulty
	server.handlers[actionState] = server.handleState

	return server
}

// Handler - routes /ws to the upgrader.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server. It stops when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket and serves it until it closes.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	sessionID, header := that.sessionCookie(req)

	conn, err := that.upgrader.Upgrade(writer, req, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	client := newClient(conn, sessionID)

	defer func() {
		client.stopMachine()

		if playerID := client.player(); playerID != "" {
			that.uGame.EndSession(playerID)
		}

		_ = conn.Close()
	}()

	log.Info("WebSocket connection established", "session", sessionID)

	if err = that.handleMessages(ctx, client); err != nil {
		log.Info("connection closed", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, client *client) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, reqBody, err := client.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)

			if err = client.sendError("", errMalformedMessage); err != nil {
				return err
			}

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)

			if err = client.sendError(message.Action, errUnknownAction); err != nil {
				return err
			}

			continue
		}

		if err = handler(ctx, client, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

// sessionCookie - reads the session cookie or issues a new one in the upgrade response.
func (that *Server) sessionCookie(req *http.Request) (string, http.Header) {
	log := that.logger.With("method", "sessionCookie")

	if cookie, err := req.Cookie(sessionCookieName); err == nil {
		if pkg.IsValidID(cookie.Value) {
			log.Debug("session cookie found", "cookie", cookie.Value)
			return cookie.Value, nil
		}

		log.Debug("session cookie is not valid, replacing it", "cookie", cookie.Value)
	}

	cookie := &http.Cookie{
		Name:    sessionCookieName,
		Value:   pkg.GenerateNewSessionID(),
		Expires: time.Now().Add(sessionCookieTTL),
		Path:    "/ws",
	}

	header := http.Header{}
	header.Add("Set-Cookie", cookie.String())

	log.Debug("session cookie not found, new one created", "cookie", cookie.Value)

	return cookie.Value, header
}
