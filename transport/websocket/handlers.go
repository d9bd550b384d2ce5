package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

func decodePayload(message *Message) (Payload, error) {
	var payload Payload

	if len(message.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", errMalformedMessage, err)
	}

	return payload, nil
}

func (that *Server) handleConnect(ctx context.Context, client *client, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return client.sendError(msg.Action, err)
	}

	playerID := client.sessionID
	if payloadReq.Player != nil && payloadReq.Player.ID != "" {
		playerID = payloadReq.Player.ID
	}

	profile, err := that.uGame.GetOrCreateProfile(ctx, playerID)
	if err != nil {
		log.Error("failed to create or get profile", "error", err)
		return client.sendError(msg.Action, err)
	}

	if previous := client.player(); previous != profile.ID {
		if previous != "" {
			client.stopMachine()
			that.uGame.EndSession(previous)
		}

		that.uGame.JoinSession(profile.ID)
		client.setPlayer(profile.ID)
	}

	payloadResp := Payload{
		Player: profile,
	}

	if state, err := that.uGame.State(profile.ID); err == nil {
		payloadResp.Game = newGameView(state)
	}

	if err = client.sendMessage(msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "player", profile.ID)

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, client *client, msg *Message) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		return client.sendError(msg.Action, err)
	}

	return that.respond(client, msg.Action, func(playerID string) (gomoku.State, error) {
		return that.uGame.NewGame(ctx, playerID, payloadReq.Mode, payloadReq.Difficulty)
	})
}

func (that *Server) handleGameTurn(ctx context.Context, client *client, msg *Message) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		return client.sendError(msg.Action, err)
	}

	if payloadReq.Move == nil {
		return client.sendError(msg.Action, errMoveRequired)
	}

	return that.respond(client, msg.Action, func(playerID string) (gomoku.State, error) {
		return that.uGame.MakeTurn(ctx, playerID, payloadReq.Move.Row, payloadReq.Move.Col)
	})
}

func (that *Server) handleReset(_ context.Context, client *client, msg *Message) error {
	return that.respond(client, msg.Action, that.uGame.Reset)
}

// handleMode - an empty mode toggles between playing a human and the machine.
func (that *Server) handleMode(ctx context.Context, client *client, msg *Message) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		return client.sendError(msg.Action, err)
	}

	return that.respond(client, msg.Action, func(playerID string) (gomoku.State, error) {
		return that.uGame.SetMode(ctx, playerID, payloadReq.Mode)
	})
}

func (that *Server) handleDifficulty(ctx context.Context, client *client, msg *Message) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		return client.sendError(msg.Action, err)
	}

	return that.respond(client, msg.Action, func(playerID string) (gomoku.State, error) {
		return that.uGame.SetDifficulty(ctx, playerID, payloadReq.Difficulty)
	})
}

func (that *Server) handleState(_ context.Context, client *client, msg *Message) error {
	return that.respond(client, msg.Action, that.uGame.State)
}

// respond - runs op for the connected player, sends the resulting game and schedules the machine if it is its turn.
func (that *Server) respond(client *client, action string, op func(playerID string) (gomoku.State, error)) error {
	playerID := client.player()
	if playerID == "" {
		return client.sendError(action, errNotConnected)
	}

	// any pending machine move belongs to the previous state
	client.stopMachine()

	state, err := op(playerID)
	if err != nil {
		payloadResp := Payload{Error: errorMessage(err)}
		if !errors.Is(err, apperror.ErrNoActiveGame) {
			payloadResp.Game = newGameView(state)
		}

		if sendErr := client.sendMessage(action, payloadResp); sendErr != nil {
			return fmt.Errorf("failed to send response: %w", sendErr)
		}

		return err
	}

	if err = client.sendMessage(action, Payload{Game: newGameView(state)}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	that.scheduleMachineIfThinking(client, playerID, state)

	return nil
}

// scheduleMachineIfThinking - pushes the machine's move after the thinking delay.
func (that *Server) scheduleMachineIfThinking(client *client, playerID string, state gomoku.State) {
	if state.Phase != gomoku.PhaseMachineThinking {
		return
	}

	client.scheduleMachine(that.machineDelay, func() {
		log := that.logger.With("method", "machineMove", "player", playerID)

		// the connection context may be gone by now, the move itself is in memory
		next, err := that.uGame.MachineTurn(context.Background(), playerID)
		if err != nil {
			log.Error("failed to make machine move", "error", err)
			return
		}

		if err = client.sendMessage(actionMachine, Payload{Game: newGameView(next), Move: next.LastMove}); err != nil {
			log.Error("failed to send machine move", "error", err)
		}
	})
}
