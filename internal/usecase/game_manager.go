package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/pkg"
)

const (
	defaultResultsLimit = 20
	maxResultsLimit     = 100
)

type profileRepo interface {
	CreateOrUpdate(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entity.Result, error)
}

// Settings is the game setup used when a player has no preference yet.
type Settings struct {
	Mode       entity.GameMode
	Difficulty entity.Difficulty
}

// GameManager keeps one in-memory session per connected player.
// Several connections may play the same player; the session lives until the last one leaves.
// Sessions are guarded by a single mutex, repositories are called outside of it.
type GameManager struct {
	logger      *slog.Logger
	profileRepo profileRepo
	resultRepo  resultRepo

	defaults Settings
	options  []gomoku.Option

	mu       sync.Mutex
	sessions map[string]*gomoku.GameSession
	holders  map[string]int
}

func NewGameManager(logger *slog.Logger, profileRepo profileRepo, resultRepo resultRepo, defaults Settings, options ...gomoku.Option) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		profileRepo: profileRepo,
		resultRepo:  resultRepo,

		defaults: defaults,
		options:  options,

		sessions: make(map[string]*gomoku.GameSession),
		holders:  make(map[string]int),
	}
}

// GetOrCreateProfile - returns the stored profile or creates one. An empty id gets a fresh ID.
func (that *GameManager) GetOrCreateProfile(ctx context.Context, id string) (*entity.Profile, error) {
	if id != "" {
		profile, err := that.profileRepo.GetByID(ctx, id)
		if err == nil {
			return profile, nil
		}

		if !errors.Is(err, apperror.ErrNotFound) {
			return nil, fmt.Errorf("failed to get profile by id: %w", err)
		}
	} else {
		id = pkg.GeneratePlayerID()
	}

	profile := &entity.Profile{
		ID:         id,
		Mode:       that.defaults.Mode,
		Difficulty: that.defaults.Difficulty,
	}

	if err := that.profileRepo.CreateOrUpdate(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

func (that *GameManager) GetProfile(ctx context.Context, id string) (*entity.Profile, error) {
	profile, err := that.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// ListResults - recent finished games of the player, newest first.
func (that *GameManager) ListResults(ctx context.Context, playerID string, limit int) ([]*entity.Result, error) {
	if limit <= 0 || limit > maxResultsLimit {
		limit = defaultResultsLimit
	}

	results, err := that.resultRepo.ListByPlayer(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return results, nil
}

// NewGame - starts a game for the player. Zero mode or difficulty falls back to the player's preference.
func (that *GameManager) NewGame(ctx context.Context, playerID string, mode entity.GameMode, difficulty entity.Difficulty) (gomoku.State, error) {
	profile, err := that.GetOrCreateProfile(ctx, playerID)
	if err != nil {
		return gomoku.State{}, err
	}

	if mode == "" {
		mode = that.preferredMode(profile)
	}

	if difficulty == 0 {
		difficulty = that.preferredDifficulty(profile)
	}

	session, err := gomoku.NewGameSession(mode, difficulty, that.options...)
	if err != nil {
		return gomoku.State{}, fmt.Errorf("failed to create game: %w", err)
	}

	that.mu.Lock()
	that.sessions[profile.ID] = session
	state := session.State()
	that.mu.Unlock()

	that.savePreferences(ctx, profile.ID, state)

	return state, nil
}

// State - current state of the player's game.
func (that *GameManager) State(playerID string) (gomoku.State, error) {
	return that.withSession(playerID, func(*gomoku.GameSession) error {
		return nil
	})
}

// MakeTurn - applies the player's move. A finished game is recorded.
func (that *GameManager) MakeTurn(ctx context.Context, playerID string, row, col int) (gomoku.State, error) {
	state, err := that.withSession(playerID, func(session *gomoku.GameSession) error {
		_, err := session.ApplyHumanMove(row, col)
		return err
	})
	if err != nil {
		return state, fmt.Errorf("failed make turn: %w", err)
	}

	if state.Status.IsTerminal() {
		that.recordResult(ctx, playerID, state)
	}

	return state, nil
}

// MachineTurn - lets the machine answer in the player's game.
func (that *GameManager) MachineTurn(ctx context.Context, playerID string) (gomoku.State, error) {
	log := that.logger.With("method", "MachineTurn", "player", playerID)

	var move entity.Move
	state, err := that.withSession(playerID, func(session *gomoku.GameSession) error {
		var err error
		move, _, err = session.RequestMachineMove()
		return err
	})
	if err != nil {
		log.Error("machine move failed", "error", err)
		return state, fmt.Errorf("failed machine turn: %w", err)
	}

	log.Debug("machine moved", "move", move.String(), "difficulty", int(state.Difficulty))

	if state.Status.IsTerminal() {
		that.recordResult(ctx, playerID, state)
	}

	return state, nil
}

// Reset - restarts the player's game with the same setup.
func (that *GameManager) Reset(playerID string) (gomoku.State, error) {
	state, err := that.withSession(playerID, func(session *gomoku.GameSession) error {
		return session.Reset(session.Mode(), session.Difficulty())
	})
	if err != nil {
		return state, fmt.Errorf("failed to reset game: %w", err)
	}

	return state, nil
}

// SetMode - switches the mode and restarts. An empty mode toggles the current one.
func (that *GameManager) SetMode(ctx context.Context, playerID string, mode entity.GameMode) (gomoku.State, error) {
	state, err := that.withSession(playerID, func(session *gomoku.GameSession) error {
		if mode == "" {
			return session.ToggleMode()
		}

		return session.SetMode(mode)
	})
	if err != nil {
		return state, fmt.Errorf("failed to set mode: %w", err)
	}

	that.savePreferences(ctx, playerID, state)

	return state, nil
}

// SetDifficulty - changes the machine level and restarts.
func (that *GameManager) SetDifficulty(ctx context.Context, playerID string, level entity.Difficulty) (gomoku.State, error) {
	state, err := that.withSession(playerID, func(session *gomoku.GameSession) error {
		return session.SetDifficulty(level)
	})
	if err != nil {
		return state, fmt.Errorf("failed to set difficulty: %w", err)
	}

	that.savePreferences(ctx, playerID, state)

	return state, nil
}

// JoinSession - registers one more connection playing as the player.
func (that *GameManager) JoinSession(playerID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.holders[playerID]++
}

// EndSession - releases one connection of the player. The in-memory game is dropped with the last one.
func (that *GameManager) EndSession(playerID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.holders[playerID] > 1 {
		that.holders[playerID]--
		return
	}

	delete(that.holders, playerID)
	delete(that.sessions, playerID)
}

// withSession - runs fn on the player's session under the lock and returns the resulting state.
func (that *GameManager) withSession(playerID string, fn func(session *gomoku.GameSession) error) (gomoku.State, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, ok := that.sessions[playerID]
	if !ok {
		return gomoku.State{}, apperror.ErrNoActiveGame
	}

	err := fn(session)

	return session.State(), err
}

func (that *GameManager) preferredMode(profile *entity.Profile) entity.GameMode {
	if profile.Mode.Validate() == nil {
		return profile.Mode
	}

	return that.defaults.Mode
}

func (that *GameManager) preferredDifficulty(profile *entity.Profile) entity.Difficulty {
	if profile.Difficulty.Validate() == nil {
		return profile.Difficulty
	}

	return that.defaults.Difficulty
}

// savePreferences - remembers the setup of the player's game. Failures are only logged.
func (that *GameManager) savePreferences(ctx context.Context, playerID string, state gomoku.State) {
	log := that.logger.With("method", "savePreferences", "player", playerID)

	profile, err := that.profileRepo.GetByID(ctx, playerID)
	if err != nil {
		log.Error("failed to get profile", "error", err)
		return
	}

	if profile.Mode == state.Mode && profile.Difficulty == state.Difficulty {
		return
	}

	profile.Mode = state.Mode
	profile.Difficulty = state.Difficulty

	if err = that.profileRepo.CreateOrUpdate(ctx, profile); err != nil {
		log.Error("failed to update profile", "error", err)
	}
}

// recordResult - stores the outcome and, against the machine, updates the player's score.
func (that *GameManager) recordResult(ctx context.Context, playerID string, state gomoku.State) {
	log := that.logger.With("method", "recordResult", "player", playerID)

	result := &entity.Result{
		PlayerID:   playerID,
		Mode:       state.Mode,
		Difficulty: state.Difficulty,
		Outcome:    state.Status.Outcome,
		Winner:     state.Status.Winner,
		Moves:      state.Moves,
		FinishedAt: time.Now().UTC(),
	}

	if err := that.resultRepo.Save(ctx, result); err != nil {
		log.Error("failed to save result", "error", err)
	}

	if state.Mode != entity.ModeHumanVsMachine {
		log.Info("game finished", "status", state.Status.String())
		return
	}

	profile, err := that.profileRepo.GetByID(ctx, playerID)
	if err != nil {
		log.Error("failed to get profile", "error", err)
		return
	}

	profile.Record(state.Status, gomoku.MachinePlayer.Opponent())

	if err = that.profileRepo.CreateOrUpdate(ctx, profile); err != nil {
		log.Error("failed to update profile", "error", err)
		return
	}

	log.Info("game finished", "status", state.Status.String(), "wins", profile.Wins, "losses", profile.Losses, "draws", profile.Draws)
}
