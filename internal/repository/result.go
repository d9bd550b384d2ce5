package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entity.Result, error)
}

type resultRepository struct {
	conn *sql.DB
}

func NewResultRepository(conn *sql.DB) ResultRepository {
	return &resultRepository{
		conn: conn,
	}
}

func (that *resultRepository) Save(ctx context.Context, result *entity.Result) error {
	query := `INSERT INTO results (player_id, mode, difficulty, outcome, winner, moves, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := that.conn.ExecContext(ctx, query,
		result.PlayerID,
		string(result.Mode),
		int(result.Difficulty),
		string(result.Outcome),
		string(result.Winner),
		result.Moves,
		result.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("can't save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("can't get result id: %w", err)
	}

	result.ID = id

	return nil
}

// ListByPlayer - most recent results first.
func (that *resultRepository) ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entity.Result, error) {
	query := `SELECT id, player_id, mode, difficulty, outcome, winner, moves, finished_at
		FROM results WHERE player_id = ? ORDER BY finished_at DESC, id DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list results: %w", err)
	}
	defer rows.Close()

	results := make([]*entity.Result, 0)
	for rows.Next() {
		var (
			result     entity.Result
			mode       string
			difficulty int
			outcome    string
			winner     string
			finishedAt int64
		)

		if err = rows.Scan(&result.ID, &result.PlayerID, &mode, &difficulty, &outcome, &winner, &result.Moves, &finishedAt); err != nil {
			return nil, fmt.Errorf("can't scan result: %w", err)
		}

		result.Mode = entity.GameMode(mode)
		result.Difficulty = entity.Difficulty(difficulty)
		result.Outcome = entity.Outcome(outcome)
		result.Winner = entity.Player(winner)
		result.FinishedAt = time.UnixMilli(finishedAt).UTC()

		results = append(results, &result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read results: %w", err)
	}

	return results, nil
}
