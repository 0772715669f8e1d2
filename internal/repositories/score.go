package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pixelgrid/snake-arena-api/internal/logger"
	"github.com/pixelgrid/snake-arena-api/internal/models"
)

// ScoreReadRepository handles score read operations.
type ScoreReadRepository struct {
	db *sqlx.DB
}

func NewScoreReadRepository(db *sqlx.DB) *ScoreReadRepository {
	return &ScoreReadRepository{db: db}
}

// Leaderboard returns the stored scores ordered by score descending, at most
// ten rows. A non-nil mode restricts the result to that mode.
func (r *ScoreReadRepository) Leaderboard(ctx context.Context, mode *models.GameMode) ([]models.ScoreDB, error) {
	query := `
		SELECT id, user_id, username, score, mode, date
		FROM scores
	`
	var args []any
	if mode != nil {
		query += ` WHERE mode = $1`
		args = append(args, *mode)
	}
	query += ` ORDER BY score DESC LIMIT 10`

	var scores []models.ScoreDB
	err := r.db.SelectContext(ctx, &scores, query, args...)

	logger.Log.Infow("leaderboard query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(scores),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return scores, nil
}

// CountHigher counts stored scores strictly greater than the given value,
// across every mode. Used for the submission-time rank.
func (r *ScoreReadRepository) CountHigher(ctx context.Context, score int) (int, error) {
	const query = `SELECT COUNT(*) FROM scores WHERE score > $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, score)

	logger.Log.Infow("score count query",
		"query", query,
		"args", score,
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return count, nil
}

// ScoreWriteRepository handles score write operations.
type ScoreWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewScoreWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ScoreWriteRepository {
	return &ScoreWriteRepository{db: db, txGetter: txGetter}
}

func (r *ScoreWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save appends a new immutable score record and returns it with the
// database-assigned id and date. Score rows are never updated or deleted.
func (r *ScoreWriteRepository) Save(ctx context.Context, userID uuid.UUID, username string, score int, mode models.GameMode) (*models.ScoreDB, error) {
	const query = `
		INSERT INTO scores (user_id, username, score, mode, date)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, username, score, mode, date
	`
	args := []any{userID, username, score, mode}

	var saved models.ScoreDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)

	logger.Log.Infow("score insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}
