package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pixelgrid/snake-arena-api/internal/logger"
	"github.com/pixelgrid/snake-arena-api/internal/models"
)

// Migrate creates the users and scores tables if they do not exist yet.
// Run once at startup before serving requests.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR NOT NULL UNIQUE,
			email VARCHAR NOT NULL UNIQUE,
			password_hash VARCHAR NOT NULL,
			high_score INTEGER NOT NULL DEFAULT 0,
			games_played INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS scores (
			id BIGSERIAL PRIMARY KEY,
			user_id UUID NOT NULL,
			username VARCHAR NOT NULL,
			score INTEGER NOT NULL,
			mode VARCHAR NOT NULL,
			date TIMESTAMP NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_scores_score ON scores (score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_user_id ON scores (user_id);
	`

	_, err := db.ExecContext(ctx, schema)

	logger.Log.Infow("schema migration", "error", err)

	return err
}

type seedUser struct {
	username    string
	email       string
	highScore   int
	gamesPlayed int
	createdAt   time.Time
	scoreMode   models.GameMode
	scoreDate   time.Time
}

// Seed inserts the demo users and their scores when the users table is empty.
// Seed passwords are pre-hashed "password123".
func Seed(ctx context.Context, db *sqlx.DB, passwordHash string) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return err
	}
	if count > 0 {
		logger.Log.Infow("seed skipped, users table not empty", "users", count)
		return nil
	}

	seeds := []seedUser{
		{
			username: "PixelMaster", email: "pixel@game.com",
			highScore: 1250, gamesPlayed: 45,
			createdAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			scoreMode: models.ModeWalls,
			scoreDate: time.Date(2024, 11, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			username: "NeonNinja", email: "neon@game.com",
			highScore: 980, gamesPlayed: 32,
			createdAt: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
			scoreMode: models.ModePassThrough,
			scoreDate: time.Date(2024, 11, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			username: "RetroGamer", email: "retro@game.com",
			highScore: 850, gamesPlayed: 28,
			createdAt: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			scoreMode: models.ModeWalls,
			scoreDate: time.Date(2024, 11, 23, 0, 0, 0, 0, time.UTC),
		},
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const insertUser = `
		INSERT INTO users (id, username, email, password_hash, high_score, games_played, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	const insertScore = `
		INSERT INTO scores (user_id, username, score, mode, date)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, s := range seeds {
		userID := uuid.New()
		if _, err := tx.ExecContext(ctx, insertUser,
			userID, s.username, s.email, passwordHash, s.highScore, s.gamesPlayed, s.createdAt); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insertScore,
			userID, s.username, s.highScore, s.scoreMode, s.scoreDate); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logger.Log.Infow("database seeded", "users", len(seeds))
	return nil
}
