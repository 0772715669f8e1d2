package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pixelgrid/snake-arena-api/internal/logger"
	"github.com/pixelgrid/snake-arena-api/internal/models"
	"github.com/segmentio/kafka-go"
)

// ErrInvalidScore is returned when a submission carries a negative score.
var ErrInvalidScore = errors.New("score must be non-negative")

// ScoreReader defines read operations for stored scores.
type ScoreReader interface {
	Leaderboard(ctx context.Context, mode *models.GameMode) ([]models.ScoreDB, error)
	CountHigher(ctx context.Context, score int) (int, error)
}

// ScoreWriter defines write operations for stored scores.
type ScoreWriter interface {
	Save(ctx context.Context, userID uuid.UUID, username string, score int, mode models.GameMode) (*models.ScoreDB, error)
}

// UserStatsWriter applies a submission to the user aggregates.
type UserStatsWriter interface {
	UpdateStats(ctx context.Context, userID uuid.UUID, score int) error
}

// LeaderboardCache caches computed leaderboard views.
type LeaderboardCache interface {
	Get(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error)
	Set(ctx context.Context, mode *models.GameMode, entries []models.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// GameService handles score submission and leaderboard reads.
type GameService struct {
	scoreReader ScoreReader
	scoreWriter ScoreWriter
	statsWriter UserStatsWriter
	cache       LeaderboardCache
	kafkaWriter KafkaWriter
}

// NewGameService creates a new GameService. cache and kafkaWriter may be nil;
// the service then skips caching and event publishing.
func NewGameService(
	scoreReader ScoreReader,
	scoreWriter ScoreWriter,
	statsWriter UserStatsWriter,
	cache LeaderboardCache,
	kafkaWriter KafkaWriter,
) *GameService {
	return &GameService{
		scoreReader: scoreReader,
		scoreWriter: scoreWriter,
		statsWriter: statsWriter,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// publishScoreEvent publishes an accepted submission to Kafka. Best effort:
// failures are logged, never surfaced to the player.
func (svc *GameService) publishScoreEvent(ctx context.Context, event models.ScoreEvent) {
	if svc.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal score event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish score event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("score event published", "event_id", event.EventID, "score", event.Score)
	}
}

// SubmitScore records a score for an authenticated user and returns the
// leaderboard entry with its submission-time rank. The score insert and the
// user aggregate update run inside the caller's request transaction, so they
// commit or roll back together. The rank counts strictly greater scores
// across every mode.
func (svc *GameService) SubmitScore(ctx context.Context, user *models.UserDB, score int, mode models.GameMode) (*models.LeaderboardEntry, error) {
	if score < 0 {
		return nil, ErrInvalidScore
	}

	saved, err := svc.scoreWriter.Save(ctx, user.UserID, user.Username, score, mode)
	if err != nil {
		logger.Log.Errorw("failed to save score", "user_id", user.UserID, "score", score, "error", err)
		return nil, err
	}

	if err := svc.statsWriter.UpdateStats(ctx, user.UserID, score); err != nil {
		logger.Log.Errorw("failed to update user stats", "user_id", user.UserID, "error", err)
		return nil, err
	}

	higher, err := svc.scoreReader.CountHigher(ctx, score)
	if err != nil {
		logger.Log.Errorw("failed to compute rank", "score", score, "error", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Invalidate(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate leaderboard cache", "error", err)
		}
	}

	svc.publishScoreEvent(ctx, models.ScoreEvent{
		EventID:   uuid.NewString(),
		UserID:    user.UserID.String(),
		Username:  user.Username,
		Score:     score,
		Mode:      string(mode),
		Timestamp: time.Now().Unix(),
	})

	return saved.ToEntry(higher + 1), nil
}

// Leaderboard returns the top-10 entries, optionally filtered by mode. Rank
// here is the 1-based position within the returned filtered view, which is
// intentionally not the same computation as the submission-time rank.
func (svc *GameService) Leaderboard(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, mode)
		if err != nil {
			logger.Log.Errorw("leaderboard cache read failed", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	scores, err := svc.scoreReader.Leaderboard(ctx, mode)
	if err != nil {
		logger.Log.Errorw("failed to query leaderboard", "error", err)
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(scores))
	for i, s := range scores {
		entries = append(entries, *s.ToEntry(i + 1))
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, mode, entries); err != nil {
			logger.Log.Errorw("leaderboard cache write failed", "error", err)
		}
	}

	return entries, nil
}
