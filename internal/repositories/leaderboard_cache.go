package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pixelgrid/snake-arena-api/internal/logger"
	"github.com/pixelgrid/snake-arena-api/internal/models"
	"github.com/redis/go-redis/v9"
)

// LeaderboardCacheRepository keeps recently computed top-10 views in Redis so
// repeated leaderboard reads skip the database. Entries carry a TTL and the
// whole cache is invalidated on every score submission, so readers never see
// a board older than the latest accepted score.
type LeaderboardCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewLeaderboardCacheRepository(client *redis.Client, expiration time.Duration) *LeaderboardCacheRepository {
	return &LeaderboardCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func cacheKey(mode *models.GameMode) string {
	if mode == nil {
		return "leaderboard:all"
	}
	return fmt.Sprintf("leaderboard:%s", *mode)
}

// Get returns the cached entries for a mode filter, or nil on a cache miss.
func (r *LeaderboardCacheRepository) Get(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error) {
	key := cacheKey(mode)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Log.Infow("leaderboard cache get",
			"key", key,
			"error", err,
		)
		return nil, err
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		logger.Log.Infow("leaderboard cache decode",
			"key", key,
			"error", err,
		)
		return nil, err
	}

	return entries, nil
}

// Set stores the entries for a mode filter with the configured TTL.
func (r *LeaderboardCacheRepository) Set(ctx context.Context, mode *models.GameMode, entries []models.LeaderboardEntry) error {
	key := cacheKey(mode)

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("leaderboard cache set",
		"key", key,
		"entries", len(entries),
		"error", err,
	)

	return err
}

// Invalidate drops every cached leaderboard view. Called after each accepted
// score submission.
func (r *LeaderboardCacheRepository) Invalidate(ctx context.Context) error {
	keys := []string{
		cacheKey(nil),
	}
	for _, mode := range []models.GameMode{models.ModeWalls, models.ModePassThrough} {
		m := mode
		keys = append(keys, cacheKey(&m))
	}

	err := r.client.Del(ctx, keys...).Err()

	logger.Log.Infow("leaderboard cache invalidate",
		"keys", keys,
		"error", err,
	)

	return err
}
