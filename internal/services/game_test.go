package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pixelgrid/snake-arena-api/internal/models"
	"github.com/pixelgrid/snake-arena-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGameService_SubmitScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "PixelMaster", HighScore: 1250}
	submitDate := time.Date(2024, 11, 26, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		score     int
		mode      models.GameMode
		mockSetup func(sr *services.MockScoreReader, sw *services.MockScoreWriter, uw *services.MockUserStatsWriter, c *services.MockLeaderboardCache, k *services.MockKafkaWriter)
		wantRank  int
		wantErr   error
	}{
		{
			name:  "new top score gets rank 1",
			score: 1500,
			mode:  models.ModeWalls,
			mockSetup: func(sr *services.MockScoreReader, sw *services.MockScoreWriter, uw *services.MockUserStatsWriter, c *services.MockLeaderboardCache, k *services.MockKafkaWriter) {
				sw.EXPECT().Save(gomock.Any(), userID, "PixelMaster", 1500, models.ModeWalls).
					Return(&models.ScoreDB{ID: 42, UserID: userID, Username: "PixelMaster", Score: 1500, Mode: models.ModeWalls, Date: submitDate}, nil)
				uw.EXPECT().UpdateStats(gomock.Any(), userID, 1500).Return(nil)
				sr.EXPECT().CountHigher(gomock.Any(), 1500).Return(0, nil)
				c.EXPECT().Invalidate(gomock.Any()).Return(nil)
				k.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantRank: 1,
		},
		{
			name:  "rank counts strictly greater scores across modes",
			score: 900,
			mode:  models.ModePassThrough,
			mockSetup: func(sr *services.MockScoreReader, sw *services.MockScoreWriter, uw *services.MockUserStatsWriter, c *services.MockLeaderboardCache, k *services.MockKafkaWriter) {
				sw.EXPECT().Save(gomock.Any(), userID, "PixelMaster", 900, models.ModePassThrough).
					Return(&models.ScoreDB{ID: 43, UserID: userID, Username: "PixelMaster", Score: 900, Mode: models.ModePassThrough, Date: submitDate}, nil)
				uw.EXPECT().UpdateStats(gomock.Any(), userID, 900).Return(nil)
				sr.EXPECT().CountHigher(gomock.Any(), 900).Return(2, nil)
				c.EXPECT().Invalidate(gomock.Any()).Return(nil)
				k.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantRank: 3,
		},
		{
			name:      "negative score rejected",
			score:     -1,
			mode:      models.ModeWalls,
			mockSetup: func(sr *services.MockScoreReader, sw *services.MockScoreWriter, uw *services.MockUserStatsWriter, c *services.MockLeaderboardCache, k *services.MockKafkaWriter) {},
			wantErr:   services.ErrInvalidScore,
		},
		{
			name:  "score write failure surfaces",
			score: 100,
			mode:  models.ModeWalls,
			mockSetup: func(sr *services.MockScoreReader, sw *services.MockScoreWriter, uw *services.MockUserStatsWriter, c *services.MockLeaderboardCache, k *services.MockKafkaWriter) {
				sw.EXPECT().Save(gomock.Any(), userID, "PixelMaster", 100, models.ModeWalls).
					Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:  "stats update failure surfaces",
			score: 100,
			mode:  models.ModeWalls,
			mockSetup: func(sr *services.MockScoreReader, sw *services.MockScoreWriter, uw *services.MockUserStatsWriter, c *services.MockLeaderboardCache, k *services.MockKafkaWriter) {
				sw.EXPECT().Save(gomock.Any(), userID, "PixelMaster", 100, models.ModeWalls).
					Return(&models.ScoreDB{ID: 44, UserID: userID, Username: "PixelMaster", Score: 100, Mode: models.ModeWalls, Date: submitDate}, nil)
				uw.EXPECT().UpdateStats(gomock.Any(), userID, 100).Return(errors.New("stats error"))
			},
			wantErr: errors.New("stats error"),
		},
		{
			name:  "kafka failure does not fail submission",
			score: 200,
			mode:  models.ModeWalls,
			mockSetup: func(sr *services.MockScoreReader, sw *services.MockScoreWriter, uw *services.MockUserStatsWriter, c *services.MockLeaderboardCache, k *services.MockKafkaWriter) {
				sw.EXPECT().Save(gomock.Any(), userID, "PixelMaster", 200, models.ModeWalls).
					Return(&models.ScoreDB{ID: 45, UserID: userID, Username: "PixelMaster", Score: 200, Mode: models.ModeWalls, Date: submitDate}, nil)
				uw.EXPECT().UpdateStats(gomock.Any(), userID, 200).Return(nil)
				sr.EXPECT().CountHigher(gomock.Any(), 200).Return(5, nil)
				c.EXPECT().Invalidate(gomock.Any()).Return(nil)
				k.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			wantRank: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockScoreReader := services.NewMockScoreReader(ctrl)
			mockScoreWriter := services.NewMockScoreWriter(ctrl)
			mockStatsWriter := services.NewMockUserStatsWriter(ctrl)
			mockCache := services.NewMockLeaderboardCache(ctrl)
			mockKafka := services.NewMockKafkaWriter(ctrl)
			tt.mockSetup(mockScoreReader, mockScoreWriter, mockStatsWriter, mockCache, mockKafka)

			svc := services.NewGameService(mockScoreReader, mockScoreWriter, mockStatsWriter, mockCache, mockKafka)

			entry, err := svc.SubmitScore(context.Background(), user, tt.score, tt.mode)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, entry)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantRank, entry.Rank)
				assert.Equal(t, tt.score, entry.Score)
				assert.Equal(t, "PixelMaster", entry.Username)
				assert.Equal(t, "2024-11-26", entry.Date)
			}
		})
	}
}

func TestGameService_SubmitScoreWithoutCacheOrKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "NeonNinja"}

	mockScoreReader := services.NewMockScoreReader(ctrl)
	mockScoreWriter := services.NewMockScoreWriter(ctrl)
	mockStatsWriter := services.NewMockUserStatsWriter(ctrl)

	mockScoreWriter.EXPECT().Save(gomock.Any(), userID, "NeonNinja", 500, models.ModeWalls).
		Return(&models.ScoreDB{ID: 1, UserID: userID, Username: "NeonNinja", Score: 500, Mode: models.ModeWalls, Date: time.Now()}, nil)
	mockStatsWriter.EXPECT().UpdateStats(gomock.Any(), userID, 500).Return(nil)
	mockScoreReader.EXPECT().CountHigher(gomock.Any(), 500).Return(1, nil)

	svc := services.NewGameService(mockScoreReader, mockScoreWriter, mockStatsWriter, nil, nil)

	entry, err := svc.SubmitScore(context.Background(), user, 500, models.ModeWalls)
	assert.NoError(t, err)
	assert.Equal(t, 2, entry.Rank)
}

func TestGameService_Leaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walls := models.ModeWalls
	date := time.Date(2024, 11, 25, 0, 0, 0, 0, time.UTC)

	scores := []models.ScoreDB{
		{ID: 1, Username: "PixelMaster", Score: 1250, Mode: models.ModeWalls, Date: date},
		{ID: 3, Username: "RetroGamer", Score: 850, Mode: models.ModeWalls, Date: date},
	}

	t.Run("cache miss ranks by position and fills cache", func(t *testing.T) {
		mockScoreReader := services.NewMockScoreReader(ctrl)
		mockCache := services.NewMockLeaderboardCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), &walls).Return(nil, nil)
		mockScoreReader.EXPECT().Leaderboard(gomock.Any(), &walls).Return(scores, nil)
		mockCache.EXPECT().Set(gomock.Any(), &walls, gomock.Any()).Return(nil)

		svc := services.NewGameService(mockScoreReader, nil, nil, mockCache, nil)

		entries, err := svc.Leaderboard(context.Background(), &walls)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, "PixelMaster", entries[0].Username)
		assert.Equal(t, 2, entries[1].Rank)
		assert.Equal(t, "RetroGamer", entries[1].Username)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		mockScoreReader := services.NewMockScoreReader(ctrl)
		mockCache := services.NewMockLeaderboardCache(ctrl)

		cached := []models.LeaderboardEntry{
			{ID: "1", Username: "PixelMaster", Score: 1250, Mode: models.ModeWalls, Date: "2024-11-25", Rank: 1},
		}
		mockCache.EXPECT().Get(gomock.Any(), &walls).Return(cached, nil)

		svc := services.NewGameService(mockScoreReader, nil, nil, mockCache, nil)

		entries, err := svc.Leaderboard(context.Background(), &walls)
		assert.NoError(t, err)
		assert.Equal(t, cached, entries)
	})

	t.Run("cache error falls through to the store", func(t *testing.T) {
		mockScoreReader := services.NewMockScoreReader(ctrl)
		mockCache := services.NewMockLeaderboardCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), &walls).Return(nil, errors.New("redis down"))
		mockScoreReader.EXPECT().Leaderboard(gomock.Any(), &walls).Return(scores, nil)
		mockCache.EXPECT().Set(gomock.Any(), &walls, gomock.Any()).Return(errors.New("redis down"))

		svc := services.NewGameService(mockScoreReader, nil, nil, mockCache, nil)

		entries, err := svc.Leaderboard(context.Background(), &walls)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("store error surfaces", func(t *testing.T) {
		mockScoreReader := services.NewMockScoreReader(ctrl)

		mockScoreReader.EXPECT().Leaderboard(gomock.Any(), (*models.GameMode)(nil)).
			Return(nil, errors.New("db error"))

		svc := services.NewGameService(mockScoreReader, nil, nil, nil, nil)

		entries, err := svc.Leaderboard(context.Background(), nil)
		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}
