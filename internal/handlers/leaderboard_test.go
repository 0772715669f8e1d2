package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pixelgrid/snake-arena-api/internal/models"
)

func TestLeaderboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLeaderboardProvider(ctrl)

	entries := []models.LeaderboardEntry{
		{ID: "3", Username: "PixelMaster", Score: 850, Mode: models.ModeWalls, Date: "2026-08-28", Rank: 1},
		{ID: "7", Username: "NeonNinja", Score: 610, Mode: models.ModePassThrough, Date: "2026-08-29", Rank: 2},
	}

	walls := models.ModeWalls

	tests := []struct {
		name        string
		target      string
		mockSetup   func()
		wantSuccess bool
		wantError   *string
		wantEntries []models.LeaderboardEntry
	}{
		{
			name:   "all modes",
			target: "/api/game/leaderboard",
			mockSetup: func() {
				mockSvc.EXPECT().
					Leaderboard(gomock.Any(), (*models.GameMode)(nil)).
					Return(entries, nil)
			},
			wantSuccess: true,
			wantEntries: entries,
		},
		{
			name:   "filtered by mode",
			target: "/api/game/leaderboard?mode=walls",
			mockSetup: func() {
				mockSvc.EXPECT().
					Leaderboard(gomock.Any(), &walls).
					Return(entries[:1], nil)
			},
			wantSuccess: true,
			wantEntries: entries[:1],
		},
		{
			name:        "unknown mode",
			target:      "/api/game/leaderboard?mode=portal",
			mockSetup:   func() {},
			wantSuccess: false,
			wantError:   strPtr("Invalid game mode"),
		},
		{
			name:   "internal error",
			target: "/api/game/leaderboard",
			mockSetup: func() {
				mockSvc.EXPECT().
					Leaderboard(gomock.Any(), (*models.GameMode)(nil)).
					Return(nil, errors.New("database error"))
			},
			wantSuccess: false,
			wantError:   strPtr("Internal server error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler := NewLeaderboardHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var resp struct {
				Success bool                      `json:"success"`
				Error   *string                   `json:"error"`
				Data    []models.LeaderboardEntry `json:"data"`
			}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantSuccess, resp.Success)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, tt.wantEntries, resp.Data)
		})
	}
}
