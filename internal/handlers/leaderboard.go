package handlers

import (
	"context"
	"net/http"

	"github.com/pixelgrid/snake-arena-api/internal/logger"
	"github.com/pixelgrid/snake-arena-api/internal/models"
)

// LeaderboardProvider defines the interface that the leaderboard service must implement.
type LeaderboardProvider interface {
	Leaderboard(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error)
}

// NewLeaderboardHandler returns an HTTP handler for the leaderboard.
// @Summary Get the leaderboard
// @Description Returns the top ten scores, optionally filtered to a single game mode. Rank is the position within the returned list.
// @Tags game
// @Produce json
// @Param mode query string false "Game mode filter" Enums(walls, pass-through)
// @Success 200 {object} models.APIResponse "Envelope with the leaderboard entries"
// @Router /game/leaderboard [get]
func NewLeaderboardHandler(svc LeaderboardProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var mode *models.GameMode
		if raw := r.URL.Query().Get("mode"); raw != "" {
			parsed, err := models.ParseGameMode(raw)
			if err != nil {
				writeJSON(w, models.Fail("Invalid game mode"))
				return
			}
			mode = &parsed
		}

		entries, err := svc.Leaderboard(r.Context(), mode)
		if err != nil {
			logger.Log.Errorw("leaderboard lookup failed", "err", err)
			writeJSON(w, models.Fail("Internal server error"))
			return
		}

		writeJSON(w, models.OK(entries))
	}
}
