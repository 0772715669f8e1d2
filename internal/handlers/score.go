package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pixelgrid/snake-arena-api/internal/logger"
	"github.com/pixelgrid/snake-arena-api/internal/middlewares"
	"github.com/pixelgrid/snake-arena-api/internal/models"
	"github.com/pixelgrid/snake-arena-api/internal/services"
)

// ScoreSubmitter defines the interface that the score service must implement.
type ScoreSubmitter interface {
	SubmitScore(ctx context.Context, user *models.UserDB, score int, mode models.GameMode) (*models.LeaderboardEntry, error)
}

// ScoreRequest represents the JSON body for a score submission
// swagger:model ScoreRequest
type ScoreRequest struct {
	// Final score of the finished game
	// required: true
	// default: 420
	Score int `json:"score"`

	// Game mode the score was earned in
	// required: true
	// enum: walls,pass-through
	// default: walls
	Mode string `json:"mode"`
}

// NewScoreHandler returns an HTTP handler for score submission. It requires
// the auth middleware to have placed the user in the request context and the
// transaction middleware to have opened a transaction.
// @Summary Submit a game score
// @Description Records a finished game's score, updates the player's aggregates, and returns the recorded entry with its overall rank.
// @Tags game
// @Accept json
// @Produce json
// @Param scoreRequest body handlers.ScoreRequest true "Score request"
// @Success 200 {object} models.APIResponse "Envelope with the recorded entry"
// @Security SessionAuth
// @Router /game/score [post]
func NewScoreHandler(svc ScoreSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			writeJSON(w, models.Fail("Must be logged in to submit score"))
			return
		}

		var req ScoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, models.Fail("Invalid request body"))
			return
		}

		mode, err := models.ParseGameMode(req.Mode)
		if err != nil {
			writeJSON(w, models.Fail("Invalid request body"))
			return
		}

		entry, err := svc.SubmitScore(r.Context(), user, req.Score, mode)
		if err != nil {
			middlewares.MarkRollback(r.Context())
			if errors.Is(err, services.ErrInvalidScore) {
				writeJSON(w, models.Fail("Score must be non-negative"))
				return
			}
			logger.Log.Errorw("score submission failed", "user_id", user.UserID, "err", err)
			writeJSON(w, models.Fail("Internal server error"))
			return
		}

		writeJSON(w, models.OK(entry))
	}
}
