package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pixelgrid/snake-arena-api/internal/models"
	"github.com/pixelgrid/snake-arena-api/internal/services"
)

// ActivePlayerProvider defines the interface that the live-player service must implement.
type ActivePlayerProvider interface {
	List() []models.ActivePlayer
	Get(id string) (*models.ActivePlayer, error)
}

// NewLivePlayersHandler returns an HTTP handler listing players in ongoing games.
// @Summary List live players
// @Description Returns the players currently in a game, with their in-progress scores and board state.
// @Tags live
// @Produce json
// @Success 200 {object} models.APIResponse "Envelope with the active players"
// @Router /live/players [get]
func NewLivePlayersHandler(svc ActivePlayerProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, models.OK(svc.List()))
	}
}

// NewLivePlayerHandler returns an HTTP handler for a single live player.
// @Summary Get a live player
// @Description Returns one player's in-progress game by player id.
// @Tags live
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} models.APIResponse "Envelope with the player, or a not-found error"
// @Router /live/players/{playerID} [get]
func NewLivePlayerHandler(svc ActivePlayerProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, err := svc.Get(chi.URLParam(r, "playerID"))
		if err != nil {
			if errors.Is(err, services.ErrPlayerNotFound) {
				writeJSON(w, models.Fail("Player not found"))
				return
			}
			writeJSON(w, models.Fail("Internal server error"))
			return
		}

		writeJSON(w, models.OK(player))
	}
}
