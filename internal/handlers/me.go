package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/pixelgrid/snake-arena-api/internal/logger"
	"github.com/pixelgrid/snake-arena-api/internal/models"
	"github.com/pixelgrid/snake-arena-api/internal/services"
	"github.com/pixelgrid/snake-arena-api/internal/sessions"
)

// CurrentUserer defines the interface that the session-lookup service must implement.
type CurrentUserer interface {
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

// NewMeHandler returns an HTTP handler for the current-user endpoint.
// @Summary Get the current player
// @Description Resolves the session token from the Authorization header or cookie and returns the player it belongs to.
// @Tags auth
// @Produce json
// @Success 200 {object} models.APIResponse "Envelope with the user, or a not-authenticated error"
// @Router /auth/me [get]
func NewMeHandler(svc CurrentUserer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := sessions.TokenFromRequest(r)
		if err != nil {
			writeJSON(w, models.Fail("Not authenticated"))
			return
		}

		user, err := svc.CurrentUser(r.Context(), token)
		if err != nil {
			if errors.Is(err, services.ErrNotAuthenticated) {
				writeJSON(w, models.Fail("Not authenticated"))
				return
			}
			logger.Log.Errorw("current user lookup failed", "err", err)
			writeJSON(w, models.Fail("Internal server error"))
			return
		}

		writeJSON(w, models.OK(user))
	}
}
