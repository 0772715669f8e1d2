package handlers

import (
	"context"
	"net/http"

	"github.com/pixelgrid/snake-arena-api/internal/models"
	"github.com/pixelgrid/snake-arena-api/internal/sessions"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string)
}

// NewLogoutHandler returns an HTTP handler for user logout.
// @Summary Log a player out
// @Description Invalidates the current session token, if any, and clears the session cookie. Succeeds even without a session.
// @Tags auth
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /auth/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token, err := sessions.TokenFromRequest(r); err == nil {
			svc.Logout(r.Context(), token)
		}

		clearSessionCookie(w)
		writeJSON(w, models.OK(map[string]string{"message": "Logged out"}))
	}
}
