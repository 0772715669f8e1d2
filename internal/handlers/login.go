package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pixelgrid/snake-arena-api/internal/logger"
	"github.com/pixelgrid/snake-arena-api/internal/models"
	"github.com/pixelgrid/snake-arena-api/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: pixel@game.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: password123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log a player in
// @Description Verifies credentials and opens a session. A wrong email and a wrong password produce the same error. The session token is returned in a cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} models.APIResponse "Envelope with the user, or an invalid-credentials error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, models.Fail("Invalid request body"))
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeJSON(w, models.Fail("Invalid email or password"))
				return
			}
			logger.Log.Errorw("login failed", "err", err)
			writeJSON(w, models.Fail("Internal server error"))
			return
		}

		setSessionCookie(w, token)
		writeJSON(w, models.OK(user))
	}
}
