package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pixelgrid/snake-arena-api/internal/logger"
	"github.com/pixelgrid/snake-arena-api/internal/models"
	"github.com/pixelgrid/snake-arena-api/internal/services"
	"github.com/pixelgrid/snake-arena-api/internal/sessions"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, email, password, username string) (*models.User, string, error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Email
	// required: true
	// default: pixel@game.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: password123
	Password string `json:"password"`

	// Username, optional; a Player<N> name is generated when absent
	// default: PixelMaster
	Username string `json:"username"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Register a new player
// @Description Creates a new user account with a unique email and username, hashes the password, and opens a session. The session token is returned in a cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 200 {object} models.APIResponse "Envelope with the created user, or a conflict error"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, models.Fail("Invalid request body"))
			return
		}

		user, token, err := svc.Signup(r.Context(), req.Email, req.Password, req.Username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeJSON(w, models.Fail("Email already exists"))
			case errors.Is(err, services.ErrUsernameTaken):
				writeJSON(w, models.Fail("Username already taken"))
			default:
				logger.Log.Errorw("signup failed", "err", err)
				writeJSON(w, models.Fail("Internal server error"))
			}
			return
		}

		setSessionCookie(w, token)
		writeJSON(w, models.OK(user))
	}
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessions.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessions.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
