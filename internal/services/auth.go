package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pixelgrid/snake-arena-api/internal/logger"
	"github.com/pixelgrid/snake-arena-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	Count(ctx context.Context) (int, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error)
}

// SessionStore manages opaque session tokens.
type SessionStore interface {
	Create(userID uuid.UUID) string
	Resolve(token string) (uuid.UUID, bool)
	Delete(token string)
}

// AuthService handles signup, login, logout and session resolution.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionStore) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
	}
}

// Signup registers a new user and opens a session for it. When no username is
// supplied one is derived from the current user count, matching the frontend's
// optional-username signup form.
func (svc *AuthService) Signup(ctx context.Context, email, password, username string) (*models.User, string, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailAlreadyExists
	}

	if username != "" {
		taken, err := svc.reader.GetByUsername(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to check username", "err", err)
			return nil, "", err
		}
		if taken != nil {
			return nil, "", ErrUsernameTaken
		}
	} else {
		count, err := svc.reader.Count(ctx)
		if err != nil {
			logger.Log.Errorw("failed to count users", "err", err)
			return nil, "", err
		}
		username = fmt.Sprintf("Player%d", count)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.writer.Save(ctx, username, email, string(hashed))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token := svc.sessions.Create(user.UserID)
	return user.ToUser(), token, nil
}

// Login authenticates a user by email and password and opens a session.
// Unknown email and wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := svc.sessions.Create(user.UserID)
	return user.ToUser(), token, nil
}

// Logout deletes the session for the given token. Idempotent.
func (svc *AuthService) Logout(ctx context.Context, token string) {
	svc.sessions.Delete(token)
}

// CurrentUser resolves a session token to its user.
func (svc *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	userID, ok := svc.sessions.Resolve(token)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get session user", "err", err)
		return nil, err
	}
	if user == nil {
		// Session outlived its user row
		return nil, ErrNotAuthenticated
	}

	return user.ToUser(), nil
}

// ResolveUser returns the full database row for a session token. Used by the
// auth middleware to hand the authenticated user to downstream handlers.
func (svc *AuthService) ResolveUser(ctx context.Context, token string) (*models.UserDB, error) {
	userID, ok := svc.sessions.Resolve(token)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}
