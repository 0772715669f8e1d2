package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
type UserDB struct {
	UserID       uuid.UUID `db:"id"`            // Primary key
	Username     string    `db:"username"`      // Unique username
	Email        string    `db:"email"`         // Unique email
	PasswordHash string    `db:"password_hash"` // bcrypt hash, never serialized outward
	HighScore    int       `db:"high_score"`    // Best score ever submitted
	GamesPlayed  int       `db:"games_played"`  // Incremented once per submission
	CreatedAt    time.Time `db:"created_at"`    // Creation timestamp
}

// User is the outward projection of a user record. The password hash is
// deliberately absent.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	HighScore   int       `json:"highScore"`
	GamesPlayed int       `json:"gamesPlayed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToUser projects a database row into the response shape.
func (u *UserDB) ToUser() *User {
	return &User{
		ID:          u.UserID.String(),
		Username:    u.Username,
		Email:       u.Email,
		HighScore:   u.HighScore,
		GamesPlayed: u.GamesPlayed,
		CreatedAt:   u.CreatedAt,
	}
}
