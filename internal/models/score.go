package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ScoreDB represents an immutable score record in the database.
// Username is denormalized at submission time and never re-joined.
type ScoreDB struct {
	ID       int64     `db:"id"`       // Autoincrement primary key
	UserID   uuid.UUID `db:"user_id"`  // Owning user
	Username string    `db:"username"` // Captured at submission time
	Score    int       `db:"score"`
	Mode     GameMode  `db:"mode"`
	Date     time.Time `db:"date"`
}

// LeaderboardEntry is a score annotated with its rank. Derived, not stored.
type LeaderboardEntry struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Score    int      `json:"score"`
	Mode     GameMode `json:"mode"`
	Date     string   `json:"date"` // YYYY-MM-DD
	Rank     int      `json:"rank"`
}

// ToEntry builds a leaderboard entry from a stored score with the given rank.
func (s *ScoreDB) ToEntry(rank int) *LeaderboardEntry {
	return &LeaderboardEntry{
		ID:       strconv.FormatInt(s.ID, 10),
		Username: s.Username,
		Score:    s.Score,
		Mode:     s.Mode,
		Date:     s.Date.Format("2006-01-02"),
		Rank:     rank,
	}
}

// ScoreEvent is the message published to Kafka for every accepted submission.
type ScoreEvent struct {
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Score     int    `json:"score"`
	Mode      string `json:"mode"`
	Timestamp int64  `json:"timestamp"`
}
