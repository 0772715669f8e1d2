package models

import (
	"errors"
	"time"
)

// GameMode is the ruleset variant a game was played under.
type GameMode string

const (
	ModeWalls       GameMode = "walls"
	ModePassThrough GameMode = "pass-through"
)

// ErrInvalidGameMode is returned when parsing an unknown mode value.
var ErrInvalidGameMode = errors.New("invalid game mode")

// ParseGameMode validates a raw mode string coming from a request or a stored row.
func ParseGameMode(s string) (GameMode, error) {
	switch GameMode(s) {
	case ModeWalls, ModePassThrough:
		return GameMode(s), nil
	}
	return "", ErrInvalidGameMode
}

// GameStatus describes where a simulated game currently is in its lifecycle.
type GameStatus string

const (
	StatusIdle     GameStatus = "idle"
	StatusPlaying  GameStatus = "playing"
	StatusPaused   GameStatus = "paused"
	StatusGameOver GameStatus = "game-over"
)

// Direction is the snake's current heading.
type Direction string

const (
	DirectionUp    Direction = "UP"
	DirectionDown  Direction = "DOWN"
	DirectionLeft  Direction = "LEFT"
	DirectionRight Direction = "RIGHT"
)

// Position is a cell on the game grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GameState is a snapshot of one in-progress game.
type GameState struct {
	Snake     []Position `json:"snake"`
	Food      Position   `json:"food"`
	Direction Direction  `json:"direction"`
	Score     int        `json:"score"`
	Status    GameStatus `json:"status"`
	Mode      GameMode   `json:"mode"`
	Speed     int        `json:"speed"`
}

// ActivePlayer is a simulated in-progress game shown on the spectate view.
// It lives only in process memory and is never persisted.
type ActivePlayer struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	CurrentScore int       `json:"currentScore"`
	Mode         GameMode  `json:"mode"`
	GameState    GameState `json:"gameState"`
	StartedAt    time.Time `json:"startedAt"`
}
