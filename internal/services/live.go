package services

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pixelgrid/snake-arena-api/internal/models"
)

// ErrPlayerNotFound is returned for lookups of unknown active players.
var ErrPlayerNotFound = errors.New("player not found")

// LiveService simulates a set of "live" games for the spectate view. There is
// no real game engine behind it: a fixed roster is seeded at construction and
// every List call nudges the scores upward by a random amount. State is held
// only in memory behind a mutex and is lost on restart.
type LiveService struct {
	mu      sync.Mutex
	players []models.ActivePlayer
	rnd     *rand.Rand
}

var simulatedUsernames = []string{"SpeedySerpent", "CoilKing", "NeonViper", "GardenGhost"}

// NewLiveService seeds the simulated roster. The rand source is injected so
// tests can run deterministically.
func NewLiveService(rnd *rand.Rand) *LiveService {
	svc := &LiveService{rnd: rnd}

	now := time.Now()
	for _, username := range simulatedUsernames {
		state := svc.generateGameState()
		svc.players = append(svc.players, models.ActivePlayer{
			ID:           uuid.NewString(),
			Username:     username,
			CurrentScore: state.Score,
			Mode:         state.Mode,
			GameState:    state,
			StartedAt:    now,
		})
	}

	return svc
}

// generateGameState builds a plausible mid-game snapshot.
func (svc *LiveService) generateGameState() models.GameState {
	modes := []models.GameMode{models.ModeWalls, models.ModePassThrough}

	return models.GameState{
		Snake: []models.Position{
			{X: 10, Y: 10},
			{X: 9, Y: 10},
			{X: 8, Y: 10},
		},
		Food:      models.Position{X: svc.rnd.Intn(20), Y: svc.rnd.Intn(20)},
		Direction: models.DirectionRight,
		Score:     svc.rnd.Intn(501),
		Status:    models.StatusPlaying,
		Mode:      modes[svc.rnd.Intn(len(modes))],
		Speed:     150,
	}
}

// List returns every simulated player, first adding a random increment in
// [0,10] to each player's current score and embedded game score. Listing is
// what makes the games look live.
func (svc *LiveService) List() []models.ActivePlayer {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for i := range svc.players {
		svc.players[i].CurrentScore += svc.rnd.Intn(11)
		svc.players[i].GameState.Score += svc.rnd.Intn(11)
	}

	out := make([]models.ActivePlayer, len(svc.players))
	copy(out, svc.players)
	return out
}

// Get returns a single simulated player by ID without perturbing any scores;
// only List advances the simulation.
func (svc *LiveService) Get(id string) (*models.ActivePlayer, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for i := range svc.players {
		if svc.players[i].ID == id {
			p := svc.players[i]
			return &p, nil
		}
	}
	return nil, ErrPlayerNotFound
}
