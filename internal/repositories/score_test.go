package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pixelgrid/snake-arena-api/internal/models"
)

func setupScorePostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	assert.NoError(t, Migrate(context.Background(), db))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestScoreRepositories(t *testing.T) {
	db, teardown := setupScorePostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	writeRepo := NewScoreWriteRepository(db, nil)
	readRepo := NewScoreReadRepository(db)
	ctx := context.Background()

	owner, err := userRepo.Save(ctx, "erin", "erin@example.com", "hash")
	assert.NoError(t, err)

	scores := []struct {
		score int
		mode  models.GameMode
	}{
		{300, models.ModeWalls},
		{150, models.ModePassThrough},
		{500, models.ModeWalls},
		{150, models.ModeWalls},
	}
	for _, s := range scores {
		saved, err := writeRepo.Save(ctx, owner.UserID, owner.Username, s.score, s.mode)
		assert.NoError(t, err)
		assert.NotZero(t, saved.ID)
		assert.Equal(t, "erin", saved.Username)
	}

	t.Run("LeaderboardAllModes", func(t *testing.T) {
		rows, err := readRepo.Leaderboard(ctx, nil)
		assert.NoError(t, err)
		assert.Len(t, rows, 4)
		assert.Equal(t, 500, rows[0].Score)
		assert.Equal(t, 300, rows[1].Score)
	})

	t.Run("LeaderboardByMode", func(t *testing.T) {
		mode := models.ModePassThrough
		rows, err := readRepo.Leaderboard(ctx, &mode)
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, 150, rows[0].Score)
	})

	t.Run("LeaderboardCapsAtTen", func(t *testing.T) {
		for i := 0; i < 12; i++ {
			_, err := writeRepo.Save(ctx, owner.UserID, owner.Username, 1000+i, models.ModeWalls)
			assert.NoError(t, err)
		}
		rows, err := readRepo.Leaderboard(ctx, nil)
		assert.NoError(t, err)
		assert.Len(t, rows, 10)
	})

	t.Run("CountHigherIsStrict", func(t *testing.T) {
		// Ties do not count as higher.
		count, err := readRepo.CountHigher(ctx, 1011)
		assert.NoError(t, err)
		assert.Equal(t, 0, count)

		count, err = readRepo.CountHigher(ctx, 1000)
		assert.NoError(t, err)
		assert.Equal(t, 11, count)
	})
}

func TestSeed(t *testing.T) {
	db, teardown := setupScorePostgresContainer(t)
	defer teardown()

	ctx := context.Background()

	assert.NoError(t, Seed(ctx, db, "hashed-password123"))

	readRepo := NewUserReadRepository(db)
	count, err := readRepo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	user, err := readRepo.GetByUsername(ctx, "PixelMaster")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, 1250, user.HighScore)

	// Second run is a no-op.
	assert.NoError(t, Seed(ctx, db, "hashed-password123"))
	count, err = readRepo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}
