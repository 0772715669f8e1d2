package sessions

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_CreateAndResolve(t *testing.T) {
	reg := NewRegistry()
	userID := uuid.New()

	token := reg.Create(userID)
	assert.NotEmpty(t, token)

	resolved, ok := reg.Resolve(token)
	assert.True(t, ok)
	assert.Equal(t, userID, resolved)
}

func TestRegistry_TokensAreUnique(t *testing.T) {
	reg := NewRegistry()
	userID := uuid.New()

	t1 := reg.Create(userID)
	t2 := reg.Create(userID)
	assert.NotEqual(t, t1, t2)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_ResolveUnknownToken(t *testing.T) {
	reg := NewRegistry()

	_, ok := reg.Resolve("nonexistent")
	assert.False(t, ok)

	_, ok = reg.Resolve("")
	assert.False(t, ok)
}

func TestRegistry_Delete(t *testing.T) {
	reg := NewRegistry()
	token := reg.Create(uuid.New())

	reg.Delete(token)
	_, ok := reg.Resolve(token)
	assert.False(t, ok)

	// Deleting again is a no-op
	assert.NotPanics(t, func() { reg.Delete(token) })
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewRegistry()
	userID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token := reg.Create(userID)
			_, ok := reg.Resolve(token)
			assert.True(t, ok)
			reg.Delete(token)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, reg.Len())
}
