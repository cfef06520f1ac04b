package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_CreateAndGet(t *testing.T) {
	t.Parallel()

	manager := NewManager()
	store := manager.Create()

	fetched, err := manager.Get(store.ID())
	require.NoError(t, err)
	assert.Same(t, store, fetched)
	assert.Equal(t, 1, manager.Count())
}

func TestManager_Get_Unknown(t *testing.T) {
	t.Parallel()

	manager := NewManager()

	_, err := manager.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	manager := NewManager()
	store := manager.Create()

	require.NoError(t, manager.Delete(store.ID()))
	assert.ErrorIs(t, manager.Delete(store.ID()), ErrSessionNotFound)
	assert.Equal(t, 0, manager.Count())
}

func TestManager_List(t *testing.T) {
	t.Parallel()

	manager := NewManager()
	first := manager.Create()
	second := manager.Create()

	sessions := manager.List()
	require.Len(t, sessions, 2)

	ids := []string{sessions[0].ID, sessions[1].ID}
	assert.Contains(t, ids, first.ID())
	assert.Contains(t, ids, second.ID())
}
