package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunListStoreContract runs a suite of tests to verify that a ListStore
// implementation adheres to the interface contract.
func RunListStoreContract(t *testing.T, store ListStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		state := domain.NewListState(sessionID)
		state.Nodes = []domain.ListNode{
			{ID: 0, Value: 6, Next: domain.IntPtr(1)},
			{ID: 1, Value: 1},
		}
		state.Initialized = true
		state.Version = 3

		err := store.Save(ctx, sessionID, state)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, sessionID, loaded.SessionID)
		assert.Equal(t, []int{6, 1}, loaded.Values())
		assert.True(t, loaded.Initialized)
		assert.Equal(t, 3, loaded.Version)
		require.NotNil(t, loaded.Nodes[0].Next)
		assert.Equal(t, 1, *loaded.Nodes[0].Next)
		assert.Nil(t, loaded.Nodes[1].Next)
	})

	t.Run("Load returns a copy", func(t *testing.T) {
		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		loaded.Nodes[0].Value = 1000

		again, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, 6, again.Nodes[0].Value)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.NewListState(sessionID))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")

		assert.NoError(t, store.Delete(ctx, "non-existent-"+sessionID))
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, domain.NewListState(id1))
		_ = store.Save(ctx, id2, domain.NewListState(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
