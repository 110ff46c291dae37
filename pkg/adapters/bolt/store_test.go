package bolt_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/algoviz/pkg/adapters/bolt"
	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/aretw0/algoviz/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*bolt.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sessions.db")
	store, err := bolt.Open(path)
	require.NoError(t, err)
	return store, path
}

func TestBoltStore_Contract(t *testing.T) {
	store, _ := openTemp(t)
	defer store.Close()

	ports.RunListStoreContract(t, store)
}

func TestBoltStore_SurvivesReopen(t *testing.T) {
	store, path := openTemp(t)
	ctx := context.Background()

	state := domain.NewListState("persisted")
	state.Nodes = []domain.ListNode{{ID: 0, Value: 7}}
	state.Initialized = true
	require.NoError(t, store.Save(ctx, "persisted", state))
	require.NoError(t, store.Close())

	reopened, err := bolt.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load(ctx, "persisted")
	require.NoError(t, err)
	assert.Equal(t, []int{7}, loaded.Values())
}
