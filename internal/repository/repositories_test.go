package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositoriesSharesTheStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	repos := NewRepositories(store, &GameDB{})

	// Every file-backed repository must sit on the same store instance so
	// its per-collection mutex is the only one guarding the document
	assert.Same(t, store, repos.Users.store)
	assert.Same(t, store, repos.Forum.store)
	assert.Same(t, store, repos.Events.store)
	assert.NotNil(t, repos.Accounts)
	assert.NotNil(t, repos.Characters)
}
