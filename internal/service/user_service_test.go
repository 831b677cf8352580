package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aethelgard/aethelgardapi/internal/models"
	"github.com/aethelgard/aethelgardapi/internal/repository"
)

func seedUsers(t *testing.T, repo *repository.UsersRepository, users ...models.SiteUser) {
	t.Helper()
	require.NoError(t, repo.Update(func(doc *models.UsersDocument) error {
		doc.Users = append(doc.Users, users...)
		return nil
	}))
}

func TestSetAdminPersistsFlag(t *testing.T) {
	repo := newTestUsersRepo(t)
	svc := NewUserService(repo)
	seedUsers(t, repo, models.SiteUser{ID: "u1", Nickname: "Cairne"})

	view, err := svc.SetAdmin("u1", true)
	require.NoError(t, err)
	assert.True(t, view.IsAdmin)

	stored, err := repo.FindByID("u1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsAdmin)

	view, err = svc.SetAdmin("u1", false)
	require.NoError(t, err)
	assert.False(t, view.IsAdmin)

	_, err = svc.SetAdmin("missing", true)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAdminListNeverLeaksPasswordHash(t *testing.T) {
	repo := newTestUsersRepo(t)
	svc := NewUserService(repo)
	seedUsers(t, repo, models.SiteUser{ID: "u1", Nickname: "Cairne", PasswordHash: "$2a$10$secret"})

	views, err := svc.AdminList()
	require.NoError(t, err)
	require.Len(t, views, 1)

	// The admin projection carries timestamps but no credential material
	assert.Equal(t, "u1", views[0].ID)
	assert.Equal(t, "Cairne", views[0].Nickname)
}

func TestRecentUsersNewestFirstAndBounded(t *testing.T) {
	repo := newTestUsersRepo(t)
	svc := NewUserService(repo)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	var users []models.SiteUser
	for i := 0; i < recentUsersLimit+5; i++ {
		users = append(users, models.SiteUser{
			ID:        newID("u"),
			Nickname:  "player",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	seedUsers(t, repo, users...)

	recent, err := svc.Recent()
	require.NoError(t, err)
	require.Len(t, recent, recentUsersLimit)
	assert.Equal(t, users[len(users)-1].ID, recent[0].ID)
}
