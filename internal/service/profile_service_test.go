package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aethelgard/aethelgardapi/internal/repository"
)

func newTestProfileService(t *testing.T, adminEmails ...string) (*ProfileService, *repository.UsersRepository) {
	t.Helper()
	repo := newTestUsersRepo(t)
	return NewProfileService(repo, nil, NewTokenService("test-secret"), adminEmails), repo
}

func TestUpdateAvatarCreatesRecordForGameIdentity(t *testing.T) {
	svc, repo := newTestProfileService(t)

	// A game identity has a numeric subject and no stored profile yet
	claims := testClaims("42", "Grommash")

	user, err := svc.UpdateAvatar(claims, "https://example.com/axe.png")
	require.NoError(t, err)
	assert.Equal(t, "42", user.ID)
	assert.Equal(t, "https://example.com/axe.png", user.AvatarURL)

	stored, err := repo.FindByID("42")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Grommash", stored.Name)
}

func TestUpdateEmailReissuesToken(t *testing.T) {
	svc, _ := newTestProfileService(t)
	claims := testClaims("u1", "Jaina")

	token, user, err := svc.UpdateEmail(claims, "jaina@aethelgard.pt")
	require.NoError(t, err)
	assert.Equal(t, "jaina@aethelgard.pt", user.Email)

	parsed, err := svc.tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed.Subject)
	assert.Equal(t, "jaina@aethelgard.pt", parsed.Email)
}

func TestUpdateEmailOntoAllowListGrantsAdmin(t *testing.T) {
	svc, _ := newTestProfileService(t, "admin@aethelgard.pt")
	claims := testClaims("u1", "Jaina")

	token, user, err := svc.UpdateEmail(claims, "admin@aethelgard.pt")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)

	parsed, err := svc.tokens.Parse(token)
	require.NoError(t, err)
	assert.True(t, parsed.IsAdmin)
}

func TestUpdateEmailRejectsTakenEmail(t *testing.T) {
	repo := newTestUsersRepo(t)
	tokens := NewTokenService("test-secret")
	auth := NewAuthService(repo, nil, tokens, nil)
	profile := NewProfileService(repo, nil, tokens, nil)

	_, first, err := auth.Signup(SignupParams{Email: "arthas@aethelgard.pt", Password: "frostmourne1", Nickname: "Arthas"})
	require.NoError(t, err)
	_, second, err := auth.Signup(SignupParams{Email: "jaina@aethelgard.pt", Password: "daughterofsea", Nickname: "Jaina"})
	require.NoError(t, err)

	// Claiming another user's email must conflict, however it is cased
	_, _, err = profile.UpdateEmail(testClaims(second.ID, "Jaina"), "ARTHAS@aethelgard.pt")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// The store still holds exactly one record per email and both owners can
	// log in with their own credentials
	stored, err := repo.FindByEmail("arthas@aethelgard.pt")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, first.ID, stored.ID)

	_, loggedIn, err := auth.Login("arthas@aethelgard.pt", "frostmourne1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, loggedIn.ID)

	_, loggedIn, err = auth.Login("jaina@aethelgard.pt", "daughterofsea")
	require.NoError(t, err)
	assert.Equal(t, second.ID, loggedIn.ID)
}

func TestUpdateEmailAllowsOwnEmailRecased(t *testing.T) {
	repo := newTestUsersRepo(t)
	tokens := NewTokenService("test-secret")
	auth := NewAuthService(repo, nil, tokens, nil)
	profile := NewProfileService(repo, nil, tokens, nil)

	_, user, err := auth.Signup(SignupParams{Email: "uther@aethelgard.pt", Password: "lightbringer", Nickname: "Uther"})
	require.NoError(t, err)

	// The subject's own record is excluded from the uniqueness check
	_, updated, err := profile.UpdateEmail(testClaims(user.ID, "Uther"), "Uther@aethelgard.pt")
	require.NoError(t, err)
	assert.Equal(t, "Uther@aethelgard.pt", updated.Email)
}

func TestUpdateGameNameRejectsSiteIdentity(t *testing.T) {
	svc, _ := newTestProfileService(t)

	// Site identities have opaque prefixed ids, not game account ids
	claims := testClaims("u3f9c1a2b", "Jaina")

	_, _, err := svc.UpdateGameName(context.Background(), claims, "NewName")
	assert.ErrorIs(t, err, ErrInvalidGameAccountID)
}
