package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aethelgard/aethelgardapi/internal/models"
	"github.com/aethelgard/aethelgardapi/internal/repository"
)

func newTestUsersRepo(t *testing.T) *repository.UsersRepository {
	t.Helper()
	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return repository.NewUsersRepository(store)
}

func newTestAuthService(t *testing.T, adminEmails ...string) *AuthService {
	t.Helper()
	return NewAuthService(newTestUsersRepo(t), nil, NewTokenService("test-secret"), adminEmails)
}

func TestGamePasswordDigest(t *testing.T) {
	// The digest scheme is fixed by the external auth database: lowercase
	// hex SHA1 over UPPER(username):UPPER(password).
	assert.Equal(t, "5418517cee5afbe7a72e63857fa1cb51d79561e0", GamePasswordDigest("testuser", "secretpass"))
	assert.Equal(t, "5418517cee5afbe7a72e63857fa1cb51d79561e0", GamePasswordDigest("TestUser", "SECRETpass"))
	assert.Equal(t, "8301316d0d8448a34fa6d0c6bf1cbfa2b4a1a93a", GamePasswordDigest("admin", "admin"))
}

func TestSignupAndLoginRoundTrip(t *testing.T) {
	svc := newTestAuthService(t)

	token, user, err := svc.Signup(SignupParams{
		Email:    "arthas@aethelgard.pt",
		Password: "frostmourne1",
		Nickname: "Arthas",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "Arthas", user.Name)
	assert.Equal(t, "Arthas", user.Nickname)
	assert.Contains(t, user.AvatarURL, "adventurer")
	assert.False(t, user.IsAdmin)

	loginToken, loginUser, err := svc.Login("ARTHAS@aethelgard.pt", "frostmourne1")
	require.NoError(t, err)
	require.NotEmpty(t, loginToken)
	assert.Equal(t, user.ID, loginUser.ID)

	claims, err := svc.tokens.Parse(loginToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, "arthas@aethelgard.pt", claims.Email)
}

func TestSignupValidation(t *testing.T) {
	svc := newTestAuthService(t)

	_, _, err := svc.Signup(SignupParams{Email: "not an email", Password: "longenough", Nickname: "x"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, _, err = svc.Signup(SignupParams{Email: "ok@aethelgard.pt", Password: "short", Nickname: "x"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestSignupConflictAddsNoRecord(t *testing.T) {
	users := newTestUsersRepo(t)
	svc := NewAuthService(users, nil, NewTokenService("test-secret"), nil)

	_, _, err := svc.Signup(SignupParams{Email: "sylvanas@aethelgard.pt", Password: "banshee-queen", Nickname: "Sylvanas"})
	require.NoError(t, err)

	_, _, err = svc.Signup(SignupParams{Email: "SYLVANAS@aethelgard.pt", Password: "different-pw", Nickname: "Other"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, _, err = svc.Signup(SignupParams{Email: "other@aethelgard.pt", Password: "different-pw", Nickname: "sylvanas"})
	assert.ErrorIs(t, err, ErrNicknameTaken)

	all, err := users.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLoginInvalidCredentialsAreIndistinguishable(t *testing.T) {
	svc := newTestAuthService(t)

	_, _, err := svc.Signup(SignupParams{Email: "uther@aethelgard.pt", Password: "lightbringer", Nickname: "Uther"})
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login("uther@aethelgard.pt", "wrong-password")
	_, _, unknownEmail := svc.Login("nobody@aethelgard.pt", "whatever123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestLoginRecordsLastLogin(t *testing.T) {
	users := newTestUsersRepo(t)
	svc := NewAuthService(users, nil, NewTokenService("test-secret"), nil)

	_, created, err := svc.Signup(SignupParams{Email: "tyrande@aethelgard.pt", Password: "elune-adore", Nickname: "Tyrande"})
	require.NoError(t, err)

	_, _, err = svc.Login("tyrande@aethelgard.pt", "elune-adore")
	require.NoError(t, err)

	stored, err := users.FindByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotNil(t, stored.LastLoginAt)
}

func TestAdminAllowListDerivation(t *testing.T) {
	svc := newTestAuthService(t, "admin@aethelgard.pt")

	token, user, err := svc.Signup(SignupParams{Email: "admin@aethelgard.pt", Password: "supersecret", Nickname: "Boss"})
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)

	claims, err := svc.tokens.Parse(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)

	isAdmin, err := svc.IsAdmin(claims)
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestIsAdminIgnoresStaleTokenFlag(t *testing.T) {
	svc := newTestAuthService(t)

	// A token claiming admin for an identity with no stored record and an
	// email outside the allow-list must not pass the gate.
	claims := &Claims{Email: "pretender@aethelgard.pt", IsAdmin: true}
	claims.Subject = "u00000000"

	isAdmin, err := svc.IsAdmin(claims)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestMeForGameOnlyIdentity(t *testing.T) {
	svc := newTestAuthService(t)

	claims := &Claims{Name: "Grommash"}
	claims.Subject = "42"

	me, err := svc.Me(claims)
	require.NoError(t, err)
	assert.Equal(t, "42", me.ID)
	assert.Equal(t, "Grommash", me.Name)
	assert.NotEmpty(t, me.AvatarURL)
	assert.False(t, me.IsAdmin)
}

func TestMePrefersStoredProfile(t *testing.T) {
	users := newTestUsersRepo(t)
	svc := NewAuthService(users, nil, NewTokenService("test-secret"), nil)

	require.NoError(t, users.Update(func(doc *models.UsersDocument) error {
		doc.Users = append(doc.Users, models.SiteUser{ID: "u1", Email: "new@aethelgard.pt", Name: "New Name", Nickname: "nick"})
		return nil
	}))

	claims := &Claims{Name: "Old Name", Email: "old@aethelgard.pt"}
	claims.Subject = "u1"

	me, err := svc.Me(claims)
	require.NoError(t, err)
	assert.Equal(t, "New Name", me.Name)
	assert.Equal(t, "new@aethelgard.pt", me.Email)
}
