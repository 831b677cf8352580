package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret")

	token, err := tokens.Issue(Identity{
		ID:       "u12345678",
		Name:     "Jaina",
		Nickname: "jaina",
		Email:    "jaina@aethelgard.pt",
		IsAdmin:  true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u12345678", claims.Subject)
	assert.Equal(t, "Jaina", claims.Name)
	assert.Equal(t, "jaina", claims.Nickname)
	assert.Equal(t, "jaina@aethelgard.pt", claims.Email)
	assert.True(t, claims.IsAdmin)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(TokenValidity), claims.ExpiresAt.Time, 0)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Issue(Identity{ID: "u1"})
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Parse(token)
	assert.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	_, err := NewTokenService("secret").Parse("not.a.token")
	assert.Error(t, err)
}
