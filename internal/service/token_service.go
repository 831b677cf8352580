// Package service contains the service layer for the Aethelgard Community API
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is the fixed lifetime of every issued session token
const TokenValidity = 7 * 24 * time.Hour

// Claims is the self-contained claim set embedded in session tokens. The
// subject carries the identity id.
type Claims struct {
	jwt.RegisteredClaims
	Name     string `json:"name"`
	Nickname string `json:"nickname,omitempty"`
	Email    string `json:"email,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
}

// TokenService issues and verifies signed session tokens. Tokens are
// stateless: the server keeps no session table and tokens expire on their
// own, with no revocation list.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a new token service with the given signing secret
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token for the identity with the fixed 7-day expiry
func (s *TokenService) Issue(identity Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
		},
		Name:     identity.Name,
		Nickname: identity.Nickname,
		Email:    identity.Email,
		IsAdmin:  identity.IsAdmin,
	})

	return token.SignedString(s.secret)
}

// Parse verifies the token signature and expiry and returns its claims
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
