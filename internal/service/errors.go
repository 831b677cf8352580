// Package service contains the service layer for the Aethelgard Community API
package service

import "errors"

// Service-level errors. Handlers map these onto HTTP statuses and the
// response envelope via errors.Is.
var (
	// ErrInvalidCredentials covers both an unknown identity and a wrong
	// password so the two cases cannot be told apart by a caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrEmailTaken       = errors.New("email already registered")
	ErrNicknameTaken    = errors.New("nickname already registered")

	ErrThreadNotFound = errors.New("thread not found")
	ErrEventNotFound  = errors.New("event not found")
	ErrUserNotFound   = errors.New("user not found")

	ErrInvalidGameAccountID = errors.New("invalid account id for game name change")
)
