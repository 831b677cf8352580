// Package service contains the service layer for the Aethelgard Community API
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aethelgard/aethelgardapi/internal/models"
	"github.com/aethelgard/aethelgardapi/internal/repository"
	"github.com/aethelgard/aethelgardapi/pkg/utils/zaplogger"
)

// ProfileService mutates the profile of the authenticated identity. Game
// identities that never signed up on the site get a minimal profile record
// created on their first profile mutation.
type ProfileService struct {
	users       *repository.UsersRepository
	accounts    *repository.AccountRepository
	tokens      *TokenService
	adminEmails []string
}

// NewProfileService creates a new profile service
func NewProfileService(users *repository.UsersRepository, accounts *repository.AccountRepository, tokens *TokenService, adminEmails []string) *ProfileService {
	return &ProfileService{
		users:       users,
		accounts:    accounts,
		tokens:      tokens,
		adminEmails: adminEmails,
	}
}

// upsert applies mutate to the stored record of the claims subject, creating
// a minimal record first when none exists, and returns the stored result.
// check, when non-nil, runs against the document before anything is mutated
// and aborts the whole cycle on error.
func (s *ProfileService) upsert(claims *Claims, check func(doc *models.UsersDocument) error, mutate func(u *models.SiteUser)) (*models.SiteUser, error) {
	var result models.SiteUser
	err := s.users.Update(func(doc *models.UsersDocument) error {
		if check != nil {
			if err := check(doc); err != nil {
				return err
			}
		}
		for i := range doc.Users {
			if doc.Users[i].ID == claims.Subject {
				mutate(&doc.Users[i])
				result = doc.Users[i]
				return nil
			}
		}
		user := models.SiteUser{
			ID:        claims.Subject,
			Email:     claims.Email,
			Name:      claims.Name,
			Nickname:  claims.Nickname,
			CreatedAt: time.Now().UTC(),
		}
		mutate(&user)
		if user.AvatarURL == "" {
			seed := user.Name
			if seed == "" {
				seed = user.Email
			}
			user.AvatarURL = defaultAvatarURL("initials", seed)
		}
		doc.Users = append(doc.Users, user)
		result = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *ProfileService) identity(u *models.SiteUser) Identity {
	return Identity{
		ID:       u.ID,
		Name:     u.Name,
		Nickname: u.Nickname,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin || isAdminEmail(s.adminEmails, u.Email),
	}
}

// UpdateAvatar stores a new avatar reference for the identity
func (s *ProfileService) UpdateAvatar(claims *Claims, avatarURL string) (models.PublicUser, error) {
	user, err := s.upsert(claims, nil, func(u *models.SiteUser) {
		u.AvatarURL = avatarURL
	})
	if err != nil {
		return models.PublicUser{}, err
	}
	return user.Public(s.identity(user).IsAdmin), nil
}

// UpdateEmail stores a new email for the identity and re-issues the token so
// its claims reflect the change
func (s *ProfileService) UpdateEmail(claims *Claims, email string) (string, models.PublicUser, error) {
	// Email stays unique across all users; the check runs inside the same
	// update cycle as the write, excluding the subject's own record.
	user, err := s.upsert(claims, func(doc *models.UsersDocument) error {
		for i := range doc.Users {
			if doc.Users[i].ID != claims.Subject && strings.EqualFold(doc.Users[i].Email, email) {
				return ErrEmailTaken
			}
		}
		return nil
	}, func(u *models.SiteUser) {
		u.Email = email
	})
	if err != nil {
		return "", models.PublicUser{}, err
	}

	identity := s.identity(user)
	token, err := s.tokens.Issue(identity)
	if err != nil {
		return "", models.PublicUser{}, err
	}
	return token, user.Public(identity.IsAdmin), nil
}

// UpdateGameName renames the game account behind the identity and mirrors
// the new name into the stored profile. Only identities whose id is a game
// account id can be renamed.
func (s *ProfileService) UpdateGameName(ctx context.Context, claims *Claims, name string) (string, models.PublicUser, error) {
	accountID, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return "", models.PublicUser{}, ErrInvalidGameAccountID
	}

	queryCtx, cancel := context.WithTimeout(ctx, gameDBTimeout)
	defer cancel()
	if err := s.accounts.Rename(queryCtx, uint32(accountID), name); err != nil {
		return "", models.PublicUser{}, fmt.Errorf("auth db update failed: %v", err)
	}

	user, err := s.upsert(claims, nil, func(u *models.SiteUser) {
		u.Name = name
	})
	if err != nil {
		return "", models.PublicUser{}, err
	}

	identity := s.identity(user)
	token, err := s.tokens.Issue(identity)
	if err != nil {
		return "", models.PublicUser{}, err
	}

	zaplogger.Info("Game account renamed", zaplogger.Fields{"accountId": accountID, "name": name})
	return token, user.Public(identity.IsAdmin), nil
}
