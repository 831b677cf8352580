// Package service contains the service layer for the Aethelgard Community API
package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/aethelgard/aethelgardapi/internal/models"
	"github.com/aethelgard/aethelgardapi/internal/repository"
	"github.com/aethelgard/aethelgardapi/pkg/utils/zaplogger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// dummyHash is compared against when the email is unknown, so a login
// attempt takes the same time whether or not the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

const gameDBTimeout = 5 * time.Second

// SignupParams carries the fields of a signup request
type SignupParams struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nickname  string `json:"nickname"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// AuthService verifies credentials against the site user store or the game
// auth database and issues session tokens for the resulting identity
type AuthService struct {
	users       *repository.UsersRepository
	accounts    *repository.AccountRepository
	tokens      *TokenService
	adminEmails []string
}

// NewAuthService creates a new auth service
func NewAuthService(users *repository.UsersRepository, accounts *repository.AccountRepository, tokens *TokenService, adminEmails []string) *AuthService {
	return &AuthService{
		users:       users,
		accounts:    accounts,
		tokens:      tokens,
		adminEmails: adminEmails,
	}
}

// GamePasswordDigest computes the legacy credential digest of the game auth
// database: SHA1 over UPPER(username):UPPER(password), hex encoded. The
// scheme is fixed by the external system and must not change.
func GamePasswordDigest(username, password string) string {
	toHash := strings.ToUpper(username) + ":" + strings.ToUpper(password)
	sum := sha1.Sum([]byte(toHash))
	return hex.EncodeToString(sum[:])
}

// deriveAdmin ORs the persisted admin flag with allow-list membership
func (s *AuthService) deriveAdmin(u *models.SiteUser) bool {
	return u.IsAdmin || isAdminEmail(s.adminEmails, u.Email)
}

func (s *AuthService) siteIdentity(u *models.SiteUser) Identity {
	return Identity{
		ID:       u.ID,
		Name:     u.Name,
		Nickname: u.Nickname,
		Email:    u.Email,
		IsAdmin:  s.deriveAdmin(u),
	}
}

// Signup validates the payload, persists a new site user and issues a token
func (s *AuthService) Signup(params SignupParams) (string, models.PublicUser, error) {
	if !emailRegex.MatchString(params.Email) {
		return "", models.PublicUser{}, ErrInvalidEmail
	}
	if len(params.Password) < 8 {
		return "", models.PublicUser{}, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", models.PublicUser{}, fmt.Errorf("failed to hash password: %v", err)
	}

	name := params.Name
	if name == "" {
		name = params.Nickname
	}
	avatarURL := params.AvatarURL
	if avatarURL == "" {
		avatarURL = defaultAvatarURL("adventurer", params.Nickname)
	}

	user := models.SiteUser{
		ID:           newID("u"),
		Email:        params.Email,
		Name:         name,
		Nickname:     params.Nickname,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		PasswordHash: string(hash),
		AvatarURL:    avatarURL,
		IsAdmin:      false,
		CreatedAt:    time.Now().UTC(),
	}

	// Uniqueness is checked inside the update so a concurrent signup with
	// the same email cannot slip in between check and append.
	err = s.users.Update(func(doc *models.UsersDocument) error {
		for i := range doc.Users {
			if strings.EqualFold(doc.Users[i].Email, params.Email) {
				return ErrEmailTaken
			}
			if strings.EqualFold(doc.Users[i].Nickname, params.Nickname) {
				return ErrNicknameTaken
			}
		}
		doc.Users = append(doc.Users, user)
		return nil
	})
	if err != nil {
		return "", models.PublicUser{}, err
	}

	token, err := s.tokens.Issue(s.siteIdentity(&user))
	if err != nil {
		return "", models.PublicUser{}, err
	}

	zaplogger.Info("User registered", zaplogger.Fields{"userId": user.ID, "email": user.Email})
	return token, user.Public(s.deriveAdmin(&user)), nil
}

// Login verifies site credentials, updates the last-login timestamp and
// issues a token
func (s *AuthService) Login(email, password string) (string, models.PublicUser, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", models.PublicUser{}, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		zaplogger.Warn("Failed login attempt", zaplogger.Fields{"email": email})
		return "", models.PublicUser{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		zaplogger.Warn("Failed login attempt", zaplogger.Fields{"email": email})
		return "", models.PublicUser{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	err = s.users.Update(func(doc *models.UsersDocument) error {
		for i := range doc.Users {
			if doc.Users[i].ID == user.ID {
				doc.Users[i].LastLoginAt = &now
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return "", models.PublicUser{}, err
	}

	token, err := s.tokens.Issue(s.siteIdentity(user))
	if err != nil {
		return "", models.PublicUser{}, err
	}

	zaplogger.Info("User logged in", zaplogger.Fields{"userId": user.ID, "email": user.Email})
	return token, user.Public(s.deriveAdmin(user)), nil
}

// LoginGame verifies game account credentials against the auth database and
// issues a token for the game identity
func (s *AuthService) LoginGame(ctx context.Context, username, password string) (string, models.PublicUser, error) {
	queryCtx, cancel := context.WithTimeout(ctx, gameDBTimeout)
	defer cancel()

	account, err := s.accounts.FindByCredentials(queryCtx, username, GamePasswordDigest(username, password))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.PublicUser{}, ErrInvalidCredentials
		}
		return "", models.PublicUser{}, fmt.Errorf("auth db query failed: %v", err)
	}

	identity := Identity{
		ID:   strconv.FormatUint(uint64(account.ID), 10),
		Name: account.Username,
	}
	token, err := s.tokens.Issue(identity)
	if err != nil {
		return "", models.PublicUser{}, err
	}

	return token, models.PublicUser{
		ID:        identity.ID,
		Name:      account.Username,
		AvatarURL: defaultAvatarURL("initials", account.Username),
		IsAdmin:   false,
	}, nil
}

// Me resolves the current identity, merging the stored profile over the
// token claims. Game-only identities have no stored profile.
func (s *AuthService) Me(claims *Claims) (models.PublicUser, error) {
	profile, err := s.users.FindByID(claims.Subject)
	if err != nil {
		return models.PublicUser{}, err
	}

	if profile == nil {
		avatarSeed := claims.Name
		if avatarSeed == "" {
			avatarSeed = claims.Email
		}
		if avatarSeed == "" {
			avatarSeed = "Player"
		}
		return models.PublicUser{
			ID:        claims.Subject,
			Email:     claims.Email,
			Name:      claims.Name,
			Nickname:  claims.Nickname,
			AvatarURL: defaultAvatarURL("adventurer", avatarSeed),
			IsAdmin:   isAdminEmail(s.adminEmails, claims.Email) || claims.IsAdmin,
		}, nil
	}

	avatarURL := profile.AvatarURL
	if avatarURL == "" {
		avatarURL = defaultAvatarURL("adventurer", profile.Nickname)
	}
	return models.PublicUser{
		ID:        claims.Subject,
		Email:     profile.Email,
		Name:      profile.Name,
		Nickname:  profile.Nickname,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		AvatarURL: avatarURL,
		IsAdmin:   s.deriveAdmin(profile) || claims.IsAdmin,
	}, nil
}

// IsAdmin is the admin gate predicate. It recomputes the decision from the
// live stored flag and the current allow-list instead of trusting the token
// snapshot, so a same-day revocation takes effect immediately.
func (s *AuthService) IsAdmin(claims *Claims) (bool, error) {
	record, err := s.users.FindByID(claims.Subject)
	if err != nil {
		return false, err
	}
	if record != nil {
		return s.deriveAdmin(record), nil
	}
	return isAdminEmail(s.adminEmails, claims.Email), nil
}
