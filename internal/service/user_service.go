// Package service contains the service layer for the Aethelgard Community API
package service

import (
	"sort"

	"github.com/aethelgard/aethelgardapi/internal/models"
	"github.com/aethelgard/aethelgardapi/internal/repository"
	"github.com/aethelgard/aethelgardapi/pkg/utils/zaplogger"
)

const recentUsersLimit = 20

// UserService implements the admin user console and the public
// recently-joined listing
type UserService struct {
	users *repository.UsersRepository
}

// NewUserService creates a new user service
func NewUserService(users *repository.UsersRepository) *UserService {
	return &UserService{users: users}
}

// AdminList returns every stored user in the administrator projection
func (s *UserService) AdminList() ([]models.AdminUserView, error) {
	users, err := s.users.All()
	if err != nil {
		return nil, err
	}
	views := make([]models.AdminUserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].AdminView())
	}
	return views, nil
}

// SetAdmin toggles the persisted admin flag of the target user
func (s *UserService) SetAdmin(targetID string, isAdmin bool) (*models.AdminUserView, error) {
	var view models.AdminUserView
	err := s.users.Update(func(doc *models.UsersDocument) error {
		for i := range doc.Users {
			if doc.Users[i].ID == targetID {
				doc.Users[i].IsAdmin = isAdmin
				view = doc.Users[i].AdminView()
				return nil
			}
		}
		return ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	zaplogger.Info("Admin flag updated", zaplogger.Fields{"userId": targetID, "isAdmin": isAdmin})
	return &view, nil
}

// Recent returns the most recently registered users, newest first
func (s *UserService) Recent() ([]models.RecentUser, error) {
	users, err := s.users.All()
	if err != nil {
		return nil, err
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	if len(users) > recentUsersLimit {
		users = users[:recentUsersLimit]
	}

	recent := make([]models.RecentUser, 0, len(users))
	for i := range users {
		recent = append(recent, users[i].Recent())
	}
	return recent, nil
}
