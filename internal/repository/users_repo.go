// Package repository contains the repository layer for the Aethelgard Community API
package repository

import (
	"strings"
	"sync"

	"github.com/aethelgard/aethelgardapi/internal/models"
)

// UsersRepository is the file-backed repository for site users. A single
// mutex serializes read-modify-write cycles so concurrent mutations cannot
// overwrite each other.
type UsersRepository struct {
	store *FileStore
	mu    sync.Mutex
}

// NewUsersRepository creates a new users repository
func NewUsersRepository(store *FileStore) *UsersRepository {
	return &UsersRepository{store: store}
}

func (r *UsersRepository) load() (*models.UsersDocument, error) {
	doc := &models.UsersDocument{Users: []models.SiteUser{}}
	if err := r.store.Read(models.UsersFileName, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// View runs fn against a consistent snapshot of the users document
func (r *UsersRepository) View(fn func(doc *models.UsersDocument) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update runs fn against the users document and persists the result. The
// whole cycle holds the collection lock.
func (r *UsersRepository) Update(fn func(doc *models.UsersDocument) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return r.store.Write(models.UsersFileName, doc)
}

// FindByID returns the user with the given id, or nil
func (r *UsersRepository) FindByID(id string) (*models.SiteUser, error) {
	var found *models.SiteUser
	err := r.View(func(doc *models.UsersDocument) error {
		for i := range doc.Users {
			if doc.Users[i].ID == id {
				u := doc.Users[i]
				found = &u
				return nil
			}
		}
		return nil
	})
	return found, err
}

// FindByEmail returns the user with the given email, compared
// case-insensitively, or nil
func (r *UsersRepository) FindByEmail(email string) (*models.SiteUser, error) {
	var found *models.SiteUser
	err := r.View(func(doc *models.UsersDocument) error {
		for i := range doc.Users {
			if strings.EqualFold(doc.Users[i].Email, email) {
				u := doc.Users[i]
				found = &u
				return nil
			}
		}
		return nil
	})
	return found, err
}

// FindByNickname returns the user with the given nickname, compared
// case-insensitively, or nil
func (r *UsersRepository) FindByNickname(nickname string) (*models.SiteUser, error) {
	var found *models.SiteUser
	err := r.View(func(doc *models.UsersDocument) error {
		for i := range doc.Users {
			if strings.EqualFold(doc.Users[i].Nickname, nickname) {
				u := doc.Users[i]
				found = &u
				return nil
			}
		}
		return nil
	})
	return found, err
}

// All returns a copy of every stored user
func (r *UsersRepository) All() ([]models.SiteUser, error) {
	var users []models.SiteUser
	err := r.View(func(doc *models.UsersDocument) error {
		users = append([]models.SiteUser(nil), doc.Users...)
		return nil
	})
	return users, err
}
