// Package repository contains the repository layer for the Aethelgard Community API
package repository

import (
	"sync"

	"github.com/aethelgard/aethelgardapi/internal/models"
)

// ForumRepository is the file-backed repository for forum threads
type ForumRepository struct {
	store *FileStore
	mu    sync.Mutex
}

// NewForumRepository creates a new forum repository
func NewForumRepository(store *FileStore) *ForumRepository {
	return &ForumRepository{store: store}
}

func (r *ForumRepository) load() (*models.ForumDocument, error) {
	doc := &models.ForumDocument{Threads: []models.ForumThread{}}
	if err := r.store.Read(models.ForumFileName, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// View runs fn against a consistent snapshot of the forum document
func (r *ForumRepository) View(fn func(doc *models.ForumDocument) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update runs fn against the forum document and persists the result
func (r *ForumRepository) Update(fn func(doc *models.ForumDocument) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return r.store.Write(models.ForumFileName, doc)
}
