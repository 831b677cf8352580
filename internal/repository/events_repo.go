// Package repository contains the repository layer for the Aethelgard Community API
package repository

import (
	"sync"

	"github.com/aethelgard/aethelgardapi/internal/models"
)

// EventsRepository is the file-backed repository for calendar events
type EventsRepository struct {
	store *FileStore
	mu    sync.Mutex
}

// NewEventsRepository creates a new events repository
func NewEventsRepository(store *FileStore) *EventsRepository {
	return &EventsRepository{store: store}
}

func (r *EventsRepository) load() (*models.EventsDocument, error) {
	doc := &models.EventsDocument{Events: []models.Event{}}
	if err := r.store.Read(models.EventsFileName, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// View runs fn against a consistent snapshot of the events document
func (r *EventsRepository) View(fn func(doc *models.EventsDocument) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update runs fn against the events document and persists the result
func (r *EventsRepository) Update(fn func(doc *models.EventsDocument) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return r.store.Write(models.EventsFileName, doc)
}
