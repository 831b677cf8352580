// Package service contains the service layer for the Aethelgard Community API
package service

import (
	"time"

	"github.com/aethelgard/aethelgardapi/internal/models"
	"github.com/aethelgard/aethelgardapi/internal/repository"
)

// EventService implements the admin-curated event calendar. Authorization is
// enforced at the route level; the service assumes the caller already passed
// the admin gate for mutations.
type EventService struct {
	events *repository.EventsRepository
}

// NewEventService creates a new event service
func NewEventService(events *repository.EventsRepository) *EventService {
	return &EventService{events: events}
}

// List returns all events, newest first
func (s *EventService) List() ([]models.Event, error) {
	list := []models.Event{}
	err := s.events.View(func(doc *models.EventsDocument) error {
		list = append(list, doc.Events...)
		return nil
	})
	return list, err
}

// Create persists a new event created by the claims identity
func (s *EventService) Create(claims *Claims, params models.EventParams) (*models.Event, error) {
	event := models.Event{
		ID:        newID("ev"),
		Title:     *params.Title,
		Date:      *params.Date,
		CreatedBy: claims.Subject,
		CreatedAt: time.Now().UTC(),
	}
	if params.Location != nil {
		event.Location = *params.Location
	}
	if params.Description != nil {
		event.Description = *params.Description
	}

	err := s.events.Update(func(doc *models.EventsDocument) error {
		doc.Events = append([]models.Event{event}, doc.Events...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update merges the supplied fields into the event. Absent fields keep their
// stored values.
func (s *EventService) Update(claims *Claims, id string, params models.EventParams) (*models.Event, error) {
	var updated models.Event
	err := s.events.Update(func(doc *models.EventsDocument) error {
		for i := range doc.Events {
			if doc.Events[i].ID != id {
				continue
			}
			if params.Title != nil {
				doc.Events[i].Title = *params.Title
			}
			if params.Date != nil {
				doc.Events[i].Date = *params.Date
			}
			if params.Location != nil {
				doc.Events[i].Location = *params.Location
			}
			if params.Description != nil {
				doc.Events[i].Description = *params.Description
			}
			now := time.Now().UTC()
			doc.Events[i].UpdatedAt = &now
			doc.Events[i].UpdatedBy = claims.Subject
			updated = doc.Events[i]
			return nil
		}
		return ErrEventNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the event
func (s *EventService) Delete(id string) error {
	return s.events.Update(func(doc *models.EventsDocument) error {
		for i := range doc.Events {
			if doc.Events[i].ID == id {
				doc.Events = append(doc.Events[:i], doc.Events[i+1:]...)
				return nil
			}
		}
		return ErrEventNotFound
	})
}
