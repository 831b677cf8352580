// Package models contains the models for the Aethelgard Community API
package models

import "time"

// EventsFileName is the name of the events collection document
const EventsFileName = "events"

// Event represents an admin-curated calendar entry
type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Date        string     `json:"date"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedBy   string     `json:"updatedBy,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// EventsDocument is the top-level shape of the events collection
type EventsDocument struct {
	Events []Event `json:"events"`
}

// EventParams carries the client-supplied event fields. Pointers distinguish
// absent fields from empty ones on partial updates.
type EventParams struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}
