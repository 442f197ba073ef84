package models

import (
	"time"

	"github.com/google/uuid"
)

// Calendar is a named container grouping events.
type Calendar struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// CalendarRequest is the create/update payload for a calendar.
// Slug may be omitted; it is then prepopulated from Name.
type CalendarRequest struct {
	Name string `json:"name" binding:"required,max=200"`
	Slug string `json:"slug" binding:"max=200"`
}
