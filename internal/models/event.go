package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is an admin-curated tournament or event announcement.
// Events are read-only from the API's perspective.
type Event struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Description     *string    `json:"description"`
	City            string     `json:"city"`
	Venue           string     `json:"venue"`
	EventDate       time.Time  `json:"event_date"`
	MaxParticipants *int       `json:"max_participants"`
	Price           *float64   `json:"price"`
	SkillLevel      SkillLevel `json:"skill_level"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
}
