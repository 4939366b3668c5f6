package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchType represents the format of a match
type MatchType string

const (
	MatchTypeSingles MatchType = "singles"
	MatchTypeDoubles MatchType = "doubles"
	MatchTypeMixed   MatchType = "mixed"
)

// MatchStatus represents the lifecycle state of a match
type MatchStatus string

const (
	MatchStatusOpen      MatchStatus = "open"
	MatchStatusFull      MatchStatus = "full"
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusCancelled MatchStatus = "cancelled"
)

// TennisMatch is a peer-organized playing session with capacity tracking
type TennisMatch struct {
	ID          uuid.UUID   `json:"id"`
	OrganizerID uuid.UUID   `json:"organizer_id"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	City        string      `json:"city"`
	Venue       string      `json:"venue"`
	MatchDate   time.Time   `json:"match_date"`
	MaxPlayers  int         `json:"max_players"`
	SkillLevel  SkillLevel  `json:"skill_level"`
	MatchType   MatchType   `json:"match_type"`
	Status      MatchStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Organizer and Participants are populated on detail reads
	Organizer    *User              `json:"organizer,omitempty"`
	Participants []MatchParticipant `json:"participants,omitempty"`
}
