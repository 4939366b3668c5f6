package models

import (
	"time"

	"github.com/google/uuid"
)

// ParticipantStatus represents the state of a join record
type ParticipantStatus string

const (
	ParticipantStatusPending   ParticipantStatus = "pending"
	ParticipantStatusConfirmed ParticipantStatus = "confirmed"
	ParticipantStatusDeclined  ParticipantStatus = "declined"
)

// MatchParticipant links a user to a match.
// At most one record exists per (match, user) pair.
type MatchParticipant struct {
	ID        uuid.UUID         `json:"id"`
	MatchID   uuid.UUID         `json:"match_id"`
	UserID    uuid.UUID         `json:"user_id"`
	Status    ParticipantStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`

	// User is populated on reads that join the participant's account
	User *User `json:"user,omitempty"`
}
