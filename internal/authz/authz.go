// Package authz holds the ownership predicates that gate every mutation.
// Each predicate is a pure (actor, resource) check with no side effects.
package authz

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tennisconnect/server/internal/models"
)

// ErrForbidden is returned by app layers when an ownership check fails.
var ErrForbidden = errors.New("forbidden")

// CanUpdateProfile reports whether actor owns the profile.
func CanUpdateProfile(actorID uuid.UUID, profile *models.Profile) bool {
	return actorID == profile.UserID
}

// CanDeleteProfile reports whether actor owns the profile.
func CanDeleteProfile(actorID uuid.UUID, profile *models.Profile) bool {
	return actorID == profile.UserID
}

// CanUpdateMatch reports whether actor organizes the match.
func CanUpdateMatch(actorID uuid.UUID, match *models.TennisMatch) bool {
	return actorID == match.OrganizerID
}

// CanDeleteMatch reports whether actor organizes the match.
func CanDeleteMatch(actorID uuid.UUID, match *models.TennisMatch) bool {
	return actorID == match.OrganizerID
}

// CanRemoveParticipant reports whether actor created the participant record.
func CanRemoveParticipant(actorID uuid.UUID, participant *models.MatchParticipant) bool {
	return actorID == participant.UserID
}
