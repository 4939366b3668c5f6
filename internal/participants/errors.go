package participants

import "errors"

// ErrMatchNotFound is returned when the target match does not exist.
var ErrMatchNotFound = errors.New("match not found")

// ErrParticipantNotFound is returned when the participant record does not exist.
var ErrParticipantNotFound = errors.New("participant not found")

// ErrAlreadyJoined is returned when the user already has a participant record
// for the match, regardless of its status.
var ErrAlreadyJoined = errors.New("already joined")

// ErrMatchFull is returned when confirmed participants have reached capacity.
var ErrMatchFull = errors.New("match full")

// ErrNotParticipant is returned when a user tries to remove a participant
// record they did not create.
var ErrNotParticipant = errors.New("not the participant")
