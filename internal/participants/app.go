// Package participants manages the join/leave lifecycle of a match,
// enforcing capacity and uniqueness and keeping the match status consistent.
package participants

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/tennisconnect/server/internal/authz"
	"github.com/tennisconnect/server/internal/models"
)

// Store is the transaction-scoped view of a single match used by the join
// and leave flows. Implementations must serialize concurrent transactions on
// the same match: Match acquires the lock that makes the capacity
// check-then-insert safe.
type Store interface {
	// Match returns the match row, locked for the rest of the transaction.
	Match(ctx context.Context) (*models.TennisMatch, error)
	// Participant returns a participant record of this match by ID.
	Participant(ctx context.Context, id uuid.UUID) (*models.MatchParticipant, error)
	// HasParticipant reports whether the user has any record for this match.
	HasParticipant(ctx context.Context, userID uuid.UUID) (bool, error)
	// CountConfirmed returns the number of confirmed participants.
	CountConfirmed(ctx context.Context) (int, error)
	// InsertParticipant creates a confirmed record for the user. A duplicate
	// (match, user) pair yields ErrAlreadyJoined.
	InsertParticipant(ctx context.Context, userID uuid.UUID) (*models.MatchParticipant, error)
	// DeleteParticipant removes a participant record by ID.
	DeleteParticipant(ctx context.Context, id uuid.UUID) error
	// SetMatchStatus updates the match status.
	SetMatchStatus(ctx context.Context, status models.MatchStatus) error
}

// ParticipantsRepository defines what the app layer needs from the repository
type ParticipantsRepository interface {
	// InMatchTx runs fn inside a transaction scoped to one match. If fn
	// returns an error the transaction rolls back with no partial writes.
	InMatchTx(ctx context.Context, matchID uuid.UUID, fn func(store Store) error) error
}

// App runs the match participation state machine
type App struct {
	repo ParticipantsRepository
}

// NewApp creates a new participants App
func NewApp(repo ParticipantsRepository) *App {
	return &App{repo: repo}
}

// Join adds the acting user to a match as a confirmed participant. It fails
// with ErrAlreadyJoined if the user has any record for the match, and with
// ErrMatchFull when confirmed participants have reached max_players. When the
// join fills the last slot the match transitions to full.
func (a *App) Join(ctx context.Context, matchID, actorID uuid.UUID) (*models.MatchParticipant, error) {
	var joined *models.MatchParticipant
	err := a.repo.InMatchTx(ctx, matchID, func(store Store) error {
		match, err := store.Match(ctx)
		if err != nil {
			return err
		}

		exists, err := store.HasParticipant(ctx, actorID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyJoined
		}

		confirmed, err := store.CountConfirmed(ctx)
		if err != nil {
			return err
		}
		if confirmed >= match.MaxPlayers {
			return ErrMatchFull
		}

		joined, err = store.InsertParticipant(ctx, actorID)
		if err != nil {
			return err
		}

		if confirmed+1 >= match.MaxPlayers {
			return store.SetMatchStatus(ctx, models.MatchStatusFull)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("User %s joined match %s", actorID, matchID)
	return joined, nil
}

// Leave removes a participant record. Only the user who created the record
// may remove it. A full match always reopens.
func (a *App) Leave(ctx context.Context, matchID, participantID, actorID uuid.UUID) error {
	err := a.repo.InMatchTx(ctx, matchID, func(store Store) error {
		participant, err := store.Participant(ctx, participantID)
		if err != nil {
			return err
		}
		if participant.MatchID != matchID {
			return ErrParticipantNotFound
		}
		if !authz.CanRemoveParticipant(actorID, participant) {
			return ErrNotParticipant
		}

		if err := store.DeleteParticipant(ctx, participantID); err != nil {
			return err
		}

		match, err := store.Match(ctx)
		if err != nil {
			return err
		}
		if match.Status == models.MatchStatusFull {
			// Blind reset: the remaining confirmed count is not re-checked
			// against max_players, so a match whose capacity was edited down
			// can reopen while still at capacity.
			return store.SetMatchStatus(ctx, models.MatchStatusOpen)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("User %s left match %s", actorID, matchID)
	return nil
}
