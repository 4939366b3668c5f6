package participants

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tennisconnect/server/internal/models"
	"github.com/tennisconnect/server/internal/sqlutil"
)

const uniqueViolation = "23505"

// Repository handles participant persistence
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new participants Repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// InMatchTx runs fn inside a transaction with the match row locked, so
// concurrent joins on the same match execute one at a time.
func (r *Repository) InMatchTx(ctx context.Context, matchID uuid.UUID, fn func(store Store) error) error {
	return sqlutil.Run(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&txStore{tx: tx, matchID: matchID})
	})
}

// txStore scopes all operations to one match inside one transaction.
type txStore struct {
	tx      pgx.Tx
	matchID uuid.UUID
}

func (s *txStore) Match(ctx context.Context) (*models.TennisMatch, error) {
	query := `
		SELECT id, organizer_id, title, description, city, venue,
		       match_date, max_players, skill_level, match_type, status,
		       created_at, updated_at
		FROM matches
		WHERE id = $1
		FOR UPDATE`

	var m models.TennisMatch
	err := s.tx.QueryRow(ctx, query, s.matchID).Scan(
		&m.ID, &m.OrganizerID, &m.Title, &m.Description, &m.City, &m.Venue,
		&m.MatchDate, &m.MaxPlayers, &m.SkillLevel, &m.MatchType, &m.Status,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to lock match: %w", err)
	}
	return &m, nil
}

func (s *txStore) Participant(ctx context.Context, id uuid.UUID) (*models.MatchParticipant, error) {
	query := `
		SELECT id, match_id, user_id, status, created_at
		FROM match_participants
		WHERE id = $1`

	var p models.MatchParticipant
	err := s.tx.QueryRow(ctx, query, id).Scan(&p.ID, &p.MatchID, &p.UserID, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return &p, nil
}

func (s *txStore) HasParticipant(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM match_participants WHERE match_id = $1 AND user_id = $2)`

	var exists bool
	if err := s.tx.QueryRow(ctx, query, s.matchID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check participant: %w", err)
	}
	return exists, nil
}

func (s *txStore) CountConfirmed(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM match_participants WHERE match_id = $1 AND status = 'confirmed'`

	var count int
	if err := s.tx.QueryRow(ctx, query, s.matchID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return count, nil
}

func (s *txStore) InsertParticipant(ctx context.Context, userID uuid.UUID) (*models.MatchParticipant, error) {
	query := `
		INSERT INTO match_participants (match_id, user_id, status)
		VALUES ($1, $2, 'confirmed')
		RETURNING id, match_id, user_id, status, created_at`

	var p models.MatchParticipant
	err := s.tx.QueryRow(ctx, query, s.matchID, userID).Scan(&p.ID, &p.MatchID, &p.UserID, &p.Status, &p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrAlreadyJoined
		}
		return nil, fmt.Errorf("failed to insert participant: %w", err)
	}
	return &p, nil
}

func (s *txStore) DeleteParticipant(ctx context.Context, id uuid.UUID) error {
	tag, err := s.tx.Exec(ctx, `DELETE FROM match_participants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrParticipantNotFound
	}
	return nil
}

func (s *txStore) SetMatchStatus(ctx context.Context, status models.MatchStatus) error {
	if _, err := s.tx.Exec(ctx, `UPDATE matches SET status = $1 WHERE id = $2`, status, s.matchID); err != nil {
		return fmt.Errorf("failed to update match status: %w", err)
	}
	return nil
}
