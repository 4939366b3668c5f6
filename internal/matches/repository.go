package matches

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tennisconnect/server/internal/models"
)

// Repository implements match data access operations
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new matches repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// CreateMatchParams holds the columns written on match creation
type CreateMatchParams struct {
	OrganizerID uuid.UUID
	Title       string
	Description *string
	City        string
	Venue       string
	MatchDate   time.Time
	MaxPlayers  int
	SkillLevel  models.SkillLevel
	MatchType   models.MatchType
}

// UpdateMatchParams holds the columns written on match update
type UpdateMatchParams struct {
	Title       string
	Description *string
	City        string
	Venue       string
	MatchDate   time.Time
	MaxPlayers  int
	SkillLevel  models.SkillLevel
	MatchType   models.MatchType
	Status      models.MatchStatus
}

const matchColumns = `id, organizer_id, title, description, city, venue,
	match_date, max_players, skill_level, match_type, status, created_at, updated_at`

func scanMatch(row pgx.Row, match *models.TennisMatch) error {
	return row.Scan(
		&match.ID, &match.OrganizerID, &match.Title, &match.Description,
		&match.City, &match.Venue, &match.MatchDate, &match.MaxPlayers,
		&match.SkillLevel, &match.MatchType, &match.Status,
		&match.CreatedAt, &match.UpdatedAt,
	)
}

// CreateMatch creates a new open match
func (r *Repository) CreateMatch(ctx context.Context, params CreateMatchParams) (*models.TennisMatch, error) {
	var match models.TennisMatch
	err := scanMatch(r.pool.QueryRow(ctx, `
		INSERT INTO matches (organizer_id, title, description, city, venue,
			match_date, max_players, skill_level, match_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'open')
		RETURNING `+matchColumns,
		params.OrganizerID, params.Title, params.Description, params.City,
		params.Venue, params.MatchDate, params.MaxPlayers, params.SkillLevel,
		params.MatchType,
	), &match)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return &match, nil
}

// GetMatch retrieves a match by ID with its organizer and participants.
func (r *Repository) GetMatch(ctx context.Context, id uuid.UUID) (*models.TennisMatch, error) {
	var match models.TennisMatch
	var organizer models.User
	err := r.pool.QueryRow(ctx, `
		SELECT m.id, m.organizer_id, m.title, m.description, m.city, m.venue,
		       m.match_date, m.max_players, m.skill_level, m.match_type,
		       m.status, m.created_at, m.updated_at,
		       u.id, u.name, u.email, u.created_at
		FROM matches m
		JOIN users u ON u.id = m.organizer_id
		WHERE m.id = $1`,
		id,
	).Scan(
		&match.ID, &match.OrganizerID, &match.Title, &match.Description,
		&match.City, &match.Venue, &match.MatchDate, &match.MaxPlayers,
		&match.SkillLevel, &match.MatchType, &match.Status,
		&match.CreatedAt, &match.UpdatedAt,
		&organizer.ID, &organizer.Name, &organizer.Email, &organizer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	match.Organizer = &organizer

	participants, err := r.listParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	match.Participants = participants
	return &match, nil
}

// listParticipants loads a match's participants with their accounts.
func (r *Repository) listParticipants(ctx context.Context, matchID uuid.UUID) ([]models.MatchParticipant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT mp.id, mp.match_id, mp.user_id, mp.status, mp.created_at,
		       u.id, u.name, u.email, u.created_at
		FROM match_participants mp
		JOIN users u ON u.id = mp.user_id
		WHERE mp.match_id = $1
		ORDER BY mp.created_at ASC`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match participants: %w", err)
	}
	defer rows.Close()

	var participants []models.MatchParticipant
	for rows.Next() {
		var p models.MatchParticipant
		var user models.User
		if err := rows.Scan(
			&p.ID, &p.MatchID, &p.UserID, &p.Status, &p.CreatedAt,
			&user.ID, &user.Name, &user.Email, &user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		p.User = &user
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// GetUserParticipation returns the caller's participation record for a match,
// or nil when the caller has not joined.
func (r *Repository) GetUserParticipation(ctx context.Context, matchID, userID uuid.UUID) (*models.MatchParticipant, error) {
	var p models.MatchParticipant
	err := r.pool.QueryRow(ctx, `
		SELECT id, match_id, user_id, status, created_at
		FROM match_participants
		WHERE match_id = $1 AND user_id = $2`,
		matchID, userID,
	).Scan(&p.ID, &p.MatchID, &p.UserID, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user participation: %w", err)
	}
	return &p, nil
}

// UpdateMatch updates an existing match
func (r *Repository) UpdateMatch(ctx context.Context, id uuid.UUID, params UpdateMatchParams) (*models.TennisMatch, error) {
	var match models.TennisMatch
	err := scanMatch(r.pool.QueryRow(ctx, `
		UPDATE matches
		SET title = $2, description = $3, city = $4, venue = $5, match_date = $6,
		    max_players = $7, skill_level = $8, match_type = $9, status = $10,
		    updated_at = now()
		WHERE id = $1
		RETURNING `+matchColumns,
		id, params.Title, params.Description, params.City, params.Venue,
		params.MatchDate, params.MaxPlayers, params.SkillLevel, params.MatchType,
		params.Status,
	), &match)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update match: %w", err)
	}
	return &match, nil
}

// DeleteMatch deletes a match by ID
func (r *Repository) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListMatches returns one page of open upcoming matches ordered by soonest
// date, with the distinct city set of the base listing.
func (r *Repository) ListMatches(ctx context.Context, filter ListFilter, now time.Time) (*ListResult, error) {
	where, args := listWhere(filter, now)

	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM matches m `+where, args...).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("failed to count matches: %w", err)
	}

	limitArgs := append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT m.id, m.organizer_id, m.title, m.description, m.city, m.venue,
		       m.match_date, m.max_players, m.skill_level, m.match_type,
		       m.status, m.created_at, m.updated_at,
		       u.id, u.name, u.email, u.created_at
		FROM matches m
		JOIN users u ON u.id = m.organizer_id
		%s
		ORDER BY m.match_date ASC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2),
		limitArgs...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var items []models.TennisMatch
	for rows.Next() {
		var match models.TennisMatch
		var organizer models.User
		if err := rows.Scan(
			&match.ID, &match.OrganizerID, &match.Title, &match.Description,
			&match.City, &match.Venue, &match.MatchDate, &match.MaxPlayers,
			&match.SkillLevel, &match.MatchType, &match.Status,
			&match.CreatedAt, &match.UpdatedAt,
			&organizer.ID, &organizer.Name, &organizer.Email, &organizer.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		match.Organizer = &organizer
		items = append(items, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	cities, err := r.listCities(ctx)
	if err != nil {
		return nil, err
	}

	return &ListResult{Matches: items, Total: total, Cities: cities}, nil
}

// listWhere builds the WHERE clause of the match listing. The base predicate
// keeps only open matches with a future date; city matches as a
// case-insensitive substring and an empty or "all" skill level means no
// skill filter.
func listWhere(filter ListFilter, now time.Time) (string, []any) {
	where := `WHERE m.status = 'open' AND m.match_date > $1`
	args := []any{now}
	if filter.City != "" {
		args = append(args, "%"+filter.City+"%")
		where += fmt.Sprintf(" AND m.city ILIKE $%d", len(args))
	}
	if filter.SkillLevel != "" && filter.SkillLevel != models.SkillLevelAll {
		args = append(args, filter.SkillLevel)
		where += fmt.Sprintf(" AND m.skill_level = $%d", len(args))
	}
	if filter.MatchType != "" {
		args = append(args, filter.MatchType)
		where += fmt.Sprintf(" AND m.match_type = $%d", len(args))
	}
	return where, args
}

// listCities returns the distinct cities of open matches.
func (r *Repository) listCities(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT city FROM matches
		WHERE status = 'open' AND city <> ''
		ORDER BY city`)
	if err != nil {
		return nil, fmt.Errorf("failed to list match cities: %w", err)
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}
