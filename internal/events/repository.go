package events

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

// Repository implements event data access operations.
// Events are admin-curated; the API only reads them.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new events repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetEvent retrieves an event by ID
func (r *Repository) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, description, city, venue, event_date,
		       max_participants, price, skill_level, is_active, created_at
		FROM events WHERE id = $1`,
		id,
	).Scan(
		&event.ID, &event.Title, &event.Description, &event.City, &event.Venue,
		&event.EventDate, &event.MaxParticipants, &event.Price,
		&event.SkillLevel, &event.IsActive, &event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// ListEvents returns one page of active upcoming events ordered by soonest
// date, with the distinct city set of the base listing.
func (r *Repository) ListEvents(ctx context.Context, filter ListFilter, now time.Time) (*ListResult, error) {
	where, args := listWhere(filter, now)

	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events `+where, args...).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	limitArgs := append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT id, title, description, city, venue, event_date,
		       max_participants, price, skill_level, is_active, created_at
		FROM events
		%s
		ORDER BY event_date ASC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2),
		limitArgs...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var items []models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(
			&event.ID, &event.Title, &event.Description, &event.City, &event.Venue,
			&event.EventDate, &event.MaxParticipants, &event.Price,
			&event.SkillLevel, &event.IsActive, &event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		items = append(items, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	cities, err := r.listCities(ctx)
	if err != nil {
		return nil, err
	}

	return &ListResult{Events: items, Total: total, Cities: cities}, nil
}

// listWhere builds the WHERE clause of the event listing. The base predicate
// keeps only active events with a future date; city matches as a
// case-insensitive substring and an empty or "all" skill level means no
// skill filter.
func listWhere(filter ListFilter, now time.Time) (string, []any) {
	where := `WHERE is_active = TRUE AND event_date > $1`
	args := []any{now}
	if filter.City != "" {
		args = append(args, "%"+filter.City+"%")
		where += fmt.Sprintf(" AND city ILIKE $%d", len(args))
	}
	if filter.SkillLevel != "" && filter.SkillLevel != models.SkillLevelAll {
		args = append(args, filter.SkillLevel)
		where += fmt.Sprintf(" AND skill_level = $%d", len(args))
	}
	return where, args
}

// listCities returns the distinct cities of active events.
func (r *Repository) listCities(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT city FROM events
		WHERE is_active = TRUE AND city <> ''
		ORDER BY city`)
	if err != nil {
		return nil, fmt.Errorf("failed to list event cities: %w", err)
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
