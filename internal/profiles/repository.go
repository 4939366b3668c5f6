package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tennisconnect/server/internal/models"
)

const uniqueViolation = "23505"

// Repository implements profile data access operations
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new profiles repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// CreateProfileParams holds the columns written on profile creation
type CreateProfileParams struct {
	UserID            uuid.UUID
	City              string
	SkillLevel        models.SkillLevel
	Bio               *string
	Availability      []string
	LookingForPartner bool
}

// UpdateProfileParams holds the columns written on profile update
type UpdateProfileParams struct {
	City              string
	SkillLevel        models.SkillLevel
	Bio               *string
	Availability      []string
	LookingForPartner bool
}

// CreateProfile creates a profile for a user. A second profile for the same
// user violates the unique user_id constraint and yields ErrAlreadyExists.
func (r *Repository) CreateProfile(ctx context.Context, params CreateProfileParams) (*models.Profile, error) {
	availability := params.Availability
	if availability == nil {
		availability = []string{}
	}

	var profile models.Profile
	err := r.pool.QueryRow(ctx, `
		INSERT INTO profiles (user_id, city, skill_level, bio, availability, looking_for_partner)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, city, skill_level, bio, availability, looking_for_partner, created_at, updated_at`,
		params.UserID, params.City, params.SkillLevel, params.Bio, availability, params.LookingForPartner,
	).Scan(
		&profile.ID, &profile.UserID, &profile.City, &profile.SkillLevel,
		&profile.Bio, &profile.Availability, &profile.LookingForPartner,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &profile, nil
}

// GetProfile retrieves a profile by ID with its owning user.
func (r *Repository) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	var user models.User
	err := r.pool.QueryRow(ctx, `
		SELECT p.id, p.user_id, p.city, p.skill_level, p.bio, p.availability,
		       p.looking_for_partner, p.created_at, p.updated_at,
		       u.id, u.name, u.email, u.created_at
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1`,
		id,
	).Scan(
		&profile.ID, &profile.UserID, &profile.City, &profile.SkillLevel,
		&profile.Bio, &profile.Availability, &profile.LookingForPartner,
		&profile.CreatedAt, &profile.UpdatedAt,
		&user.ID, &user.Name, &user.Email, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	profile.User = &user
	return &profile, nil
}

// UpdateProfile updates an existing profile
func (r *Repository) UpdateProfile(ctx context.Context, id uuid.UUID, params UpdateProfileParams) (*models.Profile, error) {
	availability := params.Availability
	if availability == nil {
		availability = []string{}
	}

	var profile models.Profile
	err := r.pool.QueryRow(ctx, `
		UPDATE profiles
		SET city = $2, skill_level = $3, bio = $4, availability = $5,
		    looking_for_partner = $6, updated_at = now()
		WHERE id = $1
		RETURNING id, user_id, city, skill_level, bio, availability, looking_for_partner, created_at, updated_at`,
		id, params.City, params.SkillLevel, params.Bio, availability, params.LookingForPartner,
	).Scan(
		&profile.ID, &profile.UserID, &profile.City, &profile.SkillLevel,
		&profile.Bio, &profile.Availability, &profile.LookingForPartner,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &profile, nil
}

// DeleteProfile deletes a profile by ID
func (r *Repository) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListProfiles returns one page of profiles looking for partners, newest
// first, with the distinct city set of the base listing.
func (r *Repository) ListProfiles(ctx context.Context, filter ListFilter) (*ListResult, error) {
	where, args := listWhere(filter)

	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM profiles p `+where, args...).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("failed to count profiles: %w", err)
	}

	limitArgs := append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT p.id, p.user_id, p.city, p.skill_level, p.bio, p.availability,
		       p.looking_for_partner, p.created_at, p.updated_at,
		       u.id, u.name, u.email, u.created_at
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		%s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2),
		limitArgs...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var items []models.Profile
	for rows.Next() {
		var profile models.Profile
		var user models.User
		if err := rows.Scan(
			&profile.ID, &profile.UserID, &profile.City, &profile.SkillLevel,
			&profile.Bio, &profile.Availability, &profile.LookingForPartner,
			&profile.CreatedAt, &profile.UpdatedAt,
			&user.ID, &user.Name, &user.Email, &user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profile.User = &user
		items = append(items, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	cities, err := r.listCities(ctx)
	if err != nil {
		return nil, err
	}

	return &ListResult{Profiles: items, Total: total, Cities: cities}, nil
}

// listWhere builds the WHERE clause of the profile listing. The base
// predicate keeps only profiles looking for a partner; city matches as a
// case-insensitive substring and an empty or "all" skill level means no
// skill filter.
func listWhere(filter ListFilter) (string, []any) {
	where := `WHERE p.looking_for_partner = TRUE`
	args := []any{}
	if filter.City != "" {
		args = append(args, "%"+filter.City+"%")
		where += fmt.Sprintf(" AND p.city ILIKE $%d", len(args))
	}
	if filter.SkillLevel != "" && filter.SkillLevel != models.SkillLevelAll {
		args = append(args, filter.SkillLevel)
		where += fmt.Sprintf(" AND p.skill_level = $%d", len(args))
	}
	return where, args
}

// listCities returns the distinct cities of profiles looking for partners.
func (r *Repository) listCities(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT city FROM profiles
		WHERE looking_for_partner = TRUE AND city <> ''
		ORDER BY city`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile cities: %w", err)
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
