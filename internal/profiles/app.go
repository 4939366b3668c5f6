package profiles

import (
	"context"
	"log"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/tennisconnect/server/internal/authz"
	"github.com/tennisconnect/server/internal/models"
	"github.com/tennisconnect/server/internal/validate"
)

const (
	maxCityLen = 255
	maxBioLen  = 1000
)

// ProfilesRepository defines what the app layer needs from the repository
type ProfilesRepository interface {
	CreateProfile(ctx context.Context, params CreateProfileParams) (*models.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, params UpdateProfileParams) (*models.Profile, error)
	DeleteProfile(ctx context.Context, id uuid.UUID) error
	ListProfiles(ctx context.Context, filter ListFilter) (*ListResult, error)
}

// App handles profile business logic
type App struct {
	repo ProfilesRepository
}

// NewApp creates a new profiles App
func NewApp(repo ProfilesRepository) *App {
	return &App{repo: repo}
}

// CreateProfile creates the acting user's profile with validation.
func (a *App) CreateProfile(ctx context.Context, actorID uuid.UUID, req CreateProfileRequest) (*models.Profile, error) {
	if err := validateProfilePayload(req.City, req.SkillLevel, req.Bio); err != nil {
		return nil, err
	}

	profile, err := a.repo.CreateProfile(ctx, CreateProfileParams{
		UserID:            actorID,
		City:              req.City,
		SkillLevel:        req.SkillLevel,
		Bio:               req.Bio,
		Availability:      req.Availability,
		LookingForPartner: req.LookingForPartner,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Created profile %s for user %s", profile.ID, actorID)
	return profile, nil
}

// GetProfile retrieves a profile by ID
func (a *App) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return a.repo.GetProfile(ctx, id)
}

// UpdateProfile updates a profile. Only the owner may update it.
func (a *App) UpdateProfile(ctx context.Context, actorID, id uuid.UUID, req UpdateProfileRequest) (*models.Profile, error) {
	profile, err := a.repo.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanUpdateProfile(actorID, profile) {
		return nil, authz.ErrForbidden
	}

	if err := validateProfilePayload(req.City, req.SkillLevel, req.Bio); err != nil {
		return nil, err
	}

	updated, err := a.repo.UpdateProfile(ctx, id, UpdateProfileParams{
		City:              req.City,
		SkillLevel:        req.SkillLevel,
		Bio:               req.Bio,
		Availability:      req.Availability,
		LookingForPartner: req.LookingForPartner,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Updated profile %s", updated.ID)
	return updated, nil
}

// DeleteProfile deletes a profile. Only the owner may delete it.
func (a *App) DeleteProfile(ctx context.Context, actorID, id uuid.UUID) error {
	profile, err := a.repo.GetProfile(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanDeleteProfile(actorID, profile) {
		return authz.ErrForbidden
	}

	if err := a.repo.DeleteProfile(ctx, id); err != nil {
		return err
	}

	log.Printf("Deleted profile %s", id)
	return nil
}

// ListProfiles returns one page of the filtered profile listing.
func (a *App) ListProfiles(ctx context.Context, filter ListFilter) (*ListResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	return a.repo.ListProfiles(ctx, filter)
}

// validateProfilePayload checks the shared create/update constraints.
// Profiles carry a concrete skill level; "all" is only a filter sentinel.
func validateProfilePayload(city string, skill models.SkillLevel, bio *string) error {
	fe := validate.FieldErrors{}
	if city == "" {
		fe.Add("city", "Please enter your city.")
	} else if utf8.RuneCountInString(city) > maxCityLen {
		fe.Add("city", "City cannot exceed 255 characters.")
	}
	switch skill {
	case models.SkillLevelBeginner, models.SkillLevelIntermediate,
		models.SkillLevelAdvanced, models.SkillLevelPro:
	default:
		fe.Add("skill_level", "Please select a valid skill level.")
	}
	if bio != nil && utf8.RuneCountInString(*bio) > maxBioLen {
		fe.Add("bio", "Bio cannot exceed 1000 characters.")
	}
	return fe.OrNil()
}
