package matches

import (
	"context"
	"log"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/tennisconnect/server/internal/authz"
	"github.com/tennisconnect/server/internal/models"
	"github.com/tennisconnect/server/internal/validate"
)

const (
	minPlayers = 2
	maxPlayers = 8

	maxTitleLen       = 255
	maxCityLen        = 255
	maxVenueLen       = 255
	maxDescriptionLen = 1000
)

// MatchesRepository defines what the app layer needs from the repository
type MatchesRepository interface {
	CreateMatch(ctx context.Context, params CreateMatchParams) (*models.TennisMatch, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*models.TennisMatch, error)
	GetUserParticipation(ctx context.Context, matchID, userID uuid.UUID) (*models.MatchParticipant, error)
	UpdateMatch(ctx context.Context, id uuid.UUID, params UpdateMatchParams) (*models.TennisMatch, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) error
	ListMatches(ctx context.Context, filter ListFilter, now time.Time) (*ListResult, error)
}

// App handles match business logic
type App struct {
	repo  MatchesRepository
	clock clockwork.Clock
}

// NewApp creates a new matches App
func NewApp(repo MatchesRepository, clock clockwork.Clock) *App {
	return &App{repo: repo, clock: clock}
}

// CreateMatch creates a match with the acting user as organizer.
func (a *App) CreateMatch(ctx context.Context, actorID uuid.UUID, req CreateMatchRequest) (*models.TennisMatch, error) {
	if err := a.validateMatchPayload(req.Title, req.Description, req.City, req.Venue,
		req.MatchDate, req.MaxPlayers, req.SkillLevel, req.MatchType); err != nil {
		return nil, err
	}

	match, err := a.repo.CreateMatch(ctx, CreateMatchParams{
		OrganizerID: actorID,
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
		Venue:       req.Venue,
		MatchDate:   req.MatchDate,
		MaxPlayers:  req.MaxPlayers,
		SkillLevel:  req.SkillLevel,
		MatchType:   req.MatchType,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Created match %s organized by %s", match.ID, actorID)
	return match, nil
}

// GetMatch retrieves a match with the caller's participation record, if the
// caller is authenticated.
func (a *App) GetMatch(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) (*Detail, error) {
	match, err := a.repo.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &Detail{Match: match}
	if actorID != nil {
		participation, err := a.repo.GetUserParticipation(ctx, id, *actorID)
		if err != nil {
			return nil, err
		}
		detail.UserParticipation = participation
	}
	return detail, nil
}

// UpdateMatch updates a match. Only the organizer may update it.
func (a *App) UpdateMatch(ctx context.Context, actorID, id uuid.UUID, req UpdateMatchRequest) (*models.TennisMatch, error) {
	match, err := a.repo.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanUpdateMatch(actorID, match) {
		return nil, authz.ErrForbidden
	}

	if err := a.validateMatchPayload(req.Title, req.Description, req.City, req.Venue,
		req.MatchDate, req.MaxPlayers, req.SkillLevel, req.MatchType); err != nil {
		return nil, err
	}
	if err := a.validateStatus(req.Status); err != nil {
		return nil, err
	}

	updated, err := a.repo.UpdateMatch(ctx, id, UpdateMatchParams{
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
		Venue:       req.Venue,
		MatchDate:   req.MatchDate,
		MaxPlayers:  req.MaxPlayers,
		SkillLevel:  req.SkillLevel,
		MatchType:   req.MatchType,
		Status:      req.Status,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Updated match %s", updated.ID)
	return updated, nil
}

// DeleteMatch deletes a match. Only the organizer may delete it.
func (a *App) DeleteMatch(ctx context.Context, actorID, id uuid.UUID) error {
	match, err := a.repo.GetMatch(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanDeleteMatch(actorID, match) {
		return authz.ErrForbidden
	}

	if err := a.repo.DeleteMatch(ctx, id); err != nil {
		return err
	}

	log.Printf("Deleted match %s", id)
	return nil
}

// ListMatches returns one page of the filtered match listing.
func (a *App) ListMatches(ctx context.Context, filter ListFilter) (*ListResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	return a.repo.ListMatches(ctx, filter, a.clock.Now())
}

func (a *App) validateMatchPayload(title string, description *string, city, venue string,
	matchDate time.Time, players int, skill models.SkillLevel, matchType models.MatchType) error {
	fe := validate.FieldErrors{}
	if title == "" {
		fe.Add("title", "Please enter a match title.")
	} else if utf8.RuneCountInString(title) > maxTitleLen {
		fe.Add("title", "Title cannot exceed 255 characters.")
	}
	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLen {
		fe.Add("description", "Description cannot exceed 1000 characters.")
	}
	if city == "" {
		fe.Add("city", "Please enter the city.")
	} else if utf8.RuneCountInString(city) > maxCityLen {
		fe.Add("city", "City cannot exceed 255 characters.")
	}
	if venue == "" {
		fe.Add("venue", "Please enter the venue.")
	} else if utf8.RuneCountInString(venue) > maxVenueLen {
		fe.Add("venue", "Venue cannot exceed 255 characters.")
	}
	if matchDate.IsZero() {
		fe.Add("match_date", "Please select a match date.")
	} else if !matchDate.After(a.clock.Now()) {
		fe.Add("match_date", "Match date must be in the future.")
	}
	if players < minPlayers {
		fe.Add("max_players", "Minimum 2 players required.")
	} else if players > maxPlayers {
		fe.Add("max_players", "Maximum 8 players allowed.")
	}
	switch skill {
	case models.SkillLevelAll, models.SkillLevelBeginner, models.SkillLevelIntermediate,
		models.SkillLevelAdvanced, models.SkillLevelPro:
	default:
		fe.Add("skill_level", "Please select skill level.")
	}
	switch matchType {
	case models.MatchTypeSingles, models.MatchTypeDoubles, models.MatchTypeMixed:
	default:
		fe.Add("match_type", "Please select match type.")
	}
	return fe.OrNil()
}

func (a *App) validateStatus(status models.MatchStatus) error {
	fe := validate.FieldErrors{}
	switch status {
	case models.MatchStatusOpen, models.MatchStatusFull,
		models.MatchStatusCompleted, models.MatchStatusCancelled:
	default:
		fe.Add("status", "Please select a valid status.")
	}
	return fe.OrNil()
}
