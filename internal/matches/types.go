package matches

import (
	"time"

	"github.com/tennisconnect/server/internal/models"
)

// CreateMatchRequest represents the data needed to create a match
type CreateMatchRequest struct {
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	City        string            `json:"city"`
	Venue       string            `json:"venue"`
	MatchDate   time.Time         `json:"match_date"`
	MaxPlayers  int               `json:"max_players"`
	SkillLevel  models.SkillLevel `json:"skill_level"`
	MatchType   models.MatchType  `json:"match_type"`
}

// UpdateMatchRequest represents the data that can be updated for a match
type UpdateMatchRequest struct {
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	City        string             `json:"city"`
	Venue       string             `json:"venue"`
	MatchDate   time.Time          `json:"match_date"`
	MaxPlayers  int                `json:"max_players"`
	SkillLevel  models.SkillLevel  `json:"skill_level"`
	MatchType   models.MatchType   `json:"match_type"`
	Status      models.MatchStatus `json:"status"`
}

// ListFilter narrows the match listing.
// City matches as a substring; an empty or "all" skill level means no filter;
// an empty match type means no filter.
type ListFilter struct {
	City       string
	SkillLevel models.SkillLevel
	MatchType  models.MatchType
	Page       int
	PerPage    int
}

// ListResult is one page of the match listing plus the distinct city set of
// the base listing (open upcoming matches, unfiltered by city).
type ListResult struct {
	Matches []models.TennisMatch
	Total   int
	Cities  []string
}

// Detail is a match with the caller's participation record, if any.
type Detail struct {
	Match             *models.TennisMatch      `json:"match"`
	UserParticipation *models.MatchParticipant `json:"user_participation"`
}
