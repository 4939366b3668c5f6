package profiles

import "github.com/tennisconnect/server/internal/models"

// CreateProfileRequest represents the data needed to create a profile
type CreateProfileRequest struct {
	City              string            `json:"city"`
	SkillLevel        models.SkillLevel `json:"skill_level"`
	Bio               *string           `json:"bio"`
	Availability      []string          `json:"availability"`
	LookingForPartner bool              `json:"looking_for_partner"`
}

// UpdateProfileRequest represents the data that can be updated for a profile
type UpdateProfileRequest struct {
	City              string            `json:"city"`
	SkillLevel        models.SkillLevel `json:"skill_level"`
	Bio               *string           `json:"bio"`
	Availability      []string          `json:"availability"`
	LookingForPartner bool              `json:"looking_for_partner"`
}

// ListFilter narrows the profile listing.
// City matches as a substring; an empty or "all" skill level means no filter.
type ListFilter struct {
	City       string
	SkillLevel models.SkillLevel
	Page       int
	PerPage    int
}

// ListResult is one page of the profile listing plus the distinct city set
// of the base listing (profiles looking for partners, unfiltered by city).
type ListResult struct {
	Profiles []models.Profile
	Total    int
	Cities   []string
}
