package events

import "github.com/tennisconnect/server/internal/models"

// ListFilter narrows the event listing.
// City matches as a substring; an empty or "all" skill level means no filter.
type ListFilter struct {
	City       string
	SkillLevel models.SkillLevel
	Page       int
	PerPage    int
}

// ListResult is one page of the event listing plus the distinct city set of
// the base listing (active upcoming events, unfiltered by city).
type ListResult struct {
	Events []models.Event
	Total  int
	Cities []string
}
