package events

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/tennisconnect/server/internal/models"
	"github.com/tennisconnect/server/internal/rest"
)

// EventsApp defines what the service layer needs from the events application
type EventsApp interface {
	GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error)
	ListEvents(ctx context.Context, filter ListFilter) (*ListResult, error)
}

// Service exposes event endpoints over HTTP
type Service struct {
	app     EventsApp
	perPage int
}

// NewService creates a new events HTTP service
func NewService(app EventsApp, perPage int) *Service {
	return &Service{app: app, perPage: perPage}
}

type listFilters struct {
	City       string `json:"city"`
	SkillLevel string `json:"skill_level"`
}

// List handles GET /events
func (s *Service) List(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	skill := r.URL.Query().Get("skill_level")
	page, perPage := rest.ParsePage(r, s.perPage)

	result, err := s.app.ListEvents(r.Context(), ListFilter{
		City:       city,
		SkillLevel: models.SkillLevel(skill),
		Page:       page,
		PerPage:    perPage,
	})
	if err != nil {
		rest.RespondError(w, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	rest.RespondJSON(w, http.StatusOK, rest.ListEnvelope{
		Data:    result.Events,
		Meta:    rest.NewPageMeta(page, perPage, result.Total),
		Cities:  result.Cities,
		Filters: listFilters{City: city, SkillLevel: skill},
	})
}

// Get handles GET /events/{id}
func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		rest.RespondError(w, http.StatusNotFound, "Event not found.")
		return
	}

	event, err := s.app.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			rest.RespondError(w, http.StatusNotFound, "Event not found.")
			return
		}
		rest.RespondError(w, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	rest.RespondJSON(w, http.StatusOK, event)
}
