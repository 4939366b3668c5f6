package matches

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/tennisconnect/server/internal/auth"
	"github.com/tennisconnect/server/internal/authz"
	"github.com/tennisconnect/server/internal/models"
	"github.com/tennisconnect/server/internal/rest"
	"github.com/tennisconnect/server/internal/validate"
)

// MatchesApp defines what the service layer needs from the matches application
type MatchesApp interface {
	CreateMatch(ctx context.Context, actorID uuid.UUID, req CreateMatchRequest) (*models.TennisMatch, error)
	GetMatch(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) (*Detail, error)
	UpdateMatch(ctx context.Context, actorID, id uuid.UUID, req UpdateMatchRequest) (*models.TennisMatch, error)
	DeleteMatch(ctx context.Context, actorID, id uuid.UUID) error
	ListMatches(ctx context.Context, filter ListFilter) (*ListResult, error)
}

// Service exposes match endpoints over HTTP
type Service struct {
	app     MatchesApp
	perPage int
}

// NewService creates a new matches HTTP service
func NewService(app MatchesApp, perPage int) *Service {
	return &Service{app: app, perPage: perPage}
}

type listFilters struct {
	City       string `json:"city"`
	SkillLevel string `json:"skill_level"`
	MatchType  string `json:"match_type"`
}

// List handles GET /matches
func (s *Service) List(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	skill := r.URL.Query().Get("skill_level")
	matchType := r.URL.Query().Get("match_type")
	page, perPage := rest.ParsePage(r, s.perPage)

	result, err := s.app.ListMatches(r.Context(), ListFilter{
		City:       city,
		SkillLevel: models.SkillLevel(skill),
		MatchType:  models.MatchType(matchType),
		Page:       page,
		PerPage:    perPage,
	})
	if err != nil {
		rest.RespondError(w, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	rest.RespondJSON(w, http.StatusOK, rest.ListEnvelope{
		Data:    result.Matches,
		Meta:    rest.NewPageMeta(page, perPage, result.Total),
		Cities:  result.Cities,
		Filters: listFilters{City: city, SkillLevel: skill, MatchType: matchType},
	})
}

// Get handles GET /matches/{id}. When the caller is authenticated the
// response includes their participation record.
func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		rest.RespondError(w, http.StatusNotFound, "Match not found.")
		return
	}

	var actorID *uuid.UUID
	if id, ok := auth.ActorFromContext(r.Context()); ok {
		actorID = &id
	}

	detail, err := s.app.GetMatch(r.Context(), id, actorID)
	if err != nil {
		s.respondAppError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, detail)
}

// Create handles POST /matches
func (s *Service) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := auth.ActorFromContext(r.Context())
	if !ok {
		rest.RespondError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	var req CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	match, err := s.app.CreateMatch(r.Context(), actorID, req)
	if err != nil {
		s.respondAppError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusCreated, match)
}

// Update handles PATCH /matches/{id}
func (s *Service) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := auth.ActorFromContext(r.Context())
	if !ok {
		rest.RespondError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		rest.RespondError(w, http.StatusNotFound, "Match not found.")
		return
	}

	var req UpdateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	match, err := s.app.UpdateMatch(r.Context(), actorID, id, req)
	if err != nil {
		s.respondAppError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, match)
}

// Delete handles DELETE /matches/{id}
func (s *Service) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := auth.ActorFromContext(r.Context())
	if !ok {
		rest.RespondError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		rest.RespondError(w, http.StatusNotFound, "Match not found.")
		return
	}

	if err := s.app.DeleteMatch(r.Context(), actorID, id); err != nil {
		s.respondAppError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusNoContent, nil)
}

// respondAppError maps app layer failures to HTTP responses. Ownership
// failures on direct mutation endpoints are hard 403s.
func (s *Service) respondAppError(w http.ResponseWriter, err error) {
	var fe validate.FieldErrors
	switch {
	case errors.As(err, &fe):
		rest.RespondFieldErrors(w, fe)
	case errors.Is(err, ErrNotFound):
		rest.RespondError(w, http.StatusNotFound, "Match not found.")
	case errors.Is(err, authz.ErrForbidden):
		rest.RespondError(w, http.StatusForbidden, "Unauthorized.")
	default:
		rest.RespondError(w, http.StatusInternalServerError, "Something went wrong.")
	}
}
