package profiles

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

// ProfilesApp defines what the service layer needs from the profiles application
type ProfilesApp interface {
	CreateProfile(ctx context.Context, actorID uuid.UUID, req CreateProfileRequest) (*models.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, actorID, id uuid.UUID, req UpdateProfileRequest) (*models.Profile, error)
	DeleteProfile(ctx context.Context, actorID, id uuid.UUID) error
	ListProfiles(ctx context.Context, filter ListFilter) (*ListResult, error)
}

// Service exposes profile endpoints over HTTP
type Service struct {
	app     ProfilesApp
	perPage int
}

// NewService creates a new profiles HTTP service
func NewService(app ProfilesApp, perPage int) *Service {
	return &Service{app: app, perPage: perPage}
}

type listFilters struct {
	City       string `json:"city"`
	SkillLevel string `json:"skill_level"`
}

// List handles GET /profiles
func (s *Service) List(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	skill := r.URL.Query().Get("skill_level")
	page, perPage := rest.ParsePage(r, s.perPage)

	result, err := s.app.ListProfiles(r.Context(), ListFilter{
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
		Data:    result.Profiles,
		Meta:    rest.NewPageMeta(page, perPage, result.Total),
		Cities:  result.Cities,
		Filters: listFilters{City: city, SkillLevel: skill},
	})
}

// Get handles GET /profiles/{id}
func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		rest.RespondError(w, http.StatusNotFound, "Profile not found.")
		return
	}

	profile, err := s.app.GetProfile(r.Context(), id)
	if err != nil {
		s.respondAppError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, profile)
}

// Create handles POST /profiles
func (s *Service) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := auth.ActorFromContext(r.Context())
	if !ok {
		rest.RespondError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	profile, err := s.app.CreateProfile(r.Context(), actorID, req)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			rest.RespondError(w, http.StatusConflict, "You already have a profile.")
			return
		}
		s.respondAppError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusCreated, profile)
}

// Update handles PATCH /profiles/{id}
func (s *Service) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := auth.ActorFromContext(r.Context())
	if !ok {
		rest.RespondError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		rest.RespondError(w, http.StatusNotFound, "Profile not found.")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	profile, err := s.app.UpdateProfile(r.Context(), actorID, id, req)
	if err != nil {
		s.respondAppError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, profile)
}

// Delete handles DELETE /profiles/{id}
func (s *Service) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := auth.ActorFromContext(r.Context())
	if !ok {
		rest.RespondError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		rest.RespondError(w, http.StatusNotFound, "Profile not found.")
		return
	}

	if err := s.app.DeleteProfile(r.Context(), actorID, id); err != nil {
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
		rest.RespondError(w, http.StatusNotFound, "Profile not found.")
	case errors.Is(err, authz.ErrForbidden):
		rest.RespondError(w, http.StatusForbidden, "Unauthorized.")
	default:
		rest.RespondError(w, http.StatusInternalServerError, "Something went wrong.")
	}
}
