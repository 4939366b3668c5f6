package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/tennisconnect/server/internal/auth"
	"github.com/tennisconnect/server/internal/models"
	"github.com/tennisconnect/server/internal/rest"
	"github.com/tennisconnect/server/internal/validate"
)

// UsersApp defines what the service layer needs from the users application
type UsersApp interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Service exposes account endpoints over HTTP
type Service struct {
	app UsersApp
}

// NewService creates a new users HTTP service
func NewService(app UsersApp) *Service {
	return &Service{app: app}
}

// Register handles POST /auth/register
func (s *Service) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	resp, err := s.app.Register(r.Context(), req)
	if err != nil {
		var fe validate.FieldErrors
		switch {
		case errors.As(err, &fe):
			rest.RespondFieldErrors(w, fe)
		case errors.Is(err, ErrEmailTaken):
			rest.RespondError(w, http.StatusConflict, "This email is already registered.")
		default:
			rest.RespondError(w, http.StatusInternalServerError, "Something went wrong.")
		}
		return
	}

	rest.RespondJSON(w, http.StatusCreated, resp)
}

// Login handles POST /auth/login
func (s *Service) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	resp, err := s.app.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			rest.RespondError(w, http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		rest.RespondError(w, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	rest.RespondJSON(w, http.StatusOK, resp)
}

// Me handles GET /me
func (s *Service) Me(w http.ResponseWriter, r *http.Request) {
	actorID, ok := auth.ActorFromContext(r.Context())
	if !ok {
		rest.RespondError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	user, err := s.app.GetUser(r.Context(), actorID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			rest.RespondError(w, http.StatusNotFound, "User not found.")
			return
		}
		rest.RespondError(w, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	rest.RespondJSON(w, http.StatusOK, user)
}
