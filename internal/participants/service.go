package participants

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/tennisconnect/server/internal/auth"
	"github.com/tennisconnect/server/internal/models"
	"github.com/tennisconnect/server/internal/rest"
)

// ParticipantsApp defines what the service layer needs from the participants application
type ParticipantsApp interface {
	Join(ctx context.Context, matchID, actorID uuid.UUID) (*models.MatchParticipant, error)
	Leave(ctx context.Context, matchID, participantID, actorID uuid.UUID) error
}

// Service exposes join and leave endpoints over HTTP
type Service struct {
	app ParticipantsApp
}

// NewService creates a new participants HTTP service
func NewService(app ParticipantsApp) *Service {
	return &Service{app: app}
}

type joinResponse struct {
	Message     string                   `json:"message"`
	Participant *models.MatchParticipant `json:"participant"`
}

type leaveResponse struct {
	Message string `json:"message"`
}

// Join handles POST /matches/{id}/join
func (s *Service) Join(w http.ResponseWriter, r *http.Request) {
	actorID, ok := auth.ActorFromContext(r.Context())
	if !ok {
		rest.RespondError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	matchID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		rest.RespondError(w, http.StatusNotFound, "Match not found.")
		return
	}

	participant, err := s.app.Join(r.Context(), matchID, actorID)
	if err != nil {
		s.respondAppError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusCreated, joinResponse{
		Message:     "Successfully joined the match!",
		Participant: participant,
	})
}

// Leave handles DELETE /matches/{id}/participants/{participantID}
func (s *Service) Leave(w http.ResponseWriter, r *http.Request) {
	actorID, ok := auth.ActorFromContext(r.Context())
	if !ok {
		rest.RespondError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	matchID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		rest.RespondError(w, http.StatusNotFound, "Match not found.")
		return
	}
	participantID, err := uuid.Parse(r.PathValue("participantID"))
	if err != nil {
		rest.RespondError(w, http.StatusNotFound, "Participant not found.")
		return
	}

	if err := s.app.Leave(r.Context(), matchID, participantID, actorID); err != nil {
		s.respondAppError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, leaveResponse{Message: "You have left the match."})
}

// respondAppError maps app layer failures to HTTP responses. Participation
// conflicts are soft 409s carrying the message the client shows verbatim.
func (s *Service) respondAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMatchNotFound):
		rest.RespondError(w, http.StatusNotFound, "Match not found.")
	case errors.Is(err, ErrParticipantNotFound):
		rest.RespondError(w, http.StatusNotFound, "Participant not found.")
	case errors.Is(err, ErrAlreadyJoined):
		rest.RespondError(w, http.StatusConflict, "You are already registered for this match.")
	case errors.Is(err, ErrMatchFull):
		rest.RespondError(w, http.StatusConflict, "This match is already full.")
	case errors.Is(err, ErrNotParticipant):
		rest.RespondError(w, http.StatusConflict, "You can only leave matches you joined.")
	default:
		rest.RespondError(w, http.StatusInternalServerError, "Something went wrong.")
	}
}
