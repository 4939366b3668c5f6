package participants

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/tennisconnect/server/internal/auth"
	"github.com/tennisconnect/server/internal/models"
	"github.com/tennisconnect/server/internal/rest"
)

type stubApp struct {
	joinParticipant *models.MatchParticipant
	joinErr         error
	leaveErr        error
}

func (s *stubApp) Join(ctx context.Context, matchID, actorID uuid.UUID) (*models.MatchParticipant, error) {
	return s.joinParticipant, s.joinErr
}

func (s *stubApp) Leave(ctx context.Context, matchID, participantID, actorID uuid.UUID) error {
	return s.leaveErr
}

func testIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer([]byte("test-secret"), time.Hour, clockwork.NewRealClock())
}

func authedJoinRequest(t *testing.T, issuer *auth.TokenIssuer) *http.Request {
	t.Helper()
	token, err := issuer.Issue(uuid.New())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	r := httptest.NewRequest("POST", "/matches/"+uuid.NewString()+"/join", nil)
	r.SetPathValue("id", uuid.NewString())
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) rest.ErrorBody {
	t.Helper()
	var body rest.ErrorBody
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func TestJoinSuccessReturnsMessage(t *testing.T) {
	issuer := testIssuer()
	app := &stubApp{joinParticipant: &models.MatchParticipant{ID: uuid.New()}}
	handler := issuer.RequireAuth(http.HandlerFunc(NewService(app).Join))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedJoinRequest(t, issuer))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	var body joinResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "Successfully joined the match!" {
		t.Errorf("message = %q", body.Message)
	}
	if body.Participant == nil {
		t.Error("expected participant in response")
	}
}

func TestJoinConflictsAreSoft409s(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{
			name:    "already joined",
			err:     ErrAlreadyJoined,
			message: "You are already registered for this match.",
		},
		{
			name:    "match full",
			err:     ErrMatchFull,
			message: "This match is already full.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issuer := testIssuer()
			handler := issuer.RequireAuth(http.HandlerFunc(NewService(&stubApp{joinErr: tc.err}).Join))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, authedJoinRequest(t, issuer))

			if w.Code != http.StatusConflict {
				t.Fatalf("status = %d, want 409", w.Code)
			}
			if body := decodeErrorBody(t, w); body.Message != tc.message {
				t.Errorf("message = %q, want %q", body.Message, tc.message)
			}
		})
	}
}

func TestJoinUnknownMatchIs404(t *testing.T) {
	issuer := testIssuer()
	handler := issuer.RequireAuth(http.HandlerFunc(NewService(&stubApp{joinErr: ErrMatchNotFound}).Join))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedJoinRequest(t, issuer))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestLeaveSomeoneElsesRecordIsSoft409(t *testing.T) {
	issuer := testIssuer()
	handler := issuer.RequireAuth(http.HandlerFunc(NewService(&stubApp{leaveErr: ErrNotParticipant}).Leave))

	token, err := issuer.Issue(uuid.New())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	r := httptest.NewRequest("DELETE", "/matches/"+uuid.NewString()+"/participants/"+uuid.NewString(), nil)
	r.SetPathValue("id", uuid.NewString())
	r.SetPathValue("participantID", uuid.NewString())
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if body := decodeErrorBody(t, w); body.Message != "You can only leave matches you joined." {
		t.Errorf("message = %q", body.Message)
	}
}

func TestLeaveSuccessReturnsMessage(t *testing.T) {
	issuer := testIssuer()
	handler := issuer.RequireAuth(http.HandlerFunc(NewService(&stubApp{}).Leave))

	token, err := issuer.Issue(uuid.New())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	r := httptest.NewRequest("DELETE", "/matches/"+uuid.NewString()+"/participants/"+uuid.NewString(), nil)
	r.SetPathValue("id", uuid.NewString())
	r.SetPathValue("participantID", uuid.NewString())
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body leaveResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "You have left the match." {
		t.Errorf("message = %q", body.Message)
	}
}
