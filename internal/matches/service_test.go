package matches

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/tennisconnect/server/internal/auth"
	"github.com/tennisconnect/server/internal/authz"
	"github.com/tennisconnect/server/internal/models"
	"github.com/tennisconnect/server/internal/rest"
	"github.com/tennisconnect/server/internal/validate"
)

type stubApp struct {
	updateErr error
	deleteErr error
	detail    *Detail
	getErr    error
}

func (s *stubApp) CreateMatch(ctx context.Context, actorID uuid.UUID, req CreateMatchRequest) (*models.TennisMatch, error) {
	return nil, nil
}

func (s *stubApp) GetMatch(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) (*Detail, error) {
	return s.detail, s.getErr
}

func (s *stubApp) UpdateMatch(ctx context.Context, actorID, id uuid.UUID, req UpdateMatchRequest) (*models.TennisMatch, error) {
	return nil, s.updateErr
}

func (s *stubApp) DeleteMatch(ctx context.Context, actorID, id uuid.UUID) error {
	return s.deleteErr
}

func (s *stubApp) ListMatches(ctx context.Context, filter ListFilter) (*ListResult, error) {
	return &ListResult{}, nil
}

func testIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer([]byte("test-secret"), time.Hour, clockwork.NewRealClock())
}

func bearer(t *testing.T, issuer *auth.TokenIssuer) string {
	t.Helper()
	token, err := issuer.Issue(uuid.New())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) rest.ErrorBody {
	t.Helper()
	var body rest.ErrorBody
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func TestUpdateByNonOrganizerIsHardForbidden(t *testing.T) {
	issuer := testIssuer()
	svc := NewService(&stubApp{updateErr: authz.ErrForbidden}, 12)
	handler := issuer.RequireAuth(http.HandlerFunc(svc.Update))

	r := httptest.NewRequest("PATCH", "/matches/"+uuid.NewString(), strings.NewReader(`{}`))
	r.SetPathValue("id", uuid.NewString())
	r.Header.Set("Authorization", bearer(t, issuer))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if body := decodeErrorBody(t, w); body.Message != "Unauthorized." {
		t.Errorf("message = %q, want %q", body.Message, "Unauthorized.")
	}
}

func TestUpdateValidationFailureIs422(t *testing.T) {
	issuer := testIssuer()
	fe := validate.FieldErrors{}
	fe.Add("title", "Please enter a match title.")
	svc := NewService(&stubApp{updateErr: fe}, 12)
	handler := issuer.RequireAuth(http.HandlerFunc(svc.Update))

	r := httptest.NewRequest("PATCH", "/matches/"+uuid.NewString(), strings.NewReader(`{}`))
	r.SetPathValue("id", uuid.NewString())
	r.Header.Set("Authorization", bearer(t, issuer))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	body := decodeErrorBody(t, w)
	if body.Fields["title"] != "Please enter a match title." {
		t.Errorf("fields = %v, want title message", body.Fields)
	}
}

func TestUpdateWithoutTokenIs401(t *testing.T) {
	issuer := testIssuer()
	svc := NewService(&stubApp{}, 12)
	handler := issuer.RequireAuth(http.HandlerFunc(svc.Update))

	r := httptest.NewRequest("PATCH", "/matches/"+uuid.NewString(), strings.NewReader(`{}`))
	r.SetPathValue("id", uuid.NewString())
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestDeleteUnknownMatchIs404(t *testing.T) {
	issuer := testIssuer()
	svc := NewService(&stubApp{deleteErr: ErrNotFound}, 12)
	handler := issuer.RequireAuth(http.HandlerFunc(svc.Delete))

	r := httptest.NewRequest("DELETE", "/matches/"+uuid.NewString(), nil)
	r.SetPathValue("id", uuid.NewString())
	r.Header.Set("Authorization", bearer(t, issuer))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetReturnsParticipationField(t *testing.T) {
	issuer := testIssuer()
	match := &models.TennisMatch{ID: uuid.New()}
	detail := &Detail{
		Match:             match,
		UserParticipation: &models.MatchParticipant{ID: uuid.New(), MatchID: match.ID},
	}
	svc := NewService(&stubApp{detail: detail}, 12)
	handler := issuer.OptionalAuth(http.HandlerFunc(svc.Get))

	r := httptest.NewRequest("GET", "/matches/"+match.ID.String(), nil)
	r.SetPathValue("id", match.ID.String())
	r.Header.Set("Authorization", bearer(t, issuer))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Match             *models.TennisMatch      `json:"match"`
		UserParticipation *models.MatchParticipant `json:"user_participation"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.UserParticipation == nil {
		t.Error("expected user_participation in response")
	}
}
