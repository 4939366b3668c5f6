package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/tennisconnect/server/internal/rest"
)

type contextKey struct{}

var actorKey contextKey

// RequireAuth rejects requests without a valid bearer token and stores the
// actor id in the request context.
func (t *TokenIssuer) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID, ok := t.actorFromRequest(r)
		if !ok {
			rest.RespondError(w, http.StatusUnauthorized, "Authentication required.")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, actorID)))
	})
}

// OptionalAuth stores the actor id in the request context when a valid bearer
// token is present, and passes the request through either way.
func (t *TokenIssuer) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actorID, ok := t.actorFromRequest(r); ok {
			r = r.WithContext(context.WithValue(r.Context(), actorKey, actorID))
		}
		next.ServeHTTP(w, r)
	})
}

func (t *TokenIssuer) actorFromRequest(r *http.Request) (uuid.UUID, bool) {
	header := r.Header.Get("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return uuid.Nil, false
	}
	actorID, err := t.Verify(tokenString)
	if err != nil {
		return uuid.Nil, false
	}
	return actorID, true
}

// ActorFromContext returns the authenticated actor id, if any.
func ActorFromContext(ctx context.Context) (uuid.UUID, bool) {
	actorID, ok := ctx.Value(actorKey).(uuid.UUID)
	return actorID, ok
}
