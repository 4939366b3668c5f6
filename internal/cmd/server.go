package main

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"github.com/tennisconnect/server/internal/auth"
	"github.com/tennisconnect/server/internal/rest"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func setupServer(services *Services, tokens *auth.TokenIssuer, config *Config) *http.Server {
	mux := http.NewServeMux()

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})

	// Register services
	registerRoutes(mux, services, tokens)

	// Add health check endpoint
	setupHealthCheck(mux)

	// Wrap with logging and CORS
	handler := c.Handler(rest.RequestLogger(mux))

	// Setup HTTP/2 server
	return &http.Server{
		Addr:    fmt.Sprintf(":%s", getEnv("PORT", config.Server.Port)),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}
}

func registerRoutes(mux *http.ServeMux, services *Services, tokens *auth.TokenIssuer) {
	authed := func(h http.HandlerFunc) http.Handler {
		return tokens.RequireAuth(h)
	}

	// Auth
	mux.HandleFunc("POST /auth/register", services.Users.Register)
	mux.HandleFunc("POST /auth/login", services.Users.Login)
	mux.Handle("GET /me", authed(services.Users.Me))

	// Player profiles
	mux.HandleFunc("GET /profiles", services.Profiles.List)
	mux.HandleFunc("GET /profiles/{id}", services.Profiles.Get)
	mux.Handle("POST /profiles", authed(services.Profiles.Create))
	mux.Handle("PATCH /profiles/{id}", authed(services.Profiles.Update))
	mux.Handle("DELETE /profiles/{id}", authed(services.Profiles.Delete))

	// Events
	mux.HandleFunc("GET /events", services.Events.List)
	mux.HandleFunc("GET /events/{id}", services.Events.Get)

	// Matches
	mux.HandleFunc("GET /matches", services.Matches.List)
	mux.Handle("GET /matches/{id}", tokens.OptionalAuth(http.HandlerFunc(services.Matches.Get)))
	mux.Handle("POST /matches", authed(services.Matches.Create))
	mux.Handle("PATCH /matches/{id}", authed(services.Matches.Update))
	mux.Handle("DELETE /matches/{id}", authed(services.Matches.Delete))

	// Participation
	mux.Handle("POST /matches/{id}/join", authed(services.Participants.Join))
	mux.Handle("DELETE /matches/{id}/participants/{participantID}", authed(services.Participants.Leave))
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}
