package main

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/tennisconnect/server/internal/auth"
	"github.com/tennisconnect/server/internal/events"
	"github.com/tennisconnect/server/internal/matches"
	"github.com/tennisconnect/server/internal/participants"
	"github.com/tennisconnect/server/internal/profiles"
	"github.com/tennisconnect/server/internal/users"
)

type Services struct {
	Users        *users.Service
	Profiles     *profiles.Service
	Events       *events.Service
	Matches      *matches.Service
	Participants *participants.Service
}

func setupServices(pool *pgxpool.Pool, tokens *auth.TokenIssuer, config *Config) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer
	clock := clockwork.NewRealClock()
	perPage := config.Listing.PerPage

	// Users
	userRepo := users.NewRepository(pool)
	userApp := users.NewApp(userRepo, tokens)
	userService := users.NewService(userApp)

	// Profiles
	profileRepo := profiles.NewRepository(pool)
	profileApp := profiles.NewApp(profileRepo)
	profileService := profiles.NewService(profileApp, perPage)

	// Events
	eventRepo := events.NewRepository(pool)
	eventApp := events.NewApp(eventRepo, clock)
	eventService := events.NewService(eventApp, perPage)

	// Matches
	matchRepo := matches.NewRepository(pool)
	matchApp := matches.NewApp(matchRepo, clock)
	matchService := matches.NewService(matchApp, perPage)

	// Participants
	participantRepo := participants.NewRepository(pool)
	participantApp := participants.NewApp(participantRepo)
	participantService := participants.NewService(participantApp)

	return &Services{
		Users:        userService,
		Profiles:     profileService,
		Events:       eventService,
		Matches:      matchService,
		Participants: participantService,
	}
}
