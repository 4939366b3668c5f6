package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/tennisconnect/server/internal/models"
)

// EventsRepository defines what the app layer needs from the repository
type EventsRepository interface {
	GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error)
	ListEvents(ctx context.Context, filter ListFilter, now time.Time) (*ListResult, error)
}

// App handles event business logic
type App struct {
	repo  EventsRepository
	clock clockwork.Clock
}

// NewApp creates a new events App
func NewApp(repo EventsRepository, clock clockwork.Clock) *App {
	return &App{repo: repo, clock: clock}
}

// GetEvent retrieves an event by ID
func (a *App) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	return a.repo.GetEvent(ctx, id)
}

// ListEvents returns one page of the filtered event listing.
func (a *App) ListEvents(ctx context.Context, filter ListFilter) (*ListResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	return a.repo.ListEvents(ctx, filter, a.clock.Now())
}
