package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/tennisconnect/server/internal/models"
)

type fakeEventsRepo struct {
	event      *models.Event
	listFilter ListFilter
	listNow    time.Time
}

func (f *fakeEventsRepo) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	if f.event == nil || f.event.ID != id {
		return nil, ErrNotFound
	}
	return f.event, nil
}

func (f *fakeEventsRepo) ListEvents(ctx context.Context, filter ListFilter, now time.Time) (*ListResult, error) {
	f.listFilter = filter
	f.listNow = now
	return &ListResult{}, nil
}

func TestListEventsUsesClock(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeEventsRepo{}
	app := NewApp(repo, clockwork.NewFakeClockAt(now))

	if _, err := app.ListEvents(context.Background(), ListFilter{Page: 0}); err != nil {
		t.Fatalf("list events: %v", err)
	}
	if !repo.listNow.Equal(now) {
		t.Errorf("list now = %s, want %s", repo.listNow, now)
	}
	if repo.listFilter.Page != 1 {
		t.Errorf("page = %d, want 1", repo.listFilter.Page)
	}
}

func TestGetEvent(t *testing.T) {
	event := &models.Event{ID: uuid.New(), Title: "Club Open Day"}
	repo := &fakeEventsRepo{event: event}
	app := NewApp(repo, clockwork.NewRealClock())

	got, err := app.GetEvent(context.Background(), event.ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got.Title != event.Title {
		t.Errorf("title = %q, want %q", got.Title, event.Title)
	}
}
