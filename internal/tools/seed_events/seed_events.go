package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tennisconnect/server/internal/dbconfig"
)

// Event mirrors the JSON snapshot of curated events
type Event struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     *string  `json:"description"`
	EventDate       string   `json:"event_date"`
	City            string   `json:"city"`
	Venue           string   `json:"venue"`
	MaxParticipants *int     `json:"max_participants"`
	Price           *float64 `json:"price"`
	SkillLevel      string   `json:"skill_level"`
	IsActive        bool     `json:"is_active"`
}

func main() {
	// 1) Load the JSON snapshot
	path := "internal/assets/events.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read JSON: %v\n", err)
		os.Exit(1)
	}
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal JSON: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := cfg.Connect(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Upsert and count
	var (
		total    = len(events)
		inserted int
		skipped  int
		errs     int
	)

	for _, e := range events {
		cmdTag, err := pool.Exec(context.Background(), `
            INSERT INTO events (
              id, title, description, event_date, city, venue,
              max_participants, price, skill_level, is_active
            ) VALUES (
              $1,$2,$3,$4,$5,$6,$7,$8,$9,$10
            )
            ON CONFLICT (id) DO NOTHING
        `,
			e.ID, e.Title, e.Description, e.EventDate, e.City, e.Venue,
			e.MaxParticipants, e.Price, e.SkillLevel, e.IsActive,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting event %s: %v\n", e.ID, err)
			errs++
			continue
		}
		if cmdTag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}

	// 4) Print summary
	fmt.Printf(
		"Events seed complete: %d total, %d inserted, %d skipped, %d errors\n",
		total, inserted, skipped, errs,
	)
}
