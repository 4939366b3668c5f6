package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tennisconnect/server/internal/dbconfig"
)

// Applies every .sql file under migrations/ in filename order. Each file is
// recorded in schema_migrations and skipped on later runs.
func main() {
	dir := "migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	ctx := context.Background()
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := cfg.Connect(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	_, err = pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS schema_migrations (
            name       text PRIMARY KEY,
            applied_at timestamptz NOT NULL DEFAULT now()
        )`)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create schema_migrations: %v\n", err)
		os.Exit(1)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list migrations: %v\n", err)
		os.Exit(1)
	}
	sort.Strings(paths)

	var applied, skipped int
	for _, path := range paths {
		name := filepath.Base(path)

		var exists bool
		if err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name,
		).Scan(&exists); err != nil {
			fmt.Fprintf(os.Stderr, "failed to check migration %s: %v\n", name, err)
			os.Exit(1)
		}
		if exists {
			skipped++
			continue
		}

		sql, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", name, err)
			os.Exit(1)
		}

		tx, err := pool.Begin(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to begin tx for %s: %v\n", name, err)
			os.Exit(1)
		}
		if _, err := tx.Exec(ctx, string(sql)); err != nil {
			_ = tx.Rollback(ctx)
			fmt.Fprintf(os.Stderr, "failed to apply %s: %v\n", name, err)
			os.Exit(1)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name); err != nil {
			_ = tx.Rollback(ctx)
			fmt.Fprintf(os.Stderr, "failed to record %s: %v\n", name, err)
			os.Exit(1)
		}
		if err := tx.Commit(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "failed to commit %s: %v\n", name, err)
			os.Exit(1)
		}

		fmt.Printf("applied %s\n", name)
		applied++
	}

	fmt.Printf("Migrations complete: %d applied, %d skipped\n", applied, skipped)
}
