package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillEventSource(db); err != nil {
		return fmt.Errorf("backfilling generation event sources: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_profiles (
		id                TEXT PRIMARY KEY,
		age               INTEGER NOT NULL,
		height_cm         REAL NOT NULL,
		current_weight_kg REAL NOT NULL,
		target_weight_kg  REAL NOT NULL,
		activity_level    TEXT NOT NULL DEFAULT 'moderately_active'
		                  CHECK(activity_level IN ('sedentary','lightly_active','moderately_active','very_active','extra_active')),
		diet_preference   TEXT NOT NULL DEFAULT 'no_preference'
		                  CHECK(diet_preference IN ('no_preference','vegetarian','vegan','keto','paleo')),
		fitness_goal      TEXT NOT NULL DEFAULT 'maintenance'
		                  CHECK(fitness_goal IN ('weight_loss','muscle_gain','maintenance','endurance')),
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plans (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL DEFAULT '',
		kind       TEXT NOT NULL CHECK(kind IN ('workout','diet','session')),
		source     TEXT NOT NULL CHECK(source IN ('model','synthesized')),
		prompt     TEXT NOT NULL DEFAULT '',
		plan_json  TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_user_created ON plans(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS generation_events (
		id               TEXT PRIMARY KEY,
		request_id       TEXT NOT NULL,
		plan_id          TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		kind             TEXT NOT NULL,
		model            TEXT NOT NULL DEFAULT '',
		transitions_json TEXT NOT NULL DEFAULT '[]',
		created_at       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_generation_events_plan ON generation_events(plan_id)`,

	// v2: record which tier produced the plan and why fallback happened.
	`ALTER TABLE generation_events ADD COLUMN source TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE generation_events ADD COLUMN fallback_reason TEXT NOT NULL DEFAULT ''`,
}

// migrateBackfillEventSource copies the plan source onto events written
// before generation_events carried a source column.
func migrateBackfillEventSource(db *sql.DB) error {
	ctx := context.Background()
	_, err := db.ExecContext(ctx, `UPDATE generation_events
		SET source = (SELECT p.source FROM plans p WHERE p.id = generation_events.plan_id)
		WHERE source = ''`)
	if err != nil {
		return fmt.Errorf("updating event sources: %w", err)
	}
	return nil
}
