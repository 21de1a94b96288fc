package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradePath_V1Events simulates a database created before
// generation_events carried source and fallback_reason. Existing rows must
// survive and get their source backfilled from the owning plan.
func TestMigrate_UpgradePath_V1Events(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	legacy := []string{
		`CREATE TABLE plans (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL DEFAULT '',
			kind       TEXT NOT NULL CHECK(kind IN ('workout','diet','session')),
			source     TEXT NOT NULL CHECK(source IN ('model','synthesized')),
			prompt     TEXT NOT NULL DEFAULT '',
			plan_json  TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE generation_events (
			id               TEXT PRIMARY KEY,
			request_id       TEXT NOT NULL,
			plan_id          TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
			kind             TEXT NOT NULL,
			model            TEXT NOT NULL DEFAULT '',
			transitions_json TEXT NOT NULL DEFAULT '[]',
			created_at       TEXT NOT NULL
		)`,
		`INSERT INTO plans (id, kind, source, plan_json, created_at) VALUES ('p1', 'workout', 'synthesized', '{}', '2026-01-01T00:00:00Z')`,
		`INSERT INTO generation_events (id, request_id, plan_id, kind, created_at) VALUES ('e1', 'r1', 'p1', 'workout', '2026-01-01T00:00:00Z')`,
	}
	for _, stmt := range legacy {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))

	var source, reason string
	require.NoError(t, db.QueryRow(`SELECT source, fallback_reason FROM generation_events WHERE id = 'e1'`).Scan(&source, &reason))
	assert.Equal(t, "synthesized", source)
	assert.Equal(t, "", reason)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM plans`).Scan(&count))
	assert.Equal(t, 1, count)

	require.NoError(t, Migrate(db), "re-running after upgrade is a no-op")
}
