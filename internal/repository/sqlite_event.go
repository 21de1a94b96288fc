package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/fitplan/internal/db"
	"github.com/alexanderramin/fitplan/internal/domain"
)

// SQLiteGenerationEventRepo implements GenerationEventRepo using a SQLite database.
type SQLiteGenerationEventRepo struct {
	db db.DBTX
}

// NewSQLiteGenerationEventRepo creates a new SQLiteGenerationEventRepo.
func NewSQLiteGenerationEventRepo(conn db.DBTX) *SQLiteGenerationEventRepo {
	return &SQLiteGenerationEventRepo{db: conn}
}

func (r *SQLiteGenerationEventRepo) Create(ctx context.Context, e *domain.GenerationEvent) error {
	transitions := string(e.Transitions)
	if transitions == "" {
		transitions = "[]"
	}
	query := `INSERT INTO generation_events (id, request_id, plan_id, kind, source, model,
		fallback_reason, transitions_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.RequestID,
		e.PlanID,
		string(e.Kind),
		string(e.Source),
		e.Model,
		e.FallbackReason,
		transitions,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting generation event: %w", err)
	}
	return nil
}

func (r *SQLiteGenerationEventRepo) ListByPlan(ctx context.Context, planID string) ([]*domain.GenerationEvent, error) {
	query := `SELECT id, request_id, plan_id, kind, source, model, fallback_reason, transitions_json, created_at
		FROM generation_events WHERE plan_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing generation events: %w", err)
	}
	defer rows.Close()

	var out []*domain.GenerationEvent
	for rows.Next() {
		var (
			e           domain.GenerationEvent
			transitions string
			createdAt   string
		)
		if err := rows.Scan(&e.ID, &e.RequestID, &e.PlanID, &e.Kind, &e.Source, &e.Model,
			&e.FallbackReason, &transitions, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning generation event: %w", err)
		}
		e.Transitions = []byte(transitions)
		e.CreatedAt = parseTime(createdAt)
		out = append(out, &e)
	}
	return out, rows.Err()
}
