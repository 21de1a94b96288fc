package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/fitplan/internal/db"
	"github.com/alexanderramin/fitplan/internal/domain"
)

const (
	defaultPlanListLimit = 20
	maxPlanListLimit     = 100
)

// SQLitePlanRepo implements PlanRepo using a SQLite database.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, rec *domain.PlanRecord) error {
	query := `INSERT INTO plans (id, user_id, kind, source, prompt, plan_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		string(rec.Kind),
		string(rec.Source),
		rec.Prompt,
		string(rec.Plan),
		formatTime(rec.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.PlanRecord, error) {
	query := `SELECT id, user_id, kind, source, prompt, plan_json, created_at
		FROM plans WHERE id = ?`
	rec, err := scanPlan(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("plan %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	return rec, nil
}

// ListByUser returns the user's plans newest first.
func (r *SQLitePlanRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.PlanRecord, error) {
	query := `SELECT id, user_id, kind, source, prompt, plan_json, created_at
		FROM plans WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, clampLimit(limit, defaultPlanListLimit, maxPlanListLimit))
	if err != nil {
		return nil, fmt.Errorf("listing plans by user: %w", err)
	}
	defer rows.Close()

	var out []*domain.PlanRecord
	for rows.Next() {
		rec, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning plan row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*domain.PlanRecord, error) {
	var (
		rec       domain.PlanRecord
		planJSON  string
		createdAt string
	)
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.Kind, &rec.Source, &rec.Prompt, &planJSON, &createdAt); err != nil {
		return nil, err
	}
	rec.Plan = []byte(planJSON)
	rec.CreatedAt = parseTime(createdAt)
	return &rec, nil
}
