package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/fitplan/internal/db"
	"github.com/alexanderramin/fitplan/internal/domain"
)

// SQLiteUserProfileRepo implements UserProfileRepo using a SQLite database.
type SQLiteUserProfileRepo struct {
	db db.DBTX
}

// NewSQLiteUserProfileRepo creates a new SQLiteUserProfileRepo.
func NewSQLiteUserProfileRepo(conn db.DBTX) *SQLiteUserProfileRepo {
	return &SQLiteUserProfileRepo{db: conn}
}

func (r *SQLiteUserProfileRepo) Get(ctx context.Context, id string) (*domain.UserProfile, error) {
	query := `SELECT id, age, height_cm, current_weight_kg, target_weight_kg,
		activity_level, diet_preference, fitness_goal
		FROM user_profiles WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var p domain.UserProfile
	err := row.Scan(
		&p.ID,
		&p.Age,
		&p.HeightCm,
		&p.CurrentWeightKg,
		&p.TargetWeightKg,
		&p.ActivityLevel,
		&p.DietPreference,
		&p.FitnessGoal,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user profile %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	return &p, nil
}

// Upsert inserts or replaces the profile, keeping the original created_at.
func (r *SQLiteUserProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	now := nowUTC()
	query := `INSERT INTO user_profiles (id, age, height_cm, current_weight_kg, target_weight_kg,
		activity_level, diet_preference, fitness_goal, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			age = excluded.age,
			height_cm = excluded.height_cm,
			current_weight_kg = excluded.current_weight_kg,
			target_weight_kg = excluded.target_weight_kg,
			activity_level = excluded.activity_level,
			diet_preference = excluded.diet_preference,
			fitness_goal = excluded.fitness_goal,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Age,
		p.HeightCm,
		p.CurrentWeightKg,
		p.TargetWeightKg,
		string(p.ActivityLevel),
		string(p.DietPreference),
		string(p.FitnessGoal),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}

func (r *SQLiteUserProfileRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting user profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user profile %s: %w", id, ErrNotFound)
	}
	return nil
}
