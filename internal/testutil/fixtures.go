package testutil

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/fitplan/internal/domain"
)

// Profile options
type ProfileOption func(*domain.UserProfile)

func WithProfileID(id string) ProfileOption {
	return func(p *domain.UserProfile) {
		p.ID = id
	}
}

func WithActivity(a domain.ActivityLevel) ProfileOption {
	return func(p *domain.UserProfile) {
		p.ActivityLevel = a
	}
}

func WithDiet(d domain.DietPreference) ProfileOption {
	return func(p *domain.UserProfile) {
		p.DietPreference = d
	}
}

func WithGoal(g domain.FitnessGoal) ProfileOption {
	return func(p *domain.UserProfile) {
		p.FitnessGoal = g
	}
}

// NewTestProfile returns a valid profile: 30 years, 175 cm, 80 -> 75 kg,
// moderately active, no diet preference, maintenance.
func NewTestProfile(opts ...ProfileOption) domain.UserProfile {
	p := domain.UserProfile{
		Age:             30,
		HeightCm:        175,
		CurrentWeightKg: 80,
		TargetWeightKg:  75,
		ActivityLevel:   domain.ActivityModeratelyActive,
		DietPreference:  domain.DietNoPreference,
		FitnessGoal:     domain.GoalMaintenance,
	}
	for _, o := range opts {
		o(&p)
	}
	return p
}

// Plan record options
type PlanRecordOption func(*domain.PlanRecord)

func WithUserID(id string) PlanRecordOption {
	return func(r *domain.PlanRecord) {
		r.UserID = id
	}
}

func WithCreatedAt(t time.Time) PlanRecordOption {
	return func(r *domain.PlanRecord) {
		r.CreatedAt = t
	}
}

func WithSource(s domain.PlanSource) PlanRecordOption {
	return func(r *domain.PlanRecord) {
		r.Source = s
	}
}

// NewTestPlanRecord wraps plan in a stored record with a fresh ID.
func NewTestPlanRecord(plan domain.Plan, opts ...PlanRecordOption) *domain.PlanRecord {
	data, err := json.Marshal(plan)
	if err != nil {
		panic(err)
	}
	r := &domain.PlanRecord{
		ID:        uuid.New().String(),
		Kind:      plan.Kind(),
		Source:    domain.SourceSynthesized,
		Plan:      data,
		CreatedAt: time.Now().UTC(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// NewTestWorkoutPlan returns a valid plan with one day per focus area.
func NewTestWorkoutPlan(name string, focus ...string) *domain.WorkoutPlan {
	days := make([]domain.WorkoutDay, len(focus))
	for i, f := range focus {
		days[i] = domain.WorkoutDay{Day: i + 1, FocusArea: f}
	}
	return &domain.WorkoutPlan{
		Name:        name,
		Description: name + " plan",
		DaysPerWeek: len(focus),
		WorkoutDays: days,
	}
}
