package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// PlanRecord is a generated plan as stored by the caller-side history.
type PlanRecord struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId,omitempty"`
	Kind      PlanKind        `json:"kind"`
	Source    PlanSource      `json:"source"`
	Prompt    string          `json:"promptText,omitempty"`
	Plan      json.RawMessage `json:"plan"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Decode unmarshals the stored plan body into its concrete type.
func (r *PlanRecord) Decode() (Plan, error) {
	return DecodePlan(r.Kind, r.Plan)
}

// GenerationEvent is the audit row written alongside each stored plan.
type GenerationEvent struct {
	ID             string          `json:"id"`
	RequestID      string          `json:"requestId"`
	PlanID         string          `json:"planId"`
	Kind           PlanKind        `json:"kind"`
	Source         PlanSource      `json:"source"`
	Model          string          `json:"model,omitempty"`
	FallbackReason string          `json:"fallbackReason,omitempty"`
	Transitions    json.RawMessage `json:"transitions"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// DecodePlan unmarshals data into the Plan implementation for kind.
func DecodePlan(kind PlanKind, data []byte) (Plan, error) {
	var p Plan
	switch kind {
	case KindDiet:
		p = &DietPlan{}
	case KindSession:
		p = &Workout{}
	case KindWorkout:
		p = &WorkoutPlan{}
	default:
		return nil, fmt.Errorf("unknown plan kind %q", kind)
	}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decoding %s plan: %w", kind, err)
	}
	return p, nil
}
