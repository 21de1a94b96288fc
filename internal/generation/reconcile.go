package generation

import "github.com/alexanderramin/fitplan/internal/domain"

// defaultRotation fills padded slots, indexed by position mod 3.
var defaultRotation = []string{"Full Body", "Cardio", "Rest Day"}

// Reconcile forces days to exactly n entries numbered 1..n.
//
// Shorter input keeps every entry and is padded from defaultRotation; longer
// input keeps the first n entries and drops the tail. n is clamped to 1..7.
// The input slice is never modified.
func Reconcile(days []domain.WorkoutDay, n int) []domain.WorkoutDay {
	n = domain.ClampInt(n, domain.MinDaysPerWeek, domain.MaxDaysPerWeek)

	out := make([]domain.WorkoutDay, 0, n)
	for i := 0; i < len(days) && i < n; i++ {
		out = append(out, days[i])
	}
	for pos := len(out); pos < n; pos++ {
		out = append(out, domain.WorkoutDay{FocusArea: defaultRotation[pos%len(defaultRotation)]})
	}

	for i := range out {
		out[i].Day = i + 1
	}
	return out
}

// ReconcilePlan returns a copy of plan whose workoutDays and daysPerWeek both
// equal n.
func ReconcilePlan(plan domain.WorkoutPlan, n int) domain.WorkoutPlan {
	plan.WorkoutDays = Reconcile(plan.WorkoutDays, n)
	plan.DaysPerWeek = len(plan.WorkoutDays)
	return plan
}
