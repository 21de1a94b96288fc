package generation

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fitplan/internal/domain"
)

// Input is everything the synthesizer may look at. It never reads the
// network or any shared state.
type Input struct {
	Kind      domain.PlanKind
	Profile   domain.UserProfile
	Prompt    string
	FocusArea string
	Existing  *domain.WorkoutPlan
}

// Synthesize produces a complete plan of the requested kind. It is total:
// every input yields a plan that passes Validate.
func Synthesize(in Input) domain.Plan {
	switch in.Kind {
	case domain.KindDiet:
		return SynthesizeDiet(DeriveDietFlags(in.Profile, in.Prompt))
	case domain.KindSession:
		return SynthesizeSession(in.FocusArea, DeriveSessionFlags(in.Prompt))
	default:
		return SynthesizeWorkoutPlan(in.Profile, in.Prompt, in.Existing)
	}
}

// skeletons holds default weekly focus lists per plan type, keyed by the
// day-count bucket. The reconciler trims or pads them to the exact count.
var skeletons = map[domain.PlanType]map[string][]string{
	domain.PlanStrength: {
		"low":  {"Full Body", "Full Body"},
		"mid":  {"Chest", "Back", "Legs", "Shoulders"},
		"high": {"Chest", "Back", "Legs", "Shoulders", "Arms", "Core", "Full Body"},
	},
	domain.PlanCardio: {
		"low":  {"Cardio", "HIIT"},
		"mid":  {"Cardio", "HIIT", "Core", "Cardio"},
		"high": {"Cardio", "HIIT", "Core", "Cardio", "Full Body", "HIIT", "Flexibility"},
	},
	domain.PlanWeightLoss: {
		"low":  {"Full Body", "HIIT"},
		"mid":  {"HIIT", "Full Body", "Cardio", "Legs"},
		"high": {"HIIT", "Full Body", "Cardio", "Legs", "HIIT", "Core", "Cardio"},
	},
	domain.PlanBalanced: {
		"low":  {"Full Body", "Cardio"},
		"mid":  {"Full Body", "Cardio", "Legs", "Core"},
		"high": {"Full Body", "Cardio", "Chest", "Back", "Legs", "Core", "Flexibility"},
	},
}

func dayBucket(n int) string {
	switch {
	case n <= 2:
		return "low"
	case n <= 4:
		return "mid"
	default:
		return "high"
	}
}

// DefaultSkeleton returns the focus-area days for a plan type and day count,
// before reconciliation.
func DefaultSkeleton(t domain.PlanType, n int) []domain.WorkoutDay {
	byBucket, ok := skeletons[t]
	if !ok {
		byBucket = skeletons[domain.PlanBalanced]
	}
	focus := byBucket[dayBucket(n)]
	out := make([]domain.WorkoutDay, len(focus))
	for i, f := range focus {
		out[i] = domain.WorkoutDay{Day: i + 1, FocusArea: f}
	}
	return out
}

var planNames = map[domain.PlanType]string{
	domain.PlanStrength:   "Strength Builder",
	domain.PlanCardio:     "Cardio Conditioning",
	domain.PlanWeightLoss: "Fat Burn Program",
	domain.PlanBalanced:   "Balanced Fitness",
}

// SynthesizeWorkoutPlan builds a weekly plan. Existing days are reused as-is
// when present; otherwise a skeleton for the classified plan type is used.
func SynthesizeWorkoutPlan(profile domain.UserProfile, prompt string, existing *domain.WorkoutPlan) *domain.WorkoutPlan {
	var existingDays []domain.WorkoutDay
	if existing != nil {
		existingDays = existing.WorkoutDays
	}
	planType := Classify(prompt, existingDays)
	n := ResolveDayCount(profile, prompt, existing, 0)

	days := fillBlankFocus(existingDays)
	if len(days) == 0 {
		days = DefaultSkeleton(planType, n)
	}

	plan := domain.WorkoutPlan{
		Name:        fmt.Sprintf("%d-Day %s", n, planNames[planType]),
		Description: describe(planType, n, profile.FitnessGoal),
		WorkoutDays: days,
	}
	if existing != nil {
		plan.Name = domain.CoalesceStr(existing.Name, plan.Name)
		plan.Description = domain.CoalesceStr(existing.Description, plan.Description)
	}

	reconciled := ReconcilePlan(plan, n)
	return &reconciled
}

// CompleteWorkoutPlan fills what a model plan may leave empty and reconciles
// it to n days. Blank focus areas take the rotation default; a blank name
// falls back to the existing plan's name, then to the classified default.
func CompleteWorkoutPlan(plan domain.WorkoutPlan, prompt string, existing *domain.WorkoutPlan, n int) domain.WorkoutPlan {
	plan.WorkoutDays = fillBlankFocus(plan.WorkoutDays)
	out := ReconcilePlan(plan, n)
	if strings.TrimSpace(out.Name) == "" {
		var existingName string
		if existing != nil {
			existingName = strings.TrimSpace(existing.Name)
		}
		planType := Classify(prompt, out.WorkoutDays)
		out.Name = domain.CoalesceStr(existingName, fmt.Sprintf("%d-Day %s", out.DaysPerWeek, planNames[planType]))
	}
	return out
}

// fillBlankFocus copies days, giving any entry without a focus area the
// rotation default for its position.
func fillBlankFocus(days []domain.WorkoutDay) []domain.WorkoutDay {
	if len(days) == 0 {
		return nil
	}
	out := make([]domain.WorkoutDay, len(days))
	copy(out, days)
	for i := range out {
		if strings.TrimSpace(out[i].FocusArea) == "" {
			out[i].FocusArea = defaultRotation[i%len(defaultRotation)]
		}
	}
	return out
}

func describe(t domain.PlanType, n int, goal domain.FitnessGoal) string {
	focus := map[domain.PlanType]string{
		domain.PlanStrength:   "progressive resistance training",
		domain.PlanCardio:     "aerobic conditioning and intervals",
		domain.PlanWeightLoss: "calorie-burning circuits and cardio",
		domain.PlanBalanced:   "a mix of strength, cardio and recovery",
	}[t]
	if goal == "" {
		return fmt.Sprintf("A %d-day weekly plan built around %s.", n, focus)
	}
	return fmt.Sprintf("A %d-day weekly plan built around %s, supporting a %s goal.", n, focus, humanGoal(goal))
}

func humanGoal(g domain.FitnessGoal) string {
	switch g {
	case domain.GoalWeightLoss:
		return "weight loss"
	case domain.GoalMuscleGain:
		return "muscle gain"
	case domain.GoalEndurance:
		return "endurance"
	default:
		return "maintenance"
	}
}
