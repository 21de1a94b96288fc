package generation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/fitplan/internal/domain"
)

// DietFlags selects rows of the meal lookup table. Each flag is derived
// independently from the profile and the prompt.
type DietFlags struct {
	Vegetarian  bool `json:"vegetarian"`
	HighProtein bool `json:"highProtein"`
	WeightLoss  bool `json:"weightLoss"`
}

// DeriveDietFlags computes DietFlags with no dependence on evaluation order.
func DeriveDietFlags(profile domain.UserProfile, prompt string) DietFlags {
	lower := strings.ToLower(prompt)
	return DietFlags{
		Vegetarian:  profile.DietPreference == domain.DietVegetarian || strings.Contains(lower, "vegetarian"),
		HighProtein: profile.FitnessGoal == domain.GoalMuscleGain || strings.Contains(lower, "protein"),
		WeightLoss:  profile.FitnessGoal == domain.GoalWeightLoss,
	}
}

// SessionFlags are the prompt signals that transform a session template.
type SessionFlags struct {
	Quick bool `json:"quick"`
	Home  bool `json:"home"`
}

var (
	quickSignals = []string{"quick", "short", "express"}
	homeSignals  = []string{"home", "no equipment", "bodyweight", "no gym"}
)

// DeriveSessionFlags scans the lower-cased prompt for quick and home signals.
func DeriveSessionFlags(prompt string) SessionFlags {
	lower := strings.ToLower(prompt)
	return SessionFlags{
		Quick: containsAny(lower, quickSignals),
		Home:  containsAny(lower, homeSignals),
	}
}

var daysPattern = regexp.MustCompile(`\b([1-7])[\s-]*days?\b`)

// PromptDayCount extracts an "N day" request from the prompt.
func PromptDayCount(prompt string) (int, bool) {
	m := daysPattern.FindStringSubmatch(strings.ToLower(prompt))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ResolveDayCount picks the target number of training days: the existing
// structure's count, then an "N day" prompt, then the model's own count,
// then the profile's activity default. The result is always in 1..7.
func ResolveDayCount(profile domain.UserProfile, prompt string, existing *domain.WorkoutPlan, modelDays int) int {
	if existing != nil && existing.DaysPerWeek >= domain.MinDaysPerWeek && existing.DaysPerWeek <= domain.MaxDaysPerWeek {
		return existing.DaysPerWeek
	}
	if existing != nil && len(existing.WorkoutDays) >= domain.MinDaysPerWeek && len(existing.WorkoutDays) <= domain.MaxDaysPerWeek {
		return len(existing.WorkoutDays)
	}
	if n, ok := PromptDayCount(prompt); ok {
		return n
	}
	if modelDays >= domain.MinDaysPerWeek && modelDays <= domain.MaxDaysPerWeek {
		return modelDays
	}
	return domain.ClampInt(profile.DefaultDaysPerWeek(), domain.MinDaysPerWeek, domain.MaxDaysPerWeek)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
