package generation

import (
	"strings"

	"github.com/alexanderramin/fitplan/internal/domain"
)

// keywordRule maps prompt keywords to a plan type. Rules are checked in
// order and the first match wins.
type keywordRule struct {
	planType domain.PlanType
	keywords []string
}

var keywordRules = []keywordRule{
	{domain.PlanStrength, []string{"strength", "muscle", "build"}},
	{domain.PlanCardio, []string{"cardio", "endurance", "stamina"}},
	{domain.PlanWeightLoss, []string{"weight loss", "fat loss", "slim"}},
}

var strengthFocus = map[string]bool{
	"chest": true, "back": true, "legs": true, "shoulders": true, "arms": true, "core": true,
}

// Tally holds the per-type vote counts gathered from existing workout days.
type Tally struct {
	Strength   int `json:"strength"`
	Cardio     int `json:"cardio"`
	WeightLoss int `json:"weightLoss"`
}

// Classify infers the plan type from the prompt, falling back to a vote over
// the focus areas of existing days when no keyword matches.
func Classify(prompt string, existing []domain.WorkoutDay) domain.PlanType {
	if t, ok := ClassifyPrompt(prompt); ok {
		return t
	}
	return CountVotes(existing).Resolve()
}

// ClassifyPrompt applies the keyword rules to the lower-cased prompt.
func ClassifyPrompt(prompt string) (domain.PlanType, bool) {
	lower := strings.ToLower(prompt)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.planType, true
			}
		}
	}
	return "", false
}

// CountVotes tallies focus areas. A day may vote for more than one type.
func CountVotes(existing []domain.WorkoutDay) Tally {
	var t Tally
	for _, d := range existing {
		focus := strings.ToLower(strings.TrimSpace(d.FocusArea))
		switch {
		case strengthFocus[focus]:
			t.Strength++
		case focus == "cardio" || focus == "hiit":
			t.Cardio++
			t.WeightLoss++
		case focus == "full body":
			t.Strength++
			t.WeightLoss++
		}
	}
	return t
}

// Resolve picks the winning type. Cardio wins ties against weight loss while
// the other comparisons are strict.
func (t Tally) Resolve() domain.PlanType {
	switch {
	case t.Strength > t.Cardio && t.Strength > t.WeightLoss:
		return domain.PlanStrength
	case t.Cardio > t.Strength && t.Cardio >= t.WeightLoss:
		return domain.PlanCardio
	case t.WeightLoss > t.Strength && t.WeightLoss > t.Cardio:
		return domain.PlanWeightLoss
	default:
		return domain.PlanBalanced
	}
}
