package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/fitplan/internal/contract"
	"github.com/alexanderramin/fitplan/internal/domain"
	"github.com/alexanderramin/fitplan/internal/generation"
	"github.com/alexanderramin/fitplan/internal/intelligence"
)

// FormatResult renders a generation result for the terminal. With trace set
// the orchestrator's transitions are listed after the plan.
func FormatResult(res *contract.GenerationResult, trace bool) string {
	if res == nil {
		return ""
	}
	if !res.OK {
		return StyleRed.Render("✖ ") + res.Reason
	}

	var b strings.Builder
	b.WriteString(SourceBadge(res.Source))
	if res.PlanID != "" {
		b.WriteString("  " + Dim("plan "+res.PlanID))
	}
	b.WriteString("\n")
	if res.FallbackReason != "" {
		b.WriteString(Dim("fallback: "+res.FallbackReason) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(FormatPlan(res.Plan))

	if trace && len(res.Transitions) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatTransitions(res.Transitions))
	}
	return b.String()
}

// FormatPlan dispatches on the concrete plan type.
func FormatPlan(p domain.Plan) string {
	switch v := p.(type) {
	case *domain.WorkoutPlan:
		return FormatWorkoutPlan(v)
	case *domain.DietPlan:
		return FormatDietPlan(v)
	case *domain.Workout:
		return FormatWorkout(v)
	default:
		return Dim("(no plan)") + "\n"
	}
}

func FormatWorkoutPlan(p *domain.WorkoutPlan) string {
	var b strings.Builder
	b.WriteString(Header(p.Name) + "\n")
	if p.Description != "" {
		b.WriteString(p.Description + "\n")
	}
	b.WriteString(Dim(fmt.Sprintf("%d days per week", p.DaysPerWeek)) + "\n\n")

	rows := make([][]string, 0, len(p.WorkoutDays))
	for _, d := range p.WorkoutDays {
		rows = append(rows, []string{strconv.Itoa(d.Day), d.FocusArea})
	}
	b.WriteString(RenderTable([]string{"DAY", "FOCUS"}, rows, 0))

	t := generation.Classify("", p.WorkoutDays)
	b.WriteString("\n" + Dim("type: ") + PlanTypeStyle(t).Render(string(t)) + "\n")
	return b.String()
}

func FormatDietPlan(p *domain.DietPlan) string {
	var b strings.Builder
	b.WriteString(Header("Daily meals") + "\n")

	rows := [][]string{
		mealRow("Breakfast", p.Breakfast),
		mealRow("Lunch", p.Lunch),
		mealRow("Dinner", p.Dinner),
	}
	total := p.Breakfast.Calories + p.Lunch.Calories + p.Dinner.Calories
	for i, s := range p.Snacks {
		rows = append(rows, mealRow(fmt.Sprintf("Snack %d", i+1), s))
		total += s.Calories
	}
	b.WriteString(RenderTable([]string{"MEAL", "FOOD", "KCAL", "P", "C", "F"}, rows, 2, 3, 4, 5))
	b.WriteString("\n" + Bold("Total: "+Kcal(total)) + "\n")
	return b.String()
}

func mealRow(label string, m domain.MealEntry) []string {
	return []string{
		label,
		m.Food,
		fmt.Sprintf("%.0f", m.Calories),
		fmt.Sprintf("%.0fg", m.Macros.Protein),
		fmt.Sprintf("%.0fg", m.Macros.Carbs),
		fmt.Sprintf("%.0fg", m.Macros.Fat),
	}
}

func FormatWorkout(w *domain.Workout) string {
	var b strings.Builder
	b.WriteString(Header(w.Name) + "\n")
	b.WriteString(Dim(fmt.Sprintf("%s · ~%d min", w.FocusArea, w.EstimatedMinutes)) + "\n\n")

	rows := make([][]string, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		rows = append(rows, []string{e.Name, strconv.Itoa(e.Sets), e.Reps, FormatRest(e.RestSeconds)})
	}
	b.WriteString(RenderTable([]string{"EXERCISE", "SETS", "REPS", "REST"}, rows, 1))
	return b.String()
}

// FormatTransitions lists the state machine path taken for one request.
func FormatTransitions(ts []intelligence.Transition) string {
	var b strings.Builder
	b.WriteString(Header("Trace") + "\n")
	for _, t := range ts {
		fmt.Fprintf(&b, "%s → %s", StyleBlue.Render(string(t.From)), StyleBlue.Render(string(t.To)))
		if t.Reason != "" {
			b.WriteString("  " + Dim(t.Reason))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func FormatProfile(p *domain.UserProfile) string {
	rows := [][]string{
		{"Age", strconv.Itoa(p.Age)},
		{"Height", fmt.Sprintf("%.0f cm", p.HeightCm)},
		{"Weight", fmt.Sprintf("%.1f kg → %.1f kg", p.CurrentWeightKg, p.TargetWeightKg)},
		{"Activity", string(p.ActivityLevel)},
		{"Diet", string(p.DietPreference)},
		{"Goal", string(p.FitnessGoal)},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(Dim(fmt.Sprintf("%-10s", r[0])) + " " + r[1] + "\n")
	}
	return RenderBox("Profile "+p.ID, strings.TrimRight(b.String(), "\n"))
}

// FormatPlanList renders stored plans newest first, as returned.
func FormatPlanList(recs []*domain.PlanRecord, now time.Time) string {
	if len(recs) == 0 {
		return "No plans found.\n"
	}
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		prompt := r.Prompt
		if len(prompt) > 40 {
			prompt = prompt[:37] + "..."
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			string(r.Kind),
			SourceBadge(r.Source),
			HumanTimestampFrom(r.CreatedAt, now),
			prompt,
		})
	}
	return RenderTable([]string{"ID", "KIND", "SOURCE", "CREATED", "PROMPT"}, rows)
}

// FormatTally renders classifier votes next to the resolved type.
func FormatTally(t generation.Tally, resolved domain.PlanType) string {
	rows := [][]string{
		{string(domain.PlanStrength), strconv.Itoa(t.Strength)},
		{string(domain.PlanCardio), strconv.Itoa(t.Cardio)},
		{string(domain.PlanWeightLoss), strconv.Itoa(t.WeightLoss)},
	}
	return RenderTable([]string{"TYPE", "VOTES"}, rows, 1) +
		"\n" + Dim("resolved: ") + PlanTypeStyle(resolved).Render(string(resolved)) + "\n"
}
