package intelligence

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/fitplan/internal/domain"
	"github.com/alexanderramin/fitplan/internal/llm"
)

// workoutPlanSystemPrompt instructs the LLM to produce a weekly training split.
const workoutPlanSystemPrompt = `You are a certified strength and conditioning coach.
Design a weekly workout plan for the user described below.

You must output ONLY a JSON object with these exact fields:
- name: short plan name
- description: one or two sentences describing the plan
- daysPerWeek: integer between 1 and 7
- workoutDays: array with exactly daysPerWeek entries, each { day: integer starting at 1, focusArea: string }

Focus areas should be one of: Chest, Back, Legs, Shoulders, Arms, Core, Cardio, HIIT, Full Body, Flexibility, Rest Day.

CRITICAL RULES:
1. Number days consecutively from 1 with no gaps
2. If an existing structure is provided, keep its day count and adjust only the focus areas
3. Use strict JSON numeric literals
4. Output ONLY the JSON object, no markdown, no explanation`

// dietPlanSystemPrompt instructs the LLM to produce a one-day meal plan.
const dietPlanSystemPrompt = `You are a registered dietitian.
Design a one-day meal plan for the user described below.

You must output ONLY a JSON object with these exact fields:
- breakfast: { food: string, calories: number, macros: { protein: number, carbs: number, fat: number } }
- lunch: same shape as breakfast
- dinner: same shape as breakfast
- snacks: array of objects with the same shape as breakfast

CRITICAL RULES:
1. Respect the user's diet preference strictly
2. Macros are grams, calories are kcal, all numbers non-negative
3. Do not include totals or any other fields
4. Output ONLY the JSON object, no markdown, no explanation`

// sessionSystemPrompt instructs the LLM to produce a single training session.
const sessionSystemPrompt = `You are a personal trainer.
Design a single workout session for the requested focus area.

You must output ONLY a JSON object with these exact fields:
- name: session name
- focusArea: the focus area
- estimatedMinutes: integer
- exercises: array of { name: string, sets: integer (>0), reps: string, restSeconds: integer }

CRITICAL RULES:
1. If the user trains at home, use only bodyweight exercises
2. If the user wants a quick session, use at most 3 exercises
3. Output ONLY the JSON object, no markdown, no explanation`

func systemPromptFor(kind domain.PlanKind) string {
	switch kind {
	case domain.KindDiet:
		return dietPlanSystemPrompt
	case domain.KindSession:
		return sessionSystemPrompt
	default:
		return workoutPlanSystemPrompt
	}
}

func taskFor(kind domain.PlanKind) llm.TaskType {
	switch kind {
	case domain.KindDiet:
		return llm.TaskDietPlan
	case domain.KindSession:
		return llm.TaskSession
	default:
		return llm.TaskWorkoutPlan
	}
}

// buildUserPrompt renders the profile, request text and optional existing
// structure into the user turn.
func buildUserPrompt(req Request) string {
	p := req.Profile
	var b strings.Builder
	b.WriteString("User profile:\n")
	fmt.Fprintf(&b, "- age: %d\n", p.Age)
	fmt.Fprintf(&b, "- height: %.0f cm\n", p.HeightCm)
	fmt.Fprintf(&b, "- current weight: %.1f kg\n", p.CurrentWeightKg)
	fmt.Fprintf(&b, "- target weight: %.1f kg\n", p.TargetWeightKg)
	fmt.Fprintf(&b, "- activity level: %s\n", p.ActivityLevel)
	fmt.Fprintf(&b, "- diet preference: %s\n", p.DietPreference)
	fmt.Fprintf(&b, "- fitness goal: %s\n", p.FitnessGoal)

	if req.Kind == domain.KindSession && req.FocusArea != "" {
		fmt.Fprintf(&b, "\nFocus area: %s\n", req.FocusArea)
	}
	if req.Existing != nil && req.Kind == domain.KindWorkout {
		if data, err := json.Marshal(req.Existing); err == nil {
			fmt.Fprintf(&b, "\nExisting structure:\n%s\n", data)
		}
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		prompt = "Create a plan that fits my profile."
	}
	fmt.Fprintf(&b, "\nRequest: %s", prompt)
	return b.String()
}
