package domain

import (
	"fmt"
	"strings"
)

const (
	MinDaysPerWeek = 1
	MaxDaysPerWeek = 7
)

// Plan is the normalized output unit of the generation pipeline.
type Plan interface {
	Kind() PlanKind
	Validate() error
}

// ValidationError reports a plan that violates a schema invariant after
// normalization. Seeing one means the normalizing code has a defect.
type ValidationError struct {
	Kind  PlanKind
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s plan: %s: %s", e.Kind, e.Field, e.Msg)
}

type MacroSet struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

type MealEntry struct {
	Food     string   `json:"food"`
	Calories float64  `json:"calories"`
	Macros   MacroSet `json:"macros"`
}

// DietPlan holds exactly the four meal slots. Snacks is never nil after
// normalization so it always serializes as an array.
type DietPlan struct {
	Breakfast MealEntry   `json:"breakfast"`
	Lunch     MealEntry   `json:"lunch"`
	Dinner    MealEntry   `json:"dinner"`
	Snacks    []MealEntry `json:"snacks"`
}

func (*DietPlan) Kind() PlanKind { return KindDiet }

func (d *DietPlan) Validate() error {
	meals := map[string]MealEntry{"breakfast": d.Breakfast, "lunch": d.Lunch, "dinner": d.Dinner}
	for field, m := range meals {
		if err := validateMeal(field, m); err != nil {
			return err
		}
	}
	if d.Snacks == nil {
		return &ValidationError{Kind: KindDiet, Field: "snacks", Msg: "must be an array"}
	}
	for i, s := range d.Snacks {
		if err := validateMeal(fmt.Sprintf("snacks[%d]", i), s); err != nil {
			return err
		}
	}
	return nil
}

// TotalCalories sums calories across every meal slot.
func (d *DietPlan) TotalCalories() float64 {
	total := d.Breakfast.Calories + d.Lunch.Calories + d.Dinner.Calories
	for _, s := range d.Snacks {
		total += s.Calories
	}
	return total
}

func validateMeal(field string, m MealEntry) error {
	if strings.TrimSpace(m.Food) == "" {
		return &ValidationError{Kind: KindDiet, Field: field + ".food", Msg: "required"}
	}
	if m.Calories < 0 || m.Macros.Protein < 0 || m.Macros.Carbs < 0 || m.Macros.Fat < 0 {
		return &ValidationError{Kind: KindDiet, Field: field, Msg: "numbers must be non-negative"}
	}
	return nil
}

type WorkoutDay struct {
	Day       int    `json:"day"`
	FocusArea string `json:"focusArea"`
	WorkoutID string `json:"workoutId,omitempty"`
}

type WorkoutPlan struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	DaysPerWeek int          `json:"daysPerWeek"`
	WorkoutDays []WorkoutDay `json:"workoutDays"`
}

func (*WorkoutPlan) Kind() PlanKind { return KindWorkout }

// Validate enforces daysPerWeek in 1..7, len(workoutDays) == daysPerWeek and
// day numbers exactly 1..N in order.
func (w *WorkoutPlan) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return &ValidationError{Kind: KindWorkout, Field: "name", Msg: "required"}
	}
	if w.DaysPerWeek < MinDaysPerWeek || w.DaysPerWeek > MaxDaysPerWeek {
		return &ValidationError{Kind: KindWorkout, Field: "daysPerWeek",
			Msg: fmt.Sprintf("must be between %d and %d, got %d", MinDaysPerWeek, MaxDaysPerWeek, w.DaysPerWeek)}
	}
	if len(w.WorkoutDays) != w.DaysPerWeek {
		return &ValidationError{Kind: KindWorkout, Field: "workoutDays",
			Msg: fmt.Sprintf("has %d entries, want %d", len(w.WorkoutDays), w.DaysPerWeek)}
	}
	for i, d := range w.WorkoutDays {
		if d.Day != i+1 {
			return &ValidationError{Kind: KindWorkout, Field: fmt.Sprintf("workoutDays[%d].day", i),
				Msg: fmt.Sprintf("is %d, want %d", d.Day, i+1)}
		}
		if strings.TrimSpace(d.FocusArea) == "" {
			return &ValidationError{Kind: KindWorkout, Field: fmt.Sprintf("workoutDays[%d].focusArea", i), Msg: "required"}
		}
	}
	return nil
}

// FocusAreas returns the focus area of each day in order.
func (w *WorkoutPlan) FocusAreas() []string {
	out := make([]string, len(w.WorkoutDays))
	for i, d := range w.WorkoutDays {
		out[i] = d.FocusArea
	}
	return out
}

type Exercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds int    `json:"restSeconds"`
}

// Workout is a single-day training session for one focus area.
type Workout struct {
	Name             string     `json:"name"`
	FocusArea        string     `json:"focusArea"`
	EstimatedMinutes int        `json:"estimatedMinutes"`
	Exercises        []Exercise `json:"exercises"`
}

func (*Workout) Kind() PlanKind { return KindSession }

func (w *Workout) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return &ValidationError{Kind: KindSession, Field: "name", Msg: "required"}
	}
	if len(w.Exercises) == 0 {
		return &ValidationError{Kind: KindSession, Field: "exercises", Msg: "must not be empty"}
	}
	for i, e := range w.Exercises {
		if strings.TrimSpace(e.Name) == "" {
			return &ValidationError{Kind: KindSession, Field: fmt.Sprintf("exercises[%d].name", i), Msg: "required"}
		}
		if e.Sets < 1 {
			return &ValidationError{Kind: KindSession, Field: fmt.Sprintf("exercises[%d].sets", i), Msg: "must be positive"}
		}
	}
	return nil
}
