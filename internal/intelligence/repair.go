package intelligence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/fitplan/internal/domain"
	"github.com/alexanderramin/fitplan/internal/llm"
)

// ParseCode classifies why model output could not be repaired.
type ParseCode string

const (
	CodeNoJSON        ParseCode = "no-json-found"
	CodeMalformedJSON ParseCode = "malformed-json"
	CodeMissingField  ParseCode = "missing-required-field"
	CodeInvalidField  ParseCode = "invalid-field"
)

// ParseError is returned by the Repair functions. It never escapes the
// orchestrator; every ParseError routes generation to the fallback tier.
type ParseError struct {
	Code   ParseCode
	Field  string
	Detail string
}

func (e *ParseError) Error() string {
	msg := string(e.Code)
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func parseErr(code ParseCode, field, detail string) *ParseError {
	return &ParseError{Code: code, Field: field, Detail: detail}
}

// decodeObject locates the first balanced JSON object in raw and decodes it
// with numbers kept as json.Number.
func decodeObject(raw string) (map[string]any, error) {
	text, ok := llm.LocateJSON(raw)
	if !ok {
		return nil, parseErr(CodeNoJSON, "", "")
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, parseErr(CodeMalformedJSON, "", err.Error())
	}
	return obj, nil
}

// RepairDietPlan coerces raw model text into a DietPlan candidate. Keys
// outside the four meal slots are dropped and a bare snack object is wrapped
// into a one-element array.
func RepairDietPlan(raw string) (*domain.DietPlan, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	plan := &domain.DietPlan{Snacks: []domain.MealEntry{}}
	slots := []struct {
		key string
		dst *domain.MealEntry
	}{
		{"breakfast", &plan.Breakfast},
		{"lunch", &plan.Lunch},
		{"dinner", &plan.Dinner},
	}
	for _, s := range slots {
		v, ok := obj[s.key]
		if !ok || v == nil {
			return nil, parseErr(CodeMissingField, s.key, "")
		}
		meal, err := repairMeal(v, s.key)
		if err != nil {
			return nil, err
		}
		*s.dst = meal
	}

	switch snacks := obj["snacks"].(type) {
	case nil:
	case []any:
		for i, v := range snacks {
			meal, err := repairMeal(v, fmt.Sprintf("snacks[%d]", i))
			if err != nil {
				return nil, err
			}
			plan.Snacks = append(plan.Snacks, meal)
		}
	default:
		meal, err := repairMeal(snacks, "snacks")
		if err != nil {
			return nil, err
		}
		plan.Snacks = append(plan.Snacks, meal)
	}

	return plan, nil
}

func repairMeal(v any, field string) (domain.MealEntry, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return domain.MealEntry{}, parseErr(CodeInvalidField, field, "expected an object")
	}

	var (
		meal domain.MealEntry
		err  error
	)
	if meal.Food, err = stringField(m, field+".food", "food", "name", "description", "meal"); err != nil {
		return meal, err
	}
	if meal.Calories, err = numberField(m, field+".calories", "calories", "kcal"); err != nil {
		return meal, err
	}

	macros := m
	if inner, ok := lookup(m, "macros", "macronutrients"); ok && inner != nil {
		mm, ok := inner.(map[string]any)
		if !ok {
			return meal, parseErr(CodeInvalidField, field+".macros", "expected an object")
		}
		macros = mm
	}
	if meal.Macros.Protein, err = numberField(macros, field+".macros.protein", "protein", "protein_g"); err != nil {
		return meal, err
	}
	if meal.Macros.Carbs, err = numberField(macros, field+".macros.carbs", "carbs", "carbohydrates", "carbs_g"); err != nil {
		return meal, err
	}
	if meal.Macros.Fat, err = numberField(macros, field+".macros.fat", "fat", "fats", "fat_g"); err != nil {
		return meal, err
	}
	return meal, nil
}

// RepairWorkoutPlan coerces raw model text into a WorkoutPlan candidate.
// Day-count equality is not enforced here.
func RepairWorkoutPlan(raw string) (*domain.WorkoutPlan, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	rawDays, ok := lookup(obj, "workoutDays", "workout_days", "days")
	if !ok || rawDays == nil {
		return nil, parseErr(CodeMissingField, "workoutDays", "")
	}
	list, ok := rawDays.([]any)
	if !ok {
		return nil, parseErr(CodeInvalidField, "workoutDays", "expected an array")
	}

	plan := &domain.WorkoutPlan{WorkoutDays: make([]domain.WorkoutDay, 0, len(list))}
	if plan.Name, err = stringField(obj, "name", "name", "title"); err != nil {
		return nil, err
	}
	if plan.Description, err = stringField(obj, "description", "description", "summary"); err != nil {
		return nil, err
	}
	if plan.DaysPerWeek, err = intField(obj, "daysPerWeek", "daysPerWeek", "days_per_week"); err != nil {
		return nil, err
	}

	for i, v := range list {
		field := fmt.Sprintf("workoutDays[%d]", i)
		switch d := v.(type) {
		case string:
			plan.WorkoutDays = append(plan.WorkoutDays, domain.WorkoutDay{Day: i + 1, FocusArea: strings.TrimSpace(d)})
		case map[string]any:
			var day domain.WorkoutDay
			if day.Day, err = intField(d, field+".day", "day", "dayNumber", "day_number"); err != nil {
				return nil, err
			}
			if day.FocusArea, err = stringField(d, field+".focusArea", "focusArea", "focus_area", "focus"); err != nil {
				return nil, err
			}
			if day.WorkoutID, err = stringField(d, field+".workoutId", "workoutId", "workout_id"); err != nil {
				return nil, err
			}
			plan.WorkoutDays = append(plan.WorkoutDays, day)
		default:
			return nil, parseErr(CodeInvalidField, field, "expected an object")
		}
	}
	return plan, nil
}

// RepairWorkout coerces raw model text into a single-day session candidate.
func RepairWorkout(raw string) (*domain.Workout, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	rawExercises, ok := obj["exercises"]
	if !ok || rawExercises == nil {
		return nil, parseErr(CodeMissingField, "exercises", "")
	}
	list, ok := rawExercises.([]any)
	if !ok {
		return nil, parseErr(CodeInvalidField, "exercises", "expected an array")
	}

	w := &domain.Workout{Exercises: make([]domain.Exercise, 0, len(list))}
	if w.Name, err = stringField(obj, "name", "name", "title"); err != nil {
		return nil, err
	}
	if w.FocusArea, err = stringField(obj, "focusArea", "focusArea", "focus_area", "focus"); err != nil {
		return nil, err
	}
	if w.EstimatedMinutes, err = intField(obj, "estimatedMinutes", "estimatedMinutes", "estimated_minutes", "duration"); err != nil {
		return nil, err
	}

	for i, v := range list {
		field := fmt.Sprintf("exercises[%d]", i)
		m, ok := v.(map[string]any)
		if !ok {
			return nil, parseErr(CodeInvalidField, field, "expected an object")
		}
		var ex domain.Exercise
		if ex.Name, err = stringField(m, field+".name", "name", "exercise"); err != nil {
			return nil, err
		}
		if ex.Sets, err = intField(m, field+".sets", "sets"); err != nil {
			return nil, err
		}
		if ex.Reps, err = stringField(m, field+".reps", "reps", "repetitions"); err != nil {
			return nil, err
		}
		if ex.RestSeconds, err = intField(m, field+".restSeconds", "restSeconds", "rest_seconds", "rest"); err != nil {
			return nil, err
		}
		w.Exercises = append(w.Exercises, ex)
	}
	return w, nil
}

// lookup returns the first present key from keys.
func lookup(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func stringField(m map[string]any, field string, keys ...string) (string, error) {
	v, _ := lookup(m, keys...)
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(t), nil
	case json.Number:
		return t.String(), nil
	default:
		return "", parseErr(CodeInvalidField, field, "expected a string")
	}
}

var leadingNumber = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// numberField accepts a JSON number or a numeric string such as "450 kcal".
// Missing values are zero and negatives clamp to zero.
func numberField(m map[string]any, field string, keys ...string) (float64, error) {
	v, _ := lookup(m, keys...)
	var (
		f   float64
		err error
	)
	switch t := v.(type) {
	case nil:
		return 0, nil
	case json.Number:
		f, err = t.Float64()
	case float64:
		f = t
	case string:
		s := leadingNumber.FindString(t)
		if s == "" {
			return 0, parseErr(CodeInvalidField, field, fmt.Sprintf("%q is not a number", t))
		}
		f, err = strconv.ParseFloat(s, 64)
	default:
		return 0, parseErr(CodeInvalidField, field, "expected a number")
	}
	if err != nil {
		return 0, parseErr(CodeInvalidField, field, err.Error())
	}
	return domain.NonNegative(f), nil
}

// maxIntField bounds integer fields (sets, seconds, minutes, day numbers)
// before conversion.
const maxIntField = 100000

func intField(m map[string]any, field string, keys ...string) (int, error) {
	f, err := numberField(m, field, keys...)
	if err != nil {
		return 0, err
	}
	if f > maxIntField {
		return 0, parseErr(CodeInvalidField, field, fmt.Sprintf("%g is out of range", f))
	}
	return int(f + 0.5), nil
}
