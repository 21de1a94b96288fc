package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDiet() *DietPlan {
	meal := MealEntry{Food: "Oats", Calories: 400, Macros: MacroSet{Protein: 20, Carbs: 50, Fat: 10}}
	return &DietPlan{Breakfast: meal, Lunch: meal, Dinner: meal, Snacks: []MealEntry{}}
}

func TestDietPlan_Validate_AcceptsEmptySnacks(t *testing.T) {
	assert.NoError(t, validDiet().Validate())
}

func TestDietPlan_Validate_RejectsNilSnacks(t *testing.T) {
	d := validDiet()
	d.Snacks = nil

	err := d.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "snacks", verr.Field)
}

func TestDietPlan_Validate_RejectsNegativeCalories(t *testing.T) {
	d := validDiet()
	d.Lunch.Calories = -1
	assert.Error(t, d.Validate())
}

func TestDietPlan_TotalCalories(t *testing.T) {
	d := validDiet()
	d.Snacks = []MealEntry{{Food: "Apple", Calories: 95}}
	assert.Equal(t, 1295.0, d.TotalCalories())
}

func TestWorkoutPlan_Validate(t *testing.T) {
	plan := &WorkoutPlan{
		Name:        "Plan",
		DaysPerWeek: 2,
		WorkoutDays: []WorkoutDay{{Day: 1, FocusArea: "Chest"}, {Day: 2, FocusArea: "Legs"}},
	}
	require.NoError(t, plan.Validate())
	assert.Equal(t, []string{"Chest", "Legs"}, plan.FocusAreas())
}

func TestWorkoutPlan_Validate_CountMismatch(t *testing.T) {
	plan := &WorkoutPlan{
		Name:        "Plan",
		DaysPerWeek: 3,
		WorkoutDays: []WorkoutDay{{Day: 1, FocusArea: "Chest"}},
	}
	err := plan.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workoutDays")
}

func TestWorkoutPlan_Validate_GapInDays(t *testing.T) {
	plan := &WorkoutPlan{
		Name:        "Plan",
		DaysPerWeek: 2,
		WorkoutDays: []WorkoutDay{{Day: 1, FocusArea: "Chest"}, {Day: 3, FocusArea: "Legs"}},
	}
	assert.Error(t, plan.Validate())
}

func TestWorkoutPlan_Validate_DaysPerWeekOutOfRange(t *testing.T) {
	plan := &WorkoutPlan{Name: "Plan", DaysPerWeek: 8}
	assert.Error(t, plan.Validate())
}

func TestWorkout_Validate_RequiresExercises(t *testing.T) {
	w := &Workout{Name: "Chest Day", FocusArea: "chest"}
	assert.Error(t, w.Validate())

	w.Exercises = []Exercise{{Name: "Push-ups", Sets: 3, Reps: "12"}}
	assert.NoError(t, w.Validate())
}

func TestPlanKinds(t *testing.T) {
	assert.Equal(t, KindDiet, (&DietPlan{}).Kind())
	assert.Equal(t, KindWorkout, (&WorkoutPlan{}).Kind())
	assert.Equal(t, KindSession, (&Workout{}).Kind())
}
