package generation

import (
	"strings"

	"github.com/alexanderramin/fitplan/internal/domain"
)

// Focus area categories with an exercise template.
const (
	FocusChest       = "chest"
	FocusBack        = "back"
	FocusLegs        = "legs"
	FocusShoulders   = "shoulders"
	FocusArms        = "arms"
	FocusCore        = "core"
	FocusCardio      = "cardio"
	FocusHIIT        = "hiit"
	FocusFullBody    = "full body"
	FocusFlexibility = "flexibility"
)

var exerciseTemplates = map[string][]domain.Exercise{
	FocusChest: {
		{Name: "Bench Press", Sets: 4, Reps: "8-10", RestSeconds: 90},
		{Name: "Incline Dumbbell Press", Sets: 3, Reps: "10-12", RestSeconds: 75},
		{Name: "Cable Flyes", Sets: 3, Reps: "12-15", RestSeconds: 60},
		{Name: "Chest Dips", Sets: 3, Reps: "8-12", RestSeconds: 75},
		{Name: "Push-ups", Sets: 2, Reps: "to failure", RestSeconds: 60},
	},
	FocusBack: {
		{Name: "Deadlift", Sets: 4, Reps: "5-6", RestSeconds: 120},
		{Name: "Lat Pulldown", Sets: 3, Reps: "10-12", RestSeconds: 75},
		{Name: "Barbell Row", Sets: 3, Reps: "8-10", RestSeconds: 90},
		{Name: "Seated Cable Row", Sets: 3, Reps: "10-12", RestSeconds: 75},
		{Name: "Face Pulls", Sets: 3, Reps: "15", RestSeconds: 60},
	},
	FocusLegs: {
		{Name: "Barbell Squat", Sets: 4, Reps: "6-8", RestSeconds: 120},
		{Name: "Romanian Deadlift", Sets: 3, Reps: "8-10", RestSeconds: 90},
		{Name: "Leg Press", Sets: 3, Reps: "10-12", RestSeconds: 90},
		{Name: "Walking Lunges", Sets: 3, Reps: "12 per leg", RestSeconds: 75},
		{Name: "Standing Calf Raises", Sets: 4, Reps: "15", RestSeconds: 45},
	},
	FocusShoulders: {
		{Name: "Overhead Press", Sets: 4, Reps: "6-8", RestSeconds: 90},
		{Name: "Dumbbell Lateral Raise", Sets: 3, Reps: "12-15", RestSeconds: 60},
		{Name: "Rear Delt Flyes", Sets: 3, Reps: "12-15", RestSeconds: 60},
		{Name: "Arnold Press", Sets: 3, Reps: "10-12", RestSeconds: 75},
		{Name: "Barbell Shrugs", Sets: 3, Reps: "12", RestSeconds: 60},
	},
	FocusArms: {
		{Name: "Barbell Curl", Sets: 3, Reps: "10-12", RestSeconds: 60},
		{Name: "Tricep Pushdown", Sets: 3, Reps: "10-12", RestSeconds: 60},
		{Name: "Hammer Curl", Sets: 3, Reps: "12", RestSeconds: 60},
		{Name: "Skull Crushers", Sets: 3, Reps: "10", RestSeconds: 60},
		{Name: "Cable Curl", Sets: 2, Reps: "15", RestSeconds: 45},
	},
	FocusCore: {
		{Name: "Plank", Sets: 3, Reps: "45 seconds", RestSeconds: 45},
		{Name: "Cable Crunch", Sets: 3, Reps: "15", RestSeconds: 45},
		{Name: "Hanging Leg Raise", Sets: 3, Reps: "12", RestSeconds: 60},
		{Name: "Russian Twists", Sets: 3, Reps: "20", RestSeconds: 45},
		{Name: "Dead Bug", Sets: 3, Reps: "10 per side", RestSeconds: 45},
	},
	FocusCardio: {
		{Name: "Treadmill Run", Sets: 1, Reps: "20 minutes", RestSeconds: 0},
		{Name: "Rowing Machine", Sets: 1, Reps: "10 minutes", RestSeconds: 60},
		{Name: "Stationary Bike", Sets: 1, Reps: "15 minutes", RestSeconds: 60},
		{Name: "Jump Rope", Sets: 3, Reps: "2 minutes", RestSeconds: 60},
		{Name: "Cool-down Walk", Sets: 1, Reps: "5 minutes", RestSeconds: 0},
	},
	FocusHIIT: {
		{Name: "Burpees", Sets: 4, Reps: "40 seconds", RestSeconds: 20},
		{Name: "Kettlebell Swings", Sets: 4, Reps: "40 seconds", RestSeconds: 20},
		{Name: "Mountain Climbers", Sets: 4, Reps: "40 seconds", RestSeconds: 20},
		{Name: "Box Jumps", Sets: 4, Reps: "30 seconds", RestSeconds: 30},
		{Name: "Battle Ropes", Sets: 4, Reps: "30 seconds", RestSeconds: 30},
	},
	FocusFullBody: {
		{Name: "Barbell Squat", Sets: 3, Reps: "8-10", RestSeconds: 90},
		{Name: "Bench Press", Sets: 3, Reps: "8-10", RestSeconds: 90},
		{Name: "Barbell Row", Sets: 3, Reps: "8-10", RestSeconds: 90},
		{Name: "Overhead Press", Sets: 3, Reps: "10", RestSeconds: 75},
		{Name: "Plank", Sets: 3, Reps: "45 seconds", RestSeconds: 45},
	},
	FocusFlexibility: {
		{Name: "Cat-Cow Stretch", Sets: 2, Reps: "10", RestSeconds: 15},
		{Name: "World's Greatest Stretch", Sets: 2, Reps: "5 per side", RestSeconds: 15},
		{Name: "Pigeon Pose", Sets: 2, Reps: "45 seconds per side", RestSeconds: 15},
		{Name: "Hamstring Stretch", Sets: 2, Reps: "45 seconds", RestSeconds: 15},
		{Name: "Child's Pose", Sets: 2, Reps: "60 seconds", RestSeconds: 0},
	},
}

// homeSubstitutions replaces gym-only exercises with equipment-free ones.
// Names not in the map are left untouched.
var homeSubstitutions = map[string]string{
	"Bench Press":            "Push-ups",
	"Incline Dumbbell Press": "Decline Push-ups",
	"Cable Flyes":            "Wide-grip Push-ups",
	"Chest Dips":             "Chair Dips",
	"Deadlift":               "Single-leg Hip Hinge",
	"Lat Pulldown":           "Doorway Rows",
	"Barbell Row":            "Towel Rows",
	"Seated Cable Row":       "Superman Holds",
	"Face Pulls":             "Prone Y-T-W Raises",
	"Barbell Squat":          "Bodyweight Squats",
	"Romanian Deadlift":      "Single-leg Glute Bridges",
	"Leg Press":              "Jump Squats",
	"Overhead Press":         "Pike Push-ups",
	"Dumbbell Lateral Raise": "Water Bottle Lateral Raise",
	"Barbell Shrugs":         "Backpack Shrugs",
	"Barbell Curl":           "Backpack Curls",
	"Tricep Pushdown":        "Diamond Push-ups",
	"Skull Crushers":         "Bench Tricep Dips",
	"Cable Curl":             "Towel Isometric Curls",
	"Cable Crunch":           "Bicycle Crunches",
	"Hanging Leg Raise":      "Lying Leg Raises",
	"Treadmill Run":          "Running in Place",
	"Rowing Machine":         "Burpees",
	"Stationary Bike":        "High Knees",
	"Kettlebell Swings":      "Squat Jumps",
	"Box Jumps":              "Tuck Jumps",
	"Battle Ropes":           "Plank Jacks",
}

// focusAliases maps substrings of free-form focus text to a category.
// Checked in order so multi-word categories win over their parts.
var focusAliases = []struct {
	needle string
	focus  string
}{
	{"full body", FocusFullBody},
	{"full-body", FocusFullBody},
	{"total body", FocusFullBody},
	{"hiit", FocusHIIT},
	{"interval", FocusHIIT},
	{"cardio", FocusCardio},
	{"running", FocusCardio},
	{"endurance", FocusCardio},
	{"chest", FocusChest},
	{"pec", FocusChest},
	{"back", FocusBack},
	{"lats", FocusBack},
	{"leg", FocusLegs},
	{"glute", FocusLegs},
	{"quad", FocusLegs},
	{"shoulder", FocusShoulders},
	{"delt", FocusShoulders},
	{"arms", FocusArms},
	{"bicep", FocusArms},
	{"tricep", FocusArms},
	{"core", FocusCore},
	{"abs", FocusCore},
	{"yoga", FocusFlexibility},
	{"stretch", FocusFlexibility},
	{"mobility", FocusFlexibility},
	{"flexib", FocusFlexibility},
}

// NormalizeFocusArea maps free-form focus text to one of the ten template
// categories. Unknown input maps to full body.
func NormalizeFocusArea(focus string) string {
	lower := strings.ToLower(strings.TrimSpace(focus))
	if _, ok := exerciseTemplates[lower]; ok {
		return lower
	}
	for _, a := range focusAliases {
		if strings.Contains(lower, a.needle) {
			return a.focus
		}
	}
	return FocusFullBody
}

// SynthesizeSession builds a single-day workout for a focus area, applying
// the quick and home transforms independently.
func SynthesizeSession(focusArea string, f SessionFlags) *domain.Workout {
	focus := NormalizeFocusArea(focusArea)
	template := exerciseTemplates[focus]

	n := len(template)
	if f.Quick && n > 3 {
		n = 3
	}
	exercises := make([]domain.Exercise, n)
	copy(exercises, template[:n])

	if f.Home {
		for i := range exercises {
			if sub, ok := homeSubstitutions[exercises[i].Name]; ok {
				exercises[i].Name = sub
			}
		}
	}

	return &domain.Workout{
		Name:             sessionName(focus, f),
		FocusArea:        focus,
		EstimatedMinutes: estimateMinutes(exercises),
		Exercises:        exercises,
	}
}

func sessionName(focus string, f SessionFlags) string {
	name := titleCase(focus) + " Workout"
	if f.Home {
		name = "Home " + name
	}
	if f.Quick {
		name = "Quick " + name
	}
	return name
}

// estimateMinutes assumes about 45 seconds of work per set plus rest, and
// uses the duration in reps for timed single-set entries.
func estimateMinutes(exercises []domain.Exercise) int {
	seconds := 0
	for _, e := range exercises {
		if e.Sets == 1 {
			if m := leadingInt(e.Reps); m > 0 && strings.Contains(e.Reps, "minute") {
				seconds += m * 60
				continue
			}
		}
		seconds += e.Sets * (45 + e.RestSeconds)
	}
	return (seconds + 59) / 60
}

func leadingInt(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "hiit" {
			words[i] = "HIIT"
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
