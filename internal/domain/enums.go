package domain

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtraActive      ActivityLevel = "extra_active"
)

type DietPreference string

const (
	DietNoPreference DietPreference = "no_preference"
	DietVegetarian   DietPreference = "vegetarian"
	DietVegan        DietPreference = "vegan"
	DietKeto         DietPreference = "keto"
	DietPaleo        DietPreference = "paleo"
)

type FitnessGoal string

const (
	GoalWeightLoss  FitnessGoal = "weight_loss"
	GoalMuscleGain  FitnessGoal = "muscle_gain"
	GoalMaintenance FitnessGoal = "maintenance"
	GoalEndurance   FitnessGoal = "endurance"
)

// PlanKind identifies which plan shape a generation request targets.
type PlanKind string

const (
	KindWorkout PlanKind = "workout"
	KindDiet    PlanKind = "diet"
	KindSession PlanKind = "session"
)

// PlanType is the coarse category inferred for a workout plan.
type PlanType string

const (
	PlanStrength   PlanType = "strength"
	PlanCardio     PlanType = "cardio"
	PlanWeightLoss PlanType = "weight_loss"
	PlanBalanced   PlanType = "balanced"
)

// PlanSource records which tier of the generation cascade produced a plan.
type PlanSource string

const (
	SourceModel       PlanSource = "model"
	SourceSynthesized PlanSource = "synthesized"
)

// ValidActivityLevels is the canonical set of accepted activity levels.
var ValidActivityLevels = map[ActivityLevel]bool{
	ActivitySedentary: true, ActivityLightlyActive: true, ActivityModeratelyActive: true,
	ActivityVeryActive: true, ActivityExtraActive: true,
}

// ValidDietPreferences is the canonical set of accepted diet preferences.
var ValidDietPreferences = map[DietPreference]bool{
	DietNoPreference: true, DietVegetarian: true, DietVegan: true,
	DietKeto: true, DietPaleo: true,
}

// ValidFitnessGoals is the canonical set of accepted fitness goals.
var ValidFitnessGoals = map[FitnessGoal]bool{
	GoalWeightLoss: true, GoalMuscleGain: true, GoalMaintenance: true, GoalEndurance: true,
}

// ValidPlanKinds is the canonical set of accepted plan kinds.
var ValidPlanKinds = map[PlanKind]bool{
	KindWorkout: true, KindDiet: true, KindSession: true,
}
