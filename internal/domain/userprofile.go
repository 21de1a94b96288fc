package domain

import "fmt"

// UserProfile is the demographic and preference record a plan is generated
// for. Generation treats it as read-only.
type UserProfile struct {
	ID              string         `json:"id,omitempty"`
	Age             int            `json:"age"`
	HeightCm        float64        `json:"heightCm"`
	CurrentWeightKg float64        `json:"currentWeightKg"`
	TargetWeightKg  float64        `json:"targetWeightKg"`
	ActivityLevel   ActivityLevel  `json:"activityLevel"`
	DietPreference  DietPreference `json:"dietPreference"`
	FitnessGoal     FitnessGoal    `json:"fitnessGoal"`
}

// Normalized returns a copy with empty enum fields set to their defaults.
func (p UserProfile) Normalized() UserProfile {
	p.ActivityLevel = ActivityLevel(CoalesceStr(string(p.ActivityLevel), string(ActivityModeratelyActive)))
	p.DietPreference = DietPreference(CoalesceStr(string(p.DietPreference), string(DietNoPreference)))
	p.FitnessGoal = FitnessGoal(CoalesceStr(string(p.FitnessGoal), string(GoalMaintenance)))
	return p
}

// Validate checks ranges and enum membership. Call on a normalized profile.
func (p UserProfile) Validate() error {
	if p.Age < 13 || p.Age > 100 {
		return fmt.Errorf("age must be between 13 and 100, got %d", p.Age)
	}
	if p.HeightCm < 100 || p.HeightCm > 250 {
		return fmt.Errorf("heightCm must be between 100 and 250, got %.1f", p.HeightCm)
	}
	if p.CurrentWeightKg < 30 || p.CurrentWeightKg > 300 {
		return fmt.Errorf("currentWeightKg must be between 30 and 300, got %.1f", p.CurrentWeightKg)
	}
	if p.TargetWeightKg < 30 || p.TargetWeightKg > 300 {
		return fmt.Errorf("targetWeightKg must be between 30 and 300, got %.1f", p.TargetWeightKg)
	}
	if !ValidActivityLevels[p.ActivityLevel] {
		return fmt.Errorf("unknown activityLevel %q", p.ActivityLevel)
	}
	if !ValidDietPreferences[p.DietPreference] {
		return fmt.Errorf("unknown dietPreference %q", p.DietPreference)
	}
	if !ValidFitnessGoals[p.FitnessGoal] {
		return fmt.Errorf("unknown fitnessGoal %q", p.FitnessGoal)
	}
	return nil
}

// DefaultDaysPerWeek maps the activity level to a training frequency.
func (p UserProfile) DefaultDaysPerWeek() int {
	switch p.ActivityLevel {
	case ActivitySedentary, ActivityLightlyActive:
		return 3
	case ActivityVeryActive:
		return 5
	case ActivityExtraActive:
		return 6
	default:
		return 4
	}
}
