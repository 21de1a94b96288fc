package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/fitplan/internal/cli/formatter"
	"github.com/alexanderramin/fitplan/internal/domain"
)

func fitplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// profileAnswers holds wizard fields as the strings huh edits.
type profileAnswers struct {
	age, height, weight, target string
	activity                    domain.ActivityLevel
	diet                        domain.DietPreference
	goal                        domain.FitnessGoal
}

func answersFrom(p domain.UserProfile) profileAnswers {
	p = p.Normalized()
	a := profileAnswers{activity: p.ActivityLevel, diet: p.DietPreference, goal: p.FitnessGoal}
	if p.Age > 0 {
		a.age = strconv.Itoa(p.Age)
	}
	a.height = formatOptionalFloat(p.HeightCm)
	a.weight = formatOptionalFloat(p.CurrentWeightKg)
	a.target = formatOptionalFloat(p.TargetWeightKg)
	return a
}

// profile parses the answers over base. Inputs are validated by the form so
// parse failures only happen for hand-built answers.
func (a profileAnswers) profile(base domain.UserProfile) (domain.UserProfile, error) {
	age, err := strconv.Atoi(strings.TrimSpace(a.age))
	if err != nil {
		return base, fmt.Errorf("age: %w", err)
	}
	nums := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"height", a.height, &base.HeightCm},
		{"weight", a.weight, &base.CurrentWeightKg},
		{"target", a.target, &base.TargetWeightKg},
	}
	for _, n := range nums {
		v, err := strconv.ParseFloat(strings.TrimSpace(n.raw), 64)
		if err != nil {
			return base, fmt.Errorf("%s: %w", n.name, err)
		}
		*n.dst = v
	}
	base.Age = age
	base.ActivityLevel = a.activity
	base.DietPreference = a.diet
	base.FitnessGoal = a.goal
	return base, nil
}

func profileForm(a *profileAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			numberInput("Age", "30", &a.age, 13, 100),
			numberInput("Height (cm)", "175", &a.height, 100, 250),
			numberInput("Current weight (kg)", "80", &a.weight, 30, 300),
			numberInput("Target weight (kg)", "75", &a.target, 30, 300),
		),
		huh.NewGroup(
			huh.NewSelect[domain.ActivityLevel]().
				Title("Activity level").
				Options(enumOptions(domain.ActivitySedentary, domain.ActivityLightlyActive,
					domain.ActivityModeratelyActive, domain.ActivityVeryActive, domain.ActivityExtraActive)...).
				Value(&a.activity),
			huh.NewSelect[domain.DietPreference]().
				Title("Diet preference").
				Options(enumOptions(domain.DietNoPreference, domain.DietVegetarian,
					domain.DietVegan, domain.DietKeto, domain.DietPaleo)...).
				Value(&a.diet),
			huh.NewSelect[domain.FitnessGoal]().
				Title("Fitness goal").
				Options(enumOptions(domain.GoalWeightLoss, domain.GoalMuscleGain,
					domain.GoalMaintenance, domain.GoalEndurance)...).
				Value(&a.goal),
		),
	).WithTheme(fitplanHuhTheme()).WithShowHelp(false)
}

func numberInput(title, placeholder string, value *string, lo, hi float64) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateRange(lo, hi))
}

func validateRange(lo, hi float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if v < lo || v > hi {
			return fmt.Errorf("must be between %g and %g", lo, hi)
		}
		return nil
	}
}

func enumOptions[T ~string](values ...T) []huh.Option[T] {
	opts := make([]huh.Option[T], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(strings.ReplaceAll(string(v), "_", " "), v))
	}
	return opts
}

func formatOptionalFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
