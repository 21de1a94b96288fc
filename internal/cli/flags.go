package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/fitplan/internal/domain"
)

// profileFlags collects profile fields from the command line.
type profileFlags struct {
	fs       *pflag.FlagSet
	age      int
	height   float64
	weight   float64
	target   float64
	activity string
	diet     string
	goal     string
}

func newProfileFlags() *profileFlags {
	pf := &profileFlags{fs: pflag.NewFlagSet("profile", pflag.ContinueOnError)}
	pf.fs.IntVar(&pf.age, "age", 0, "Age in years (13-100)")
	pf.fs.Float64Var(&pf.height, "height", 0, "Height in cm (100-250)")
	pf.fs.Float64Var(&pf.weight, "weight", 0, "Current weight in kg (30-300)")
	pf.fs.Float64Var(&pf.target, "target", 0, "Target weight in kg (30-300)")
	pf.fs.StringVar(&pf.activity, "activity", "", "Activity level: sedentary, lightly_active, moderately_active, very_active, extra_active")
	pf.fs.StringVar(&pf.diet, "diet", "", "Diet preference: no_preference, vegetarian, vegan, keto, paleo")
	pf.fs.StringVar(&pf.goal, "goal", "", "Fitness goal: weight_loss, muscle_gain, maintenance, endurance")
	return pf
}

// addTo registers the profile flags on a command's flag set.
func (pf *profileFlags) addTo(fs *pflag.FlagSet) {
	fs.AddFlagSet(pf.fs)
}

// changed reports whether any profile flag was given.
func (pf *profileFlags) changed() bool {
	set := false
	pf.fs.VisitAll(func(f *pflag.Flag) { set = set || f.Changed })
	return set
}

// apply overlays the flags that were set onto base. The set is shared with
// the command's flags, so Changed reflects what cobra parsed.
func (pf *profileFlags) apply(base domain.UserProfile) domain.UserProfile {
	pf.fs.VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		switch f.Name {
		case "age":
			base.Age = pf.age
		case "height":
			base.HeightCm = pf.height
		case "weight":
			base.CurrentWeightKg = pf.weight
		case "target":
			base.TargetWeightKg = pf.target
		case "activity":
			base.ActivityLevel = domain.ActivityLevel(pf.activity)
		case "diet":
			base.DietPreference = domain.DietPreference(pf.diet)
		case "goal":
			base.FitnessGoal = domain.FitnessGoal(pf.goal)
		}
	})
	return base
}

// inline builds a profile from flags alone for one-off generation.
func (pf *profileFlags) inline() (*domain.UserProfile, error) {
	if !pf.changed() {
		return nil, nil
	}
	for _, name := range []string{"age", "height", "weight", "target"} {
		if !pf.fs.Changed(name) {
			return nil, fmt.Errorf("inline profile needs --%s", name)
		}
	}
	p := pf.apply(domain.UserProfile{})
	return &p, nil
}
