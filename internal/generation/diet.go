package generation

import "github.com/alexanderramin/fitplan/internal/domain"

// mealChoice is one slot of the meal table: the food text for each side of
// the vegetarian flag, base numbers, and the deltas applied by the other flags.
type mealChoice struct {
	vegetarian string
	standard   string

	calories         float64
	weightLossCals   float64
	macros           domain.MacroSet
	highProteinBoost float64
	weightLossCarbs  float64
}

var (
	breakfastChoice = mealChoice{
		vegetarian:       "Greek yogurt parfait with mixed berries and granola",
		standard:         "Scrambled eggs with whole-grain toast and avocado",
		calories:         450,
		weightLossCals:   350,
		macros:           domain.MacroSet{Protein: 22, Carbs: 50, Fat: 15},
		highProteinBoost: 10,
		weightLossCarbs:  15,
	}
	lunchChoice = mealChoice{
		vegetarian:       "Quinoa and chickpea salad with roasted vegetables",
		standard:         "Grilled chicken breast with brown rice and steamed broccoli",
		calories:         600,
		weightLossCals:   450,
		macros:           domain.MacroSet{Protein: 35, Carbs: 65, Fat: 18},
		highProteinBoost: 15,
		weightLossCarbs:  20,
	}
	dinnerChoice = mealChoice{
		vegetarian:       "Lentil and vegetable curry with brown rice",
		standard:         "Baked salmon with sweet potato and asparagus",
		calories:         650,
		weightLossCals:   500,
		macros:           domain.MacroSet{Protein: 38, Carbs: 60, Fat: 22},
		highProteinBoost: 15,
		weightLossCarbs:  20,
	}
	snackChoices = []mealChoice{
		{
			vegetarian:       "Apple slices with almond butter",
			standard:         "Apple slices with almond butter",
			calories:         200,
			weightLossCals:   150,
			macros:           domain.MacroSet{Protein: 5, Carbs: 22, Fat: 9},
			highProteinBoost: 0,
			weightLossCarbs:  5,
		},
		{
			vegetarian:       "Hummus with carrot and cucumber sticks",
			standard:         "Hard-boiled eggs with cherry tomatoes",
			calories:         200,
			weightLossCals:   150,
			macros:           domain.MacroSet{Protein: 10, Carbs: 15, Fat: 10},
			highProteinBoost: 10,
			weightLossCarbs:  5,
		},
	}
)

// highProteinSuffix is appended to a meal's food text when the flag adds protein.
const highProteinSuffix = " (extra protein portion)"

func (m mealChoice) entry(f DietFlags) domain.MealEntry {
	food := m.standard
	if f.Vegetarian {
		food = m.vegetarian
	}

	cals := m.calories
	macros := m.macros
	if f.WeightLoss {
		cals = m.weightLossCals
		macros.Carbs = domain.NonNegative(macros.Carbs - m.weightLossCarbs)
	}
	if f.HighProtein && m.highProteinBoost > 0 {
		food += highProteinSuffix
		macros.Protein += m.highProteinBoost
		cals += m.highProteinBoost * 4
	}

	return domain.MealEntry{Food: food, Calories: cals, Macros: macros}
}

// SynthesizeDiet builds a diet plan from the meal table. The output is fully
// determined by DietFlags, so there are exactly eight possible plans.
func SynthesizeDiet(f DietFlags) *domain.DietPlan {
	snacks := make([]domain.MealEntry, 0, len(snackChoices))
	for _, s := range snackChoices {
		snacks = append(snacks, s.entry(f))
	}
	return &domain.DietPlan{
		Breakfast: breakfastChoice.entry(f),
		Lunch:     lunchChoice.entry(f),
		Dinner:    dinnerChoice.entry(f),
		Snacks:    snacks,
	}
}
