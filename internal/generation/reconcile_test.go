package generation

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/fitplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func days(focus ...string) []domain.WorkoutDay {
	out := make([]domain.WorkoutDay, len(focus))
	for i, f := range focus {
		out[i] = domain.WorkoutDay{Day: 10 + i, FocusArea: f}
	}
	return out
}

func TestReconcile_ExactLengthRenumbersOnly(t *testing.T) {
	in := days("Chest", "Back", "Legs")
	in[1].WorkoutID = "w-2"

	out := Reconcile(in, 3)

	require.Len(t, out, 3)
	assert.Equal(t, []domain.WorkoutDay{
		{Day: 1, FocusArea: "Chest"},
		{Day: 2, FocusArea: "Back", WorkoutID: "w-2"},
		{Day: 3, FocusArea: "Legs"},
	}, out)
}

func TestReconcile_PadsWithRotation(t *testing.T) {
	out := Reconcile(days("Chest"), 5)

	require.Len(t, out, 5)
	var focus []string
	for _, d := range out {
		focus = append(focus, d.FocusArea)
	}
	// Padding index is the slot position: 1 -> Cardio, 2 -> Rest Day, 3 -> Full Body, 4 -> Cardio.
	assert.Equal(t, []string{"Chest", "Cardio", "Rest Day", "Full Body", "Cardio"}, focus)
}

func TestReconcile_EmptyInput(t *testing.T) {
	out := Reconcile(nil, 3)
	assert.Equal(t, []domain.WorkoutDay{
		{Day: 1, FocusArea: "Full Body"},
		{Day: 2, FocusArea: "Cardio"},
		{Day: 3, FocusArea: "Rest Day"},
	}, out)
}

func TestReconcile_TruncatesTail(t *testing.T) {
	out := Reconcile(days("Chest", "Rest Day", "Legs", "Rest Day", "Back"), 3)

	require.Len(t, out, 3)
	assert.Equal(t, "Chest", out[0].FocusArea)
	assert.Equal(t, "Rest Day", out[1].FocusArea)
	assert.Equal(t, "Legs", out[2].FocusArea)
}

func TestReconcile_DoesNotMutateInput(t *testing.T) {
	in := days("Chest", "Back")
	Reconcile(in, 1)
	assert.Equal(t, 10, in[0].Day)
	assert.Equal(t, 11, in[1].Day)
}

func TestReconcile_ClampsTarget(t *testing.T) {
	assert.Len(t, Reconcile(days("Chest"), 0), 1)
	assert.Len(t, Reconcile(days("Chest"), 12), 7)
}

func TestReconcile_LengthOrderAndIdempotence(t *testing.T) {
	pool := []string{"Chest", "Back", "Legs", "Cardio", "Core", "Arms", "HIIT", "Rest Day", "Shoulders", "Full Body"}
	for n := 1; n <= 7; n++ {
		for l := 0; l <= len(pool); l++ {
			t.Run(fmt.Sprintf("n=%d/len=%d", n, l), func(t *testing.T) {
				out := Reconcile(days(pool[:l]...), n)
				require.Len(t, out, n)
				for i, d := range out {
					assert.Equal(t, i+1, d.Day)
					assert.NotEmpty(t, d.FocusArea)
				}
				assert.Equal(t, out, Reconcile(out, n))
			})
		}
	}
}

func TestReconcilePlan_SetsDaysPerWeek(t *testing.T) {
	plan := domain.WorkoutPlan{Name: "P", DaysPerWeek: 9, WorkoutDays: days("Chest", "Back")}

	got := ReconcilePlan(plan, 4)

	assert.Equal(t, 4, got.DaysPerWeek)
	require.Len(t, got.WorkoutDays, 4)
	assert.NoError(t, got.Validate())
}
