package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fitplan/internal/contract"
	"github.com/alexanderramin/fitplan/internal/domain"
	"github.com/alexanderramin/fitplan/internal/intelligence"
	"github.com/alexanderramin/fitplan/internal/repository"
	"github.com/alexanderramin/fitplan/internal/service"
	"github.com/alexanderramin/fitplan/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB with the model disabled.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	profiles := repository.NewSQLiteUserProfileRepo(db)

	return &App{
		Generation: service.NewGenerationService(
			intelligence.NewOrchestrator(nil, zerolog.Nop()), profiles, testutil.NewTestUoW(db), zerolog.Nop()),
		Profiles: service.NewProfileService(profiles),
		History: service.NewPlanHistoryService(
			repository.NewSQLitePlanRepo(db), repository.NewSQLiteGenerationEventRepo(db)),
		Log: zerolog.Nop(),
	}
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func seedProfile(t *testing.T, app *App, id string, opts ...testutil.ProfileOption) {
	t.Helper()
	p := testutil.NewTestProfile(append([]testutil.ProfileOption{testutil.WithProfileID(id)}, opts...)...)
	require.NoError(t, app.Profiles.Upsert(context.Background(), &p))
}

func TestGenerateCmd_StoredProfile(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app, "u1")

	out, err := execute(t, app, "generate", "--user", "u1", "--trace", "I want a 5 day strength training plan")
	require.NoError(t, err)
	assert.Contains(t, out, "SYNTHESIZED")
	assert.Contains(t, out, "TRACE")
	assert.Contains(t, out, "FALLBACK → DONE")
}

func TestGenerateCmd_JSON(t *testing.T) {
	app := testApp(t)

	out, err := execute(t, app, "generate", "--json", "--kind", "session", "--focus", "chest",
		"--age", "30", "--height", "180", "--weight", "80", "--target", "75", "quick home workout")
	require.NoError(t, err)

	var res struct {
		OK     bool              `json:"ok"`
		Source domain.PlanSource `json:"source"`
		Plan   domain.Workout    `json:"plan"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	assert.True(t, res.OK)
	require.Len(t, res.Plan.Exercises, 3)
	assert.Equal(t, "Push-ups", res.Plan.Exercises[0].Name)
}

func TestGenerateCmd_InlineProfileNeedsAllNumbers(t *testing.T) {
	_, err := execute(t, testApp(t), "generate", "--age", "30", "plan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--height")
}

func TestGenerateCmd_Errors(t *testing.T) {
	app := testApp(t)

	_, err := execute(t, app, "generate", "--user", "ghost", "plan")
	var ge *contract.GenerateError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, contract.ErrProfileNotFound, ge.Code)

	_, err = execute(t, app, "generate", "plan")
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, contract.ErrInvalidRequest, ge.Code)
}

func TestGenerateCmd_ExistingStructure(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app, "u1")

	path := filepath.Join(t.TempDir(), "existing.json")
	existing := testutil.NewTestWorkoutPlan("Mine", "chest", "back", "legs")
	data, err := json.Marshal(existing)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, err := execute(t, app, "generate", "--json", "--user", "u1", "--existing", path, "make it 6 days")
	require.NoError(t, err)

	var res struct {
		Plan domain.WorkoutPlan `json:"plan"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Plan.DaysPerWeek)
	assert.Len(t, res.Plan.WorkoutDays, 3)

	_, err = execute(t, app, "generate", "--user", "u1", "--existing", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestProfileCmd_SetShowDelete(t *testing.T) {
	app := testApp(t)

	out, err := execute(t, app, "profile", "set", "u9",
		"--age", "41", "--height", "170", "--weight", "90", "--target", "80", "--goal", "weight_loss")
	require.NoError(t, err)
	assert.Contains(t, out, "weight_loss")

	out, err = execute(t, app, "profile", "set", "u9", "--diet", "vegan")
	require.NoError(t, err)
	assert.Contains(t, out, "vegan")
	assert.Contains(t, out, "weight_loss", "unchanged fields are kept")

	out, err = execute(t, app, "profile", "show", "u9")
	require.NoError(t, err)
	assert.Contains(t, out, "41")

	_, err = execute(t, app, "profile", "delete", "u9")
	require.NoError(t, err)
	_, err = execute(t, app, "profile", "show", "u9")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileCmd_SetRequiresInput(t *testing.T) {
	_, err := execute(t, testApp(t), "profile", "set", "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no profile fields")

	_, err = execute(t, testApp(t), "profile", "set", "u1", "--age", "5", "--height", "170", "--weight", "90", "--target", "80")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestPlansCmd_ListAndShow(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app, "u1")

	res, err := app.Generation.Generate(context.Background(), "r1", contract.GenerateRequest{UserID: "u1", Kind: domain.KindDiet})
	require.NoError(t, err)
	require.NotEmpty(t, res.PlanID)

	out, err := execute(t, app, "plans", "list", "u1")
	require.NoError(t, err)
	assert.Contains(t, out, res.PlanID[:8])
	assert.Contains(t, out, "diet")

	out, err = execute(t, app, "plans", "show", "--trace", res.PlanID)
	require.NoError(t, err)
	assert.Contains(t, out, "DAILY MEALS")
	assert.Contains(t, out, "START → CALL_MODEL")

	out, err = execute(t, app, "plans", "list", "nobody")
	require.NoError(t, err)
	assert.Contains(t, out, "No plans found.")
}

func TestClassifyCmd(t *testing.T) {
	out, err := execute(t, testApp(t), "classify", "I want a 5 day strength training plan")
	require.NoError(t, err)
	assert.Contains(t, out, "strength")

	out, err = execute(t, testApp(t), "classify", "--days", "chest,back,legs,cardio", "make", "it", "better")
	require.NoError(t, err)
	assert.Contains(t, out, "resolved: strength")
}
