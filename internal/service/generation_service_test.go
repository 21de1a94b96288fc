package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fitplan/internal/contract"
	"github.com/alexanderramin/fitplan/internal/domain"
	"github.com/alexanderramin/fitplan/internal/intelligence"
	"github.com/alexanderramin/fitplan/internal/llm"
	"github.com/alexanderramin/fitplan/internal/repository"
	"github.com/alexanderramin/fitplan/internal/testutil"
)

type captureUseCase struct {
	events []UseCaseEvent
}

func (c *captureUseCase) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	c.events = append(c.events, e)
}

type generationFixture struct {
	svc      GenerationService
	profiles *repository.SQLiteUserProfileRepo
	history  PlanHistoryService
	observer *captureUseCase
}

func newGenerationFixture(t *testing.T, client llm.LLMClient) generationFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	profiles := repository.NewSQLiteUserProfileRepo(database)
	obs := &captureUseCase{}
	orch := intelligence.NewOrchestrator(client, zerolog.Nop())
	return generationFixture{
		svc:      NewGenerationService(orch, profiles, testutil.NewTestUoW(database), zerolog.Nop(), obs),
		profiles: profiles,
		history: NewPlanHistoryService(
			repository.NewSQLitePlanRepo(database),
			repository.NewSQLiteGenerationEventRepo(database),
		),
		observer: obs,
	}
}

func TestGenerationService_FallbackPersistsPlanAndEvent(t *testing.T) {
	f := newGenerationFixture(t, &testutil.FakeLLM{Err: llm.ErrModelUnavailable})
	ctx := context.Background()
	profile := testutil.NewTestProfile()

	res, err := f.svc.Generate(ctx, "req-1", contract.GenerateRequest{
		PromptText: "I want a 5 day strength training plan",
		Profile:    &profile,
		UserID:     "u1",
	})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, domain.SourceSynthesized, res.Source)
	assert.Equal(t, "req-1", res.RequestID)
	require.NotEmpty(t, res.PlanID)

	rec, err := f.history.Get(ctx, res.PlanID)
	require.NoError(t, err)
	assert.Equal(t, "u1", rec.UserID)
	assert.Equal(t, domain.KindWorkout, rec.Kind)
	plan, err := rec.Decode()
	require.NoError(t, err)
	assert.Equal(t, 5, plan.(*domain.WorkoutPlan).DaysPerWeek)

	events, err := f.history.Events(ctx, res.PlanID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "req-1", events[0].RequestID)
	assert.Contains(t, events[0].FallbackReason, "unavailable")
	assert.Contains(t, string(events[0].Transitions), "FALLBACK")

	require.Len(t, f.observer.events, 1)
	assert.True(t, f.observer.events[0].Success)
	assert.Equal(t, "generate", f.observer.events[0].Name)
}

func TestGenerationService_StoredProfileResolved(t *testing.T) {
	f := newGenerationFixture(t, nil)
	ctx := context.Background()

	stored := testutil.NewTestProfile(
		testutil.WithProfileID("u1"),
		testutil.WithDiet(domain.DietVegetarian),
		testutil.WithGoal(domain.GoalWeightLoss),
	)
	require.NoError(t, f.profiles.Upsert(ctx, &stored))

	res, err := f.svc.Generate(ctx, "", contract.GenerateRequest{UserID: "u1", Kind: domain.KindDiet})
	require.NoError(t, err)
	assert.NotEmpty(t, res.RequestID)

	diet := res.Plan.(*domain.DietPlan)
	assert.Equal(t, 350.0, diet.Breakfast.Calories)
	assert.Contains(t, diet.Breakfast.Food, "Greek yogurt parfait")

	list, err := f.history.ListByUser(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGenerationService_UnknownUser(t *testing.T) {
	f := newGenerationFixture(t, nil)

	_, err := f.svc.Generate(context.Background(), "r", contract.GenerateRequest{UserID: "ghost"})
	var ge *contract.GenerateError
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, contract.ErrProfileNotFound, ge.Code)
	require.Len(t, f.observer.events, 1)
	assert.False(t, f.observer.events[0].Success)
}

func TestGenerationService_InvalidRequest(t *testing.T) {
	f := newGenerationFixture(t, nil)

	_, err := f.svc.Generate(context.Background(), "r", contract.GenerateRequest{Kind: "yoga", UserID: "u"})
	var ge *contract.GenerateError
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, contract.ErrInvalidRequest, ge.Code)
}

func TestGenerationService_ModelPlan(t *testing.T) {
	client := &testutil.FakeLLM{
		Text:  `{"name":"Leg Blaster","focusArea":"Legs","estimatedMinutes":40,"exercises":[{"name":"Squat","sets":5,"reps":"5"}]}`,
		Model: "gemini-test",
	}
	f := newGenerationFixture(t, client)
	profile := testutil.NewTestProfile()

	res, err := f.svc.Generate(context.Background(), "r", contract.GenerateRequest{
		Kind: domain.KindSession, FocusArea: "legs", Profile: &profile,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceModel, res.Source)
	assert.Equal(t, "Leg Blaster", res.Plan.(*domain.Workout).Name)

	events, err := f.history.Events(context.Background(), res.PlanID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "gemini-test", events[0].Model)
}

func TestGenerationService_PersistFailureStillReturnsPlan(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: errors.New("disk full")}
	orch := intelligence.NewOrchestrator(nil, zerolog.Nop())
	svc := NewGenerationService(orch, repository.NewSQLiteUserProfileRepo(database), uow, zerolog.Nop())
	profile := testutil.NewTestProfile()

	res, err := svc.Generate(context.Background(), "r", contract.GenerateRequest{Profile: &profile, UserID: "u1"})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Empty(t, res.PlanID)

	plans, err := repository.NewSQLitePlanRepo(database).ListByUser(context.Background(), "u1", 10)
	require.NoError(t, err)
	assert.Empty(t, plans, "plan insert rolled back with the failed event insert")
}

func TestGenerationService_NoPersistence(t *testing.T) {
	orch := intelligence.NewOrchestrator(nil, zerolog.Nop())
	svc := NewGenerationService(orch, nil, nil, zerolog.Nop())
	profile := testutil.NewTestProfile()

	res, err := svc.Generate(context.Background(), "r", contract.GenerateRequest{Profile: &profile})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Empty(t, res.PlanID)
}
